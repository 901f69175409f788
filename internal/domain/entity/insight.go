// Package entity defines the core business entities for the domain layer.
package entity

// InsightKind classifies an insight for presentation.
type InsightKind string

const (
	InsightKindWarning InsightKind = "warning"
	InsightKindTip     InsightKind = "tip"
	InsightKindWin     InsightKind = "win"
	InsightKindAction  InsightKind = "action"
)

// Insight priorities range from PriorityMin to PriorityMax; higher values are
// displayed first.
const (
	InsightPriorityMin = 1
	InsightPriorityMax = 10
)

// SpendingInsight is a derived observation about spending behavior. Insights
// are recomputed from the current transaction snapshot on every request and
// are never persisted.
type SpendingInsight struct {
	Kind     InsightKind
	Title    string
	Message  string
	Impact   string // optional, e.g. a yearly projection
	Priority int    // 1..10, higher is more urgent
}
