// Package entity defines the core business entities for the domain layer.
package entity

// ClassificationResult is the outcome of running the rule engine on a single
// transaction. Confidence is a hand-tuned signal of certainty in [0,1], not a
// calibrated probability. Reasoning is user-facing text naming the matched
// pattern or heuristic.
type ClassificationResult struct {
	Zone       Zone
	Category   string
	Confidence float64
	Reasoning  string
}
