// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/dashboard"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ZoneTotalsResponse represents aggregated spend per zone.
type ZoneTotalsResponse struct {
	GreenTotal    string `json:"green_total"`
	YellowTotal   string `json:"yellow_total"`
	RedTotal      string `json:"red_total"`
	GreenCount    int    `json:"green_count"`
	YellowCount   int    `json:"yellow_count"`
	RedCount      int    `json:"red_count"`
	Uncategorized int    `json:"uncategorized"`
}

// InsightResponse represents one spending insight.
type InsightResponse struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Impact   string `json:"impact,omitempty"`
	Priority int    `json:"priority"`
}

// InsightsResponse represents the insights for a period.
type InsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
	Headline *InsightResponse  `json:"headline,omitempty"`
	Cached   bool              `json:"cached"`
}

// HealthScoreResponse represents the spending health score.
type HealthScoreResponse struct {
	Score  int                `json:"score"`
	Label  string             `json:"label"`
	Totals ZoneTotalsResponse `json:"totals"`
}

// TrendMonthResponse pairs one month with its zone totals.
type TrendMonthResponse struct {
	Month  string             `json:"month"`
	Totals ZoneTotalsResponse `json:"totals"`
}

// TrendsResponse represents per-month zone totals, oldest first.
type TrendsResponse struct {
	Months []TrendMonthResponse `json:"months"`
}

// ToZoneTotalsResponse converts zone totals to a DTO.
func ToZoneTotalsResponse(totals entity.ZoneTotals) ZoneTotalsResponse {
	return ZoneTotalsResponse{
		GreenTotal:    totals.GreenTotal.StringFixed(2),
		YellowTotal:   totals.YellowTotal.StringFixed(2),
		RedTotal:      totals.RedTotal.StringFixed(2),
		GreenCount:    totals.GreenCount,
		YellowCount:   totals.YellowCount,
		RedCount:      totals.RedCount,
		Uncategorized: totals.Uncounted,
	}
}

// ToInsightResponse converts a spending insight to a DTO.
func ToInsightResponse(in entity.SpendingInsight) InsightResponse {
	return InsightResponse{
		Kind:     string(in.Kind),
		Title:    in.Title,
		Message:  in.Message,
		Impact:   in.Impact,
		Priority: in.Priority,
	}
}

// ToInsightsResponse converts insight output to a DTO.
func ToInsightsResponse(output *dashboard.GetInsightsOutput) InsightsResponse {
	insights := make([]InsightResponse, len(output.Insights))
	for i, in := range output.Insights {
		insights[i] = ToInsightResponse(in)
	}
	resp := InsightsResponse{
		Insights: insights,
		Cached:   output.Cached,
	}
	if output.Headline != nil {
		headline := ToInsightResponse(*output.Headline)
		resp.Headline = &headline
	}
	return resp
}

// ToTrendsResponse converts trend output to a DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	months := make([]TrendMonthResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = TrendMonthResponse{
			Month:  m.Month,
			Totals: ToZoneTotalsResponse(m.Totals),
		}
	}
	return TrendsResponse{Months: months}
}
