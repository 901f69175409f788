// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/categorization"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// CategorizeRequest represents the request body for a zone decision.
type CategorizeRequest struct {
	Zone string `json:"zone" binding:"required"`
	Note string `json:"note" binding:"max=500"`
}

// AutoCategorizeRequest represents the request body for batch auto-categorization.
type AutoCategorizeRequest struct {
	Apply    bool `json:"apply"`
	ApplyAll bool `json:"apply_all"`
}

// CategorizationResponse represents a zone decision in API responses.
type CategorizationResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	Zone          string    `json:"zone"`
	Note          string    `json:"note,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SuggestionResponse represents one auto-categorization suggestion.
type SuggestionResponse struct {
	TransactionID string  `json:"transaction_id"`
	Zone          string  `json:"zone"`
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
	Basis         string  `json:"basis"`
	Applied       bool    `json:"applied"`
}

// AutoCategorizeResponse represents the outcome of batch auto-categorization.
type AutoCategorizeResponse struct {
	Suggestions  []SuggestionResponse `json:"suggestions"`
	AppliedCount int                  `json:"applied_count"`
}

// ToCategorizationResponse converts a domain categorization to a DTO.
func ToCategorizationResponse(c *entity.Categorization) CategorizationResponse {
	return CategorizationResponse{
		ID:            c.ID.String(),
		TransactionID: c.TransactionID.String(),
		Zone:          string(c.Zone),
		Note:          c.Note,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToAutoCategorizeResponse converts auto-categorization output to a DTO.
func ToAutoCategorizeResponse(output *categorization.AutoCategorizeOutput) AutoCategorizeResponse {
	suggestions := make([]SuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = SuggestionResponse{
			TransactionID: s.TransactionID.String(),
			Zone:          string(s.Zone),
			Category:      s.Category,
			Confidence:    s.Confidence,
			Reasoning:     s.Reasoning,
			Basis:         string(s.Basis),
			Applied:       s.Applied,
		}
	}
	return AutoCategorizeResponse{
		Suggestions:  suggestions,
		AppliedCount: output.AppliedCount,
	}
}
