// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ClassifyPreviewRequest represents the request body for a classification preview.
type ClassifyPreviewRequest struct {
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"max=255"`
	Amount       string `json:"amount" binding:"required"`
}

// ClassifyPreviewBatchRequest represents the request body for a batch preview.
type ClassifyPreviewBatchRequest struct {
	Items []ClassifyPreviewItem `json:"items" binding:"required,min=1,max=500,dive"`
}

// ClassifyPreviewItem is one transaction in a batch preview.
type ClassifyPreviewItem struct {
	ID           string `json:"id" binding:"required,uuid"`
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"max=255"`
	Amount       string `json:"amount" binding:"required"`
}

// ClassificationResponse represents one classification result.
type ClassificationResponse struct {
	Zone       string  `json:"zone"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ClassifyPreviewBatchResponse maps transaction IDs to their classifications.
type ClassifyPreviewBatchResponse struct {
	Results map[string]ClassificationResponse `json:"results"`
}

// ToClassificationResponse converts a classification result to a DTO.
func ToClassificationResponse(result entity.ClassificationResult) ClassificationResponse {
	return ClassificationResponse{
		Zone:       string(result.Zone),
		Category:   result.Category,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}
}
