package classification

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// ClassifyItem is one transaction in a batch classification request.
type ClassifyItem struct {
	ID           uuid.UUID
	MerchantName string
	Description  string
	Amount       decimal.Decimal
}

// ClassifyMany applies Classify to each item independently. Items share no
// state and no ordering dependency.
func ClassifyMany(items []ClassifyItem) map[uuid.UUID]entity.ClassificationResult {
	results := make(map[uuid.UUID]entity.ClassificationResult, len(items))
	for _, item := range items {
		results[item.ID] = Classify(item.MerchantName, item.Description, item.Amount)
	}
	return results
}
