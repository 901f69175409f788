// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for manual entry.
type CreateTransactionRequest struct {
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	MerchantName string `json:"merchant_name" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"max=255"`
	Amount       string `json:"amount" binding:"required"`
}

// SyncTransactionsRequest represents the request body for a bank sync.
type SyncTransactionsRequest struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

// TransactionResponse represents one transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	MerchantName string    `json:"merchant_name"`
	Description  string    `json:"description,omitempty"`
	Amount       string    `json:"amount"`
	Source       string    `json:"source"`
	Zone         string    `json:"zone"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents a page of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ImportBatchResponse represents the outcome of a CSV import or bank sync.
type ImportBatchResponse struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	RowCount     int       `json:"row_count"`
	ImportedRows int       `json:"imported_rows"`
	SkippedRows  int       `json:"skipped_rows"`
	Errors       []string  `json:"errors,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction and its zone to a DTO.
func ToTransactionResponse(t *entity.TransactionWithZone) TransactionResponse {
	resp := TransactionResponse{
		ID:           t.Transaction.ID.String(),
		Date:         t.Transaction.Date.Format("2006-01-02"),
		MerchantName: t.Transaction.MerchantName,
		Description:  t.Transaction.Description,
		Amount:       t.Transaction.Amount.StringFixed(2),
		Source:       string(t.Transaction.Source),
		Zone:         string(t.Zone()),
		CreatedAt:    t.Transaction.CreatedAt,
	}
	if t.Categorization != nil {
		resp.Note = t.Categorization.Note
	}
	return resp
}

// ToTransactionListResponse converts a listing result to a DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, t := range result.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}
}

// ToImportBatchResponse converts an import batch to a DTO.
func ToImportBatchResponse(batch *entity.ImportBatch) ImportBatchResponse {
	return ImportBatchResponse{
		ID:           batch.ID.String(),
		Source:       string(batch.Source),
		RowCount:     batch.RowCount,
		ImportedRows: batch.ImportedRows,
		SkippedRows:  batch.SkippedRows,
		Errors:       batch.Errors,
		CreatedAt:    batch.CreatedAt,
	}
}
