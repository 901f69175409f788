// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch records the outcome of one CSV upload or bank sync.
type ImportBatch struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Source       TransactionSource
	RowCount     int
	ImportedRows int
	SkippedRows  int
	Errors       []string // per-row parse errors, capped by the use case
	CreatedAt    time.Time
}

// NewImportBatch creates a new ImportBatch entity.
func NewImportBatch(userID uuid.UUID, source TransactionSource) *ImportBatch {
	return &ImportBatch{
		ID:        uuid.New(),
		UserID:    userID,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}
