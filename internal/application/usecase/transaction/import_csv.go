// Package transaction contains transaction management use cases.
package transaction

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

const (
	// maxRowErrors caps how many per-row errors an import batch records.
	maxRowErrors = 20
)

// csvDateLayouts are accepted in order. Banks disagree on export formats.
var csvDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05Z07:00",
}

// expectedHeader is the required CSV column order.
var expectedHeader = []string{"date", "merchant", "description", "amount"}

// ImportCSVInput represents the input for a CSV import.
type ImportCSVInput struct {
	UserID uuid.UUID
	Reader io.Reader
}

// ImportCSVOutput represents the outcome of a CSV import.
type ImportCSVOutput struct {
	Batch *entity.ImportBatch
}

// ImportCSVUseCase parses a bank-export CSV and creates transactions from its
// rows. Bad rows are skipped and reported, never fatal; the batch records the
// full outcome.
type ImportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
	importBatchRepo adapter.ImportBatchRepository
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(
	transactionRepo adapter.TransactionRepository,
	importBatchRepo adapter.ImportBatchRepository,
) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		transactionRepo: transactionRepo,
		importBatchRepo: importBatchRepo,
	}
}

// Execute imports the CSV.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	reader := csv.NewReader(input.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyImportFile,
			"the file has no rows",
			domainerror.ErrEmptyImportFile,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	batch := entity.NewImportBatch(input.UserID, entity.TransactionSourceCSV)
	var transactions []*entity.Transaction

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			batch.RowCount++
			batch.SkippedRows++
			recordRowError(batch, fmt.Sprintf("row %d: malformed CSV", batch.RowCount))
			continue
		}

		batch.RowCount++
		tx, rowErr := uc.parseRow(input.UserID, row)
		if rowErr != nil {
			batch.SkippedRows++
			recordRowError(batch, fmt.Sprintf("row %d: %s", batch.RowCount, rowErr))
			continue
		}
		transactions = append(transactions, tx)
	}

	if batch.RowCount == 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeEmptyImportFile,
			"the file has a header but no data rows",
			domainerror.ErrEmptyImportFile,
		)
	}

	if len(transactions) > 0 {
		if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
			return nil, fmt.Errorf("failed to save imported transactions: %w", err)
		}
	}
	batch.ImportedRows = len(transactions)

	if err := uc.importBatchRepo.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to record import batch: %w", err)
	}

	return &ImportCSVOutput{Batch: batch}, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return invalidHeaderError()
	}
	for i, column := range header {
		if !strings.EqualFold(strings.TrimSpace(column), expectedHeader[i]) {
			return invalidHeaderError()
		}
	}
	return nil
}

func invalidHeaderError() error {
	return domainerror.NewImportError(
		domainerror.ErrCodeInvalidImportHeader,
		"expected header: date,merchant,description,amount",
		domainerror.ErrInvalidImportHeader,
	)
}

func (uc *ImportCSVUseCase) parseRow(userID uuid.UUID, row []string) (*entity.Transaction, error) {
	if len(row) != len(expectedHeader) {
		return nil, errors.New("wrong number of columns")
	}

	date, err := parseCSVDate(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, err
	}

	merchant := strings.TrimSpace(row[1])
	if merchant == "" {
		return nil, errors.New("merchant is required")
	}

	amount, err := parseCSVAmount(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, err
	}

	return entity.NewTransaction(
		userID,
		date,
		merchant,
		strings.TrimSpace(row[2]),
		amount,
		entity.TransactionSourceCSV,
		"",
	), nil
}

func parseCSVDate(value string) (time.Time, error) {
	for _, layout := range csvDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// parseCSVAmount accepts currency symbols, thousands separators and
// parenthesized or signed negatives. Spend amounts are stored absolute.
func parseCSVAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", "(", "-", ")", "").Replace(value)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable amount %q", value)
	}
	if amount.IsZero() {
		return decimal.Zero, errors.New("amount must not be zero")
	}
	return amount.Abs(), nil
}

func recordRowError(batch *entity.ImportBatch, message string) {
	if len(batch.Errors) < maxRowErrors {
		batch.Errors = append(batch.Errors, message)
	}
}
