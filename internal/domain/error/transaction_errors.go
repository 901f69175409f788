// Package error defines domain-specific errors for the SpendSignal application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionMissingFields is returned when required fields are missing.
	ErrTransactionMissingFields = errors.New("missing required fields")

	// ErrInvalidAmount is returned when the amount is negative or unparseable.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDateRange is returned when end date precedes start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrNotTransactionOwner is returned when a user touches another user's transaction.
	ErrNotTransactionOwner = errors.New("not the transaction owner")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionMissingFields TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount            TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010003"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeNotTransactionOwner TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
