// Package error defines domain-specific errors for the SpendSignal application.
package error

import "errors"

// Import domain errors.
var (
	// ErrEmptyImportFile is returned when the uploaded CSV has no data rows.
	ErrEmptyImportFile = errors.New("empty import file")

	// ErrInvalidImportHeader is returned when the CSV header is not recognized.
	ErrInvalidImportHeader = errors.New("invalid import header")

	// ErrBankProviderUnavailable is returned when no bank provider is configured.
	ErrBankProviderUnavailable = errors.New("bank provider unavailable")
)

// ImportErrorCode defines error codes for import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyImportFile     ImportErrorCode = "IMP-010001"
	ErrCodeInvalidImportHeader ImportErrorCode = "IMP-010002"

	// Provider errors (02XXXX)
	ErrCodeBankProviderUnavailable ImportErrorCode = "IMP-020001"
	ErrCodeBankProviderFailed      ImportErrorCode = "IMP-020002"
)

// ImportError represents an import error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
