// Package error defines domain-specific errors for the SpendSignal application.
package error

import "errors"

// Categorization domain errors.
var (
	// ErrInvalidZone is returned when a zone value is not one of the traffic-light zones.
	ErrInvalidZone = errors.New("invalid zone")

	// ErrCategorizationNotFound is returned when no categorization exists for a transaction.
	ErrCategorizationNotFound = errors.New("categorization not found")

	// ErrNotCategorizationOwner is returned when a user touches another user's categorization.
	ErrNotCategorizationOwner = errors.New("not the categorization owner")
)

// CategorizationErrorCode defines error codes for categorization errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategorizationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidZone CategorizationErrorCode = "CAT-010001"

	// Lookup errors (02XXXX)
	ErrCodeCategorizationNotFound CategorizationErrorCode = "CAT-020001"
	ErrCodeNotCategorizationOwner CategorizationErrorCode = "CAT-020002"
)

// CategorizationError represents a categorization error with code and message.
type CategorizationError struct {
	Code    CategorizationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategorizationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategorizationError) Unwrap() error {
	return e.Err
}

// NewCategorizationError creates a new CategorizationError with the given code and message.
func NewCategorizationError(code CategorizationErrorCode, message string, err error) *CategorizationError {
	return &CategorizationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
