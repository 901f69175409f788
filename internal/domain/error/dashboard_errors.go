// Package error defines domain-specific errors for the SpendSignal application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingStartDate is returned when the start date is absent.
	ErrMissingStartDate = errors.New("missing start date")

	// ErrMissingEndDate is returned when the end date is absent.
	ErrMissingEndDate = errors.New("missing end date")

	// ErrDashboardInvalidRange is returned when end date precedes start date.
	ErrDashboardInvalidRange = errors.New("invalid date range")

	// ErrDigestDisabled is returned when the user has opted out of digest emails.
	ErrDigestDisabled = errors.New("digest emails disabled")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate      DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate        DashboardErrorCode = "DSH-010002"
	ErrCodeDashboardInvalidRange DashboardErrorCode = "DSH-010003"

	// Digest errors (02XXXX)
	ErrCodeDigestDisabled DashboardErrorCode = "DSH-020001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
