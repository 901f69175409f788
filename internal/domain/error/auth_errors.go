// Package error defines domain-specific errors for the SpendSignal application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password fails the strength check.
	ErrWeakPassword = errors.New("password too weak")

	// ErrTermsNotAccepted is returned when terms of service were not accepted.
	ErrTermsNotAccepted = errors.New("terms not accepted")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or revoked.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail     AuthErrorCode = "AUT-010001"
	ErrCodeWeakPassword     AuthErrorCode = "AUT-010002"
	ErrCodeTermsNotAccepted AuthErrorCode = "AUT-010003"
	ErrCodeEmailExists      AuthErrorCode = "AUT-010004"

	// Credential errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUT-020002"

	// Token errors (03XXXX)
	ErrCodeMissingToken        AuthErrorCode = "AUT-030001"
	ErrCodeInvalidToken        AuthErrorCode = "AUT-030002"
	ErrCodeInvalidRefreshToken AuthErrorCode = "AUT-030003"

	// Rate limiting (04XXXX)
	ErrCodeTooManyAttempts AuthErrorCode = "AUT-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
