package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeTotalMismatch    = "TOTAL_MISMATCH"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is an error carrying a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrStoreUnavailable is returned by every repository method when no
	// usable database connection exists. The server starts without a
	// database on purpose; data routes map this to 503.
	ErrStoreUnavailable = NewDomainError(ErrCodeStoreUnavailable, "database connection is not established")

	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = NewDomainError(ErrCodeNotFound, "document not found")
)

// ValidationError reports a malformed request payload. Handlers map it to
// HTTP 400.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message.
func NewValidationError(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
