// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Projection and annuity math domain errors. Zero-rate and zero-period
// degeneracies are not errors — those have defined fallback results — but
// the required-payment formula is undefined for non-positive rate or term
// and callers must be told so.
var (
	// ErrInvalidTargetAmount is returned when the target future value is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be positive")

	// ErrInvalidRate is returned when the periodic rate is not positive where the formula requires it.
	ErrInvalidRate = errors.New("rate must be positive")

	// ErrInvalidTerm is returned when the number of periods is not positive where the formula requires it.
	ErrInvalidTerm = errors.New("term must be positive")

	// ErrInvalidSimulationInput is returned when a growth simulation input is out of range.
	ErrInvalidSimulationInput = errors.New("invalid simulation input")
)

// ProjectionErrorCode defines error codes for projection errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount     ProjectionErrorCode = "PRJ-010001"
	ErrCodeInvalidRate             ProjectionErrorCode = "PRJ-010002"
	ErrCodeInvalidTerm             ProjectionErrorCode = "PRJ-010003"
	ErrCodeInvalidSimulationInput  ProjectionErrorCode = "PRJ-010004"
)

// ProjectionError represents a projection error with code and message.
type ProjectionError struct {
	Code    ProjectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectionError) Unwrap() error {
	return e.Err
}

// NewProjectionError creates a new ProjectionError with the given code and message.
func NewProjectionError(code ProjectionErrorCode, message string, err error) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
