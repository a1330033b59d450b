// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Recurring obligation domain errors.
var (
	// ErrObligationNotFound is returned when a recurring obligation is not found.
	ErrObligationNotFound = errors.New("recurring obligation not found")

	// ErrNotAuthorizedToModifyObligation is returned when a user does not own the obligation.
	ErrNotAuthorizedToModifyObligation = errors.New("not authorized to modify recurring obligation")

	// ErrInvalidObligationKind is returned when the obligation kind is invalid.
	ErrInvalidObligationKind = errors.New("invalid obligation kind")

	// ErrInvalidObligationAmount is returned when the obligation amount is not positive.
	ErrInvalidObligationAmount = errors.New("obligation amount must be positive")

	// ErrInvalidFrequency is returned when the schedule frequency is not supported.
	ErrInvalidFrequency = errors.New("invalid schedule frequency")

	// ErrEndDateBeforeStartDate is returned when the schedule end date precedes its start date.
	ErrEndDateBeforeStartDate = errors.New("schedule end date precedes start date")

	// ErrMaterializationFailed is returned when the entry batch could not be persisted atomically.
	ErrMaterializationFailed = errors.New("failed to materialize schedule entries")
)

// RecurrenceErrorCode defines error codes for recurring obligation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurrenceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidObligationKind   RecurrenceErrorCode = "REC-010001"
	ErrCodeInvalidObligationAmount RecurrenceErrorCode = "REC-010002"
	ErrCodeInvalidFrequency        RecurrenceErrorCode = "REC-010003"
	ErrCodeEndDateBeforeStartDate  RecurrenceErrorCode = "REC-010004"
	ErrCodeObligationNotFound      RecurrenceErrorCode = "REC-010005"
	ErrCodeNotAuthorizedObligation RecurrenceErrorCode = "REC-010006"
	ErrCodeMissingObligationFields RecurrenceErrorCode = "REC-010007"

	// Persistence errors (02XXXX)
	ErrCodeMaterializationFailed RecurrenceErrorCode = "REC-020001"
)

// RecurrenceError represents a recurring obligation error with code and message.
type RecurrenceError struct {
	Code    RecurrenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurrenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurrenceError) Unwrap() error {
	return e.Err
}

// NewRecurrenceError creates a new RecurrenceError with the given code and message.
func NewRecurrenceError(code RecurrenceErrorCode, message string, err error) *RecurrenceError {
	return &RecurrenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
