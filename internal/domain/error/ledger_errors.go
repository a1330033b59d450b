// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrNotAuthorizedToModifyEntry is returned when a user does not own the entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify ledger entry")

	// ErrInvalidEntryType is returned when the entry type is invalid.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrInvalidEntryAmount is returned when the entry amount is not positive.
	ErrInvalidEntryAmount = errors.New("entry amount must be positive")

	// ErrInvalidSourceType is returned when a bulk operation names an unknown source type.
	ErrInvalidSourceType = errors.New("invalid source type")
)

// LedgerErrorCode defines error codes for ledger entry errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEntryType    LedgerErrorCode = "LED-010001"
	ErrCodeInvalidEntryAmount  LedgerErrorCode = "LED-010002"
	ErrCodeEntryNotFound       LedgerErrorCode = "LED-010003"
	ErrCodeNotAuthorizedEntry  LedgerErrorCode = "LED-010004"
	ErrCodeInvalidSourceType   LedgerErrorCode = "LED-010005"
	ErrCodeMissingEntryFields  LedgerErrorCode = "LED-010006"
)

// LedgerError represents a ledger entry error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
