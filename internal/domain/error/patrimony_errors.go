// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Patrimony asset domain errors.
var (
	// ErrAssetNotFound is returned when a patrimony asset is not found.
	ErrAssetNotFound = errors.New("patrimony asset not found")

	// ErrNotAuthorizedToModifyAsset is returned when a user does not own the asset.
	ErrNotAuthorizedToModifyAsset = errors.New("not authorized to modify patrimony asset")

	// ErrInvalidAssetValue is returned when the estimated value is not positive.
	ErrInvalidAssetValue = errors.New("asset value must be positive")

	// ErrInvalidGranularity is returned when the history granularity is not supported.
	ErrInvalidGranularity = errors.New("invalid history granularity")
)

// PatrimonyErrorCode defines error codes for patrimony errors.
// Format: PAT-XXYYYY where XX is category and YYYY is specific error.
type PatrimonyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAssetValue   PatrimonyErrorCode = "PAT-010001"
	ErrCodeAssetNotFound       PatrimonyErrorCode = "PAT-010002"
	ErrCodeNotAuthorizedAsset  PatrimonyErrorCode = "PAT-010003"
	ErrCodeInvalidGranularity  PatrimonyErrorCode = "PAT-010004"
	ErrCodeMissingAssetFields  PatrimonyErrorCode = "PAT-010005"
)

// PatrimonyError represents a patrimony error with code and message.
type PatrimonyError struct {
	Code    PatrimonyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PatrimonyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PatrimonyError) Unwrap() error {
	return e.Err
}

// NewPatrimonyError creates a new PatrimonyError with the given code and message.
func NewPatrimonyError(code PatrimonyErrorCode, message string, err error) *PatrimonyError {
	return &PatrimonyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
