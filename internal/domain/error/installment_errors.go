// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Installment purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when an installment purchase is not found.
	ErrPurchaseNotFound = errors.New("installment purchase not found")

	// ErrNotAuthorizedToModifyPurchase is returned when a user does not own the purchase.
	ErrNotAuthorizedToModifyPurchase = errors.New("not authorized to modify installment purchase")

	// ErrInvalidTotalAmount is returned when the purchase total is not positive.
	ErrInvalidTotalAmount = errors.New("purchase total must be positive")

	// ErrInvalidInstallmentCount is returned when the installment count is not positive.
	ErrInvalidInstallmentCount = errors.New("installment count must be positive")
)

// InstallmentErrorCode defines error codes for installment purchase errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTotalAmount      InstallmentErrorCode = "INS-010001"
	ErrCodeInvalidInstallmentCount InstallmentErrorCode = "INS-010002"
	ErrCodePurchaseNotFound        InstallmentErrorCode = "INS-010003"
	ErrCodeNotAuthorizedPurchase   InstallmentErrorCode = "INS-010004"
	ErrCodeMissingPurchaseFields   InstallmentErrorCode = "INS-010005"

	// Persistence errors (02XXXX)
	ErrCodePlanPersistenceFailed InstallmentErrorCode = "INS-020001"
)

// InstallmentError represents an installment purchase error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
