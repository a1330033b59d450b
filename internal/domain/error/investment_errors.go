// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrNotAuthorizedToModifyInvestment is returned when a user does not own the investment.
	ErrNotAuthorizedToModifyInvestment = errors.New("not authorized to modify investment")

	// ErrInvalidInvestmentValue is returned when an investment value is negative.
	ErrInvalidInvestmentValue = errors.New("investment value must not be negative")

	// ErrInvalidInvestmentRate is returned when the estimated annual rate is negative.
	ErrInvalidInvestmentRate = errors.New("estimated annual rate must not be negative")

	// ErrInvalidEventAmount is returned when a contribution or withdrawal amount is not positive.
	ErrInvalidEventAmount = errors.New("event amount must be positive")

	// ErrWithdrawalExceedsBalance is returned when a withdrawal is larger than the current balance.
	ErrWithdrawalExceedsBalance = errors.New("withdrawal exceeds current balance")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvestmentValue  InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInvestmentRate   InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidEventAmount      InvestmentErrorCode = "INV-010003"
	ErrCodeInvestmentNotFound      InvestmentErrorCode = "INV-010004"
	ErrCodeNotAuthorizedInvestment InvestmentErrorCode = "INV-010005"
	ErrCodeMissingInvestmentFields InvestmentErrorCode = "INV-010006"

	// Inconsistent state errors (02XXXX)
	ErrCodeWithdrawalExceedsBalance InvestmentErrorCode = "INV-020001"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
