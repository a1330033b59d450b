// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Request-level errors raised before any use case runs.
var (
	// ErrMissingUserIdentity is returned when a request carries no user identity header.
	ErrMissingUserIdentity = errors.New("missing user identity")

	// ErrInvalidUserIdentity is returned when the user identity header is not a valid UUID.
	ErrInvalidUserIdentity = errors.New("invalid user identity")
)

// RequestErrorCode defines error codes for request-level errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	ErrCodeMissingUserIdentity RequestErrorCode = "REQ-010001"
	ErrCodeInvalidUserIdentity RequestErrorCode = "REQ-010002"
	ErrCodeRateLimited         RequestErrorCode = "REQ-010003"
)
