// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"time"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// parseDate parses a date-only request field.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseOptionalDate parses a nullable date-only request field.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
