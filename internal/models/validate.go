package models

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldError names one offending field in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every offending field, not just the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) add(field, format string, args ...any) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// checkRequired enforces the non-empty, bounded-length rule shared by all
// required string fields. Returns the trimmed value.
func (v *ValidationErrors) checkRequired(field, value string, maxLen int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(field, "is required")
	} else if len(value) > maxLen {
		v.add(field, "must be at most %d characters", maxLen)
	}
	return value
}

// checkEmail normalizes and validates an email address.
func (v *ValidationErrors) checkEmail(field, value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		v.add(field, "is required")
		return value
	}
	if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
		v.add(field, "must be a valid email address")
	}
	return value
}

// orNil converts the collected errors to an error value, nil when empty.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
