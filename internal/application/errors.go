package application

import (
	"sort"
	"strings"
)

// ValidationError reports input that cannot be accepted: missing or malformed
// fields, or a uniqueness conflict. It maps to a client error.
type ValidationError struct {
	Message string
	Details map[string]string
}

func NewValidationError(message string, details map[string]string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Details[f])
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}
