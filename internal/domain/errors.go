package domain

import "fmt"

// ValidationError reports malformed input on a primary write path.
// It is the only error class surfaced to callers of the mutation
// entry points; everything downstream of a committed write degrades
// with logging instead of failing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validationf builds a ValidationError for the given field.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
