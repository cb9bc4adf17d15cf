package validator

import (
	"errors"
	"strings"
)

// ErrValidationFailed matches any non-empty ValidationErrors with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError is a failed rule on one form field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors lists failures in the order their rules were applied.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Field + ": " + e.Message
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

// Has reports whether field failed.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, e := range ve {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Fields returns the failed fields once each, first failure first.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, e := range ve {
		if !containsField(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// First returns the earliest failure, the one a form should focus.
func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs
	}
	return nil
}
