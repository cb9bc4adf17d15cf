package validator

import (
	"regexp"
	"strings"
)

// Default messages, replaced per rule with WithMessage.
const (
	MsgRequired = "is required"
	MsgFormat   = "has an invalid format"
)

// Rule is a deferred check and the error it reports.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of r reporting msg.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
// Rules are not short-circuited, so a form can show all of its errors.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			verrs = append(verrs, r.Error)
		}
	}
	if len(verrs) == 0 {
		return nil
	}
	return verrs
}

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: MsgRequired},
	}
}

// OptionalPattern fails when value is non-empty and does not match pattern.
func OptionalPattern(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool { return value == "" || pattern.MatchString(value) },
		Error: ValidationError{Field: field, Message: MsgFormat},
	}
}
