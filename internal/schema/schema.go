// Package schema implements declarative validation for incoming request
// payloads. Each request model declares its constraints as a list of rules;
// Validate evaluates them and collects every violation rather than stopping
// at the first one, so the caller can report per-field detail.
package schema

import (
	"fmt"
	"net/mail"
	"strings"
)

// Violation describes a single invalid field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries all field-level violations found in a payload.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Rule is a single field constraint. Check returns an empty string when the
// constraint holds, or a human-readable message when it does not.
type Rule struct {
	Field string
	Check func() string
}

// Validate evaluates rules in order and returns an *Error listing every
// violation, or nil when all rules pass.
func Validate(rules []Rule) error {
	var violations []Violation
	for _, r := range rules {
		if msg := r.Check(); msg != "" {
			violations = append(violations, Violation{Field: r.Field, Message: msg})
		}
	}
	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

// Required rejects empty or whitespace-only text.
func Required(field, value string) Rule {
	return Rule{Field: field, Check: func() string {
		if strings.TrimSpace(value) == "" {
			return "field required"
		}
		return ""
	}}
}

// Email rejects values that are not a valid address. The address must be
// bare (no display name), matching the usual contact-form expectation.
func Email(field, value string) Rule {
	return Rule{Field: field, Check: func() string {
		if strings.TrimSpace(value) == "" {
			return "field required"
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return "value is not a valid email address"
		}
		return ""
	}}
}

// NonNegative rejects negative numbers. A nil value passes: the field is
// optional and absence is not a violation.
func NonNegative(field string, value *float64) Rule {
	return Rule{Field: field, Check: func() string {
		if value != nil && *value < 0 {
			return "ensure this value is greater than or equal to 0"
		}
		return ""
	}}
}
