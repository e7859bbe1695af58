package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Roll numbers are alphanumeric, optionally with dashes or slashes
	RollNumberPattern = `^[A-Z0-9][A-Z0-9/\-]*$`

	PasswordMinLength = 6

	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	RollNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	RollNumber: regexp.MustCompile(RollNumberPattern),
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeRollNumber trims and upper-cases a roll number
func NormalizeRollNumber(rollNumber string) string {
	return strings.ToUpper(strings.TrimSpace(rollNumber))
}

// StringValidation validates a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new required string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsValidEmail checks an already normalized email
func IsValidEmail(email string) bool {
	return NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate()
}

// IsValidRollNumber checks an already normalized roll number
func IsValidRollNumber(rollNumber string) bool {
	return NewStringValidation(rollNumber).WithMaxLength(32).WithPattern(CompiledPatterns.RollNumber).Validate()
}
