package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Registration rules
var (
	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// slugPattern matches the lowercase dash separated slugs the seed data uses.
// Subject creation does not enforce it; it is only used to warn.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// StringValidation describes the length checks applied to a single required string
type StringValidation struct {
	Value  string
	MinLen int
	MaxLen int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate performs validation. Blank values fail; lengths count runes, not bytes.
func (v *StringValidation) Validate() bool {
	value := strings.TrimSpace(v.Value)
	if value == "" {
		return false
	}

	n := len([]rune(value))
	if v.MinLen > 0 && n < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && n > v.MaxLen {
		return false
	}

	return true
}

// ValidateName checks a person's first name or surname
func ValidateName(name string) error {
	if !NewStringValidation(name).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate() {
		return fmt.Errorf("must be between %d and %d characters", NameMinLength, NameMaxLength)
	}
	return nil
}

// ValidatePassword requires the minimum length plus at least one letter and one digit
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength {
		return fmt.Errorf("must be at least %d characters long", PasswordMinLength)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("must contain at least one digit")
	}

	return nil
}

// IsCanonicalSlug reports whether url looks like a lowercase dash separated slug
func IsCanonicalSlug(url string) bool {
	return slugPattern.MatchString(url)
}
