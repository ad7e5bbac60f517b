package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Clock validation pattern - 24-hour HH:MM
	ClockPattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

	// National code pattern - 10 digits
	NationalCodePattern = `^\d{10}$`

	// Teacher personal code pattern - letters, digits and dashes
	PersonalCodePattern = `^[A-Za-z0-9\-]{3,20}$`

	// Phone pattern - digits, 10 or 11 long
	PhonePattern = `^0\d{9,10}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Clock        *regexp.Regexp
	NationalCode *regexp.Regexp
	PersonalCode *regexp.Regexp
	Phone        *regexp.Regexp
}{
	Clock:        regexp.MustCompile(ClockPattern),
	NationalCode: regexp.MustCompile(NationalCodePattern),
	PersonalCode: regexp.MustCompile(PersonalCodePattern),
	Phone:        regexp.MustCompile(PhonePattern),
}

// IsClock reports whether s is a well-formed HH:MM value.
func IsClock(s string) bool {
	return CompiledPatterns.Clock.MatchString(s)
}

// IsNationalCode reports whether s is a well-formed national code.
func IsNationalCode(s string) bool {
	return CompiledPatterns.NationalCode.MatchString(s)
}

// IsPersonalCode reports whether s is a well-formed teacher staff code.
func IsPersonalCode(s string) bool {
	return CompiledPatterns.PersonalCode.MatchString(s)
}

// IsPhone reports whether s is a well-formed phone number.
func IsPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
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

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
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
