package facets

import (
	"strconv"
	"unicode/utf8"

	"github.com/jacoelho/iso20022/errors"
)

// MinLength represents a minLength facet
type MinLength struct {
	Value int
}

// Name returns the facet name
func (m *MinLength) Name() string {
	return "minLength"
}

// Validate checks if the value meets the minimum length in characters
func (m *MinLength) Validate(value Value, typeName string) error {
	length := utf8.RuneCountInString(value.Lexical)
	if length < m.Value {
		v := errors.NewValidationf(errors.ErrTooShort, typeName,
			"%s is shorter than the minimum length of %d", typeName, m.Value)
		v.Actual = strconv.Itoa(length)
		return v
	}
	return nil
}

// MaxLength represents a maxLength facet
type MaxLength struct {
	Value int
}

// Name returns the facet name
func (m *MaxLength) Name() string {
	return "maxLength"
}

// Validate checks if the value meets the maximum length in characters
func (m *MaxLength) Validate(value Value, typeName string) error {
	length := utf8.RuneCountInString(value.Lexical)
	if length > m.Value {
		v := errors.NewValidationf(errors.ErrTooLong, typeName,
			"%s exceeds the maximum length of %d", typeName, m.Value)
		v.Actual = strconv.Itoa(length)
		return v
	}
	return nil
}
