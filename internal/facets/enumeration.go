package facets

import (
	"slices"

	"github.com/jacoelho/iso20022/errors"
)

// Enumeration represents an enumeration facet: the closed code list of an
// ISO 20022 code set such as CreditDebitCode.
type Enumeration struct {
	Values []string
}

// Name returns the facet name
func (e *Enumeration) Name() string {
	return "enumeration"
}

// Contains reports whether lexical is one of the defined codes.
func (e *Enumeration) Contains(lexical string) bool {
	return slices.Contains(e.Values, lexical)
}

// Validate checks the value is one of the defined codes
func (e *Enumeration) Validate(value Value, typeName string) error {
	if e.Contains(value.Lexical) {
		return nil
	}
	v := errors.NewValidationf(errors.ErrInvalidCode, typeName,
		"%s is not one of the defined codes", typeName)
	v.Expected = slices.Clone(e.Values)
	v.Actual = value.Lexical
	return v
}
