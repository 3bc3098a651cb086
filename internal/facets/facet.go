package facets

import (
	"github.com/shopspring/decimal"
)

var (
	_ Facet = (*MinLength)(nil)
	_ Facet = (*MaxLength)(nil)
	_ Facet = (*Pattern)(nil)
	_ Facet = (*Enumeration)(nil)
	_ Facet = (*MinInclusive)(nil)
)

// Value is the operand handed to a facet. Decimal-based simple types set
// Number and Numeric so range facets can compare without reparsing.
type Value struct {
	Lexical string
	Number  decimal.Decimal
	Numeric bool
}

// Text wraps a lexical value.
func Text(lexical string) Value {
	return Value{Lexical: lexical}
}

// Decimal wraps a decimal value.
func Decimal(d decimal.Decimal) Value {
	return Value{Lexical: d.String(), Number: d, Numeric: true}
}

// Facet is a single constraining facet of an ISO 20022 simple type.
// typeName is the declared simple type, used in error messages.
type Facet interface {
	Name() string
	Validate(value Value, typeName string) error
}

// order ranks facets so that a facet list is always checked as
// minLength, maxLength, pattern, enumeration, minInclusive.
func order(f Facet) int {
	switch f.(type) {
	case *MinLength:
		return 0
	case *MaxLength:
		return 1
	case *Pattern:
		return 2
	case *Enumeration:
		return 3
	case *MinInclusive:
		return 4
	default:
		return 5
	}
}

// Less reports whether a is checked before b.
func Less(a, b Facet) bool {
	return order(a) < order(b)
}

// ApplyFacets applies all facets to a value and returns the first violation.
func ApplyFacets(value Value, facets []Facet, typeName string) error {
	for _, f := range facets {
		if err := f.Validate(value, typeName); err != nil {
			return err
		}
	}
	return nil
}
