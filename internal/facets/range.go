package facets

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jacoelho/iso20022/errors"
)

// MinInclusive represents a minInclusive facet on a decimal type.
type MinInclusive struct {
	Value decimal.Decimal
}

// NewMinInclusive parses the lexical bound of a minInclusive facet.
func NewMinInclusive(lexical string) (*MinInclusive, error) {
	bound, err := decimal.NewFromString(lexical)
	if err != nil {
		return nil, fmt.Errorf("minInclusive facet: invalid bound '%s': %w", lexical, err)
	}
	return &MinInclusive{Value: bound}, nil
}

// Name returns the facet name
func (m *MinInclusive) Name() string {
	return "minInclusive"
}

// Validate checks the value is greater than or equal to the bound
func (m *MinInclusive) Validate(value Value, typeName string) error {
	number := value.Number
	if !value.Numeric {
		parsed, err := decimal.NewFromString(value.Lexical)
		if err != nil {
			v := errors.NewValidationf(errors.ErrPatternMismatch, typeName,
				"%s is not a decimal number", typeName)
			v.Actual = value.Lexical
			return v
		}
		number = parsed
	}
	if number.LessThan(m.Value) {
		v := errors.NewValidationf(errors.ErrBelowMinimum, typeName,
			"%s is less than the minimum value of %s", typeName, m.Value.String())
		v.Actual = number.String()
		return v
	}
	return nil
}
