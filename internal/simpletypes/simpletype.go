// Package simpletypes holds the catalogue of ISO 20022 simple types and the
// facets each one restricts its base with.
package simpletypes

import (
	"github.com/shopspring/decimal"

	"github.com/jacoelho/iso20022/internal/facets"
)

// Base is the primitive a simple type restricts.
type Base string

const (
	BaseText    Base = "text"
	BaseDecimal Base = "decimal"
	BaseBoolean Base = "boolean"
	BaseDate    Base = "date"
)

func (b Base) valid() bool {
	switch b {
	case BaseText, BaseDecimal, BaseBoolean, BaseDate:
		return true
	default:
		return false
	}
}

// SimpleType is a named ISO 20022 simple type with its facets in check order.
type SimpleType struct {
	Name   string
	Base   Base
	Facets []facets.Facet
}

// Check validates a lexical value against every facet of the type and
// returns the first violation.
func (s *SimpleType) Check(lexical string) error {
	return facets.ApplyFacets(facets.Text(lexical), s.Facets, s.Name)
}

// CheckDecimal validates a decimal value against every facet of the type.
func (s *SimpleType) CheckDecimal(d decimal.Decimal) error {
	return facets.ApplyFacets(facets.Decimal(d), s.Facets, s.Name)
}

// Enumeration returns the code list of the type, or nil when the type is
// not a closed code set.
func (s *SimpleType) Enumeration() []string {
	for _, f := range s.Facets {
		if e, ok := f.(*facets.Enumeration); ok {
			return e.Values
		}
	}
	return nil
}

// Constrained reports whether the type carries any facet.
func (s *SimpleType) Constrained() bool {
	return len(s.Facets) > 0
}
