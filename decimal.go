package iso20022

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/jacoelho/iso20022/internal/simpletypes"
	"github.com/jacoelho/iso20022/internal/traversal"
)

var (
	decimalNumber                     = simpletypes.MustLookup("DecimalNumber")
	number                            = simpletypes.MustLookup("Number")
	percentageRate                    = simpletypes.MustLookup("PercentageRate")
	activeOrHistoricCurrencyAndAmount = simpletypes.MustLookup("ActiveOrHistoricCurrencyAndAmount_SimpleType")
	activeCurrencyAndAmount           = simpletypes.MustLookup("ActiveCurrencyAndAmount_SimpleType")
)

// Decimal types embed decimal.Decimal. They marshal with the scale they
// were decoded with ("10.00" stays "10.00"), as a bare number in JSON.
// Element content is whitespace-collapsed before parsing; JSON accepts both
// numbers and quoted strings.

type DecimalNumber struct{ decimal.Decimal }

func (v DecimalNumber) Validate() error { return decimalNumber.CheckDecimal(v.Decimal) }

func (v DecimalNumber) MarshalText() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v DecimalNumber) MarshalJSON() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v *DecimalNumber) UnmarshalText(text []byte) error { return parseDecimalInto(&v.Decimal, text) }

type Number struct{ decimal.Decimal }

func (v Number) Validate() error { return number.CheckDecimal(v.Decimal) }

func (v Number) MarshalText() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v Number) MarshalJSON() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v *Number) UnmarshalText(text []byte) error { return parseDecimalInto(&v.Decimal, text) }

// PercentageRate is a rate expressed as a percentage, 0.7 meaning 0.7%.
type PercentageRate struct{ decimal.Decimal }

func (v PercentageRate) Validate() error { return percentageRate.CheckDecimal(v.Decimal) }

func (v PercentageRate) MarshalText() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v PercentageRate) MarshalJSON() ([]byte, error) { return []byte(lexicalDecimal(v.Decimal)), nil }

func (v *PercentageRate) UnmarshalText(text []byte) error { return parseDecimalInto(&v.Decimal, text) }

// ActiveOrHistoricCurrencyAndAmount is a non-negative amount of money in a
// current or withdrawn currency. The amount is the element content and the
// currency its Ccy attribute.
type ActiveOrHistoricCurrencyAndAmount struct {
	Value decimal.Decimal              `xml:",chardata" json:"$value"`
	Ccy   ActiveOrHistoricCurrencyCode `xml:"Ccy,attr" json:"@Ccy" validate:"required"`
}

// NewActiveOrHistoricCurrencyAndAmount parses value and pairs it with ccy.
func NewActiveOrHistoricCurrencyAndAmount(value string, ccy ActiveOrHistoricCurrencyCode) (ActiveOrHistoricCurrencyAndAmount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return ActiveOrHistoricCurrencyAndAmount{}, err
	}
	return ActiveOrHistoricCurrencyAndAmount{Value: d, Ccy: ccy}, nil
}

func (a ActiveOrHistoricCurrencyAndAmount) Validate() error {
	return traversal.Walk(
		func() error { return activeOrHistoricCurrencyAndAmount.CheckDecimal(a.Value) },
		traversal.Field("@Ccy", a.Ccy),
	)
}

func (a ActiveOrHistoricCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalAmountXML(e, start, a.Value, a.Ccy)
}

func (a *ActiveOrHistoricCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalAmountXML(d, start, &a.Value, &a.Ccy)
}

func (a ActiveOrHistoricCurrencyAndAmount) MarshalJSON() ([]byte, error) {
	return marshalAmountJSON(a.Value, a.Ccy)
}

// ActiveCurrencyAndAmount is a non-negative amount of money in a currency
// in use.
type ActiveCurrencyAndAmount struct {
	Value decimal.Decimal    `xml:",chardata" json:"$value"`
	Ccy   ActiveCurrencyCode `xml:"Ccy,attr" json:"@Ccy" validate:"required"`
}

func (a ActiveCurrencyAndAmount) Validate() error {
	return traversal.Walk(
		func() error { return activeCurrencyAndAmount.CheckDecimal(a.Value) },
		traversal.Field("@Ccy", a.Ccy),
	)
}

func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalAmountXML(e, start, a.Value, a.Ccy)
}

func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalAmountXML(d, start, &a.Value, &a.Ccy)
}

func (a ActiveCurrencyAndAmount) MarshalJSON() ([]byte, error) {
	return marshalAmountJSON(a.Value, a.Ccy)
}

// amountXML and amountJSON carry the amount on the wire with its value in
// lexical form.
type amountXML[C ~string] struct {
	Value string `xml:",chardata"`
	Ccy   C      `xml:"Ccy,attr"`
}

type amountJSON[C ~string] struct {
	Value json.RawMessage `json:"$value"`
	Ccy   C               `json:"@Ccy"`
}

func marshalAmountXML[C ~string](e *xml.Encoder, start xml.StartElement, value decimal.Decimal, ccy C) error {
	return e.EncodeElement(amountXML[C]{Value: lexicalDecimal(value), Ccy: ccy}, start)
}

func unmarshalAmountXML[C ~string](d *xml.Decoder, start xml.StartElement, value *decimal.Decimal, ccy *C) error {
	var aux amountXML[C]
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}
	if err := parseDecimalInto(value, []byte(aux.Value)); err != nil {
		return err
	}
	*ccy = aux.Ccy
	return nil
}

func marshalAmountJSON[C ~string](value decimal.Decimal, ccy C) ([]byte, error) {
	return json.Marshal(amountJSON[C]{Value: json.RawMessage(lexicalDecimal(value)), Ccy: ccy})
}

// lexicalDecimal renders d without an exponent, keeping its scale.
func lexicalDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// parseDecimalInto parses element content, collapsing surrounding
// whitespace as xs:decimal does.
func parseDecimalInto(dst *decimal.Decimal, text []byte) error {
	lexical := strings.TrimSpace(string(text))
	d, err := decimal.NewFromString(lexical)
	if err != nil {
		return fmt.Errorf("decode decimal %q: %w", lexical, err)
	}
	*dst = d
	return nil
}
