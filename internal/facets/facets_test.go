package facets

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022/errors"
)

func codeOf(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	code, ok := errors.Code(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	return code
}

func TestLengthFacetsCountCharacters(t *testing.T) {
	minLen := &MinLength{Value: 1}
	maxLen := &MaxLength{Value: 4}

	tests := []struct {
		name    string
		lexical string
		want    errors.ErrorCode
	}{
		{name: "empty", lexical: "", want: errors.ErrTooShort},
		{name: "one", lexical: "a"},
		{name: "four ascii", lexical: "abcd"},
		{name: "four multibyte", lexical: "ÄÖÜß"},
		{name: "five", lexical: "abcde", want: errors.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyFacets(Text(tt.lexical), []Facet{minLen, maxLen}, "Max4Text")
			if tt.want == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, codeOf(t, err))
		})
	}
}

func TestLengthErrorMessages(t *testing.T) {
	err := (&MaxLength{Value: 35}).Validate(Text(strings.Repeat("x", 36)), "Max35Text")
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, "Max35Text exceeds the maximum length of 35", list[0].Message)
	assert.Equal(t, "Max35Text", list[0].Type)
	assert.Equal(t, "36", list[0].Actual)

	err = (&MinLength{Value: 1}).Validate(Text(""), "Max35Text")
	list, ok = errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, "Max35Text is shorter than the minimum length of 1", list[0].Message)
}

func TestPatternIsAnchored(t *testing.T) {
	country, err := NewPattern("[A-Z]{2,2}")
	require.NoError(t, err)

	assert.NoError(t, country.Validate(Text("US"), "CountryCode"))
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, country.Validate(Text("USA"), "CountryCode")))
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, country.Validate(Text("xUS"), "CountryCode")))
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, country.Validate(Text(""), "CountryCode")))
}

func TestPatternAlternationIsAnchoredAsAWhole(t *testing.T) {
	p, err := NewPattern("[BEOVW]{1,1}[0-9]{2,2}|DUM")
	require.NoError(t, err)

	assert.NoError(t, p.Validate(Text("B12"), "CFIOct2015Identifier"))
	assert.NoError(t, p.Validate(Text("DUM"), "CFIOct2015Identifier"))
	assert.Error(t, p.Validate(Text("B12DUM"), "CFIOct2015Identifier"))
}

func TestPatternCompileError(t *testing.T) {
	_, err := NewPattern("[A-Z")
	assert.ErrorContains(t, err, "failed to compile pattern")
}

func TestUncompiledPattern(t *testing.T) {
	err := (&Pattern{Value: "[A-Z]"}).Validate(Text("A"), "X")
	assert.ErrorContains(t, err, "pattern not compiled")
}

func TestEnumeration(t *testing.T) {
	e := &Enumeration{Values: []string{"CRDT", "DBIT"}}

	assert.NoError(t, e.Validate(Text("CRDT"), "CreditDebitCode"))
	err := e.Validate(Text("crdt"), "CreditDebitCode")
	assert.Equal(t, errors.ErrInvalidCode, codeOf(t, err))

	list, _ := errors.AsValidations(err)
	assert.Equal(t, []string{"CRDT", "DBIT"}, list[0].Expected)
}

func TestMinInclusive(t *testing.T) {
	zero, err := NewMinInclusive("0")
	require.NoError(t, err)

	assert.NoError(t, zero.Validate(Decimal(decimal.Zero), "ActiveOrHistoricCurrencyAndAmount_SimpleType"))
	assert.NoError(t, zero.Validate(Decimal(decimal.RequireFromString("0.00001")), "X"))
	assert.Equal(t, errors.ErrBelowMinimum, codeOf(t, zero.Validate(Decimal(decimal.RequireFromString("-0.01")), "X")))

	assert.NoError(t, zero.Validate(Text("12.5"), "X"))
	assert.Equal(t, errors.ErrBelowMinimum, codeOf(t, zero.Validate(Text("-1"), "X")))
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, zero.Validate(Text("abc"), "X")))

	_, err = NewMinInclusive("zero")
	assert.Error(t, err)
}

func TestApplyFacetsStopsAtFirstFailure(t *testing.T) {
	p, err := NewPattern("[a-zA-Z0-9]{1,4}")
	require.NoError(t, err)
	list := []Facet{&MinLength{Value: 1}, &MaxLength{Value: 4}, p}

	// too long and not matching; length is reported because it comes first
	assert.Equal(t, errors.ErrTooLong, codeOf(t, ApplyFacets(Text("a-b-c"), list, "Max4AlphaNumericText")))
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, ApplyFacets(Text("a-b"), list, "Max4AlphaNumericText")))
}

func TestLessOrdersFacets(t *testing.T) {
	p, err := NewPattern("x")
	require.NoError(t, err)
	m, err := NewMinInclusive("0")
	require.NoError(t, err)

	assert.True(t, Less(&MinLength{}, &MaxLength{}))
	assert.True(t, Less(&MaxLength{}, p))
	assert.True(t, Less(p, &Enumeration{}))
	assert.True(t, Less(&Enumeration{}, m))
	assert.False(t, Less(m, &MinLength{}))
}
