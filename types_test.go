package iso20022

import (
	stdjson "encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022/errors"
)

type validatable interface {
	Validate() error
}

func codeOf(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	code, ok := errors.Code(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	return code
}

func TestLeafTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value validatable
		want  errors.ErrorCode
	}{
		{name: "Max35Text full", value: Max35Text(strings.Repeat("x", 35))},
		{name: "Max35Text too long", value: Max35Text(strings.Repeat("x", 36)), want: errors.ErrTooLong},
		{name: "Max35Text empty", value: Max35Text(""), want: errors.ErrTooShort},
		{name: "Max140Text multibyte", value: Max140Text(strings.Repeat("é", 140))},
		{name: "CountryCode", value: CountryCode("US")},
		{name: "CountryCode three letters", value: CountryCode("USA"), want: errors.ErrPatternMismatch},
		{name: "LEI", value: LEIIdentifier("529900T8BM49AURSDO55")},
		{name: "LEI short", value: LEIIdentifier("short"), want: errors.ErrPatternMismatch},
		{name: "IBAN", value: IBAN2007Identifier("GB29NWBK60161331926819")},
		{name: "IBAN digits", value: IBAN2007Identifier("1234"), want: errors.ErrPatternMismatch},
		{name: "BIC", value: AnyBICDec2014Identifier("NWBKGB2L")},
		{name: "currency", value: ActiveOrHistoricCurrencyCode("EUR")},
		{name: "currency lower case", value: ActiveOrHistoricCurrencyCode("eur"), want: errors.ErrPatternMismatch},
		{name: "external code", value: ExternalPurpose1Code("CASH")},
		{name: "external code too long", value: ExternalPurpose1Code("CASHX"), want: errors.ErrTooLong},
		{name: "local instrument", value: ExternalLocalInstrument1Code("INST")},
		{name: "closed code", value: CreditDebitCodeCRDT},
		{name: "closed code unknown", value: CreditDebitCode("CRDX"), want: errors.ErrInvalidCode},
		{name: "date is unchecked", value: ISODate("not a date")},
		{name: "date time is unchecked", value: ISODateTime("")},
		{name: "indicator", value: YesNoIndicator(false)},
		{name: "decimal", value: DecimalNumber{decimal.RequireFromString("-12.5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if tt.want == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, codeOf(t, err))
		})
	}
}

func TestLeafErrorNamesDeclaredType(t *testing.T) {
	t.Parallel()

	err := Max70Text(strings.Repeat("x", 71)).Validate()
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, "Max70Text", list[0].Type)
	assert.Equal(t, "Max70Text exceeds the maximum length of 70", list[0].Message)
	assert.Empty(t, list[0].Path)
}

func TestAmounts(t *testing.T) {
	t.Parallel()

	zero, err := NewActiveOrHistoricCurrencyAndAmount("0.0", "EUR")
	require.NoError(t, err)
	assert.NoError(t, zero.Validate())

	negative, err := NewActiveOrHistoricCurrencyAndAmount("-0.01", "EUR")
	require.NoError(t, err)
	assert.Equal(t, errors.ErrBelowMinimum, codeOf(t, negative.Validate()))

	badCcy, err := NewActiveOrHistoricCurrencyAndAmount("10", "euro")
	require.NoError(t, err)
	err = badCcy.Validate()
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, err))
	list, _ := errors.AsValidations(err)
	assert.Equal(t, "/@Ccy", list[0].Path)

	_, err = NewActiveOrHistoricCurrencyAndAmount("ten", "EUR")
	assert.Error(t, err)

	active := ActiveCurrencyAndAmount{Value: decimal.RequireFromString("-1"), Ccy: "USD"}
	assert.Equal(t, errors.ErrBelowMinimum, codeOf(t, active.Validate()))
}

type amountHolder struct {
	XMLName xml.Name                          `xml:"Doc"`
	Amt     ActiveOrHistoricCurrencyAndAmount `xml:"Amt"`
}

func TestAmountXMLShape(t *testing.T) {
	t.Parallel()

	in := amountHolder{Amt: ActiveOrHistoricCurrencyAndAmount{Value: decimal.RequireFromString("12.5"), Ccy: "EUR"}}
	out, err := xml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `<Doc><Amt Ccy="EUR">12.5</Amt></Doc>`, string(out))

	var back amountHolder
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.True(t, in.Amt.Value.Equal(back.Amt.Value))
	assert.Equal(t, in.Amt.Ccy, back.Amt.Ccy)
}

func TestAmountJSONShape(t *testing.T) {
	t.Parallel()

	var amt ActiveOrHistoricCurrencyAndAmount
	require.NoError(t, json.Unmarshal([]byte(`{"$value":"1000.25","@Ccy":"GBP"}`), &amt))
	assert.Equal(t, "1000.25", amt.Value.String())
	assert.Equal(t, ActiveOrHistoricCurrencyCode("GBP"), amt.Ccy)

	require.NoError(t, json.Unmarshal([]byte(`{"$value":1000.25,"@Ccy":"GBP"}`), &amt))
	assert.Equal(t, "1000.25", amt.Value.String())
}

func TestAmountJSONValueIsANumber(t *testing.T) {
	t.Parallel()

	amt, err := NewActiveOrHistoricCurrencyAndAmount("1500", "EUR")
	require.NoError(t, err)

	out, err := json.Marshal(amt)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$value":1500,"@Ccy":"EUR"}`, string(out))

	std, err := stdjson.Marshal(ActiveCurrencyAndAmount{Value: decimal.RequireFromString("0.50"), Ccy: "USD"})
	require.NoError(t, err)
	assert.Equal(t, `{"$value":0.50,"@Ccy":"USD"}`, string(std))

	var plain struct {
		Value float64 `json:"$value"`
		Ccy   string  `json:"@Ccy"`
	}
	require.NoError(t, stdjson.Unmarshal(out, &plain))
	assert.Equal(t, 1500.0, plain.Value)
	assert.Equal(t, "EUR", plain.Ccy)
}

type decimalHolder struct {
	XMLName   xml.Name                          `xml:"Doc" json:"-"`
	Amt       ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CntPerPrd DecimalNumber                     `xml:"CntPerPrd" json:"CntPerPrd"`
	Rate      *PercentageRate                   `xml:"Rate,omitempty" json:"Rate,omitempty"`
}

func TestDecimalContentKeepsScaleAndCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	in := "<Doc>\n" +
		"  <Amt Ccy=\"EUR\">\n    10.00\n  </Amt>\n" +
		"  <CntPerPrd>\n    2.50\n  </CntPerPrd>\n" +
		"  <Rate> 0.7 </Rate>\n" +
		"</Doc>"

	var doc decimalHolder
	require.NoError(t, xml.Unmarshal([]byte(in), &doc))
	assert.True(t, doc.Amt.Value.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, ActiveOrHistoricCurrencyCode("EUR"), doc.Amt.Ccy)
	assert.True(t, doc.CntPerPrd.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, doc.Rate)
	assert.NoError(t, doc.Amt.Validate())
	assert.NoError(t, doc.CntPerPrd.Validate())

	out, err := xml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `<Doc><Amt Ccy="EUR">10.00</Amt><CntPerPrd>2.50</CntPerPrd><Rate>0.7</Rate></Doc>`, string(out))

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"Amt":{"$value":10.00,"@Ccy":"EUR"},"CntPerPrd":2.50,"Rate":0.7}`, string(data))

	var back decimalHolder
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.CntPerPrd.Equal(doc.CntPerPrd.Decimal))
	require.NoError(t, json.Unmarshal([]byte(`{"CntPerPrd":"3"}`), &back))
	assert.Equal(t, "3", back.CntPerPrd.String())
}

func TestDecimalContentRejectsText(t *testing.T) {
	t.Parallel()

	var doc decimalHolder
	err := xml.Unmarshal([]byte(`<Doc><Amt Ccy="EUR">ten</Amt></Doc>`), &doc)
	assert.ErrorContains(t, err, `decode decimal "ten"`)

	err = xml.Unmarshal([]byte(`<Doc><CntPerPrd>1,5</CntPerPrd></Doc>`), &doc)
	assert.ErrorContains(t, err, `decode decimal "1,5"`)
}

type codeHolder struct {
	XMLName xml.Name         `xml:"Doc"`
	Ind     *CreditDebitCode `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
}

func TestCodesRejectUnknownValuesOnDecode(t *testing.T) {
	t.Parallel()

	var ok codeHolder
	require.NoError(t, xml.Unmarshal([]byte(`<Doc><CdtDbtInd>DBIT</CdtDbtInd></Doc>`), &ok))
	require.NotNil(t, ok.Ind)
	assert.Equal(t, CreditDebitCodeDBIT, *ok.Ind)

	var bad codeHolder
	err := xml.Unmarshal([]byte(`<Doc><CdtDbtInd>DEBIT</CdtDbtInd></Doc>`), &bad)
	assert.ErrorContains(t, err, "CreditDebitCode is not one of the defined codes")

	var fromJSON codeHolder
	require.NoError(t, json.Unmarshal([]byte(`{"CdtDbtInd":"CRDT"}`), &fromJSON))
	assert.Equal(t, CreditDebitCodeCRDT, *fromJSON.Ind)

	err = json.Unmarshal([]byte(`{"CdtDbtInd":"crdt"}`), &fromJSON)
	assert.ErrorContains(t, err, "CreditDebitCode is not one of the defined codes")
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	t.Parallel()

	out, err := xml.Marshal(codeHolder{})
	require.NoError(t, err)
	assert.Equal(t, `<Doc></Doc>`, string(out))

	out, err = json.Marshal(PostalAddress1{Ctry: "DE"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ctry":"DE"}`, string(out))
}

func TestPostalAddressPaths(t *testing.T) {
	t.Parallel()

	town := Max35Text(strings.Repeat("t", 36))
	addr := PostalAddress1{
		AdrLine: []Max70Text{"line one", "", "line three"},
		TwnNm:   &town,
		Ctry:    "GB",
	}
	err := addr.Validate()
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrTooShort, list[0].Code)
	assert.Equal(t, "/AdrLine[1]", list[0].Path)

	addr.AdrLine = nil
	err = NameAndAddress5{Nm: "Acme", Adr: &addr}.Validate()
	list, ok = errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrTooLong, list[0].Code)
	assert.Equal(t, "/Adr/TwnNm", list[0].Path)
}

func TestAbsentOptionalFieldsNeverFail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, GenericIdentification1{ID: "ID-1"}.Validate())
	assert.NoError(t, PostalAddress1{Ctry: "FR"}.Validate())
}

func TestSupplementaryDataEnvelopeIsOpaque(t *testing.T) {
	t.Parallel()

	data := SupplementaryData1{Envlp: SupplementaryDataEnvelope1{Content: `<Any xmlns="urn:x">anything</Any>`}}
	assert.NoError(t, data.Validate())

	type holder struct {
		XMLName     xml.Name           `xml:"Doc"`
		SplmtryData SupplementaryData1 `xml:"SplmtryData"`
	}
	out, err := xml.Marshal(holder{SplmtryData: data})
	require.NoError(t, err)
	assert.Equal(t, `<Doc><SplmtryData><Envlp><Any xmlns="urn:x">anything</Any></Envlp></SplmtryData></Doc>`, string(out))

	var back holder
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.Equal(t, data.Envlp.Content, back.SplmtryData.Envlp.Content)
}

func TestValidationIsRepeatable(t *testing.T) {
	t.Parallel()

	good := NameAndAddress5{Nm: "Acme", Adr: &PostalAddress1{Ctry: "NL"}}
	bad := NameAndAddress5{Nm: "Acme", Adr: &PostalAddress1{Ctry: "NLD"}}
	for range 3 {
		assert.NoError(t, good.Validate())
		assert.Error(t, bad.Validate())
	}
}

func TestUETR(t *testing.T) {
	t.Parallel()

	uetr := NewUETR()
	assert.NoError(t, uetr.Validate())
	assert.NotEqual(t, uetr, NewUETR())

	parsed, err := ParseUETR("EB6305C9-1F7F-49DE-AED0-16487C27B42D")
	require.NoError(t, err)
	assert.Equal(t, UUIDv4Identifier("eb6305c9-1f7f-49de-aed0-16487c27b42d"), parsed)

	_, err = ParseUETR("eb6305c9-1f7f-19de-aed0-16487c27b42d")
	assert.Equal(t, errors.ErrPatternMismatch, codeOf(t, err))

	_, err = ParseUETR("not-a-uuid")
	assert.ErrorContains(t, err, "parse uetr")
}
