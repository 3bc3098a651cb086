package camt

import (
	"encoding/xml"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/errors"
)

func loadSample(t *testing.T) Document {
	t.Helper()
	data, err := os.ReadFile("testdata/camt.056.001.11.xml")
	require.NoError(t, err)

	var doc Document
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

func ptr[T any](v T) *T { return &v }

func firstFailure(t *testing.T, err error) errors.Validation {
	t.Helper()
	list, ok := errors.AsValidations(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	require.NotEmpty(t, list)
	return list[0]
}

func TestAccountIdentificationWithOnlyIBAN(t *testing.T) {
	t.Parallel()

	id := AccountIdentification4Choice{IBAN: ptr(iso20022.IBAN2007Identifier("GB29NWBK60161331926819"))}
	assert.NoError(t, id.Validate())

	id.IBAN = ptr(iso20022.IBAN2007Identifier("1234"))
	v := firstFailure(t, id.Validate())
	assert.Equal(t, errors.ErrPatternMismatch, v.Code)
	assert.Equal(t, "/IBAN", v.Path)
}

func TestSampleDocumentValidates(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	req := doc.FIToFIPmtCxlReq

	assert.Equal(t, iso20022.Max35Text("CXL-20260301-0001"), req.Assgnmt.ID)
	require.Len(t, req.Undrlyg, 1)
	require.Len(t, req.Undrlyg[0].TxInf, 1)

	tx := req.Undrlyg[0].TxInf[0]
	require.NotNil(t, tx.OrgnlIntrBkSttlmAmt)
	assert.True(t, decimal.RequireFromString("1500").Equal(tx.OrgnlIntrBkSttlmAmt.Value))
	assert.Equal(t, iso20022.ActiveOrHistoricCurrencyCode("EUR"), tx.OrgnlIntrBkSttlmAmt.Ccy)
	assert.Equal(t, iso20022.Priority2CodeHIGH, *tx.OrgnlTxRef.PmtTpInf.InstrPrty)
	assert.True(t, decimal.RequireFromString("1500").Equal(req.CtrlData.CtrlSum.Decimal))

	assert.NoError(t, doc.Validate())
	assert.NoError(t, iso20022.CheckComplete(doc, iso20022.ExclusiveChoices()))
}

func TestXMLRoundTripPreservesOutcome(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	out, err := xml.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.056.001.11">`))

	var back Document
	require.NoError(t, xml.Unmarshal(out, &back))
	assert.NoError(t, back.Validate())

	back.FIToFIPmtCxlReq.Assgnmt.ID = iso20022.Max35Text(strings.Repeat("x", 36))
	out, err = xml.Marshal(back)
	require.NoError(t, err)

	var again Document
	require.NoError(t, xml.Unmarshal(out, &again))
	assert.Equal(t, errors.ErrTooLong, firstFailure(t, again.Validate()).Code)
}

func TestNestedFailureCarriesPath(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	acct := doc.FIToFIPmtCxlReq.Undrlyg[0].TxInf[0].OrgnlTxRef.CdtrAcct
	acct.ID.IBAN = ptr(iso20022.IBAN2007Identifier("DE89 3704"))

	v := firstFailure(t, doc.Validate())
	assert.Equal(t, errors.ErrPatternMismatch, v.Code)
	assert.Equal(t, "IBAN2007Identifier", v.Type)
	assert.Equal(t, "/FIToFIPmtCxlReq/Undrlyg[0]/TxInf[0]/OrgnlTxRef/CdtrAcct/Id/IBAN", v.Path)
}

func TestSequenceStopsAtFirstInvalidElement(t *testing.T) {
	t.Parallel()

	reason := PaymentCancellationReason6{
		AddtlInf: []iso20022.Max105Text{
			"first",
			iso20022.Max105Text(strings.Repeat("y", 106)),
			"",
		},
	}
	v := firstFailure(t, reason.Validate())
	assert.Equal(t, errors.ErrTooLong, v.Code)
	assert.Equal(t, "/AddtlInf[1]", v.Path)

	reason.AddtlInf = []iso20022.Max105Text{"first", "second"}
	assert.NoError(t, reason.Validate())
}

func TestIndentedDecimalContent(t *testing.T) {
	t.Parallel()

	in := "<Prd>\n  <Tp>DAIL</Tp>\n  <CntPerPrd>\n    2\n  </CntPerPrd>\n</Prd>"
	var prd FrequencyPeriod1
	require.NoError(t, xml.Unmarshal([]byte(in), &prd))
	assert.Equal(t, iso20022.Frequency6CodeDAIL, prd.Tp)
	assert.Equal(t, "2", prd.CntPerPrd.String())
	assert.NoError(t, prd.Validate())

	data, err := os.ReadFile("testdata/camt.056.001.11.xml")
	require.NoError(t, err)
	indented := strings.Replace(string(data), ">1500.00<", ">\n          1500.00\n        <", 1)
	var doc Document
	require.NoError(t, xml.Unmarshal([]byte(indented), &doc))
	amt := doc.FIToFIPmtCxlReq.Undrlyg[0].TxInf[0].OrgnlIntrBkSttlmAmt
	require.NotNil(t, amt)
	assert.Equal(t, "1500.00", amt.Value.StringFixed(2))
	assert.NoError(t, doc.Validate())
}

func TestAmountBelowMinimum(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	doc.FIToFIPmtCxlReq.Undrlyg[0].TxInf[0].OrgnlIntrBkSttlmAmt.Value = decimal.RequireFromString("-0.01")

	v := firstFailure(t, doc.Validate())
	assert.Equal(t, errors.ErrBelowMinimum, v.Code)
	assert.Equal(t, "/FIToFIPmtCxlReq/Undrlyg[0]/TxInf[0]/OrgnlIntrBkSttlmAmt", v.Path)
}

func TestCheckCompleteOnEmptyDocument(t *testing.T) {
	t.Parallel()

	err := iso20022.CheckComplete(Document{})
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, errors.ErrRequiredMissing, list[0].Code)
	assert.Equal(t, "/FIToFIPmtCxlReq", list[0].Path)
}

func TestCheckCompleteFindsNestedGaps(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	req := &doc.FIToFIPmtCxlReq
	req.Assgnmt.CreDtTm = ""
	req.Undrlyg[0].TxInf[0].OrgnlGrpInf.OrgnlMsgNmID = ""

	list, ok := errors.AsValidations(iso20022.CheckComplete(doc))
	require.True(t, ok)

	var paths []string
	for _, v := range list {
		paths = append(paths, v.Path)
	}
	assert.ElementsMatch(t, []string{
		"/FIToFIPmtCxlReq/Assgnmt/CreDtTm",
		"/FIToFIPmtCxlReq/Undrlyg[0]/TxInf[0]/OrgnlGrpInf/OrgnlMsgNmId",
	}, paths)
}

func TestChoiceWithTwoAlternatives(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	assgnr := &doc.FIToFIPmtCxlReq.Assgnmt.Assgnr
	assgnr.Pty = &PartyIdentification272{Nm: ptr(iso20022.Max140Text("Acme"))}

	assert.NoError(t, doc.Validate())

	list, ok := errors.AsValidations(iso20022.CheckComplete(doc, iso20022.ExclusiveChoices()))
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, errors.ErrChoiceConflict, list[0].Code)
	assert.Equal(t, "Party50Choice", list[0].Type)
	assert.Equal(t, "/FIToFIPmtCxlReq/Assgnmt/Assgnr", list[0].Path)
}

func TestJSONShape(t *testing.T) {
	t.Parallel()

	doc := loadSample(t)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "XMLName")
	assert.NotContains(t, string(out), "null")
	assert.Contains(t, string(out), `"OrgnlIntrBkSttlmAmt":{"$value":1500.00,"@Ccy":"EUR"}`)

	var back Document
	require.NoError(t, json.Unmarshal(out, &back))
	assert.NoError(t, back.Validate())
	assert.Equal(t, doc.FIToFIPmtCxlReq.Assgnmt.ID, back.FIToFIPmtCxlReq.Assgnmt.ID)

	err = json.Unmarshal([]byte(`{"FIToFIPmtCxlReq":{"Undrlyg":[{"TxInf":[{"OrgnlTxRef":{"PmtMtd":"CASH"}}]}]}}`), &back)
	assert.ErrorContains(t, err, "PaymentMethod4Code is not one of the defined codes")
}
