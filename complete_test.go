package iso20022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022/errors"
)

type partyChoice struct {
	AnyBIC   *AnyBICDec2014Identifier `xml:"AnyBIC,omitempty"`
	PrtryID  *GenericIdentification1  `xml:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5         `xml:"NmAndAdr,omitempty"`
}

type party struct {
	Pty   partyChoice              `xml:"Pty" validate:"required"`
	Refs  []GenericIdentification1 `xml:"Ref" validate:"min=1,dive"`
	Other []partyChoice            `xml:"Othr,omitempty" validate:"dive"`
}

func findings(t *testing.T, err error) map[string]errors.Validation {
	t.Helper()
	list, ok := errors.AsValidations(err)
	require.True(t, ok, "expected validation findings, got %v", err)
	byPath := make(map[string]errors.Validation, len(list))
	for _, v := range list {
		byPath[v.Path] = v
	}
	return byPath
}

func TestCheckCompleteAcceptsCompleteValues(t *testing.T) {
	t.Parallel()

	bic := AnyBICDec2014Identifier("NWBKGB2L")
	v := party{
		Pty:  partyChoice{AnyBIC: &bic},
		Refs: []GenericIdentification1{{ID: "1"}},
	}
	assert.NoError(t, CheckComplete(v))
	assert.NoError(t, CheckComplete(&v))
	assert.NoError(t, CheckComplete(v, ExclusiveChoices()))
}

func TestCheckCompleteReportsEveryMissingElement(t *testing.T) {
	t.Parallel()

	v := party{
		Other: []partyChoice{{NmAndAdr: &NameAndAddress5{Adr: &PostalAddress1{}}}},
	}
	got := findings(t, CheckComplete(v))

	require.Contains(t, got, "/Pty")
	assert.Equal(t, errors.ErrRequiredMissing, got["/Pty"].Code)
	assert.Equal(t, "partyChoice", got["/Pty"].Type)

	require.Contains(t, got, "/Ref")
	assert.Equal(t, "Ref requires at least 1 occurrence", got["/Ref"].Message)

	require.Contains(t, got, "/Othr[0]/NmAndAdr/Nm")
	assert.Equal(t, "Max350Text", got["/Othr[0]/NmAndAdr/Nm"].Type)
	assert.Equal(t, "Nm is required", got["/Othr[0]/NmAndAdr/Nm"].Message)

	require.Contains(t, got, "/Othr[0]/NmAndAdr/Adr/Ctry")
	assert.Len(t, got, 4)
}

func TestCheckCompleteAttributePath(t *testing.T) {
	t.Parallel()

	got := findings(t, CheckComplete(ActiveOrHistoricCurrencyAndAmount{}))
	require.Contains(t, got, "/@Ccy")
	assert.Equal(t, "ActiveOrHistoricCurrencyCode", got["/@Ccy"].Type)
}

func TestCheckCompleteRejectsNonStructs(t *testing.T) {
	t.Parallel()

	err := CheckComplete(nil)
	require.Error(t, err)
	_, ok := errors.AsValidations(err)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "check complete")
}

func TestExclusiveChoices(t *testing.T) {
	t.Parallel()

	bic := AnyBICDec2014Identifier("NWBKGB2L")
	v := party{
		Pty:   partyChoice{AnyBIC: &bic, PrtryID: &GenericIdentification1{ID: "X"}},
		Refs:  []GenericIdentification1{{ID: "1"}},
		Other: []partyChoice{{AnyBIC: &bic}, {AnyBIC: &bic, NmAndAdr: &NameAndAddress5{Nm: "N"}}},
	}

	assert.NoError(t, CheckComplete(v), "choices are permissive by default")
	assert.NoError(t, v.Pty.PrtryID.Validate())

	got := findings(t, CheckComplete(v, ExclusiveChoices()))
	require.Len(t, got, 2)

	pty := got["/Pty"]
	assert.Equal(t, errors.ErrChoiceConflict, pty.Code)
	assert.Equal(t, "partyChoice", pty.Type)
	assert.Equal(t, "AnyBIC, PrtryId", pty.Actual)
	assert.Equal(t, []string{"AnyBIC", "PrtryId", "NmAndAdr"}, pty.Expected)

	assert.Equal(t, "AnyBIC, NmAndAdr", got["/Othr[1]"].Actual)
}

func TestNamespacePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/Assgnmt/Id", namespacePath("FIToFIPaymentCancellationRequestV11.Assgnmt.Id"))
	assert.Equal(t, "/Undrlyg[0]/TxInf[2]/Case", namespacePath("Doc.Undrlyg[0].TxInf[2].Case"))
	assert.Empty(t, namespacePath("Doc"))
}
