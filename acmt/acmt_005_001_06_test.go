package acmt

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/errors"
)

const sample = `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06">
  <ReqForAcctMgmtStsRpt>
    <MsgId>
      <Id>REQ-0001</Id>
      <CreDtTm>2026-03-02T10:15:00</CreDtTm>
    </MsgId>
    <ReqDtls>
      <LkdRef>
        <PrvsRef>
          <Ref>ACMT001-778</Ref>
          <RefIssr>
            <AnyBIC>NWBKGB2L</AnyBIC>
          </RefIssr>
        </PrvsRef>
      </LkdRef>
      <StsReqTp>ACCO</StsReqTp>
      <InvstmtAcct>
        <AcctId>ACC-55</AcctId>
        <OwnrId>
          <IndvOwnrId>
            <PrsnNm>
              <GvnNm>Ada</GvnNm>
              <Nm>Lovelace</Nm>
              <Gndr>FEMA</Gndr>
              <BirthDt>1815-12-10</BirthDt>
            </PrsnNm>
          </IndvOwnrId>
        </OwnrId>
        <AcctSvcr>
          <NmAndAdr>
            <Nm>Example Custody</Nm>
            <Adr>
              <AdrTp>BIZZ</AdrTp>
              <AdrLine>1 Example Square</AdrLine>
              <Ctry>GB</Ctry>
            </Adr>
          </NmAndAdr>
        </AcctSvcr>
      </InvstmtAcct>
    </ReqDtls>
  </ReqForAcctMgmtStsRpt>
</Document>`

func decode(t *testing.T) Document {
	t.Helper()
	var doc Document
	require.NoError(t, xml.Unmarshal([]byte(sample), &doc))
	return doc
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	doc := decode(t)
	dtls := doc.ReqForAcctMgmtStsRpt.ReqDtls
	assert.Equal(t, iso20022.AccountManagementType3CodeACCO, dtls.StsReqTp)
	require.NotNil(t, dtls.InvstmtAcct)
	require.NotNil(t, dtls.InvstmtAcct.OwnrID)
	assert.Equal(t, iso20022.GenderCodeFEMA, *dtls.InvstmtAcct.OwnrID.IndvOwnrID.PrsnNm.Gndr)

	assert.NoError(t, doc.Validate())
	assert.NoError(t, iso20022.CheckComplete(doc, iso20022.ExclusiveChoices()))
}

func TestUnknownStatusRequestTypeIsRejected(t *testing.T) {
	t.Parallel()

	var doc Document
	err := xml.Unmarshal([]byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06"><ReqForAcctMgmtStsRpt><ReqDtls><StsReqTp>XXXX</StsReqTp></ReqDtls></ReqForAcctMgmtStsRpt></Document>`), &doc)
	assert.ErrorContains(t, err, "AccountManagementType3Code is not one of the defined codes")
}

func TestSharedComponentFailurePath(t *testing.T) {
	t.Parallel()

	doc := decode(t)
	adr := doc.ReqForAcctMgmtStsRpt.ReqDtls.InvstmtAcct.AcctSvcr.NmAndAdr.Adr
	adr.Ctry = "UK1"

	list, ok := errors.AsValidations(doc.Validate())
	require.True(t, ok)
	assert.Equal(t, errors.ErrPatternMismatch, list[0].Code)
	assert.Equal(t, "CountryCode", list[0].Type)
	assert.Equal(t, "/ReqForAcctMgmtStsRpt/ReqDtls/InvstmtAcct/AcctSvcr/NmAndAdr/Adr/Ctry", list[0].Path)
}

func TestProprietaryIdentificationScheme(t *testing.T) {
	t.Parallel()

	id := GenericIdentification47{ID: "AB12", Issr: "ISSR"}
	assert.NoError(t, id.Validate())

	id.ID = "AB1"
	list, ok := errors.AsValidations(id.Validate())
	require.True(t, ok)
	assert.Equal(t, errors.ErrPatternMismatch, list[0].Code)
	assert.Equal(t, "/Id", list[0].Path)
}
