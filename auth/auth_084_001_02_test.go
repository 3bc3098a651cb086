package auth

import (
	"encoding/xml"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/errors"
)

func ptr[T any](v T) *T { return &v }

func lei(v string) OrganisationIdentification15Choice {
	return OrganisationIdentification15Choice{LEI: ptr(iso20022.LEIIdentifier(v))}
}

func rejected() TradeData29 {
	return TradeData29{
		RptSttstcs: []DetailedReportStatistics5{{
			TtlNbOfRpts:       "12",
			TtlNbOfRptsAccptd: "11",
			TtlNbOfRptsRjctd:  "1",
			NbOfRptsRjctdPerErr: []NumberOfTransactionsPerValidationRule5{{
				DtldNb: "1",
				RptSts: []RejectionReason45{{
					MsgRptID: "RPT-2026-03-02-001",
					Sts:      iso20022.ReportingMessageStatus1CodeRJCT,
					DtldVldtnRule: &GenericValidationRuleIdentification1{
						ID:   "SFT-041",
						Desc: ptr(iso20022.Max350Text("Reporting counterparty is not a valid LEI")),
					},
				}},
			}},
		}},
		TxSttstcs: []DetailedTransactionStatistics2Choice{{
			DtldSttstcs: &DetailedTransactionStatistics13{
				TtlNbOfTxs:       "3",
				TtlNbOfTxsAccptd: "2",
				TtlNbOfTxsRjctd:  "1",
				TxsRjctnsRsn: []RejectionReason53{{
					TxID: TransactionIdentification3Choice{
						Tx: &TradeTransactionIdentification20{
							RptgCtrPty: lei("529900T8BM49AURSDO55"),
							OthrCtrPty: PartyIdentification236Choice{
								Ntrl: &NaturalPersonIdentification2{ID: GenericIdentification175{ID: "PERSON-42"}},
							},
							UnqTradIdr: ptr(iso20022.Max52Text("UTI-0001")),
						},
					},
					Sts: iso20022.ReportingMessageStatus1CodeRJCT,
				}},
			},
		}},
	}
}

func advice() Document {
	return Document{SctiesFincgRptgTxStsAdvc: SecuritiesFinancingReportingTransactionStatusAdviceV02{
		TxRptStsAndRsn: []TradeData35Choice{{Rpt: []TradeData29{rejected()}}},
	}}
}

func TestAdviceValidates(t *testing.T) {
	t.Parallel()

	doc := advice()
	assert.NoError(t, doc.Validate())
	assert.NoError(t, iso20022.CheckComplete(doc, iso20022.ExclusiveChoices()))
}

func TestNoActivityAdvice(t *testing.T) {
	t.Parallel()

	doc := Document{SctiesFincgRptgTxStsAdvc: SecuritiesFinancingReportingTransactionStatusAdviceV02{
		TxRptStsAndRsn: []TradeData35Choice{{DataSetActn: ptr(iso20022.ReportPeriodActivity1CodeNOTX)}},
	}}
	assert.NoError(t, doc.Validate())
	assert.NoError(t, iso20022.CheckComplete(doc))
}

func TestCountMustBeNumeric(t *testing.T) {
	t.Parallel()

	doc := advice()
	doc.SctiesFincgRptgTxStsAdvc.TxRptStsAndRsn[0].Rpt[0].RptSttstcs[0].TtlNbOfRptsRjctd = "one"

	list, ok := errors.AsValidations(doc.Validate())
	require.True(t, ok)
	assert.Equal(t, errors.ErrPatternMismatch, list[0].Code)
	assert.Equal(t, "Max15NumericText", list[0].Type)
	assert.Equal(t, "/SctiesFincgRptgTxStsAdvc/TxRptStsAndRsn[0]/Rpt[0]/RptSttstcs[0]/TtlNbOfRptsRjctd", list[0].Path)
}

func TestDeepCounterpartyPath(t *testing.T) {
	t.Parallel()

	doc := advice()
	tx := doc.SctiesFincgRptgTxStsAdvc.TxRptStsAndRsn[0].Rpt[0].TxSttstcs[0].DtldSttstcs.TxsRjctnsRsn[0].TxID.Tx
	tx.RptgCtrPty = lei("529900T8BM49AURSDO5X")

	list, ok := errors.AsValidations(doc.Validate())
	require.True(t, ok)
	assert.Equal(t, errors.ErrPatternMismatch, list[0].Code)
	assert.Equal(t,
		"/SctiesFincgRptgTxStsAdvc/TxRptStsAndRsn[0]/Rpt[0]/TxSttstcs[0]/DtldSttstcs/TxsRjctnsRsn[0]/TxId/Tx/RptgCtrPty/LEI",
		list[0].Path)
}

func TestEmptyStatusListIsIncomplete(t *testing.T) {
	t.Parallel()

	list, ok := errors.AsValidations(iso20022.CheckComplete(Document{SctiesFincgRptgTxStsAdvc: SecuritiesFinancingReportingTransactionStatusAdviceV02{
		SplmtryData: []iso20022.SupplementaryData1{{Envlp: iso20022.SupplementaryDataEnvelope1{Content: "<X/>"}}},
	}}))
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "/SctiesFincgRptgTxStsAdvc/TxRptStsAndRsn", list[0].Path)
	assert.Equal(t, "TradeData35Choice", list[0].Type)
}

func TestWireShapes(t *testing.T) {
	t.Parallel()

	doc := advice()

	out, err := xml.Marshal(doc)
	require.NoError(t, err)
	var fromXML Document
	require.NoError(t, xml.Unmarshal(out, &fromXML))
	assert.Equal(t, doc.SctiesFincgRptgTxStsAdvc, fromXML.SctiesFincgRptgTxStsAdvc)

	out, err = json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Sts":"RJCT"`)
	var fromJSON Document
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	assert.Equal(t, doc.SctiesFincgRptgTxStsAdvc, fromJSON.SctiesFincgRptgTxStsAdvc)
}
