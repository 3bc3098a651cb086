package auth

import (
	"encoding/xml"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/internal/traversal"
)

const (
	// MessageID identifies the
	// SecuritiesFinancingReportingTransactionStatusAdviceV02 message
	// definition.
	MessageID = "auth.084.001.02"
	// Namespace is the XML namespace of the Document element.
	Namespace = "urn:iso:std:iso:20022:tech:xsd:" + MessageID
)

// Document is the XML root of a
// SecuritiesFinancingReportingTransactionStatusAdviceV02 message.
type Document struct {
	XMLName                  xml.Name                                               `xml:"urn:iso:std:iso:20022:tech:xsd:auth.084.001.02 Document" json:"-"`
	SctiesFincgRptgTxStsAdvc SecuritiesFinancingReportingTransactionStatusAdviceV02 `xml:"SctiesFincgRptgTxStsAdvc" json:"SctiesFincgRptgTxStsAdvc" validate:"required"`
}

func (d Document) Validate() error {
	return traversal.Walk(
		traversal.Field("SctiesFincgRptgTxStsAdvc", d.SctiesFincgRptgTxStsAdvc),
	)
}

// SecuritiesFinancingReportingTransactionStatusAdviceV02 is sent by a trade
// repository to report the status of securities financing transaction reports
// it received.
type SecuritiesFinancingReportingTransactionStatusAdviceV02 struct {
	TxRptStsAndRsn []TradeData35Choice           `xml:"TxRptStsAndRsn" json:"TxRptStsAndRsn" validate:"min=1,dive"`
	SplmtryData    []iso20022.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty" validate:"dive"`
}

func (s SecuritiesFinancingReportingTransactionStatusAdviceV02) Validate() error {
	return traversal.Walk(
		traversal.Each("TxRptStsAndRsn", s.TxRptStsAndRsn),
		traversal.Each("SplmtryData", s.SplmtryData),
	)
}

// TradeData35Choice either reports that there was no activity or lists report
// statuses.
type TradeData35Choice struct {
	DataSetActn *iso20022.ReportPeriodActivity1Code `xml:"DataSetActn,omitempty" json:"DataSetActn,omitempty"`
	Rpt         []TradeData29                       `xml:"Rpt,omitempty" json:"Rpt,omitempty" validate:"dive"`
}

func (t TradeData35Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("DataSetActn", t.DataSetActn),
		traversal.Each("Rpt", t.Rpt),
	)
}

type TradeData29 struct {
	RptSttstcs  []DetailedReportStatistics5            `xml:"RptSttstcs" json:"RptSttstcs" validate:"min=1,dive"`
	TxSttstcs   []DetailedTransactionStatistics2Choice `xml:"TxSttstcs" json:"TxSttstcs" validate:"min=1,dive"`
	SplmtryData []iso20022.SupplementaryData1          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty" validate:"dive"`
}

func (t TradeData29) Validate() error {
	return traversal.Walk(
		traversal.Each("RptSttstcs", t.RptSttstcs),
		traversal.Each("TxSttstcs", t.TxSttstcs),
		traversal.Each("SplmtryData", t.SplmtryData),
	)
}

// DetailedReportStatistics5 counts the reports received and how many were
// rejected.
type DetailedReportStatistics5 struct {
	TtlNbOfRpts         iso20022.Max15NumericText                `xml:"TtlNbOfRpts" json:"TtlNbOfRpts" validate:"required"`
	TtlNbOfRptsAccptd   iso20022.Max15NumericText                `xml:"TtlNbOfRptsAccptd" json:"TtlNbOfRptsAccptd" validate:"required"`
	TtlNbOfRptsRjctd    iso20022.Max15NumericText                `xml:"TtlNbOfRptsRjctd" json:"TtlNbOfRptsRjctd" validate:"required"`
	NbOfRptsRjctdPerErr []NumberOfTransactionsPerValidationRule5 `xml:"NbOfRptsRjctdPerErr,omitempty" json:"NbOfRptsRjctdPerErr,omitempty" validate:"dive"`
}

func (d DetailedReportStatistics5) Validate() error {
	return traversal.Walk(
		traversal.Field("TtlNbOfRpts", d.TtlNbOfRpts),
		traversal.Field("TtlNbOfRptsAccptd", d.TtlNbOfRptsAccptd),
		traversal.Field("TtlNbOfRptsRjctd", d.TtlNbOfRptsRjctd),
		traversal.Each("NbOfRptsRjctdPerErr", d.NbOfRptsRjctdPerErr),
	)
}

type NumberOfTransactionsPerValidationRule5 struct {
	DtldNb iso20022.Max15NumericText `xml:"DtldNb" json:"DtldNb" validate:"required"`
	RptSts []RejectionReason45       `xml:"RptSts" json:"RptSts" validate:"min=1,dive"`
}

func (n NumberOfTransactionsPerValidationRule5) Validate() error {
	return traversal.Walk(
		traversal.Field("DtldNb", n.DtldNb),
		traversal.Each("RptSts", n.RptSts),
	)
}

type RejectionReason45 struct {
	MsgRptID      iso20022.Max140Text                   `xml:"MsgRptId" json:"MsgRptId" validate:"required"`
	Sts           iso20022.ReportingMessageStatus1Code  `xml:"Sts" json:"Sts" validate:"required"`
	DtldVldtnRule *GenericValidationRuleIdentification1 `xml:"DtldVldtnRule,omitempty" json:"DtldVldtnRule,omitempty"`
}

func (r RejectionReason45) Validate() error {
	return traversal.Walk(
		traversal.Field("MsgRptId", r.MsgRptID),
		traversal.Field("Sts", r.Sts),
		traversal.Optional("DtldVldtnRule", r.DtldVldtnRule),
	)
}

type DetailedTransactionStatistics2Choice struct {
	DataSetActn *iso20022.ReportPeriodActivity1Code `xml:"DataSetActn,omitempty" json:"DataSetActn,omitempty"`
	DtldSttstcs *DetailedTransactionStatistics13    `xml:"DtldSttstcs,omitempty" json:"DtldSttstcs,omitempty"`
}

func (d DetailedTransactionStatistics2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("DataSetActn", d.DataSetActn),
		traversal.Optional("DtldSttstcs", d.DtldSttstcs),
	)
}

type DetailedTransactionStatistics13 struct {
	TtlNbOfTxs       iso20022.Max15NumericText `xml:"TtlNbOfTxs" json:"TtlNbOfTxs" validate:"required"`
	TtlNbOfTxsAccptd iso20022.Max15NumericText `xml:"TtlNbOfTxsAccptd" json:"TtlNbOfTxsAccptd" validate:"required"`
	TtlNbOfTxsRjctd  iso20022.Max15NumericText `xml:"TtlNbOfTxsRjctd" json:"TtlNbOfTxsRjctd" validate:"required"`
	TxsRjctnsRsn     []RejectionReason53       `xml:"TxsRjctnsRsn,omitempty" json:"TxsRjctnsRsn,omitempty" validate:"dive"`
}

func (d DetailedTransactionStatistics13) Validate() error {
	return traversal.Walk(
		traversal.Field("TtlNbOfTxs", d.TtlNbOfTxs),
		traversal.Field("TtlNbOfTxsAccptd", d.TtlNbOfTxsAccptd),
		traversal.Field("TtlNbOfTxsRjctd", d.TtlNbOfTxsRjctd),
		traversal.Each("TxsRjctnsRsn", d.TxsRjctnsRsn),
	)
}

type RejectionReason53 struct {
	TxID          TransactionIdentification3Choice       `xml:"TxId" json:"TxId" validate:"required"`
	Sts           iso20022.ReportingMessageStatus1Code   `xml:"Sts" json:"Sts" validate:"required"`
	DtldVldtnRule []GenericValidationRuleIdentification1 `xml:"DtldVldtnRule,omitempty" json:"DtldVldtnRule,omitempty" validate:"dive"`
}

func (r RejectionReason53) Validate() error {
	return traversal.Walk(
		traversal.Field("TxId", r.TxID),
		traversal.Field("Sts", r.Sts),
		traversal.Each("DtldVldtnRule", r.DtldVldtnRule),
	)
}

// TransactionIdentification3Choice identifies the transaction a rejection
// applies to.
type TransactionIdentification3Choice struct {
	Tx        *TradeTransactionIdentification20 `xml:"Tx,omitempty" json:"Tx,omitempty"`
	MrgnRptg  *TradeTransactionIdentification16 `xml:"MrgnRptg,omitempty" json:"MrgnRptg,omitempty"`
	CollReuse *TradeTransactionIdentification17 `xml:"CollReuse,omitempty" json:"CollReuse,omitempty"`
}

func (t TransactionIdentification3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tx", t.Tx),
		traversal.Optional("MrgnRptg", t.MrgnRptg),
		traversal.Optional("CollReuse", t.CollReuse),
	)
}

type TradeTransactionIdentification20 struct {
	TechRcrdID        *iso20022.Max140Text                `xml:"TechRcrdId,omitempty" json:"TechRcrdId,omitempty"`
	RptgCtrPty        OrganisationIdentification15Choice  `xml:"RptgCtrPty" json:"RptgCtrPty" validate:"required"`
	OthrCtrPty        PartyIdentification236Choice        `xml:"OthrCtrPty" json:"OthrCtrPty" validate:"required"`
	NttyRspnsblForRpt *OrganisationIdentification15Choice `xml:"NttyRspnsblForRpt,omitempty" json:"NttyRspnsblForRpt,omitempty"`
	UnqTradIdr        *iso20022.Max52Text                 `xml:"UnqTradIdr,omitempty" json:"UnqTradIdr,omitempty"`
	MstrAgrmt         *MasterAgreement7                   `xml:"MstrAgrmt,omitempty" json:"MstrAgrmt,omitempty"`
	AgtLndr           *OrganisationIdentification15Choice `xml:"AgtLndr,omitempty" json:"AgtLndr,omitempty"`
	TrptyAgt          *OrganisationIdentification15Choice `xml:"TrptyAgt,omitempty" json:"TrptyAgt,omitempty"`
}

func (t TradeTransactionIdentification20) Validate() error {
	return traversal.Walk(
		traversal.Optional("TechRcrdId", t.TechRcrdID),
		traversal.Field("RptgCtrPty", t.RptgCtrPty),
		traversal.Field("OthrCtrPty", t.OthrCtrPty),
		traversal.Optional("NttyRspnsblForRpt", t.NttyRspnsblForRpt),
		traversal.Optional("UnqTradIdr", t.UnqTradIdr),
		traversal.Optional("MstrAgrmt", t.MstrAgrmt),
		traversal.Optional("AgtLndr", t.AgtLndr),
		traversal.Optional("TrptyAgt", t.TrptyAgt),
	)
}

type TradeTransactionIdentification16 struct {
	TechRcrdID        *iso20022.Max140Text                `xml:"TechRcrdId,omitempty" json:"TechRcrdId,omitempty"`
	RptgCtrPty        OrganisationIdentification15Choice  `xml:"RptgCtrPty" json:"RptgCtrPty" validate:"required"`
	OthrCtrPty        PartyIdentification236Choice        `xml:"OthrCtrPty" json:"OthrCtrPty" validate:"required"`
	NttyRspnsblForRpt *OrganisationIdentification15Choice `xml:"NttyRspnsblForRpt,omitempty" json:"NttyRspnsblForRpt,omitempty"`
	CollPrtflID       *iso20022.Max52Text                 `xml:"CollPrtflId,omitempty" json:"CollPrtflId,omitempty"`
}

func (t TradeTransactionIdentification16) Validate() error {
	return traversal.Walk(
		traversal.Optional("TechRcrdId", t.TechRcrdID),
		traversal.Field("RptgCtrPty", t.RptgCtrPty),
		traversal.Field("OthrCtrPty", t.OthrCtrPty),
		traversal.Optional("NttyRspnsblForRpt", t.NttyRspnsblForRpt),
		traversal.Optional("CollPrtflId", t.CollPrtflID),
	)
}

type TradeTransactionIdentification17 struct {
	TechRcrdID        *iso20022.Max140Text                `xml:"TechRcrdId,omitempty" json:"TechRcrdId,omitempty"`
	RptgCtrPty        OrganisationIdentification15Choice  `xml:"RptgCtrPty" json:"RptgCtrPty" validate:"required"`
	RptSubmitgNtty    OrganisationIdentification15Choice  `xml:"RptSubmitgNtty" json:"RptSubmitgNtty" validate:"required"`
	NttyRspnsblForRpt *OrganisationIdentification15Choice `xml:"NttyRspnsblForRpt,omitempty" json:"NttyRspnsblForRpt,omitempty"`
}

func (t TradeTransactionIdentification17) Validate() error {
	return traversal.Walk(
		traversal.Optional("TechRcrdId", t.TechRcrdID),
		traversal.Field("RptgCtrPty", t.RptgCtrPty),
		traversal.Field("RptSubmitgNtty", t.RptSubmitgNtty),
		traversal.Optional("NttyRspnsblForRpt", t.NttyRspnsblForRpt),
	)
}

type MasterAgreement7 struct {
	Tp                AgreementType2Choice `xml:"Tp" json:"Tp" validate:"required"`
	Vrsn              *iso20022.Max50Text  `xml:"Vrsn,omitempty" json:"Vrsn,omitempty"`
	OthrMstrAgrmtDtls *iso20022.Max350Text `xml:"OthrMstrAgrmtDtls,omitempty" json:"OthrMstrAgrmtDtls,omitempty"`
}

func (m MasterAgreement7) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", m.Tp),
		traversal.Optional("Vrsn", m.Vrsn),
		traversal.Optional("OthrMstrAgrmtDtls", m.OthrMstrAgrmtDtls),
	)
}

type AgreementType2Choice struct {
	Tp    *iso20022.ExternalAgreementType1Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Prtry *iso20022.Max50Text                  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (a AgreementType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", a.Tp),
		traversal.Optional("Prtry", a.Prtry),
	)
}

// OrganisationIdentification15Choice identifies an organisation by LEI, BIC
// or a proprietary scheme.
type OrganisationIdentification15Choice struct {
	LEI    *iso20022.LEIIdentifier           `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   *OrganisationIdentification38     `xml:"Othr,omitempty" json:"Othr,omitempty"`
	AnyBIC *iso20022.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
}

func (o OrganisationIdentification15Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("LEI", o.LEI),
		traversal.Optional("Othr", o.Othr),
		traversal.Optional("AnyBIC", o.AnyBIC),
	)
}

type OrganisationIdentification38 struct {
	ID   GenericIdentification175 `xml:"Id" json:"Id" validate:"required"`
	Nm   *iso20022.Max105Text     `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Dmcl *iso20022.Max500Text     `xml:"Dmcl,omitempty" json:"Dmcl,omitempty"`
}

func (o OrganisationIdentification38) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", o.ID),
		traversal.Optional("Nm", o.Nm),
		traversal.Optional("Dmcl", o.Dmcl),
	)
}

type PartyIdentification236Choice struct {
	Lgl  *OrganisationIdentification15Choice `xml:"Lgl,omitempty" json:"Lgl,omitempty"`
	Ntrl *NaturalPersonIdentification2       `xml:"Ntrl,omitempty" json:"Ntrl,omitempty"`
}

func (p PartyIdentification236Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Lgl", p.Lgl),
		traversal.Optional("Ntrl", p.Ntrl),
	)
}

type NaturalPersonIdentification2 struct {
	ID   GenericIdentification175 `xml:"Id" json:"Id" validate:"required"`
	Nm   *iso20022.Max105Text     `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Dmcl *iso20022.Max500Text     `xml:"Dmcl,omitempty" json:"Dmcl,omitempty"`
}

func (n NaturalPersonIdentification2) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", n.ID),
		traversal.Optional("Nm", n.Nm),
		traversal.Optional("Dmcl", n.Dmcl),
	)
}

type GenericIdentification175 struct {
	ID      iso20022.Max72Text  `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *iso20022.Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericIdentification175) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

// GenericValidationRuleIdentification1 names the validation rule a report
// failed.
type GenericValidationRuleIdentification1 struct {
	ID      iso20022.Max35Text               `xml:"Id" json:"Id" validate:"required"`
	Desc    *iso20022.Max350Text             `xml:"Desc,omitempty" json:"Desc,omitempty"`
	SchmeNm *ValidationRuleSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text              `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericValidationRuleIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("Desc", g.Desc),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type ValidationRuleSchemeName1Choice struct {
	Cd    *iso20022.ExternalValidationRuleScheme1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (v ValidationRuleSchemeName1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", v.Cd),
		traversal.Optional("Prtry", v.Prtry),
	)
}
