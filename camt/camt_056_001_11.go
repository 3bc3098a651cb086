package camt

import (
	"encoding/xml"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/internal/traversal"
)

const (
	// MessageID identifies the FIToFIPaymentCancellationRequestV11 message
	// definition.
	MessageID = "camt.056.001.11"
	// Namespace is the XML namespace of the Document element.
	Namespace = "urn:iso:std:iso:20022:tech:xsd:" + MessageID
)

// Document is the XML root of a FIToFIPaymentCancellationRequestV11 message.
type Document struct {
	XMLName         xml.Name                            `xml:"urn:iso:std:iso:20022:tech:xsd:camt.056.001.11 Document" json:"-"`
	FIToFIPmtCxlReq FIToFIPaymentCancellationRequestV11 `xml:"FIToFIPmtCxlReq" json:"FIToFIPmtCxlReq" validate:"required"`
}

func (d Document) Validate() error {
	return traversal.Walk(
		traversal.Field("FIToFIPmtCxlReq", d.FIToFIPmtCxlReq),
	)
}

// FIToFIPaymentCancellationRequestV11 is sent by a case creator to request
// the cancellation of one or more previously sent payment instructions.
type FIToFIPaymentCancellationRequestV11 struct {
	Assgnmt     CaseAssignment6               `xml:"Assgnmt" json:"Assgnmt" validate:"required"`
	Case        *Case6                        `xml:"Case,omitempty" json:"Case,omitempty"`
	CtrlData    *ControlData1                 `xml:"CtrlData,omitempty" json:"CtrlData,omitempty"`
	Undrlyg     []UnderlyingTransaction34     `xml:"Undrlyg" json:"Undrlyg" validate:"min=1,dive"`
	SplmtryData []iso20022.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty" validate:"dive"`
}

func (f FIToFIPaymentCancellationRequestV11) Validate() error {
	return traversal.Walk(
		traversal.Field("Assgnmt", f.Assgnmt),
		traversal.Optional("Case", f.Case),
		traversal.Optional("CtrlData", f.CtrlData),
		traversal.Each("Undrlyg", f.Undrlyg),
		traversal.Each("SplmtryData", f.SplmtryData),
	)
}

// CaseAssignment6 identifies the assignment of a case from an assigner to an
// assignee.
type CaseAssignment6 struct {
	ID      iso20022.Max35Text   `xml:"Id" json:"Id" validate:"required"`
	Assgnr  Party50Choice        `xml:"Assgnr" json:"Assgnr" validate:"required"`
	Assgne  Party50Choice        `xml:"Assgne" json:"Assgne" validate:"required"`
	CreDtTm iso20022.ISODateTime `xml:"CreDtTm" json:"CreDtTm" validate:"required"`
}

func (c CaseAssignment6) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", c.ID),
		traversal.Field("Assgnr", c.Assgnr),
		traversal.Field("Assgne", c.Assgne),
		traversal.Field("CreDtTm", c.CreDtTm),
	)
}

type Case6 struct {
	ID             iso20022.Max35Text       `xml:"Id" json:"Id" validate:"required"`
	Cretr          Party50Choice            `xml:"Cretr" json:"Cretr" validate:"required"`
	ReopCaseIndctn *iso20022.YesNoIndicator `xml:"ReopCaseIndctn,omitempty" json:"ReopCaseIndctn,omitempty"`
}

func (c Case6) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", c.ID),
		traversal.Field("Cretr", c.Cretr),
		traversal.Optional("ReopCaseIndctn", c.ReopCaseIndctn),
	)
}

type ControlData1 struct {
	NbOfTxs iso20022.Max15NumericText `xml:"NbOfTxs" json:"NbOfTxs" validate:"required"`
	CtrlSum *iso20022.DecimalNumber   `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
}

func (c ControlData1) Validate() error {
	return traversal.Walk(
		traversal.Field("NbOfTxs", c.NbOfTxs),
		traversal.Optional("CtrlSum", c.CtrlSum),
	)
}

// UnderlyingTransaction34 groups the cancellation of a whole original message
// and of individual transactions.
type UnderlyingTransaction34 struct {
	OrgnlGrpInfAndCxl *OriginalGroupHeader21  `xml:"OrgnlGrpInfAndCxl,omitempty" json:"OrgnlGrpInfAndCxl,omitempty"`
	TxInf             []PaymentTransaction155 `xml:"TxInf,omitempty" json:"TxInf,omitempty" validate:"dive"`
}

func (u UnderlyingTransaction34) Validate() error {
	return traversal.Walk(
		traversal.Optional("OrgnlGrpInfAndCxl", u.OrgnlGrpInfAndCxl),
		traversal.Each("TxInf", u.TxInf),
	)
}

type OriginalGroupHeader21 struct {
	GrpCxlID     *iso20022.Max35Text                  `xml:"GrpCxlId,omitempty" json:"GrpCxlId,omitempty"`
	Case         *Case6                               `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlMsgID   iso20022.Max35Text                   `xml:"OrgnlMsgId" json:"OrgnlMsgId" validate:"required"`
	OrgnlMsgNmID iso20022.Max35Text                   `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId" validate:"required"`
	OrgnlCreDtTm *iso20022.ISODateTime                `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	NbOfTxs      *iso20022.Max15NumericText           `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum      *iso20022.DecimalNumber              `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	GrpCxl       *iso20022.GroupCancellationIndicator `xml:"GrpCxl,omitempty" json:"GrpCxl,omitempty"`
	CxlRsnInf    []PaymentCancellationReason6         `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty" validate:"dive"`
}

func (o OriginalGroupHeader21) Validate() error {
	return traversal.Walk(
		traversal.Optional("GrpCxlId", o.GrpCxlID),
		traversal.Optional("Case", o.Case),
		traversal.Field("OrgnlMsgId", o.OrgnlMsgID),
		traversal.Field("OrgnlMsgNmId", o.OrgnlMsgNmID),
		traversal.Optional("OrgnlCreDtTm", o.OrgnlCreDtTm),
		traversal.Optional("NbOfTxs", o.NbOfTxs),
		traversal.Optional("CtrlSum", o.CtrlSum),
		traversal.Optional("GrpCxl", o.GrpCxl),
		traversal.Each("CxlRsnInf", o.CxlRsnInf),
	)
}

type OriginalGroupInformation29 struct {
	OrgnlMsgID   iso20022.Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId" validate:"required"`
	OrgnlMsgNmID iso20022.Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId" validate:"required"`
	OrgnlCreDtTm *iso20022.ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (o OriginalGroupInformation29) Validate() error {
	return traversal.Walk(
		traversal.Field("OrgnlMsgId", o.OrgnlMsgID),
		traversal.Field("OrgnlMsgNmId", o.OrgnlMsgNmID),
		traversal.Optional("OrgnlCreDtTm", o.OrgnlCreDtTm),
	)
}

// PaymentTransaction155 identifies an original transaction to cancel and why.
type PaymentTransaction155 struct {
	CxlID               *iso20022.Max35Text                           `xml:"CxlId,omitempty" json:"CxlId,omitempty"`
	Case                *Case6                                        `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlGrpInf         *OriginalGroupInformation29                   `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrID        *iso20022.Max35Text                           `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndID     *iso20022.Max35Text                           `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxID           *iso20022.Max35Text                           `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR           *iso20022.UUIDv4Identifier                    `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlClrSysRef      *iso20022.Max35Text                           `xml:"OrgnlClrSysRef,omitempty" json:"OrgnlClrSysRef,omitempty"`
	OrgnlIntrBkSttlmAmt *iso20022.ActiveOrHistoricCurrencyAndAmount   `xml:"OrgnlIntrBkSttlmAmt,omitempty" json:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *iso20022.ISODate                             `xml:"OrgnlIntrBkSttlmDt,omitempty" json:"OrgnlIntrBkSttlmDt,omitempty"`
	Assgnr              *BranchAndFinancialInstitutionIdentification8 `xml:"Assgnr,omitempty" json:"Assgnr,omitempty"`
	Assgne              *BranchAndFinancialInstitutionIdentification8 `xml:"Assgne,omitempty" json:"Assgne,omitempty"`
	CxlRsnInf           []PaymentCancellationReason6                  `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty" validate:"dive"`
	OrgnlTxRef          *OriginalTransactionReference42               `xml:"OrgnlTxRef,omitempty" json:"OrgnlTxRef,omitempty"`
	SplmtryData         []iso20022.SupplementaryData1                 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty" validate:"dive"`
}

func (p PaymentTransaction155) Validate() error {
	return traversal.Walk(
		traversal.Optional("CxlId", p.CxlID),
		traversal.Optional("Case", p.Case),
		traversal.Optional("OrgnlGrpInf", p.OrgnlGrpInf),
		traversal.Optional("OrgnlInstrId", p.OrgnlInstrID),
		traversal.Optional("OrgnlEndToEndId", p.OrgnlEndToEndID),
		traversal.Optional("OrgnlTxId", p.OrgnlTxID),
		traversal.Optional("OrgnlUETR", p.OrgnlUETR),
		traversal.Optional("OrgnlClrSysRef", p.OrgnlClrSysRef),
		traversal.Optional("OrgnlIntrBkSttlmAmt", p.OrgnlIntrBkSttlmAmt),
		traversal.Optional("OrgnlIntrBkSttlmDt", p.OrgnlIntrBkSttlmDt),
		traversal.Optional("Assgnr", p.Assgnr),
		traversal.Optional("Assgne", p.Assgne),
		traversal.Each("CxlRsnInf", p.CxlRsnInf),
		traversal.Optional("OrgnlTxRef", p.OrgnlTxRef),
		traversal.Each("SplmtryData", p.SplmtryData),
	)
}

type PaymentCancellationReason6 struct {
	Orgtr    *PartyIdentification272     `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *CancellationReason33Choice `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []iso20022.Max105Text       `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (p PaymentCancellationReason6) Validate() error {
	return traversal.Walk(
		traversal.Optional("Orgtr", p.Orgtr),
		traversal.Optional("Rsn", p.Rsn),
		traversal.Each("AddtlInf", p.AddtlInf),
	)
}

type CancellationReason33Choice struct {
	Cd    *iso20022.ExternalCancellationReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CancellationReason33Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

// OriginalTransactionReference42 carries the key elements of the original
// transaction.
type OriginalTransactionReference42 struct {
	IntrBkSttlmAmt *iso20022.ActiveOrHistoricCurrencyAndAmount   `xml:"IntrBkSttlmAmt,omitempty" json:"IntrBkSttlmAmt,omitempty"`
	Amt            *AmountType4Choice                            `xml:"Amt,omitempty" json:"Amt,omitempty"`
	IntrBkSttlmDt  *iso20022.ISODate                             `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	ReqdColltnDt   *iso20022.ISODate                             `xml:"ReqdColltnDt,omitempty" json:"ReqdColltnDt,omitempty"`
	ReqdExctnDt    *DateAndDateTime2Choice                       `xml:"ReqdExctnDt,omitempty" json:"ReqdExctnDt,omitempty"`
	CdtrSchmeID    *PartyIdentification272                       `xml:"CdtrSchmeId,omitempty" json:"CdtrSchmeId,omitempty"`
	SttlmInf       *SettlementInstruction15                      `xml:"SttlmInf,omitempty" json:"SttlmInf,omitempty"`
	PmtTpInf       *PaymentTypeInformation27                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	PmtMtd         *iso20022.PaymentMethod4Code                  `xml:"PmtMtd,omitempty" json:"PmtMtd,omitempty"`
	MndtRltdInf    *MandateRelatedData3Choice                    `xml:"MndtRltdInf,omitempty" json:"MndtRltdInf,omitempty"`
	RmtInf         *RemittanceInformation22                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	UltmtDbtr      *Party50Choice                                `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Dbtr           *Party50Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct       *CashAccount40                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt        *BranchAndFinancialInstitutionIdentification8 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct    *CashAccount40                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt        *BranchAndFinancialInstitutionIdentification8 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct    *CashAccount40                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr           *Party50Choice                                `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct       *CashAccount40                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr      *Party50Choice                                `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	Purp           *Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
}

func (o OriginalTransactionReference42) Validate() error {
	return traversal.Walk(
		traversal.Optional("IntrBkSttlmAmt", o.IntrBkSttlmAmt),
		traversal.Optional("Amt", o.Amt),
		traversal.Optional("IntrBkSttlmDt", o.IntrBkSttlmDt),
		traversal.Optional("ReqdColltnDt", o.ReqdColltnDt),
		traversal.Optional("ReqdExctnDt", o.ReqdExctnDt),
		traversal.Optional("CdtrSchmeId", o.CdtrSchmeID),
		traversal.Optional("SttlmInf", o.SttlmInf),
		traversal.Optional("PmtTpInf", o.PmtTpInf),
		traversal.Optional("PmtMtd", o.PmtMtd),
		traversal.Optional("MndtRltdInf", o.MndtRltdInf),
		traversal.Optional("RmtInf", o.RmtInf),
		traversal.Optional("UltmtDbtr", o.UltmtDbtr),
		traversal.Optional("Dbtr", o.Dbtr),
		traversal.Optional("DbtrAcct", o.DbtrAcct),
		traversal.Optional("DbtrAgt", o.DbtrAgt),
		traversal.Optional("DbtrAgtAcct", o.DbtrAgtAcct),
		traversal.Optional("CdtrAgt", o.CdtrAgt),
		traversal.Optional("CdtrAgtAcct", o.CdtrAgtAcct),
		traversal.Optional("Cdtr", o.Cdtr),
		traversal.Optional("CdtrAcct", o.CdtrAcct),
		traversal.Optional("UltmtCdtr", o.UltmtCdtr),
		traversal.Optional("Purp", o.Purp),
	)
}

type AmountType4Choice struct {
	InstdAmt *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	EqvtAmt  *EquivalentAmount2                          `xml:"EqvtAmt,omitempty" json:"EqvtAmt,omitempty"`
}

func (a AmountType4Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("InstdAmt", a.InstdAmt),
		traversal.Optional("EqvtAmt", a.EqvtAmt),
	)
}

type EquivalentAmount2 struct {
	Amt      iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt" validate:"required"`
	CcyOfTrf iso20022.ActiveOrHistoricCurrencyCode      `xml:"CcyOfTrf" json:"CcyOfTrf" validate:"required"`
}

func (e EquivalentAmount2) Validate() error {
	return traversal.Walk(
		traversal.Field("Amt", e.Amt),
		traversal.Field("CcyOfTrf", e.CcyOfTrf),
	)
}

type DateAndDateTime2Choice struct {
	Dt   *iso20022.ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *iso20022.ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (d DateAndDateTime2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Dt", d.Dt),
		traversal.Optional("DtTm", d.DtTm),
	)
}

type SettlementInstruction15 struct {
	SttlmMtd             iso20022.SettlementMethod1Code                `xml:"SttlmMtd" json:"SttlmMtd" validate:"required"`
	SttlmAcct            *CashAccount40                                `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
	ClrSys               *ClearingSystemIdentification3Choice          `xml:"ClrSys,omitempty" json:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification8 `xml:"InstgRmbrsmntAgt,omitempty" json:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *CashAccount40                                `xml:"InstgRmbrsmntAgtAcct,omitempty" json:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification8 `xml:"InstdRmbrsmntAgt,omitempty" json:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *CashAccount40                                `xml:"InstdRmbrsmntAgtAcct,omitempty" json:"InstdRmbrsmntAgtAcct,omitempty"`
	ThrdRmbrsmntAgt      *BranchAndFinancialInstitutionIdentification8 `xml:"ThrdRmbrsmntAgt,omitempty" json:"ThrdRmbrsmntAgt,omitempty"`
	ThrdRmbrsmntAgtAcct  *CashAccount40                                `xml:"ThrdRmbrsmntAgtAcct,omitempty" json:"ThrdRmbrsmntAgtAcct,omitempty"`
}

func (s SettlementInstruction15) Validate() error {
	return traversal.Walk(
		traversal.Field("SttlmMtd", s.SttlmMtd),
		traversal.Optional("SttlmAcct", s.SttlmAcct),
		traversal.Optional("ClrSys", s.ClrSys),
		traversal.Optional("InstgRmbrsmntAgt", s.InstgRmbrsmntAgt),
		traversal.Optional("InstgRmbrsmntAgtAcct", s.InstgRmbrsmntAgtAcct),
		traversal.Optional("InstdRmbrsmntAgt", s.InstdRmbrsmntAgt),
		traversal.Optional("InstdRmbrsmntAgtAcct", s.InstdRmbrsmntAgtAcct),
		traversal.Optional("ThrdRmbrsmntAgt", s.ThrdRmbrsmntAgt),
		traversal.Optional("ThrdRmbrsmntAgtAcct", s.ThrdRmbrsmntAgtAcct),
	)
}

type ClearingSystemIdentification3Choice struct {
	Cd    *iso20022.ExternalCashClearingSystem1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ClearingSystemIdentification3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

type PaymentTypeInformation27 struct {
	InstrPrty *iso20022.Priority2Code        `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *iso20022.ClearingChannel2Code `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []ServiceLevel8Choice          `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty" validate:"dive"`
	LclInstrm *LocalInstrument2Choice        `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	SeqTp     *iso20022.SequenceType3Code    `xml:"SeqTp,omitempty" json:"SeqTp,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice        `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (p PaymentTypeInformation27) Validate() error {
	return traversal.Walk(
		traversal.Optional("InstrPrty", p.InstrPrty),
		traversal.Optional("ClrChanl", p.ClrChanl),
		traversal.Each("SvcLvl", p.SvcLvl),
		traversal.Optional("LclInstrm", p.LclInstrm),
		traversal.Optional("SeqTp", p.SeqTp),
		traversal.Optional("CtgyPurp", p.CtgyPurp),
	)
}

type ServiceLevel8Choice struct {
	Cd    *iso20022.ExternalServiceLevel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (s ServiceLevel8Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", s.Cd),
		traversal.Optional("Prtry", s.Prtry),
	)
}

type LocalInstrument2Choice struct {
	Cd    *iso20022.ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (l LocalInstrument2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", l.Cd),
		traversal.Optional("Prtry", l.Prtry),
	)
}

type CategoryPurpose1Choice struct {
	Cd    *iso20022.ExternalCategoryPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CategoryPurpose1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

// MandateRelatedData3Choice holds either a direct debit or a credit transfer
// mandate.
type MandateRelatedData3Choice struct {
	DrctDbtMndt *MandateRelatedInformation16 `xml:"DrctDbtMndt,omitempty" json:"DrctDbtMndt,omitempty"`
	CdtTrfMndt  *CreditTransferMandateData1  `xml:"CdtTrfMndt,omitempty" json:"CdtTrfMndt,omitempty"`
}

func (m MandateRelatedData3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("DrctDbtMndt", m.DrctDbtMndt),
		traversal.Optional("CdtTrfMndt", m.CdtTrfMndt),
	)
}

type MandateRelatedInformation16 struct {
	MndtID        *iso20022.Max35Text            `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	DtOfSgntr     *iso20022.ISODate              `xml:"DtOfSgntr,omitempty" json:"DtOfSgntr,omitempty"`
	AmdmntInd     *iso20022.TrueFalseIndicator   `xml:"AmdmntInd,omitempty" json:"AmdmntInd,omitempty"`
	AmdmntInfDtls *AmendmentInformationDetails15 `xml:"AmdmntInfDtls,omitempty" json:"AmdmntInfDtls,omitempty"`
	ElctrncSgntr  *iso20022.Max1025Text          `xml:"ElctrncSgntr,omitempty" json:"ElctrncSgntr,omitempty"`
	FrstColltnDt  *iso20022.ISODate              `xml:"FrstColltnDt,omitempty" json:"FrstColltnDt,omitempty"`
	FnlColltnDt   *iso20022.ISODate              `xml:"FnlColltnDt,omitempty" json:"FnlColltnDt,omitempty"`
	Frqcy         *Frequency36Choice             `xml:"Frqcy,omitempty" json:"Frqcy,omitempty"`
	Rsn           *MandateSetupReason1Choice     `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	TrckgDays     *iso20022.Exact2NumericText    `xml:"TrckgDays,omitempty" json:"TrckgDays,omitempty"`
}

func (m MandateRelatedInformation16) Validate() error {
	return traversal.Walk(
		traversal.Optional("MndtId", m.MndtID),
		traversal.Optional("DtOfSgntr", m.DtOfSgntr),
		traversal.Optional("AmdmntInd", m.AmdmntInd),
		traversal.Optional("AmdmntInfDtls", m.AmdmntInfDtls),
		traversal.Optional("ElctrncSgntr", m.ElctrncSgntr),
		traversal.Optional("FrstColltnDt", m.FrstColltnDt),
		traversal.Optional("FnlColltnDt", m.FnlColltnDt),
		traversal.Optional("Frqcy", m.Frqcy),
		traversal.Optional("Rsn", m.Rsn),
		traversal.Optional("TrckgDays", m.TrckgDays),
	)
}

// AmendmentInformationDetails15 lists the mandate elements that changed since
// the mandate was signed.
type AmendmentInformationDetails15 struct {
	OrgnlMndtID      *iso20022.Max35Text                           `xml:"OrgnlMndtId,omitempty" json:"OrgnlMndtId,omitempty"`
	OrgnlCdtrSchmeID *PartyIdentification272                       `xml:"OrgnlCdtrSchmeId,omitempty" json:"OrgnlCdtrSchmeId,omitempty"`
	OrgnlCdtrAgt     *BranchAndFinancialInstitutionIdentification8 `xml:"OrgnlCdtrAgt,omitempty" json:"OrgnlCdtrAgt,omitempty"`
	OrgnlCdtrAgtAcct *CashAccount40                                `xml:"OrgnlCdtrAgtAcct,omitempty" json:"OrgnlCdtrAgtAcct,omitempty"`
	OrgnlDbtr        *PartyIdentification272                       `xml:"OrgnlDbtr,omitempty" json:"OrgnlDbtr,omitempty"`
	OrgnlDbtrAcct    *CashAccount40                                `xml:"OrgnlDbtrAcct,omitempty" json:"OrgnlDbtrAcct,omitempty"`
	OrgnlDbtrAgt     *BranchAndFinancialInstitutionIdentification8 `xml:"OrgnlDbtrAgt,omitempty" json:"OrgnlDbtrAgt,omitempty"`
	OrgnlDbtrAgtAcct *CashAccount40                                `xml:"OrgnlDbtrAgtAcct,omitempty" json:"OrgnlDbtrAgtAcct,omitempty"`
	OrgnlFnlColltnDt *iso20022.ISODate                             `xml:"OrgnlFnlColltnDt,omitempty" json:"OrgnlFnlColltnDt,omitempty"`
	OrgnlFrqcy       *Frequency36Choice                            `xml:"OrgnlFrqcy,omitempty" json:"OrgnlFrqcy,omitempty"`
	OrgnlRsn         *MandateSetupReason1Choice                    `xml:"OrgnlRsn,omitempty" json:"OrgnlRsn,omitempty"`
	OrgnlTrckgDays   *iso20022.Exact2NumericText                   `xml:"OrgnlTrckgDays,omitempty" json:"OrgnlTrckgDays,omitempty"`
}

func (a AmendmentInformationDetails15) Validate() error {
	return traversal.Walk(
		traversal.Optional("OrgnlMndtId", a.OrgnlMndtID),
		traversal.Optional("OrgnlCdtrSchmeId", a.OrgnlCdtrSchmeID),
		traversal.Optional("OrgnlCdtrAgt", a.OrgnlCdtrAgt),
		traversal.Optional("OrgnlCdtrAgtAcct", a.OrgnlCdtrAgtAcct),
		traversal.Optional("OrgnlDbtr", a.OrgnlDbtr),
		traversal.Optional("OrgnlDbtrAcct", a.OrgnlDbtrAcct),
		traversal.Optional("OrgnlDbtrAgt", a.OrgnlDbtrAgt),
		traversal.Optional("OrgnlDbtrAgtAcct", a.OrgnlDbtrAgtAcct),
		traversal.Optional("OrgnlFnlColltnDt", a.OrgnlFnlColltnDt),
		traversal.Optional("OrgnlFrqcy", a.OrgnlFrqcy),
		traversal.Optional("OrgnlRsn", a.OrgnlRsn),
		traversal.Optional("OrgnlTrckgDays", a.OrgnlTrckgDays),
	)
}

type CreditTransferMandateData1 struct {
	MndtID       *iso20022.Max35Text        `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	Tp           *MandateTypeInformation2   `xml:"Tp,omitempty" json:"Tp,omitempty"`
	DtOfSgntr    *iso20022.ISODate          `xml:"DtOfSgntr,omitempty" json:"DtOfSgntr,omitempty"`
	DtOfVrfctn   *iso20022.ISODateTime      `xml:"DtOfVrfctn,omitempty" json:"DtOfVrfctn,omitempty"`
	ElctrncSgntr *iso20022.Max10KBinary     `xml:"ElctrncSgntr,omitempty" json:"ElctrncSgntr,omitempty"`
	FrstPmtDt    *iso20022.ISODate          `xml:"FrstPmtDt,omitempty" json:"FrstPmtDt,omitempty"`
	FnlPmtDt     *iso20022.ISODate          `xml:"FnlPmtDt,omitempty" json:"FnlPmtDt,omitempty"`
	Frqcy        *Frequency36Choice         `xml:"Frqcy,omitempty" json:"Frqcy,omitempty"`
	Rsn          *MandateSetupReason1Choice `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
}

func (c CreditTransferMandateData1) Validate() error {
	return traversal.Walk(
		traversal.Optional("MndtId", c.MndtID),
		traversal.Optional("Tp", c.Tp),
		traversal.Optional("DtOfSgntr", c.DtOfSgntr),
		traversal.Optional("DtOfVrfctn", c.DtOfVrfctn),
		traversal.Optional("ElctrncSgntr", c.ElctrncSgntr),
		traversal.Optional("FrstPmtDt", c.FrstPmtDt),
		traversal.Optional("FnlPmtDt", c.FnlPmtDt),
		traversal.Optional("Frqcy", c.Frqcy),
		traversal.Optional("Rsn", c.Rsn),
	)
}

type MandateTypeInformation2 struct {
	SvcLvl    *ServiceLevel8Choice          `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice       `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice       `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
	Clssfctn  *MandateClassification1Choice `xml:"Clssfctn,omitempty" json:"Clssfctn,omitempty"`
}

func (m MandateTypeInformation2) Validate() error {
	return traversal.Walk(
		traversal.Optional("SvcLvl", m.SvcLvl),
		traversal.Optional("LclInstrm", m.LclInstrm),
		traversal.Optional("CtgyPurp", m.CtgyPurp),
		traversal.Optional("Clssfctn", m.Clssfctn),
	)
}

type MandateClassification1Choice struct {
	Cd    *iso20022.MandateClassification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (m MandateClassification1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", m.Cd),
		traversal.Optional("Prtry", m.Prtry),
	)
}

type MandateSetupReason1Choice struct {
	Cd    *iso20022.ExternalMandateSetupReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max70Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (m MandateSetupReason1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", m.Cd),
		traversal.Optional("Prtry", m.Prtry),
	)
}

type Frequency36Choice struct {
	Tp     *iso20022.Frequency6Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Prd    *FrequencyPeriod1        `xml:"Prd,omitempty" json:"Prd,omitempty"`
	PtInTm *FrequencyAndMoment1     `xml:"PtInTm,omitempty" json:"PtInTm,omitempty"`
}

func (f Frequency36Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", f.Tp),
		traversal.Optional("Prd", f.Prd),
		traversal.Optional("PtInTm", f.PtInTm),
	)
}

type FrequencyPeriod1 struct {
	Tp        iso20022.Frequency6Code `xml:"Tp" json:"Tp" validate:"required"`
	CntPerPrd iso20022.DecimalNumber  `xml:"CntPerPrd" json:"CntPerPrd"`
}

func (f FrequencyPeriod1) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", f.Tp),
		traversal.Field("CntPerPrd", f.CntPerPrd),
	)
}

type FrequencyAndMoment1 struct {
	Tp     iso20022.Frequency6Code    `xml:"Tp" json:"Tp" validate:"required"`
	PtInTm iso20022.Exact2NumericText `xml:"PtInTm" json:"PtInTm" validate:"required"`
}

func (f FrequencyAndMoment1) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", f.Tp),
		traversal.Field("PtInTm", f.PtInTm),
	)
}

type RemittanceInformation22 struct {
	Ustrd []iso20022.Max140Text               `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation18 `xml:"Strd,omitempty" json:"Strd,omitempty" validate:"dive"`
}

func (r RemittanceInformation22) Validate() error {
	return traversal.Walk(
		traversal.Each("Ustrd", r.Ustrd),
		traversal.Each("Strd", r.Strd),
	)
}

// StructuredRemittanceInformation18 carries remittance information in a
// structured form.
type StructuredRemittanceInformation18 struct {
	RfrdDocInf  []ReferredDocumentInformation8 `xml:"RfrdDocInf,omitempty" json:"RfrdDocInf,omitempty" validate:"dive"`
	RfrdDocAmt  *RemittanceAmount4             `xml:"RfrdDocAmt,omitempty" json:"RfrdDocAmt,omitempty"`
	CdtrRefInf  *CreditorReferenceInformation3 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	Invcr       *PartyIdentification272        `xml:"Invcr,omitempty" json:"Invcr,omitempty"`
	Invcee      *PartyIdentification272        `xml:"Invcee,omitempty" json:"Invcee,omitempty"`
	TaxRmt      *TaxData1                      `xml:"TaxRmt,omitempty" json:"TaxRmt,omitempty"`
	GrnshmtRmt  *Garnishment4                  `xml:"GrnshmtRmt,omitempty" json:"GrnshmtRmt,omitempty"`
	AddtlRmtInf []iso20022.Max140Text          `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s StructuredRemittanceInformation18) Validate() error {
	return traversal.Walk(
		traversal.Each("RfrdDocInf", s.RfrdDocInf),
		traversal.Optional("RfrdDocAmt", s.RfrdDocAmt),
		traversal.Optional("CdtrRefInf", s.CdtrRefInf),
		traversal.Optional("Invcr", s.Invcr),
		traversal.Optional("Invcee", s.Invcee),
		traversal.Optional("TaxRmt", s.TaxRmt),
		traversal.Optional("GrnshmtRmt", s.GrnshmtRmt),
		traversal.Each("AddtlRmtInf", s.AddtlRmtInf),
	)
}

type ReferredDocumentInformation8 struct {
	Tp       *DocumentType1             `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nb       *iso20022.Max35Text        `xml:"Nb,omitempty" json:"Nb,omitempty"`
	RltdDt   *DateAndType1              `xml:"RltdDt,omitempty" json:"RltdDt,omitempty"`
	LineDtls []DocumentLineInformation2 `xml:"LineDtls,omitempty" json:"LineDtls,omitempty" validate:"dive"`
}

func (r ReferredDocumentInformation8) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", r.Tp),
		traversal.Optional("Nb", r.Nb),
		traversal.Optional("RltdDt", r.RltdDt),
		traversal.Each("LineDtls", r.LineDtls),
	)
}

type DocumentType1 struct {
	CdOrPrtry DocumentType2Choice `xml:"CdOrPrtry" json:"CdOrPrtry" validate:"required"`
	Issr      *iso20022.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (d DocumentType1) Validate() error {
	return traversal.Walk(
		traversal.Field("CdOrPrtry", d.CdOrPrtry),
		traversal.Optional("Issr", d.Issr),
	)
}

type DocumentType2Choice struct {
	Cd    *iso20022.ExternalDocumentType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (d DocumentType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", d.Cd),
		traversal.Optional("Prtry", d.Prtry),
	)
}

type DateAndType1 struct {
	Tp DateType2Choice  `xml:"Tp" json:"Tp" validate:"required"`
	Dt iso20022.ISODate `xml:"Dt" json:"Dt" validate:"required"`
}

func (d DateAndType1) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", d.Tp),
		traversal.Field("Dt", d.Dt),
	)
}

type DateType2Choice struct {
	Cd    *iso20022.ExternalDateType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text             `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (d DateType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", d.Cd),
		traversal.Optional("Prtry", d.Prtry),
	)
}

type DocumentLineInformation2 struct {
	ID   []DocumentLineIdentification1 `xml:"Id" json:"Id" validate:"min=1,dive"`
	Desc *iso20022.Max2048Text         `xml:"Desc,omitempty" json:"Desc,omitempty"`
	Amt  *RemittanceAmount4            `xml:"Amt,omitempty" json:"Amt,omitempty"`
}

func (d DocumentLineInformation2) Validate() error {
	return traversal.Walk(
		traversal.Each("Id", d.ID),
		traversal.Optional("Desc", d.Desc),
		traversal.Optional("Amt", d.Amt),
	)
}

type DocumentLineIdentification1 struct {
	Tp     *DocumentLineType1  `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nb     *iso20022.Max35Text `xml:"Nb,omitempty" json:"Nb,omitempty"`
	RltdDt *iso20022.ISODate   `xml:"RltdDt,omitempty" json:"RltdDt,omitempty"`
}

func (d DocumentLineIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", d.Tp),
		traversal.Optional("Nb", d.Nb),
		traversal.Optional("RltdDt", d.RltdDt),
	)
}

type DocumentLineType1 struct {
	CdOrPrtry DocumentLineType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry" validate:"required"`
	Issr      *iso20022.Max35Text     `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (d DocumentLineType1) Validate() error {
	return traversal.Walk(
		traversal.Field("CdOrPrtry", d.CdOrPrtry),
		traversal.Optional("Issr", d.Issr),
	)
}

type DocumentLineType1Choice struct {
	Cd    *iso20022.ExternalDocumentLineType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (d DocumentLineType1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", d.Cd),
		traversal.Optional("Prtry", d.Prtry),
	)
}

type RemittanceAmount4 struct {
	RmtAmtAndTp       []DocumentAmount1     `xml:"RmtAmtAndTp,omitempty" json:"RmtAmtAndTp,omitempty" validate:"dive"`
	AdjstmntAmtAndRsn []DocumentAdjustment1 `xml:"AdjstmntAmtAndRsn,omitempty" json:"AdjstmntAmtAndRsn,omitempty" validate:"dive"`
}

func (r RemittanceAmount4) Validate() error {
	return traversal.Walk(
		traversal.Each("RmtAmtAndTp", r.RmtAmtAndTp),
		traversal.Each("AdjstmntAmtAndRsn", r.AdjstmntAmtAndRsn),
	)
}

type DocumentAmount1 struct {
	Tp  DocumentAmountType1Choice                  `xml:"Tp" json:"Tp" validate:"required"`
	Amt iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt" validate:"required"`
}

func (d DocumentAmount1) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", d.Tp),
		traversal.Field("Amt", d.Amt),
	)
}

type DocumentAmountType1Choice struct {
	Cd    *iso20022.ExternalDocumentAmountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (d DocumentAmountType1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", d.Cd),
		traversal.Optional("Prtry", d.Prtry),
	)
}

type DocumentAdjustment1 struct {
	Amt       iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt" validate:"required"`
	CdtDbtInd *iso20022.CreditDebitCode                  `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	Rsn       *iso20022.Max4Text                         `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf  *iso20022.Max140Text                       `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (d DocumentAdjustment1) Validate() error {
	return traversal.Walk(
		traversal.Field("Amt", d.Amt),
		traversal.Optional("CdtDbtInd", d.CdtDbtInd),
		traversal.Optional("Rsn", d.Rsn),
		traversal.Optional("AddtlInf", d.AddtlInf),
	)
}

type CreditorReferenceInformation3 struct {
	Tp  *CreditorReferenceType3 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ref *iso20022.Max35Text     `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c CreditorReferenceInformation3) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", c.Tp),
		traversal.Optional("Ref", c.Ref),
	)
}

type CreditorReferenceType3 struct {
	CdOrPrtry CreditorReferenceType2Choice `xml:"CdOrPrtry" json:"CdOrPrtry" validate:"required"`
	Issr      *iso20022.Max35Text          `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (c CreditorReferenceType3) Validate() error {
	return traversal.Walk(
		traversal.Field("CdOrPrtry", c.CdOrPrtry),
		traversal.Optional("Issr", c.Issr),
	)
}

type CreditorReferenceType2Choice struct {
	Cd    *iso20022.ExternalCreditorReferenceType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CreditorReferenceType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

// TaxData1 carries the tax details of a remittance.
type TaxData1 struct {
	Cdtr            *TaxParty1                                  `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	Dbtr            *TaxParty2                                  `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	UltmtDbtr       *TaxParty2                                  `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	AdmstnZone      *iso20022.Max35Text                         `xml:"AdmstnZone,omitempty" json:"AdmstnZone,omitempty"`
	RefNb           *iso20022.Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Mtd             *iso20022.Max35Text                         `xml:"Mtd,omitempty" json:"Mtd,omitempty"`
	TtlTaxblBaseAmt *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxblBaseAmt,omitempty" json:"TtlTaxblBaseAmt,omitempty"`
	TtlTaxAmt       *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxAmt,omitempty" json:"TtlTaxAmt,omitempty"`
	Dt              *iso20022.ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	SeqNb           *iso20022.Number                            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	Rcrd            []TaxRecord3                                `xml:"Rcrd,omitempty" json:"Rcrd,omitempty" validate:"dive"`
}

func (t TaxData1) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cdtr", t.Cdtr),
		traversal.Optional("Dbtr", t.Dbtr),
		traversal.Optional("UltmtDbtr", t.UltmtDbtr),
		traversal.Optional("AdmstnZone", t.AdmstnZone),
		traversal.Optional("RefNb", t.RefNb),
		traversal.Optional("Mtd", t.Mtd),
		traversal.Optional("TtlTaxblBaseAmt", t.TtlTaxblBaseAmt),
		traversal.Optional("TtlTaxAmt", t.TtlTaxAmt),
		traversal.Optional("Dt", t.Dt),
		traversal.Optional("SeqNb", t.SeqNb),
		traversal.Each("Rcrd", t.Rcrd),
	)
}

type TaxParty1 struct {
	TaxID  *iso20022.Max35Text `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnID *iso20022.Max35Text `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp  *iso20022.Max35Text `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
}

func (t TaxParty1) Validate() error {
	return traversal.Walk(
		traversal.Optional("TaxId", t.TaxID),
		traversal.Optional("RegnId", t.RegnID),
		traversal.Optional("TaxTp", t.TaxTp),
	)
}

type TaxParty2 struct {
	TaxID   *iso20022.Max35Text `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnID  *iso20022.Max35Text `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp   *iso20022.Max35Text `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
	Authstn *TaxAuthorisation1  `xml:"Authstn,omitempty" json:"Authstn,omitempty"`
}

func (t TaxParty2) Validate() error {
	return traversal.Walk(
		traversal.Optional("TaxId", t.TaxID),
		traversal.Optional("RegnId", t.RegnID),
		traversal.Optional("TaxTp", t.TaxTp),
		traversal.Optional("Authstn", t.Authstn),
	)
}

type TaxAuthorisation1 struct {
	Titl *iso20022.Max35Text  `xml:"Titl,omitempty" json:"Titl,omitempty"`
	Nm   *iso20022.Max140Text `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

func (t TaxAuthorisation1) Validate() error {
	return traversal.Walk(
		traversal.Optional("Titl", t.Titl),
		traversal.Optional("Nm", t.Nm),
	)
}

type TaxRecord3 struct {
	Tp       *iso20022.Max35Text  `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ctgy     *iso20022.Max35Text  `xml:"Ctgy,omitempty" json:"Ctgy,omitempty"`
	CtgyDtls *iso20022.Max35Text  `xml:"CtgyDtls,omitempty" json:"CtgyDtls,omitempty"`
	DbtrSts  *iso20022.Max35Text  `xml:"DbtrSts,omitempty" json:"DbtrSts,omitempty"`
	CertID   *iso20022.Max35Text  `xml:"CertId,omitempty" json:"CertId,omitempty"`
	FrmsCd   *iso20022.Max35Text  `xml:"FrmsCd,omitempty" json:"FrmsCd,omitempty"`
	Prd      *TaxPeriod3          `xml:"Prd,omitempty" json:"Prd,omitempty"`
	TaxAmt   *TaxAmount3          `xml:"TaxAmt,omitempty" json:"TaxAmt,omitempty"`
	AddtlInf *iso20022.Max140Text `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (t TaxRecord3) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", t.Tp),
		traversal.Optional("Ctgy", t.Ctgy),
		traversal.Optional("CtgyDtls", t.CtgyDtls),
		traversal.Optional("DbtrSts", t.DbtrSts),
		traversal.Optional("CertId", t.CertID),
		traversal.Optional("FrmsCd", t.FrmsCd),
		traversal.Optional("Prd", t.Prd),
		traversal.Optional("TaxAmt", t.TaxAmt),
		traversal.Optional("AddtlInf", t.AddtlInf),
	)
}

type TaxPeriod3 struct {
	Yr     *iso20022.ISOYear              `xml:"Yr,omitempty" json:"Yr,omitempty"`
	Tp     *iso20022.TaxRecordPeriod1Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	FrToDt *iso20022.DatePeriod2          `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
}

func (t TaxPeriod3) Validate() error {
	return traversal.Walk(
		traversal.Optional("Yr", t.Yr),
		traversal.Optional("Tp", t.Tp),
		traversal.Optional("FrToDt", t.FrToDt),
	)
}

type TaxAmount3 struct {
	Rate         *iso20022.PercentageRate                    `xml:"Rate,omitempty" json:"Rate,omitempty"`
	TaxblBaseAmt *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"TaxblBaseAmt,omitempty" json:"TaxblBaseAmt,omitempty"`
	TtlAmt       *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	Dtls         []TaxRecordDetails3                         `xml:"Dtls,omitempty" json:"Dtls,omitempty" validate:"dive"`
}

func (t TaxAmount3) Validate() error {
	return traversal.Walk(
		traversal.Optional("Rate", t.Rate),
		traversal.Optional("TaxblBaseAmt", t.TaxblBaseAmt),
		traversal.Optional("TtlAmt", t.TtlAmt),
		traversal.Each("Dtls", t.Dtls),
	)
}

type TaxRecordDetails3 struct {
	Prd *TaxPeriod3                                `xml:"Prd,omitempty" json:"Prd,omitempty"`
	Amt iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt" validate:"required"`
}

func (t TaxRecordDetails3) Validate() error {
	return traversal.Walk(
		traversal.Optional("Prd", t.Prd),
		traversal.Field("Amt", t.Amt),
	)
}

type Garnishment4 struct {
	Tp                GarnishmentType1                            `xml:"Tp" json:"Tp" validate:"required"`
	Grnshee           *PartyIdentification272                     `xml:"Grnshee,omitempty" json:"Grnshee,omitempty"`
	GrnshmtAdmstr     *PartyIdentification272                     `xml:"GrnshmtAdmstr,omitempty" json:"GrnshmtAdmstr,omitempty"`
	RefNb             *iso20022.Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Dt                *iso20022.ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	RmtdAmt           *iso20022.ActiveOrHistoricCurrencyAndAmount `xml:"RmtdAmt,omitempty" json:"RmtdAmt,omitempty"`
	FmlyMdclInsrncInd *iso20022.TrueFalseIndicator                `xml:"FmlyMdclInsrncInd,omitempty" json:"FmlyMdclInsrncInd,omitempty"`
	MplyeeTermntnInd  *iso20022.TrueFalseIndicator                `xml:"MplyeeTermntnInd,omitempty" json:"MplyeeTermntnInd,omitempty"`
}

func (g Garnishment4) Validate() error {
	return traversal.Walk(
		traversal.Field("Tp", g.Tp),
		traversal.Optional("Grnshee", g.Grnshee),
		traversal.Optional("GrnshmtAdmstr", g.GrnshmtAdmstr),
		traversal.Optional("RefNb", g.RefNb),
		traversal.Optional("Dt", g.Dt),
		traversal.Optional("RmtdAmt", g.RmtdAmt),
		traversal.Optional("FmlyMdclInsrncInd", g.FmlyMdclInsrncInd),
		traversal.Optional("MplyeeTermntnInd", g.MplyeeTermntnInd),
	)
}

type GarnishmentType1 struct {
	CdOrPrtry GarnishmentType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry" validate:"required"`
	Issr      *iso20022.Max35Text    `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GarnishmentType1) Validate() error {
	return traversal.Walk(
		traversal.Field("CdOrPrtry", g.CdOrPrtry),
		traversal.Optional("Issr", g.Issr),
	)
}

type GarnishmentType1Choice struct {
	Cd    *iso20022.ExternalGarnishmentType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (g GarnishmentType1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", g.Cd),
		traversal.Optional("Prtry", g.Prtry),
	)
}

// Party50Choice identifies a party either as a non-financial party or as an
// agent.
type Party50Choice struct {
	Pty *PartyIdentification272                       `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification8 `xml:"Agt,omitempty" json:"Agt,omitempty"`
}

func (p Party50Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Pty", p.Pty),
		traversal.Optional("Agt", p.Agt),
	)
}

type PartyIdentification272 struct {
	Nm        *iso20022.Max140Text  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress27      `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	ID        *Party52Choice        `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *iso20022.CountryCode `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact13            `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p PartyIdentification272) Validate() error {
	return traversal.Walk(
		traversal.Optional("Nm", p.Nm),
		traversal.Optional("PstlAdr", p.PstlAdr),
		traversal.Optional("Id", p.ID),
		traversal.Optional("CtryOfRes", p.CtryOfRes),
		traversal.Optional("CtctDtls", p.CtctDtls),
	)
}

type Party52Choice struct {
	OrgID  *OrganisationIdentification39 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtID *PersonIdentification18       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (p Party52Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("OrgId", p.OrgID),
		traversal.Optional("PrvtId", p.PrvtID),
	)
}

type OrganisationIdentification39 struct {
	AnyBIC *iso20022.AnyBICDec2014Identifier    `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *iso20022.LEIIdentifier              `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification3 `xml:"Othr,omitempty" json:"Othr,omitempty" validate:"dive"`
}

func (o OrganisationIdentification39) Validate() error {
	return traversal.Walk(
		traversal.Optional("AnyBIC", o.AnyBIC),
		traversal.Optional("LEI", o.LEI),
		traversal.Each("Othr", o.Othr),
	)
}

type GenericOrganisationIdentification3 struct {
	ID      iso20022.Max256Text                          `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text                          `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericOrganisationIdentification3) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *iso20022.ExternalOrganisationIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (o OrganisationIdentificationSchemeName1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", o.Cd),
		traversal.Optional("Prtry", o.Prtry),
	)
}

type PersonIdentification18 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification2 `xml:"Othr,omitempty" json:"Othr,omitempty" validate:"dive"`
}

func (p PersonIdentification18) Validate() error {
	return traversal.Walk(
		traversal.Optional("DtAndPlcOfBirth", p.DtAndPlcOfBirth),
		traversal.Each("Othr", p.Othr),
	)
}

type DateAndPlaceOfBirth1 struct {
	BirthDt     iso20022.ISODate     `xml:"BirthDt" json:"BirthDt" validate:"required"`
	PrvcOfBirth *iso20022.Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth iso20022.Max35Text   `xml:"CityOfBirth" json:"CityOfBirth" validate:"required"`
	CtryOfBirth iso20022.CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth" validate:"required"`
}

func (d DateAndPlaceOfBirth1) Validate() error {
	return traversal.Walk(
		traversal.Field("BirthDt", d.BirthDt),
		traversal.Optional("PrvcOfBirth", d.PrvcOfBirth),
		traversal.Field("CityOfBirth", d.CityOfBirth),
		traversal.Field("CtryOfBirth", d.CtryOfBirth),
	)
}

type GenericPersonIdentification2 struct {
	ID      iso20022.Max256Text                    `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text                    `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericPersonIdentification2) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type PersonIdentificationSchemeName1Choice struct {
	Cd    *iso20022.ExternalPersonIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p PersonIdentificationSchemeName1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", p.Cd),
		traversal.Optional("Prtry", p.Prtry),
	)
}

type Contact13 struct {
	NmPrfx    *iso20022.NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *iso20022.Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *iso20022.PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *iso20022.PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *iso20022.PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	URLAdr    *iso20022.Max2048Text                 `xml:"URLAdr,omitempty" json:"URLAdr,omitempty"`
	EmailAdr  *iso20022.Max256Text                  `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *iso20022.Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *iso20022.Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *iso20022.Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *iso20022.Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1                       `xml:"Othr,omitempty" json:"Othr,omitempty" validate:"dive"`
	PrefrdMtd *iso20022.PreferredContactMethod2Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c Contact13) Validate() error {
	return traversal.Walk(
		traversal.Optional("NmPrfx", c.NmPrfx),
		traversal.Optional("Nm", c.Nm),
		traversal.Optional("PhneNb", c.PhneNb),
		traversal.Optional("MobNb", c.MobNb),
		traversal.Optional("FaxNb", c.FaxNb),
		traversal.Optional("URLAdr", c.URLAdr),
		traversal.Optional("EmailAdr", c.EmailAdr),
		traversal.Optional("EmailPurp", c.EmailPurp),
		traversal.Optional("JobTitl", c.JobTitl),
		traversal.Optional("Rspnsblty", c.Rspnsblty),
		traversal.Optional("Dept", c.Dept),
		traversal.Each("Othr", c.Othr),
		traversal.Optional("PrefrdMtd", c.PrefrdMtd),
	)
}

type OtherContact1 struct {
	ChanlTp iso20022.Max4Text    `xml:"ChanlTp" json:"ChanlTp" validate:"required"`
	ID      *iso20022.Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (o OtherContact1) Validate() error {
	return traversal.Walk(
		traversal.Field("ChanlTp", o.ChanlTp),
		traversal.Optional("Id", o.ID),
	)
}

// PostalAddress27 is a postal address in structured and unstructured form.
type PostalAddress27 struct {
	AdrTp       *AddressType3Choice   `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	CareOf      *iso20022.Max140Text  `xml:"CareOf,omitempty" json:"CareOf,omitempty"`
	Dept        *iso20022.Max70Text   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *iso20022.Max70Text   `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *iso20022.Max140Text  `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *iso20022.Max16Text   `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *iso20022.Max140Text  `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *iso20022.Max70Text   `xml:"Flr,omitempty" json:"Flr,omitempty"`
	UnitNb      *iso20022.Max16Text   `xml:"UnitNb,omitempty" json:"UnitNb,omitempty"`
	PstBx       *iso20022.Max16Text   `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *iso20022.Max70Text   `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *iso20022.Max16Text   `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *iso20022.Max140Text  `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *iso20022.Max140Text  `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *iso20022.Max140Text  `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *iso20022.Max35Text   `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *iso20022.CountryCode `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []iso20022.Max70Text  `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (p PostalAddress27) Validate() error {
	return traversal.Walk(
		traversal.Optional("AdrTp", p.AdrTp),
		traversal.Optional("CareOf", p.CareOf),
		traversal.Optional("Dept", p.Dept),
		traversal.Optional("SubDept", p.SubDept),
		traversal.Optional("StrtNm", p.StrtNm),
		traversal.Optional("BldgNb", p.BldgNb),
		traversal.Optional("BldgNm", p.BldgNm),
		traversal.Optional("Flr", p.Flr),
		traversal.Optional("UnitNb", p.UnitNb),
		traversal.Optional("PstBx", p.PstBx),
		traversal.Optional("Room", p.Room),
		traversal.Optional("PstCd", p.PstCd),
		traversal.Optional("TwnNm", p.TwnNm),
		traversal.Optional("TwnLctnNm", p.TwnLctnNm),
		traversal.Optional("DstrctNm", p.DstrctNm),
		traversal.Optional("CtrySubDvsn", p.CtrySubDvsn),
		traversal.Optional("Ctry", p.Ctry),
		traversal.Each("AdrLine", p.AdrLine),
	)
}

type AddressType3Choice struct {
	Cd    *iso20022.AddressType2Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30   `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (a AddressType3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", a.Cd),
		traversal.Optional("Prtry", a.Prtry),
	)
}

type GenericIdentification30 struct {
	ID      iso20022.Exact4AlphaNumericText `xml:"Id" json:"Id" validate:"required"`
	Issr    iso20022.Max35Text              `xml:"Issr" json:"Issr" validate:"required"`
	SchmeNm *iso20022.Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification30) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Field("Issr", g.Issr),
		traversal.Optional("SchmeNm", g.SchmeNm),
	)
}

// BranchAndFinancialInstitutionIdentification8 identifies a financial
// institution and optionally one of its branches.
type BranchAndFinancialInstitutionIdentification8 struct {
	FinInstnID FinancialInstitutionIdentification23 `xml:"FinInstnId" json:"FinInstnId" validate:"required"`
	BrnchID    *BranchData5                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b BranchAndFinancialInstitutionIdentification8) Validate() error {
	return traversal.Walk(
		traversal.Field("FinInstnId", b.FinInstnID),
		traversal.Optional("BrnchId", b.BrnchID),
	)
}

type FinancialInstitutionIdentification23 struct {
	BICFI       *iso20022.BICFIDec2014Identifier     `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbID *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *iso20022.LEIIdentifier              `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *iso20022.Max140Text                 `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress27                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f FinancialInstitutionIdentification23) Validate() error {
	return traversal.Walk(
		traversal.Optional("BICFI", f.BICFI),
		traversal.Optional("ClrSysMmbId", f.ClrSysMmbID),
		traversal.Optional("LEI", f.LEI),
		traversal.Optional("Nm", f.Nm),
		traversal.Optional("PstlAdr", f.PstlAdr),
		traversal.Optional("Othr", f.Othr),
	)
}

type ClearingSystemMemberIdentification2 struct {
	ClrSysID *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbID    iso20022.Max35Text                   `xml:"MmbId" json:"MmbId" validate:"required"`
}

func (c ClearingSystemMemberIdentification2) Validate() error {
	return traversal.Walk(
		traversal.Optional("ClrSysId", c.ClrSysID),
		traversal.Field("MmbId", c.MmbID),
	)
}

type ClearingSystemIdentification2Choice struct {
	Cd    *iso20022.ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ClearingSystemIdentification2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

type GenericFinancialIdentification1 struct {
	ID      iso20022.Max35Text                        `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text                       `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericFinancialIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type FinancialIdentificationSchemeName1Choice struct {
	Cd    *iso20022.ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (f FinancialIdentificationSchemeName1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", f.Cd),
		traversal.Optional("Prtry", f.Prtry),
	)
}

type BranchData5 struct {
	ID      *iso20022.Max35Text     `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *iso20022.LEIIdentifier `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *iso20022.Max140Text    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress27        `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b BranchData5) Validate() error {
	return traversal.Walk(
		traversal.Optional("Id", b.ID),
		traversal.Optional("LEI", b.LEI),
		traversal.Optional("Nm", b.Nm),
		traversal.Optional("PstlAdr", b.PstlAdr),
	)
}

// CashAccount40 identifies an account by IBAN, another scheme or a proxy.
type CashAccount40 struct {
	ID   *AccountIdentification4Choice          `xml:"Id,omitempty" json:"Id,omitempty"`
	Tp   *CashAccountType2Choice                `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *iso20022.ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *iso20022.Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1           `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (c CashAccount40) Validate() error {
	return traversal.Walk(
		traversal.Optional("Id", c.ID),
		traversal.Optional("Tp", c.Tp),
		traversal.Optional("Ccy", c.Ccy),
		traversal.Optional("Nm", c.Nm),
		traversal.Optional("Prxy", c.Prxy),
	)
}

type AccountIdentification4Choice struct {
	IBAN *iso20022.IBAN2007Identifier   `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (a AccountIdentification4Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("IBAN", a.IBAN),
		traversal.Optional("Othr", a.Othr),
	)
}

type GenericAccountIdentification1 struct {
	ID      iso20022.Max34Text        `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *iso20022.Max35Text       `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericAccountIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type AccountSchemeName1Choice struct {
	Cd    *iso20022.ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (a AccountSchemeName1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", a.Cd),
		traversal.Optional("Prtry", a.Prtry),
	)
}

type CashAccountType2Choice struct {
	Cd    *iso20022.ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CashAccountType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", c.Cd),
		traversal.Optional("Prtry", c.Prtry),
	)
}

type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	ID iso20022.Max2048Text     `xml:"Id" json:"Id" validate:"required"`
}

func (p ProxyAccountIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Optional("Tp", p.Tp),
		traversal.Field("Id", p.ID),
	)
}

type ProxyAccountType1Choice struct {
	Cd    *iso20022.ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p ProxyAccountType1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", p.Cd),
		traversal.Optional("Prtry", p.Prtry),
	)
}

type Purpose2Choice struct {
	Cd    *iso20022.ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p Purpose2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", p.Cd),
		traversal.Optional("Prtry", p.Prtry),
	)
}
