package reda

import (
	"encoding/xml"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/internal/traversal"
)

const (
	// MessageID identifies the PartyQueryV01 message definition.
	MessageID = "reda.015.001.01"
	// Namespace is the XML namespace of the Document element.
	Namespace = "urn:iso:std:iso:20022:tech:xsd:" + MessageID
)

// Document is the XML root of a PartyQueryV01 message.
type Document struct {
	XMLName xml.Name      `xml:"urn:iso:std:iso:20022:tech:xsd:reda.015.001.01 Document" json:"-"`
	PtyQry  PartyQueryV01 `xml:"PtyQry" json:"PtyQry" validate:"required"`
}

func (d Document) Validate() error {
	return traversal.Walk(
		traversal.Field("PtyQry", d.PtyQry),
	)
}

// PartyQueryV01 is sent by an instructing party to query the reference data
// of parties held by a central system.
type PartyQueryV01 struct {
	MsgHdr      *MessageHeader2               `xml:"MsgHdr,omitempty" json:"MsgHdr,omitempty"`
	SchCrit     PartyDataSearchCriteria2      `xml:"SchCrit" json:"SchCrit" validate:"required"`
	RtrCrit     *PartyDataReturnCriteria2     `xml:"RtrCrit,omitempty" json:"RtrCrit,omitempty"`
	SplmtryData []iso20022.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty" validate:"dive"`
}

func (p PartyQueryV01) Validate() error {
	return traversal.Walk(
		traversal.Optional("MsgHdr", p.MsgHdr),
		traversal.Field("SchCrit", p.SchCrit),
		traversal.Optional("RtrCrit", p.RtrCrit),
		traversal.Each("SplmtryData", p.SplmtryData),
	)
}

type MessageHeader2 struct {
	MsgID   iso20022.Max35Text    `xml:"MsgId" json:"MsgId" validate:"required"`
	CreDtTm *iso20022.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	ReqTp   *RequestType2Choice   `xml:"ReqTp,omitempty" json:"ReqTp,omitempty"`
}

func (m MessageHeader2) Validate() error {
	return traversal.Walk(
		traversal.Field("MsgId", m.MsgID),
		traversal.Optional("CreDtTm", m.CreDtTm),
		traversal.Optional("ReqTp", m.ReqTp),
	)
}

type RequestType2Choice struct {
	PmtCtrl *iso20022.RequestType1Code       `xml:"PmtCtrl,omitempty" json:"PmtCtrl,omitempty"`
	Enqry   *iso20022.RequestType2Code       `xml:"Enqry,omitempty" json:"Enqry,omitempty"`
	Prtry   *iso20022.GenericIdentification1 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (r RequestType2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("PmtCtrl", r.PmtCtrl),
		traversal.Optional("Enqry", r.Enqry),
		traversal.Optional("Prtry", r.Prtry),
	)
}

// PartyDataSearchCriteria2 lists the criteria a party must match to be
// returned.
type PartyDataSearchCriteria2 struct {
	OpngDt        *DatePeriodSearch1Choice      `xml:"OpngDt,omitempty" json:"OpngDt,omitempty"`
	ClsgDt        *DatePeriodSearch1Choice      `xml:"ClsgDt,omitempty" json:"ClsgDt,omitempty"`
	Tp            *SystemPartyType1Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	RspnsblPtyID  *PartyIdentification136       `xml:"RspnsblPtyId,omitempty" json:"RspnsblPtyId,omitempty"`
	PtyID         *PartyIdentification136       `xml:"PtyId,omitempty" json:"PtyId,omitempty"`
	RstrctnID     *iso20022.Max35Text           `xml:"RstrctnId,omitempty" json:"RstrctnId,omitempty"`
	RstrctnIsseDt *DateAndDateTimeSearch4Choice `xml:"RstrctnIsseDt,omitempty" json:"RstrctnIsseDt,omitempty"`
	ResTp         *iso20022.ResidenceType1Code  `xml:"ResTp,omitempty" json:"ResTp,omitempty"`
	LckSts        *PartyLockStatus1             `xml:"LckSts,omitempty" json:"LckSts,omitempty"`
}

func (p PartyDataSearchCriteria2) Validate() error {
	return traversal.Walk(
		traversal.Optional("OpngDt", p.OpngDt),
		traversal.Optional("ClsgDt", p.ClsgDt),
		traversal.Optional("Tp", p.Tp),
		traversal.Optional("RspnsblPtyId", p.RspnsblPtyID),
		traversal.Optional("PtyId", p.PtyID),
		traversal.Optional("RstrctnId", p.RstrctnID),
		traversal.Optional("RstrctnIsseDt", p.RstrctnIsseDt),
		traversal.Optional("ResTp", p.ResTp),
		traversal.Optional("LckSts", p.LckSts),
	)
}

// PartyDataReturnCriteria2 selects the party attributes to report.
type PartyDataReturnCriteria2 struct {
	OpngDt       *iso20022.RequestedIndicator `xml:"OpngDt,omitempty" json:"OpngDt,omitempty"`
	ClsgDt       *iso20022.RequestedIndicator `xml:"ClsgDt,omitempty" json:"ClsgDt,omitempty"`
	Tp           *iso20022.RequestedIndicator `xml:"Tp,omitempty" json:"Tp,omitempty"`
	PtyID        *iso20022.RequestedIndicator `xml:"PtyId,omitempty" json:"PtyId,omitempty"`
	RspnsblPtyID *iso20022.RequestedIndicator `xml:"RspnsblPtyId,omitempty" json:"RspnsblPtyId,omitempty"`
	RstrctnID    *iso20022.RequestedIndicator `xml:"RstrctnId,omitempty" json:"RstrctnId,omitempty"`
	RstrctdOnDt  *iso20022.RequestedIndicator `xml:"RstrctdOnDt,omitempty" json:"RstrctdOnDt,omitempty"`
	Nm           *iso20022.RequestedIndicator `xml:"Nm,omitempty" json:"Nm,omitempty"`
	ShrtNm       *iso20022.RequestedIndicator `xml:"ShrtNm,omitempty" json:"ShrtNm,omitempty"`
	Adr          *iso20022.RequestedIndicator `xml:"Adr,omitempty" json:"Adr,omitempty"`
	TechAdr      *iso20022.RequestedIndicator `xml:"TechAdr,omitempty" json:"TechAdr,omitempty"`
	CtctDtls     *iso20022.RequestedIndicator `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
	ResTp        *iso20022.RequestedIndicator `xml:"ResTp,omitempty" json:"ResTp,omitempty"`
	LckSts       *iso20022.RequestedIndicator `xml:"LckSts,omitempty" json:"LckSts,omitempty"`
	MktSpcfcAttr *iso20022.RequestedIndicator `xml:"MktSpcfcAttr,omitempty" json:"MktSpcfcAttr,omitempty"`
}

func (p PartyDataReturnCriteria2) Validate() error {
	return traversal.Walk(
		traversal.Optional("OpngDt", p.OpngDt),
		traversal.Optional("ClsgDt", p.ClsgDt),
		traversal.Optional("Tp", p.Tp),
		traversal.Optional("PtyId", p.PtyID),
		traversal.Optional("RspnsblPtyId", p.RspnsblPtyID),
		traversal.Optional("RstrctnId", p.RstrctnID),
		traversal.Optional("RstrctdOnDt", p.RstrctdOnDt),
		traversal.Optional("Nm", p.Nm),
		traversal.Optional("ShrtNm", p.ShrtNm),
		traversal.Optional("Adr", p.Adr),
		traversal.Optional("TechAdr", p.TechAdr),
		traversal.Optional("CtctDtls", p.CtctDtls),
		traversal.Optional("ResTp", p.ResTp),
		traversal.Optional("LckSts", p.LckSts),
		traversal.Optional("MktSpcfcAttr", p.MktSpcfcAttr),
	)
}

// DatePeriodSearch1Choice selects a date range, a single date or every date
// but one.
type DatePeriodSearch1Choice struct {
	FrDt   *iso20022.ISODate     `xml:"FrDt,omitempty" json:"FrDt,omitempty"`
	ToDt   *iso20022.ISODate     `xml:"ToDt,omitempty" json:"ToDt,omitempty"`
	FrToDt *iso20022.DatePeriod2 `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	EQDt   *iso20022.ISODate     `xml:"EQDt,omitempty" json:"EQDt,omitempty"`
	NEQDt  *iso20022.ISODate     `xml:"NEQDt,omitempty" json:"NEQDt,omitempty"`
}

func (d DatePeriodSearch1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("FrDt", d.FrDt),
		traversal.Optional("ToDt", d.ToDt),
		traversal.Optional("FrToDt", d.FrToDt),
		traversal.Optional("EQDt", d.EQDt),
		traversal.Optional("NEQDt", d.NEQDt),
	)
}

type DateAndDateTimeSearch4Choice struct {
	DtTm *DateTimeSearch2Choice   `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
	Dt   *DatePeriodSearch1Choice `xml:"Dt,omitempty" json:"Dt,omitempty"`
}

func (d DateAndDateTimeSearch4Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("DtTm", d.DtTm),
		traversal.Optional("Dt", d.Dt),
	)
}

type DateTimeSearch2Choice struct {
	FrDtTm   *iso20022.ISODateTime `xml:"FrDtTm,omitempty" json:"FrDtTm,omitempty"`
	ToDtTm   *iso20022.ISODateTime `xml:"ToDtTm,omitempty" json:"ToDtTm,omitempty"`
	FrToDtTm *DateTimePeriod1      `xml:"FrToDtTm,omitempty" json:"FrToDtTm,omitempty"`
	EQDtTm   *iso20022.ISODateTime `xml:"EQDtTm,omitempty" json:"EQDtTm,omitempty"`
	NEQDtTm  *iso20022.ISODateTime `xml:"NEQDtTm,omitempty" json:"NEQDtTm,omitempty"`
}

func (d DateTimeSearch2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("FrDtTm", d.FrDtTm),
		traversal.Optional("ToDtTm", d.ToDtTm),
		traversal.Optional("FrToDtTm", d.FrToDtTm),
		traversal.Optional("EQDtTm", d.EQDtTm),
		traversal.Optional("NEQDtTm", d.NEQDtTm),
	)
}

type DateTimePeriod1 struct {
	FrDtTm iso20022.ISODateTime `xml:"FrDtTm" json:"FrDtTm" validate:"required"`
	ToDtTm iso20022.ISODateTime `xml:"ToDtTm" json:"ToDtTm" validate:"required"`
}

func (d DateTimePeriod1) Validate() error {
	return traversal.Walk(
		traversal.Field("FrDtTm", d.FrDtTm),
		traversal.Field("ToDtTm", d.ToDtTm),
	)
}

type SystemPartyType1Choice struct {
	Cd    *iso20022.ExternalSystemPartyType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *iso20022.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (s SystemPartyType1Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", s.Cd),
		traversal.Optional("Prtry", s.Prtry),
	)
}

type PartyIdentification136 struct {
	ID  PartyIdentification120Choice `xml:"Id" json:"Id" validate:"required"`
	LEI *iso20022.LEIIdentifier      `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (p PartyIdentification136) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", p.ID),
		traversal.Optional("LEI", p.LEI),
	)
}

type PartyIdentification120Choice struct {
	AnyBIC   *iso20022.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryID  *GenericIdentification36          `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *iso20022.NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (p PartyIdentification120Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("AnyBIC", p.AnyBIC),
		traversal.Optional("PrtryId", p.PrtryID),
		traversal.Optional("NmAndAdr", p.NmAndAdr),
	)
}

type GenericIdentification36 struct {
	ID      iso20022.Max35Text  `xml:"Id" json:"Id" validate:"required"`
	Issr    iso20022.Max35Text  `xml:"Issr" json:"Issr" validate:"required"`
	SchmeNm *iso20022.Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification36) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Field("Issr", g.Issr),
		traversal.Optional("SchmeNm", g.SchmeNm),
	)
}

// PartyLockStatus1 reports whether a party is locked and why.
type PartyLockStatus1 struct {
	VldFr  *iso20022.ISODate        `xml:"VldFr,omitempty" json:"VldFr,omitempty"`
	Sts    iso20022.LockStatus1Code `xml:"Sts" json:"Sts" validate:"required"`
	LckRsn []iso20022.Max35Text     `xml:"LckRsn,omitempty" json:"LckRsn,omitempty"`
}

func (p PartyLockStatus1) Validate() error {
	return traversal.Walk(
		traversal.Optional("VldFr", p.VldFr),
		traversal.Field("Sts", p.Sts),
		traversal.Each("LckRsn", p.LckRsn),
	)
}
