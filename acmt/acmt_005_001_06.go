package acmt

import (
	"encoding/xml"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/internal/traversal"
)

const (
	// MessageID identifies the RequestForAccountManagementStatusReportV06
	// message definition.
	MessageID = "acmt.005.001.06"
	// Namespace is the XML namespace of the Document element.
	Namespace = "urn:iso:std:iso:20022:tech:xsd:" + MessageID
)

// Document is the XML root of a RequestForAccountManagementStatusReportV06
// message.
type Document struct {
	XMLName              xml.Name                                   `xml:"urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06 Document" json:"-"`
	ReqForAcctMgmtStsRpt RequestForAccountManagementStatusReportV06 `xml:"ReqForAcctMgmtStsRpt" json:"ReqForAcctMgmtStsRpt" validate:"required"`
}

func (d Document) Validate() error {
	return traversal.Walk(
		traversal.Field("ReqForAcctMgmtStsRpt", d.ReqForAcctMgmtStsRpt),
	)
}

// RequestForAccountManagementStatusReportV06 is sent by an account owner or
// servicer to request the status of an account management instruction.
type RequestForAccountManagementStatusReportV06 struct {
	MsgID   MessageIdentification1             `xml:"MsgId" json:"MsgId" validate:"required"`
	ReqDtls AccountManagementMessageReference5 `xml:"ReqDtls" json:"ReqDtls" validate:"required"`
}

func (r RequestForAccountManagementStatusReportV06) Validate() error {
	return traversal.Walk(
		traversal.Field("MsgId", r.MsgID),
		traversal.Field("ReqDtls", r.ReqDtls),
	)
}

type MessageIdentification1 struct {
	ID      iso20022.Max35Text   `xml:"Id" json:"Id" validate:"required"`
	CreDtTm iso20022.ISODateTime `xml:"CreDtTm" json:"CreDtTm" validate:"required"`
}

func (m MessageIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", m.ID),
		traversal.Field("CreDtTm", m.CreDtTm),
	)
}

// AccountManagementMessageReference5 references the instruction whose status
// is requested.
type AccountManagementMessageReference5 struct {
	LkdRef      *LinkedMessage5Choice               `xml:"LkdRef,omitempty" json:"LkdRef,omitempty"`
	StsReqTp    iso20022.AccountManagementType3Code `xml:"StsReqTp" json:"StsReqTp" validate:"required"`
	AcctApplID  *iso20022.Max35Text                 `xml:"AcctApplId,omitempty" json:"AcctApplId,omitempty"`
	ExstgAcctID *Account23                          `xml:"ExstgAcctId,omitempty" json:"ExstgAcctId,omitempty"`
	InvstmtAcct *InvestmentAccount77                `xml:"InvstmtAcct,omitempty" json:"InvstmtAcct,omitempty"`
}

func (a AccountManagementMessageReference5) Validate() error {
	return traversal.Walk(
		traversal.Optional("LkdRef", a.LkdRef),
		traversal.Field("StsReqTp", a.StsReqTp),
		traversal.Optional("AcctApplId", a.AcctApplID),
		traversal.Optional("ExstgAcctId", a.ExstgAcctID),
		traversal.Optional("InvstmtAcct", a.InvstmtAcct),
	)
}

type LinkedMessage5Choice struct {
	PrvsRef *AdditionalReference13 `xml:"PrvsRef,omitempty" json:"PrvsRef,omitempty"`
	OthrRef *AdditionalReference13 `xml:"OthrRef,omitempty" json:"OthrRef,omitempty"`
}

func (l LinkedMessage5Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("PrvsRef", l.PrvsRef),
		traversal.Optional("OthrRef", l.OthrRef),
	)
}

type AdditionalReference13 struct {
	Ref     iso20022.Max35Text            `xml:"Ref" json:"Ref" validate:"required"`
	RefIssr *PartyIdentification125Choice `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
	MsgNm   *iso20022.Max35Text           `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
}

func (a AdditionalReference13) Validate() error {
	return traversal.Walk(
		traversal.Field("Ref", a.Ref),
		traversal.Optional("RefIssr", a.RefIssr),
		traversal.Optional("MsgNm", a.MsgNm),
	)
}

type Account23 struct {
	AcctID       iso20022.Max35Text               `xml:"AcctId" json:"AcctId" validate:"required"`
	RltdAcctDtls *iso20022.GenericIdentification1 `xml:"RltdAcctDtls,omitempty" json:"RltdAcctDtls,omitempty"`
}

func (a Account23) Validate() error {
	return traversal.Walk(
		traversal.Field("AcctId", a.AcctID),
		traversal.Optional("RltdAcctDtls", a.RltdAcctDtls),
	)
}

type InvestmentAccount77 struct {
	AcctID    iso20022.Max35Text            `xml:"AcctId" json:"AcctId" validate:"required"`
	AcctNm    *iso20022.Max35Text           `xml:"AcctNm,omitempty" json:"AcctNm,omitempty"`
	AcctDsgnt *iso20022.Max35Text           `xml:"AcctDsgnt,omitempty" json:"AcctDsgnt,omitempty"`
	OwnrID    *OwnerIdentification3Choice   `xml:"OwnrId,omitempty" json:"OwnrId,omitempty"`
	AcctSvcr  *PartyIdentification125Choice `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
}

func (i InvestmentAccount77) Validate() error {
	return traversal.Walk(
		traversal.Field("AcctId", i.AcctID),
		traversal.Optional("AcctNm", i.AcctNm),
		traversal.Optional("AcctDsgnt", i.AcctDsgnt),
		traversal.Optional("OwnrId", i.OwnrID),
		traversal.Optional("AcctSvcr", i.AcctSvcr),
	)
}

type OwnerIdentification3Choice struct {
	IndvOwnrID *IndividualPersonIdentification2Choice `xml:"IndvOwnrId,omitempty" json:"IndvOwnrId,omitempty"`
	OrgOwnrID  *PartyIdentification139                `xml:"OrgOwnrId,omitempty" json:"OrgOwnrId,omitempty"`
}

func (o OwnerIdentification3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("IndvOwnrId", o.IndvOwnrID),
		traversal.Optional("OrgOwnrId", o.OrgOwnrID),
	)
}

type IndividualPersonIdentification2Choice struct {
	IDNb   *GenericIdentification81 `xml:"IdNb,omitempty" json:"IdNb,omitempty"`
	PrsnNm *IndividualPerson30      `xml:"PrsnNm,omitempty" json:"PrsnNm,omitempty"`
}

func (i IndividualPersonIdentification2Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("IdNb", i.IDNb),
		traversal.Optional("PrsnNm", i.PrsnNm),
	)
}

type GenericIdentification81 struct {
	ID   iso20022.Max35Text         `xml:"Id" json:"Id" validate:"required"`
	IDTp OtherIdentification3Choice `xml:"IdTp" json:"IdTp" validate:"required"`
}

func (g GenericIdentification81) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Field("IdTp", g.IDTp),
	)
}

type OtherIdentification3Choice struct {
	Cd    *iso20022.PartyIdentificationType7Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification47               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (o OtherIdentification3Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("Cd", o.Cd),
		traversal.Optional("Prtry", o.Prtry),
	)
}

// GenericIdentification47 is a proprietary identification issued under a four
// character scheme.
type GenericIdentification47 struct {
	ID      iso20022.Exact4AlphaNumericText `xml:"Id" json:"Id" validate:"required"`
	Issr    iso20022.Max4AlphaNumericText   `xml:"Issr" json:"Issr" validate:"required"`
	SchmeNm *iso20022.Max4AlphaNumericText  `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification47) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Field("Issr", g.Issr),
		traversal.Optional("SchmeNm", g.SchmeNm),
	)
}

type IndividualPerson30 struct {
	GvnNm   *iso20022.Max35Text  `xml:"GvnNm,omitempty" json:"GvnNm,omitempty"`
	MddlNm  *iso20022.Max35Text  `xml:"MddlNm,omitempty" json:"MddlNm,omitempty"`
	Nm      iso20022.Max350Text  `xml:"Nm" json:"Nm" validate:"required"`
	Gndr    *iso20022.GenderCode `xml:"Gndr,omitempty" json:"Gndr,omitempty"`
	BirthDt *iso20022.ISODate    `xml:"BirthDt,omitempty" json:"BirthDt,omitempty"`
}

func (i IndividualPerson30) Validate() error {
	return traversal.Walk(
		traversal.Optional("GvnNm", i.GvnNm),
		traversal.Optional("MddlNm", i.MddlNm),
		traversal.Field("Nm", i.Nm),
		traversal.Optional("Gndr", i.Gndr),
		traversal.Optional("BirthDt", i.BirthDt),
	)
}

type PartyIdentification139 struct {
	Pty PartyIdentification125Choice `xml:"Pty" json:"Pty" validate:"required"`
	LEI *iso20022.LEIIdentifier      `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (p PartyIdentification139) Validate() error {
	return traversal.Walk(
		traversal.Field("Pty", p.Pty),
		traversal.Optional("LEI", p.LEI),
	)
}

// PartyIdentification125Choice identifies a party by BIC, proprietary
// identification or name and address.
type PartyIdentification125Choice struct {
	AnyBIC   *iso20022.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryID  *iso20022.GenericIdentification1  `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *iso20022.NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (p PartyIdentification125Choice) Validate() error {
	return traversal.Walk(
		traversal.Optional("AnyBIC", p.AnyBIC),
		traversal.Optional("PrtryId", p.PrtryID),
		traversal.Optional("NmAndAdr", p.NmAndAdr),
	)
}
