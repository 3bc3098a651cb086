package iso20022

import "github.com/jacoelho/iso20022/internal/traversal"

// Components shared by more than one message definition.

// GenericIdentification1 is an identification assigned under a named scheme.
type GenericIdentification1 struct {
	ID      Max35Text  `xml:"Id" json:"Id" validate:"required"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericIdentification1) Validate() error {
	return traversal.Walk(
		traversal.Field("Id", g.ID),
		traversal.Optional("SchmeNm", g.SchmeNm),
		traversal.Optional("Issr", g.Issr),
	)
}

type NameAndAddress5 struct {
	Nm  Max350Text      `xml:"Nm" json:"Nm" validate:"required"`
	Adr *PostalAddress1 `xml:"Adr,omitempty" json:"Adr,omitempty"`
}

func (n NameAndAddress5) Validate() error {
	return traversal.Walk(
		traversal.Field("Nm", n.Nm),
		traversal.Optional("Adr", n.Adr),
	)
}

// PostalAddress1 is a postal address with up to five unstructured lines.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	AdrLine     []Max70Text       `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
	StrtNm      *Max70Text        `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text        `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *Max16Text        `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text        `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text        `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        CountryCode       `xml:"Ctry" json:"Ctry" validate:"required"`
}

func (p PostalAddress1) Validate() error {
	return traversal.Walk(
		traversal.Optional("AdrTp", p.AdrTp),
		traversal.Each("AdrLine", p.AdrLine),
		traversal.Optional("StrtNm", p.StrtNm),
		traversal.Optional("BldgNb", p.BldgNb),
		traversal.Optional("PstCd", p.PstCd),
		traversal.Optional("TwnNm", p.TwnNm),
		traversal.Optional("CtrySubDvsn", p.CtrySubDvsn),
		traversal.Field("Ctry", p.Ctry),
	)
}

type DatePeriod2 struct {
	FrDt ISODate `xml:"FrDt" json:"FrDt" validate:"required"`
	ToDt ISODate `xml:"ToDt" json:"ToDt" validate:"required"`
}

func (d DatePeriod2) Validate() error {
	return traversal.Walk(
		traversal.Field("FrDt", d.FrDt),
		traversal.Field("ToDt", d.ToDt),
	)
}

// SupplementaryData1 carries data that the message definition does not
// define, together with where in the message it belongs.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp" validate:"required"`
}

func (s SupplementaryData1) Validate() error {
	return traversal.Walk(
		traversal.Optional("PlcAndNm", s.PlcAndNm),
		traversal.Field("Envlp", s.Envlp),
	)
}

// SupplementaryDataEnvelope1 holds the raw content of a supplementary data
// envelope. Its content belongs to another schema and is not checked.
type SupplementaryDataEnvelope1 struct {
	Content string `xml:",innerxml" json:"$value,omitempty"`
}

func (SupplementaryDataEnvelope1) Validate() error { return nil }
