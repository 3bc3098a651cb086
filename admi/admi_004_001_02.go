package admi

import (
	"encoding/xml"

	"github.com/jacoelho/iso20022"
	"github.com/jacoelho/iso20022/internal/traversal"
)

const (
	// MessageID identifies the SystemEventNotificationV02 message definition.
	MessageID = "admi.004.001.02"
	// Namespace is the XML namespace of the Document element.
	Namespace = "urn:iso:std:iso:20022:tech:xsd:" + MessageID
)

// Document is the XML root of a SystemEventNotificationV02 message.
type Document struct {
	XMLName      xml.Name                   `xml:"urn:iso:std:iso:20022:tech:xsd:admi.004.001.02 Document" json:"-"`
	SysEvtNtfctn SystemEventNotificationV02 `xml:"SysEvtNtfctn" json:"SysEvtNtfctn" validate:"required"`
}

func (d Document) Validate() error {
	return traversal.Walk(
		traversal.Field("SysEvtNtfctn", d.SysEvtNtfctn),
	)
}

// SystemEventNotificationV02 is sent by a central system to notify the
// occurrence of an event in that system.
type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf" validate:"required"`
}

func (m SystemEventNotificationV02) Validate() error {
	return traversal.Walk(
		traversal.Field("EvtInf", m.EvtInf),
	)
}

// Event2 describes an event that occurred in a central system.
type Event2 struct {
	EvtCd    iso20022.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd" validate:"required"`
	EvtParam []iso20022.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *iso20022.Max1000Text         `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *iso20022.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e Event2) Validate() error {
	return traversal.Walk(
		traversal.Field("EvtCd", e.EvtCd),
		traversal.Each("EvtParam", e.EvtParam),
		traversal.Optional("EvtDesc", e.EvtDesc),
		traversal.Optional("EvtTm", e.EvtTm),
	)
}
