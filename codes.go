package iso20022

import "github.com/jacoelho/iso20022/internal/simpletypes"

// Closed code sets marshal as their code and refuse unknown codes when
// decoded from XML or JSON.

var (
	accountManagementType3Code   = simpletypes.MustLookup("AccountManagementType3Code")
	addressType2Code             = simpletypes.MustLookup("AddressType2Code")
	clearingChannel2Code         = simpletypes.MustLookup("ClearingChannel2Code")
	creditDebitCode              = simpletypes.MustLookup("CreditDebitCode")
	frequency6Code               = simpletypes.MustLookup("Frequency6Code")
	genderCode                   = simpletypes.MustLookup("GenderCode")
	lockStatus1Code              = simpletypes.MustLookup("LockStatus1Code")
	mandateClassification1Code   = simpletypes.MustLookup("MandateClassification1Code")
	namePrefix2Code              = simpletypes.MustLookup("NamePrefix2Code")
	partyIdentificationType7Code = simpletypes.MustLookup("PartyIdentificationType7Code")
	paymentMethod4Code           = simpletypes.MustLookup("PaymentMethod4Code")
	preferredContactMethod2Code  = simpletypes.MustLookup("PreferredContactMethod2Code")
	priority2Code                = simpletypes.MustLookup("Priority2Code")
	reportPeriodActivity1Code    = simpletypes.MustLookup("ReportPeriodActivity1Code")
	reportingMessageStatus1Code  = simpletypes.MustLookup("ReportingMessageStatus1Code")
	requestType1Code             = simpletypes.MustLookup("RequestType1Code")
	requestType2Code             = simpletypes.MustLookup("RequestType2Code")
	residenceType1Code           = simpletypes.MustLookup("ResidenceType1Code")
	sequenceType3Code            = simpletypes.MustLookup("SequenceType3Code")
	settlementMethod1Code        = simpletypes.MustLookup("SettlementMethod1Code")
	taxRecordPeriod1Code         = simpletypes.MustLookup("TaxRecordPeriod1Code")
)

// decodeCode returns text when it is one of the codes of st.
func decodeCode(st *simpletypes.SimpleType, text []byte) (string, error) {
	code := string(text)
	if err := st.Check(code); err != nil {
		return "", err
	}
	return code, nil
}

// AccountManagementType3Code identifies the kind of account management instruction a status is requested for.
type AccountManagementType3Code string

const (
	AccountManagementType3CodeACCM AccountManagementType3Code = "ACCM"
	AccountManagementType3CodeACCO AccountManagementType3Code = "ACCO"
	AccountManagementType3CodeGACC AccountManagementType3Code = "GACC"
	AccountManagementType3CodeACST AccountManagementType3Code = "ACST"
)

func (v AccountManagementType3Code) Validate() error { return accountManagementType3Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *AccountManagementType3Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(accountManagementType3Code, text)
	if err != nil {
		return err
	}
	*v = AccountManagementType3Code(code)
	return nil
}

// AddressType2Code identifies the nature of a postal address.
type AddressType2Code string

const (
	AddressType2CodeADDR AddressType2Code = "ADDR"
	AddressType2CodePBOX AddressType2Code = "PBOX"
	AddressType2CodeHOME AddressType2Code = "HOME"
	AddressType2CodeBIZZ AddressType2Code = "BIZZ"
	AddressType2CodeMLTO AddressType2Code = "MLTO"
	AddressType2CodeDLVY AddressType2Code = "DLVY"
)

func (v AddressType2Code) Validate() error { return addressType2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *AddressType2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(addressType2Code, text)
	if err != nil {
		return err
	}
	*v = AddressType2Code(code)
	return nil
}

type ClearingChannel2Code string

const (
	ClearingChannel2CodeRTGS ClearingChannel2Code = "RTGS"
	ClearingChannel2CodeRTNS ClearingChannel2Code = "RTNS"
	ClearingChannel2CodeMPNS ClearingChannel2Code = "MPNS"
	ClearingChannel2CodeBOOK ClearingChannel2Code = "BOOK"
)

func (v ClearingChannel2Code) Validate() error { return clearingChannel2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ClearingChannel2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(clearingChannel2Code, text)
	if err != nil {
		return err
	}
	*v = ClearingChannel2Code(code)
	return nil
}

// CreditDebitCode identifies whether an entry is a credit or a debit.
type CreditDebitCode string

const (
	CreditDebitCodeCRDT CreditDebitCode = "CRDT"
	CreditDebitCodeDBIT CreditDebitCode = "DBIT"
)

func (v CreditDebitCode) Validate() error { return creditDebitCode.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CreditDebitCode) UnmarshalText(text []byte) error {
	code, err := decodeCode(creditDebitCode, text)
	if err != nil {
		return err
	}
	*v = CreditDebitCode(code)
	return nil
}

type Frequency6Code string

const (
	Frequency6CodeYEAR Frequency6Code = "YEAR"
	Frequency6CodeMNTH Frequency6Code = "MNTH"
	Frequency6CodeQURT Frequency6Code = "QURT"
	Frequency6CodeMIAN Frequency6Code = "MIAN"
	Frequency6CodeWEEK Frequency6Code = "WEEK"
	Frequency6CodeDAIL Frequency6Code = "DAIL"
	Frequency6CodeADHO Frequency6Code = "ADHO"
	Frequency6CodeINDA Frequency6Code = "INDA"
	Frequency6CodeFRTN Frequency6Code = "FRTN"
)

func (v Frequency6Code) Validate() error { return frequency6Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Frequency6Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(frequency6Code, text)
	if err != nil {
		return err
	}
	*v = Frequency6Code(code)
	return nil
}

type GenderCode string

const (
	GenderCodeMALE GenderCode = "MALE"
	GenderCodeFEMA GenderCode = "FEMA"
)

func (v GenderCode) Validate() error { return genderCode.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *GenderCode) UnmarshalText(text []byte) error {
	code, err := decodeCode(genderCode, text)
	if err != nil {
		return err
	}
	*v = GenderCode(code)
	return nil
}

type LockStatus1Code string

const (
	LockStatus1CodeLOCK LockStatus1Code = "LOCK"
	LockStatus1CodeULCK LockStatus1Code = "ULCK"
)

func (v LockStatus1Code) Validate() error { return lockStatus1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *LockStatus1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(lockStatus1Code, text)
	if err != nil {
		return err
	}
	*v = LockStatus1Code(code)
	return nil
}

type MandateClassification1Code string

const (
	MandateClassification1CodeFIXE MandateClassification1Code = "FIXE"
	MandateClassification1CodeUSGB MandateClassification1Code = "USGB"
	MandateClassification1CodeVARI MandateClassification1Code = "VARI"
)

func (v MandateClassification1Code) Validate() error { return mandateClassification1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *MandateClassification1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(mandateClassification1Code, text)
	if err != nil {
		return err
	}
	*v = MandateClassification1Code(code)
	return nil
}

type NamePrefix2Code string

const (
	NamePrefix2CodeDOCT NamePrefix2Code = "DOCT"
	NamePrefix2CodeMADM NamePrefix2Code = "MADM"
	NamePrefix2CodeMISS NamePrefix2Code = "MISS"
	NamePrefix2CodeMIST NamePrefix2Code = "MIST"
	NamePrefix2CodeMIKS NamePrefix2Code = "MIKS"
)

func (v NamePrefix2Code) Validate() error { return namePrefix2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *NamePrefix2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(namePrefix2Code, text)
	if err != nil {
		return err
	}
	*v = NamePrefix2Code(code)
	return nil
}

// PartyIdentificationType7Code identifies the kind of document identifying a party.
type PartyIdentificationType7Code string

const (
	PartyIdentificationType7CodeATIN PartyIdentificationType7Code = "ATIN"
	PartyIdentificationType7CodeIDCD PartyIdentificationType7Code = "IDCD"
	PartyIdentificationType7CodeNRIN PartyIdentificationType7Code = "NRIN"
	PartyIdentificationType7CodeOTHR PartyIdentificationType7Code = "OTHR"
	PartyIdentificationType7CodePASS PartyIdentificationType7Code = "PASS"
	PartyIdentificationType7CodePOCD PartyIdentificationType7Code = "POCD"
	PartyIdentificationType7CodeSOCS PartyIdentificationType7Code = "SOCS"
	PartyIdentificationType7CodeSRSA PartyIdentificationType7Code = "SRSA"
	PartyIdentificationType7CodeGUNL PartyIdentificationType7Code = "GUNL"
	PartyIdentificationType7CodeGTIN PartyIdentificationType7Code = "GTIN"
	PartyIdentificationType7CodeITIN PartyIdentificationType7Code = "ITIN"
	PartyIdentificationType7CodeCPFA PartyIdentificationType7Code = "CPFA"
	PartyIdentificationType7CodeAREG PartyIdentificationType7Code = "AREG"
	PartyIdentificationType7CodeDRLC PartyIdentificationType7Code = "DRLC"
	PartyIdentificationType7CodeEMID PartyIdentificationType7Code = "EMID"
	PartyIdentificationType7CodeNINV PartyIdentificationType7Code = "NINV"
	PartyIdentificationType7CodeINCL PartyIdentificationType7Code = "INCL"
	PartyIdentificationType7CodeGIIN PartyIdentificationType7Code = "GIIN"
)

func (v PartyIdentificationType7Code) Validate() error { return partyIdentificationType7Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PartyIdentificationType7Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(partyIdentificationType7Code, text)
	if err != nil {
		return err
	}
	*v = PartyIdentificationType7Code(code)
	return nil
}

type PaymentMethod4Code string

const (
	PaymentMethod4CodeCHK PaymentMethod4Code = "CHK"
	PaymentMethod4CodeTRF PaymentMethod4Code = "TRF"
	PaymentMethod4CodeDD  PaymentMethod4Code = "DD"
	PaymentMethod4CodeTRA PaymentMethod4Code = "TRA"
)

func (v PaymentMethod4Code) Validate() error { return paymentMethod4Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PaymentMethod4Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(paymentMethod4Code, text)
	if err != nil {
		return err
	}
	*v = PaymentMethod4Code(code)
	return nil
}

type PreferredContactMethod2Code string

const (
	PreferredContactMethod2CodeMAIL PreferredContactMethod2Code = "MAIL"
	PreferredContactMethod2CodeFAXX PreferredContactMethod2Code = "FAXX"
	PreferredContactMethod2CodeLETT PreferredContactMethod2Code = "LETT"
	PreferredContactMethod2CodeCELL PreferredContactMethod2Code = "CELL"
	PreferredContactMethod2CodeONLI PreferredContactMethod2Code = "ONLI"
	PreferredContactMethod2CodePHON PreferredContactMethod2Code = "PHON"
)

func (v PreferredContactMethod2Code) Validate() error { return preferredContactMethod2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PreferredContactMethod2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(preferredContactMethod2Code, text)
	if err != nil {
		return err
	}
	*v = PreferredContactMethod2Code(code)
	return nil
}

type Priority2Code string

const (
	Priority2CodeHIGH Priority2Code = "HIGH"
	Priority2CodeNORM Priority2Code = "NORM"
)

func (v Priority2Code) Validate() error { return priority2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Priority2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(priority2Code, text)
	if err != nil {
		return err
	}
	*v = Priority2Code(code)
	return nil
}

// ReportPeriodActivity1Code identifies reports that nothing happened in a reporting period.
type ReportPeriodActivity1Code string

const (
	ReportPeriodActivity1CodeNOTX ReportPeriodActivity1Code = "NOTX"
)

func (v ReportPeriodActivity1Code) Validate() error { return reportPeriodActivity1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ReportPeriodActivity1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(reportPeriodActivity1Code, text)
	if err != nil {
		return err
	}
	*v = ReportPeriodActivity1Code(code)
	return nil
}

// ReportingMessageStatus1Code identifies the status of a report accepted or rejected by a trade repository.
type ReportingMessageStatus1Code string

const (
	ReportingMessageStatus1CodeACPT ReportingMessageStatus1Code = "ACPT"
	ReportingMessageStatus1CodeACTC ReportingMessageStatus1Code = "ACTC"
	ReportingMessageStatus1CodePART ReportingMessageStatus1Code = "PART"
	ReportingMessageStatus1CodeRCVD ReportingMessageStatus1Code = "RCVD"
	ReportingMessageStatus1CodeRJCT ReportingMessageStatus1Code = "RJCT"
	ReportingMessageStatus1CodeRMDR ReportingMessageStatus1Code = "RMDR"
	ReportingMessageStatus1CodeWARN ReportingMessageStatus1Code = "WARN"
	ReportingMessageStatus1CodeINCF ReportingMessageStatus1Code = "INCF"
	ReportingMessageStatus1CodeCRPT ReportingMessageStatus1Code = "CRPT"
)

func (v ReportingMessageStatus1Code) Validate() error { return reportingMessageStatus1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ReportingMessageStatus1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(reportingMessageStatus1Code, text)
	if err != nil {
		return err
	}
	*v = ReportingMessageStatus1Code(code)
	return nil
}

type RequestType1Code string

const (
	RequestType1CodeRT01 RequestType1Code = "RT01"
	RequestType1CodeRT02 RequestType1Code = "RT02"
	RequestType1CodeRT03 RequestType1Code = "RT03"
	RequestType1CodeRT04 RequestType1Code = "RT04"
	RequestType1CodeRT05 RequestType1Code = "RT05"
)

func (v RequestType1Code) Validate() error { return requestType1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *RequestType1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(requestType1Code, text)
	if err != nil {
		return err
	}
	*v = RequestType1Code(code)
	return nil
}

type RequestType2Code string

const (
	RequestType2CodeRT11 RequestType2Code = "RT11"
	RequestType2CodeRT12 RequestType2Code = "RT12"
	RequestType2CodeRT13 RequestType2Code = "RT13"
	RequestType2CodeRT14 RequestType2Code = "RT14"
	RequestType2CodeRT15 RequestType2Code = "RT15"
)

func (v RequestType2Code) Validate() error { return requestType2Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *RequestType2Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(requestType2Code, text)
	if err != nil {
		return err
	}
	*v = RequestType2Code(code)
	return nil
}

type ResidenceType1Code string

const (
	ResidenceType1CodeDMST ResidenceType1Code = "DMST"
	ResidenceType1CodeFRGN ResidenceType1Code = "FRGN"
	ResidenceType1CodeMXED ResidenceType1Code = "MXED"
)

func (v ResidenceType1Code) Validate() error { return residenceType1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ResidenceType1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(residenceType1Code, text)
	if err != nil {
		return err
	}
	*v = ResidenceType1Code(code)
	return nil
}

// SequenceType3Code identifies the position of a direct debit in a series.
type SequenceType3Code string

const (
	SequenceType3CodeFRST SequenceType3Code = "FRST"
	SequenceType3CodeRCUR SequenceType3Code = "RCUR"
	SequenceType3CodeFNAL SequenceType3Code = "FNAL"
	SequenceType3CodeOOFF SequenceType3Code = "OOFF"
	SequenceType3CodeRPRE SequenceType3Code = "RPRE"
)

func (v SequenceType3Code) Validate() error { return sequenceType3Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SequenceType3Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(sequenceType3Code, text)
	if err != nil {
		return err
	}
	*v = SequenceType3Code(code)
	return nil
}

type SettlementMethod1Code string

const (
	SettlementMethod1CodeINDA SettlementMethod1Code = "INDA"
	SettlementMethod1CodeINGA SettlementMethod1Code = "INGA"
	SettlementMethod1CodeCOVE SettlementMethod1Code = "COVE"
	SettlementMethod1CodeCLRG SettlementMethod1Code = "CLRG"
)

func (v SettlementMethod1Code) Validate() error { return settlementMethod1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SettlementMethod1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(settlementMethod1Code, text)
	if err != nil {
		return err
	}
	*v = SettlementMethod1Code(code)
	return nil
}

type TaxRecordPeriod1Code string

const (
	TaxRecordPeriod1CodeMM01 TaxRecordPeriod1Code = "MM01"
	TaxRecordPeriod1CodeMM02 TaxRecordPeriod1Code = "MM02"
	TaxRecordPeriod1CodeMM03 TaxRecordPeriod1Code = "MM03"
	TaxRecordPeriod1CodeMM04 TaxRecordPeriod1Code = "MM04"
	TaxRecordPeriod1CodeMM05 TaxRecordPeriod1Code = "MM05"
	TaxRecordPeriod1CodeMM06 TaxRecordPeriod1Code = "MM06"
	TaxRecordPeriod1CodeMM07 TaxRecordPeriod1Code = "MM07"
	TaxRecordPeriod1CodeMM08 TaxRecordPeriod1Code = "MM08"
	TaxRecordPeriod1CodeMM09 TaxRecordPeriod1Code = "MM09"
	TaxRecordPeriod1CodeMM10 TaxRecordPeriod1Code = "MM10"
	TaxRecordPeriod1CodeMM11 TaxRecordPeriod1Code = "MM11"
	TaxRecordPeriod1CodeMM12 TaxRecordPeriod1Code = "MM12"
	TaxRecordPeriod1CodeQTR1 TaxRecordPeriod1Code = "QTR1"
	TaxRecordPeriod1CodeQTR2 TaxRecordPeriod1Code = "QTR2"
	TaxRecordPeriod1CodeQTR3 TaxRecordPeriod1Code = "QTR3"
	TaxRecordPeriod1CodeQTR4 TaxRecordPeriod1Code = "QTR4"
	TaxRecordPeriod1CodeHLF1 TaxRecordPeriod1Code = "HLF1"
	TaxRecordPeriod1CodeHLF2 TaxRecordPeriod1Code = "HLF2"
)

func (v TaxRecordPeriod1Code) Validate() error { return taxRecordPeriod1Code.Check(string(v)) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *TaxRecordPeriod1Code) UnmarshalText(text []byte) error {
	code, err := decodeCode(taxRecordPeriod1Code, text)
	if err != nil {
		return err
	}
	*v = TaxRecordPeriod1Code(code)
	return nil
}
