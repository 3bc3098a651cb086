package iso20022

import "github.com/jacoelho/iso20022/internal/simpletypes"

// External code sets are published outside the message schemas and change
// between releases, so only their length is checked here.

var (
	externalAccountIdentification1Code              = simpletypes.MustLookup("ExternalAccountIdentification1Code")
	externalAgreementType1Code                      = simpletypes.MustLookup("ExternalAgreementType1Code")
	externalCancellationReason1Code                 = simpletypes.MustLookup("ExternalCancellationReason1Code")
	externalCashAccountType1Code                    = simpletypes.MustLookup("ExternalCashAccountType1Code")
	externalCashClearingSystem1Code                 = simpletypes.MustLookup("ExternalCashClearingSystem1Code")
	externalCategoryPurpose1Code                    = simpletypes.MustLookup("ExternalCategoryPurpose1Code")
	externalClearingSystemIdentification1Code       = simpletypes.MustLookup("ExternalClearingSystemIdentification1Code")
	externalCreditorReferenceType1Code              = simpletypes.MustLookup("ExternalCreditorReferenceType1Code")
	externalDateType1Code                           = simpletypes.MustLookup("ExternalDateType1Code")
	externalDocumentAmountType1Code                 = simpletypes.MustLookup("ExternalDocumentAmountType1Code")
	externalDocumentLineType1Code                   = simpletypes.MustLookup("ExternalDocumentLineType1Code")
	externalDocumentType1Code                       = simpletypes.MustLookup("ExternalDocumentType1Code")
	externalFinancialInstitutionIdentification1Code = simpletypes.MustLookup("ExternalFinancialInstitutionIdentification1Code")
	externalGarnishmentType1Code                    = simpletypes.MustLookup("ExternalGarnishmentType1Code")
	externalLocalInstrument1Code                    = simpletypes.MustLookup("ExternalLocalInstrument1Code")
	externalMandateSetupReason1Code                 = simpletypes.MustLookup("ExternalMandateSetupReason1Code")
	externalOrganisationIdentification1Code         = simpletypes.MustLookup("ExternalOrganisationIdentification1Code")
	externalPersonIdentification1Code               = simpletypes.MustLookup("ExternalPersonIdentification1Code")
	externalProxyAccountType1Code                   = simpletypes.MustLookup("ExternalProxyAccountType1Code")
	externalPurpose1Code                            = simpletypes.MustLookup("ExternalPurpose1Code")
	externalServiceLevel1Code                       = simpletypes.MustLookup("ExternalServiceLevel1Code")
	externalSystemPartyType1Code                    = simpletypes.MustLookup("ExternalSystemPartyType1Code")
	externalValidationRuleScheme1Code               = simpletypes.MustLookup("ExternalValidationRuleScheme1Code")
)

type ExternalAccountIdentification1Code string

func (v ExternalAccountIdentification1Code) Validate() error { return externalAccountIdentification1Code.Check(string(v)) }

type ExternalAgreementType1Code string

func (v ExternalAgreementType1Code) Validate() error { return externalAgreementType1Code.Check(string(v)) }

type ExternalCancellationReason1Code string

func (v ExternalCancellationReason1Code) Validate() error { return externalCancellationReason1Code.Check(string(v)) }

type ExternalCashAccountType1Code string

func (v ExternalCashAccountType1Code) Validate() error { return externalCashAccountType1Code.Check(string(v)) }

type ExternalCashClearingSystem1Code string

func (v ExternalCashClearingSystem1Code) Validate() error { return externalCashClearingSystem1Code.Check(string(v)) }

type ExternalCategoryPurpose1Code string

func (v ExternalCategoryPurpose1Code) Validate() error { return externalCategoryPurpose1Code.Check(string(v)) }

type ExternalClearingSystemIdentification1Code string

func (v ExternalClearingSystemIdentification1Code) Validate() error { return externalClearingSystemIdentification1Code.Check(string(v)) }

type ExternalCreditorReferenceType1Code string

func (v ExternalCreditorReferenceType1Code) Validate() error { return externalCreditorReferenceType1Code.Check(string(v)) }

type ExternalDateType1Code string

func (v ExternalDateType1Code) Validate() error { return externalDateType1Code.Check(string(v)) }

type ExternalDocumentAmountType1Code string

func (v ExternalDocumentAmountType1Code) Validate() error { return externalDocumentAmountType1Code.Check(string(v)) }

type ExternalDocumentLineType1Code string

func (v ExternalDocumentLineType1Code) Validate() error { return externalDocumentLineType1Code.Check(string(v)) }

type ExternalDocumentType1Code string

func (v ExternalDocumentType1Code) Validate() error { return externalDocumentType1Code.Check(string(v)) }

type ExternalFinancialInstitutionIdentification1Code string

func (v ExternalFinancialInstitutionIdentification1Code) Validate() error { return externalFinancialInstitutionIdentification1Code.Check(string(v)) }

type ExternalGarnishmentType1Code string

func (v ExternalGarnishmentType1Code) Validate() error { return externalGarnishmentType1Code.Check(string(v)) }

type ExternalLocalInstrument1Code string

func (v ExternalLocalInstrument1Code) Validate() error { return externalLocalInstrument1Code.Check(string(v)) }

type ExternalMandateSetupReason1Code string

func (v ExternalMandateSetupReason1Code) Validate() error { return externalMandateSetupReason1Code.Check(string(v)) }

type ExternalOrganisationIdentification1Code string

func (v ExternalOrganisationIdentification1Code) Validate() error { return externalOrganisationIdentification1Code.Check(string(v)) }

type ExternalPersonIdentification1Code string

func (v ExternalPersonIdentification1Code) Validate() error { return externalPersonIdentification1Code.Check(string(v)) }

type ExternalProxyAccountType1Code string

func (v ExternalProxyAccountType1Code) Validate() error { return externalProxyAccountType1Code.Check(string(v)) }

type ExternalPurpose1Code string

func (v ExternalPurpose1Code) Validate() error { return externalPurpose1Code.Check(string(v)) }

type ExternalServiceLevel1Code string

func (v ExternalServiceLevel1Code) Validate() error { return externalServiceLevel1Code.Check(string(v)) }

type ExternalSystemPartyType1Code string

func (v ExternalSystemPartyType1Code) Validate() error { return externalSystemPartyType1Code.Check(string(v)) }

type ExternalValidationRuleScheme1Code string

func (v ExternalValidationRuleScheme1Code) Validate() error { return externalValidationRuleScheme1Code.Check(string(v)) }
