package iso20022

import "github.com/jacoelho/iso20022/internal/simpletypes"

var (
	countryCode                  = simpletypes.MustLookup("CountryCode")
	activeCurrencyCode           = simpletypes.MustLookup("ActiveCurrencyCode")
	activeOrHistoricCurrencyCode = simpletypes.MustLookup("ActiveOrHistoricCurrencyCode")
	leiIdentifier                = simpletypes.MustLookup("LEIIdentifier")
	anyBICDec2014Identifier      = simpletypes.MustLookup("AnyBICDec2014Identifier")
	bicfiDec2014Identifier       = simpletypes.MustLookup("BICFIDec2014Identifier")
	iban2007Identifier           = simpletypes.MustLookup("IBAN2007Identifier")
	uuidV4Identifier             = simpletypes.MustLookup("UUIDv4Identifier")
)

// CountryCode is an ISO 3166 alpha-2 code.
type CountryCode string

func (v CountryCode) Validate() error { return countryCode.Check(string(v)) }

// ActiveCurrencyCode is an ISO 4217 alpha-3 code for a currency in use.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate() error { return activeCurrencyCode.Check(string(v)) }

// ActiveOrHistoricCurrencyCode is an ISO 4217 alpha-3 code for a current or
// withdrawn currency.
type ActiveOrHistoricCurrencyCode string

func (v ActiveOrHistoricCurrencyCode) Validate() error { return activeOrHistoricCurrencyCode.Check(string(v)) }

// LEIIdentifier is an ISO 17442 Legal Entity Identifier.
type LEIIdentifier string

func (v LEIIdentifier) Validate() error { return leiIdentifier.Check(string(v)) }

// AnyBICDec2014Identifier is an ISO 9362 Business Identifier Code.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate() error { return anyBICDec2014Identifier.Check(string(v)) }

// BICFIDec2014Identifier is an ISO 9362 Business Identifier Code of a
// financial institution.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate() error { return bicfiDec2014Identifier.Check(string(v)) }

// IBAN2007Identifier is an ISO 13616 International Bank Account Number.
type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate() error { return iban2007Identifier.Check(string(v)) }

// UUIDv4Identifier is a lower case RFC 4122 version 4 UUID.
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate() error { return uuidV4Identifier.Check(string(v)) }
