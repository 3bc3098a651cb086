package iso20022

import "github.com/jacoelho/iso20022/internal/simpletypes"

var (
	max4Text               = simpletypes.MustLookup("Max4Text")
	max16Text              = simpletypes.MustLookup("Max16Text")
	max34Text              = simpletypes.MustLookup("Max34Text")
	max35Text              = simpletypes.MustLookup("Max35Text")
	max50Text              = simpletypes.MustLookup("Max50Text")
	max52Text              = simpletypes.MustLookup("Max52Text")
	max70Text              = simpletypes.MustLookup("Max70Text")
	max72Text              = simpletypes.MustLookup("Max72Text")
	max105Text             = simpletypes.MustLookup("Max105Text")
	max128Text             = simpletypes.MustLookup("Max128Text")
	max140Text             = simpletypes.MustLookup("Max140Text")
	max256Text             = simpletypes.MustLookup("Max256Text")
	max350Text             = simpletypes.MustLookup("Max350Text")
	max500Text             = simpletypes.MustLookup("Max500Text")
	max1000Text            = simpletypes.MustLookup("Max1000Text")
	max1025Text            = simpletypes.MustLookup("Max1025Text")
	max2048Text            = simpletypes.MustLookup("Max2048Text")
	max10KBinary           = simpletypes.MustLookup("Max10KBinary")
	max4AlphaNumericText   = simpletypes.MustLookup("Max4AlphaNumericText")
	exact4AlphaNumericText = simpletypes.MustLookup("Exact4AlphaNumericText")
	exact2NumericText      = simpletypes.MustLookup("Exact2NumericText")
	max15NumericText       = simpletypes.MustLookup("Max15NumericText")
	phoneNumber            = simpletypes.MustLookup("PhoneNumber")
)

type Max4Text string

func (v Max4Text) Validate() error { return max4Text.Check(string(v)) }

type Max16Text string

func (v Max16Text) Validate() error { return max16Text.Check(string(v)) }

type Max34Text string

func (v Max34Text) Validate() error { return max34Text.Check(string(v)) }

// Max35Text is text of 1 to 35 characters, the most common free text type.
type Max35Text string

func (v Max35Text) Validate() error { return max35Text.Check(string(v)) }

type Max50Text string

func (v Max50Text) Validate() error { return max50Text.Check(string(v)) }

type Max52Text string

func (v Max52Text) Validate() error { return max52Text.Check(string(v)) }

type Max70Text string

func (v Max70Text) Validate() error { return max70Text.Check(string(v)) }

type Max72Text string

func (v Max72Text) Validate() error { return max72Text.Check(string(v)) }

type Max105Text string

func (v Max105Text) Validate() error { return max105Text.Check(string(v)) }

type Max128Text string

func (v Max128Text) Validate() error { return max128Text.Check(string(v)) }

type Max140Text string

func (v Max140Text) Validate() error { return max140Text.Check(string(v)) }

type Max256Text string

func (v Max256Text) Validate() error { return max256Text.Check(string(v)) }

type Max350Text string

func (v Max350Text) Validate() error { return max350Text.Check(string(v)) }

type Max500Text string

func (v Max500Text) Validate() error { return max500Text.Check(string(v)) }

type Max1000Text string

func (v Max1000Text) Validate() error { return max1000Text.Check(string(v)) }

type Max1025Text string

func (v Max1025Text) Validate() error { return max1025Text.Check(string(v)) }

type Max2048Text string

func (v Max2048Text) Validate() error { return max2048Text.Check(string(v)) }

// Max10KBinary carries up to 10240 characters of base64 encoded binary data.
type Max10KBinary string

func (v Max10KBinary) Validate() error { return max10KBinary.Check(string(v)) }

// Max4AlphaNumericText is 1 to 4 ASCII letters or digits.
type Max4AlphaNumericText string

func (v Max4AlphaNumericText) Validate() error { return max4AlphaNumericText.Check(string(v)) }

// Exact4AlphaNumericText is exactly 4 ASCII letters or digits.
type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate() error { return exact4AlphaNumericText.Check(string(v)) }

// Exact2NumericText is exactly 2 digits.
type Exact2NumericText string

func (v Exact2NumericText) Validate() error { return exact2NumericText.Check(string(v)) }

// Max15NumericText is 1 to 15 digits, used for counts.
type Max15NumericText string

func (v Max15NumericText) Validate() error { return max15NumericText.Check(string(v)) }

// PhoneNumber is a collection of information that identifies a phone number,
// as defined by telecom services, in the form +CC-NNNN.
type PhoneNumber string

func (v PhoneNumber) Validate() error { return phoneNumber.Check(string(v)) }
