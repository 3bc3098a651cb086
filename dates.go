package iso20022

import (
	"strconv"

	"github.com/jacoelho/iso20022/internal/simpletypes"
)

// Dates, times and indicators carry no restriction. Their lexical form is
// left to the decoder.

var (
	isoDate                    = simpletypes.MustLookup("ISODate")
	isoDateTime                = simpletypes.MustLookup("ISODateTime")
	isoYear                    = simpletypes.MustLookup("ISOYear")
	trueFalseIndicator         = simpletypes.MustLookup("TrueFalseIndicator")
	yesNoIndicator             = simpletypes.MustLookup("YesNoIndicator")
	requestedIndicator         = simpletypes.MustLookup("RequestedIndicator")
	groupCancellationIndicator = simpletypes.MustLookup("GroupCancellationIndicator")
)

// ISODate is a calendar date in the format YYYY-MM-DD.
type ISODate string

func (v ISODate) Validate() error { return isoDate.Check(string(v)) }

// ISODateTime is a date and time in the format YYYY-MM-DDThh:mm:ss.
type ISODateTime string

func (v ISODateTime) Validate() error { return isoDateTime.Check(string(v)) }

type ISOYear string

func (v ISOYear) Validate() error { return isoYear.Check(string(v)) }

type TrueFalseIndicator bool

func (v TrueFalseIndicator) Validate() error {
	return trueFalseIndicator.Check(strconv.FormatBool(bool(v)))
}

type YesNoIndicator bool

func (v YesNoIndicator) Validate() error {
	return yesNoIndicator.Check(strconv.FormatBool(bool(v)))
}

// RequestedIndicator marks a piece of information as requested in a query.
type RequestedIndicator bool

func (v RequestedIndicator) Validate() error {
	return requestedIndicator.Check(strconv.FormatBool(bool(v)))
}

// GroupCancellationIndicator reports whether a cancellation applies to a
// whole group of transactions.
type GroupCancellationIndicator bool

func (v GroupCancellationIndicator) Validate() error {
	return groupCancellationIndicator.Check(strconv.FormatBool(bool(v)))
}
