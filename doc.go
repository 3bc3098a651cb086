// Package iso20022 models ISO 20022 message components as Go values that
// validate themselves against the restrictions of their schema types.
//
// Simple types such as Max35Text or IBAN2007Identifier are named scalars.
// Their Validate method applies the facets the schema declares for the
// type, in the order minLength, maxLength, pattern, enumeration,
// minInclusive, and reports the first violation as an *errors.Validation.
//
// Components are structs whose Validate method checks every present field
// in declaration order and stops at the first failure. Required fields are
// values, optional fields are pointers and repeated fields are slices.
// Validate does not check that required fields are populated or that a
// choice has a single alternative; CheckComplete does.
//
// The message packages (acmt, admi, auth, camt, reda) declare the message
// definitions and their Document wrappers in terms of these types.
package iso20022
