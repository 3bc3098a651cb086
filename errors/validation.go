package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the rule a value violated.
// Codes 1001-1005 are raised by simple type constraints; 1006 and 1007 by
// the structural checks in the root package.
type ErrorCode int

const (
	// ErrTooShort indicates a value shorter than its type's minimum length.
	ErrTooShort ErrorCode = 1001
	// ErrTooLong indicates a value longer than its type's maximum length.
	ErrTooLong ErrorCode = 1002
	// ErrBelowMinimum indicates a decimal value below its type's floor.
	ErrBelowMinimum ErrorCode = 1003
	// ErrInvalidCode indicates a value outside its type's code list.
	ErrInvalidCode ErrorCode = 1004
	// ErrPatternMismatch indicates a value that does not match its type's pattern.
	ErrPatternMismatch ErrorCode = 1005
	// ErrRequiredMissing indicates a required element with no value.
	ErrRequiredMissing ErrorCode = 1006
	// ErrChoiceConflict indicates more than one alternative of a choice is populated.
	ErrChoiceConflict ErrorCode = 1007
)

// String returns the kind name of the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrTooShort:
		return "TooShort"
	case ErrTooLong:
		return "TooLong"
	case ErrBelowMinimum:
		return "BelowMinimum"
	case ErrInvalidCode:
		return "InvalidCode"
	case ErrPatternMismatch:
		return "PatternMismatch"
	case ErrRequiredMissing:
		return "RequiredMissing"
	case ErrChoiceConflict:
		return "ChoiceConflict"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Validation describes a rule violation with the declared ISO 20022 type it
// occurred on and, once propagated through a composite, the element path
// from the validated root.
//
//nolint:errname // public API name uses ISO 20022 domain term.
type Validation struct {
	Code     ErrorCode
	Type     string
	Message  string
	Path     string
	Actual   string
	Expected []string
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%d %s] %s", int(v.Code), v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// NewValidation builds a Validation for a declared type with a code and message.
func NewValidation(code ErrorCode, typ, msg string) *Validation {
	return &Validation{Code: code, Type: typ, Message: msg}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, typ, format string, args ...any) *Validation {
	return NewValidation(code, typ, fmt.Sprintf(format, args...))
}

// Within records that err occurred inside the named element. Validation
// errors get the element prepended to their path; other errors are wrapped.
func Within(err error, element string) error {
	if err == nil {
		return nil
	}
	var v *Validation
	if errors.As(err, &v) && v != nil {
		scoped := *v
		scoped.Path = "/" + element + v.Path
		return &scoped
	}
	return fmt.Errorf("%s: %w", element, err)
}

// Code reports the code of the first validation error in err.
func Code(err error) (ErrorCode, bool) {
	list, ok := AsValidations(err)
	if !ok || len(list) == 0 {
		return 0, false
	}
	return list[0].Code, true
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	if err == nil {
		return nil, false
	}
	if list, ok := asValidationList(err); ok {
		return []Validation(list), true
	}
	var v *Validation
	if errors.As(err, &v) && v != nil {
		return []Validation{*v}, true
	}
	return nil, false
}

func asValidationList(err error) (ValidationList, bool) {
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
