package facets

import (
	"fmt"
	"regexp"

	"github.com/jacoelho/iso20022/errors"
)

// Pattern represents a pattern facet.
// XSD patterns match the whole lexical value, so the compiled form is anchored.
type Pattern struct {
	// Original XSD pattern (for error messages)
	Value string
	regex *regexp.Regexp
}

// NewPattern compiles an XSD pattern once for reuse.
func NewPattern(value string) (*Pattern, error) {
	regex, err := regexp.Compile(`^(?:` + value + `)$`)
	if err != nil {
		return nil, fmt.Errorf("pattern facet: failed to compile pattern '%s': %w", value, err)
	}
	return &Pattern{Value: value, regex: regex}, nil
}

// Name returns the facet name
func (p *Pattern) Name() string {
	return "pattern"
}

// Validate checks if the whole value matches the pattern
func (p *Pattern) Validate(value Value, typeName string) error {
	if p.regex == nil {
		return fmt.Errorf("pattern not compiled: use NewPattern")
	}
	if !p.regex.MatchString(value.Lexical) {
		v := errors.NewValidationf(errors.ErrPatternMismatch, typeName,
			"%s does not match the required pattern", typeName)
		v.Expected = []string{p.Value}
		v.Actual = value.Lexical
		return v
	}
	return nil
}
