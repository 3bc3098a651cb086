// Package traversal validates composite values by delegating to the
// validators of their fields.
//
// A composite's Validate method lists its fields as steps in declaration
// order. Walk runs the steps and stops at the first failure; each step
// prefixes the failure's path with the XML element name of its field.
package traversal

import (
	"strconv"

	"github.com/jacoelho/iso20022/errors"
)

// Validator is implemented by every leaf and composite type.
type Validator interface {
	Validate() error
}

// Step validates one field of a composite.
type Step func() error

// Walk runs steps in order and returns the first failure.
func Walk(steps ...Step) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Field validates a required value.
func Field(name string, v Validator) Step {
	return func() error {
		return errors.Within(v.Validate(), name)
	}
}

// Optional validates v when it is present.
func Optional[V Validator](name string, v *V) Step {
	return func() error {
		if v == nil {
			return nil
		}
		return errors.Within((*v).Validate(), name)
	}
}

// Each validates the elements of a sequence in order and stops at the
// first invalid element.
func Each[V Validator](name string, items []V) Step {
	return func() error {
		for i, item := range items {
			if err := item.Validate(); err != nil {
				return errors.Within(err, name+"["+strconv.Itoa(i)+"]")
			}
		}
		return nil
	}
}

// Func runs check and attributes its failure to name. It covers parts of a
// value that are not fields of their own, such as an attribute.
func Func(name string, check func() error) Step {
	return func() error {
		return errors.Within(check(), name)
	}
}
