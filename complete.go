package iso20022

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jacoelho/iso20022/errors"
)

// CompleteOption configures CheckComplete.
type CompleteOption func(*completeConfig)

type completeConfig struct {
	exclusiveChoices bool
}

// ExclusiveChoices makes CheckComplete report choices with more than one
// alternative populated.
func ExclusiveChoices() CompleteOption {
	return func(c *completeConfig) {
		c.exclusiveChoices = true
	}
}

var presence = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(elementName)
	return v
})

// CheckComplete reports every required element of v that is not populated.
// v must be a struct or a pointer to one. Findings are returned as an
// errors.ValidationList with paths built from XML element names.
//
// CheckComplete complements Validate: Validate checks the values that are
// present, CheckComplete checks that what must be present is.
func CheckComplete(v any, opts ...CompleteOption) error {
	var cfg completeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var list errors.ValidationList
	if err := presence().Struct(v); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice type directly
		if !ok {
			return fmt.Errorf("check complete: %w", err)
		}
		for _, fe := range fieldErrs {
			list = append(list, missing(fe))
		}
	}
	if cfg.exclusiveChoices {
		list = append(list, choiceConflicts(reflect.ValueOf(v), "")...)
	}

	if len(list) == 0 {
		return nil
	}
	return list
}

func missing(fe validator.FieldError) errors.Validation {
	msg := fmt.Sprintf("%s is required", fe.Field())
	if fe.Tag() == "min" {
		msg = fmt.Sprintf("%s requires at least %s occurrence", fe.Field(), fe.Param())
	}
	return errors.Validation{
		Code:    errors.ErrRequiredMissing,
		Type:    typeName(fe.Type()),
		Message: msg,
		Path:    namespacePath(fe.Namespace()),
	}
}

// namespacePath turns a validator namespace such as "Doc.Undrlyg[0].Case"
// into an element path "/Undrlyg[0]/Case".
func namespacePath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ""
	}
	return "/" + strings.ReplaceAll(rest, ".", "/")
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Name()
}

// elementName returns the XML name a field is encoded under, with
// attributes prefixed by "@". Fields without a usable XML name return "".
func elementName(f reflect.StructField) string {
	name, opts, _ := strings.Cut(f.Tag.Get("xml"), ",")
	if name == "-" || strings.Contains(name, " ") || f.Type == reflect.TypeOf(xml.Name{}) {
		return ""
	}
	if name != "" && hasOption(opts, "attr") {
		return "@" + name
	}
	return name
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == want {
			return true
		}
	}
	return false
}

func choiceConflicts(v reflect.Value, path string) []errors.Validation {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return choiceConflicts(v.Elem(), path)
	case reflect.Slice:
		var out []errors.Validation
		for i := range v.Len() {
			out = append(out, choiceConflicts(v.Index(i), path+"["+strconv.Itoa(i)+"]")...)
		}
		return out
	case reflect.Struct:
	default:
		return nil
	}

	t := v.Type()
	var out []errors.Validation
	if strings.HasSuffix(t.Name(), "Choice") {
		var chosen, alternatives []string
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := fieldPathName(f)
			alternatives = append(alternatives, name)
			if !v.Field(i).IsZero() {
				chosen = append(chosen, name)
			}
		}
		if len(chosen) > 1 {
			out = append(out, errors.Validation{
				Code:     errors.ErrChoiceConflict,
				Type:     t.Name(),
				Message:  fmt.Sprintf("%s has more than one alternative populated", t.Name()),
				Path:     path,
				Expected: alternatives,
				Actual:   strings.Join(chosen, ", "),
			})
		}
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		out = append(out, choiceConflicts(v.Field(i), path+"/"+fieldPathName(f))...)
	}
	return out
}

func fieldPathName(f reflect.StructField) string {
	if name := elementName(f); name != "" {
		return name
	}
	return f.Name
}
