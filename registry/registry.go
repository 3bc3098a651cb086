// Package registry maps ISO 20022 message identifiers and XML namespaces to
// the Document types that model them.
package registry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jacoelho/iso20022/acmt"
	"github.com/jacoelho/iso20022/admi"
	"github.com/jacoelho/iso20022/auth"
	"github.com/jacoelho/iso20022/camt"
	"github.com/jacoelho/iso20022/reda"
)

// Message is a decoded message Document.
type Message interface {
	Validate() error
}

// Definition describes a registered message definition.
type Definition struct {
	// ID is the message identifier, e.g. "camt.056.001.11".
	ID string
	// Namespace is the XML namespace of the Document element.
	Namespace string
	// Root is the XML name of the message element inside Document.
	Root string
	// New returns a pointer to an empty Document, ready to be decoded into.
	New func() Message
}

type registry struct {
	byID        map[string]Definition
	byNamespace map[string]Definition
	ordered     []Definition
}

var defaultRegistry = mustRegistry([]Definition{
	{ID: acmt.MessageID, Namespace: acmt.Namespace, Root: "ReqForAcctMgmtStsRpt", New: func() Message { return new(acmt.Document) }},
	{ID: admi.MessageID, Namespace: admi.Namespace, Root: "SysEvtNtfctn", New: func() Message { return new(admi.Document) }},
	{ID: auth.MessageID, Namespace: auth.Namespace, Root: "SctiesFincgRptgTxStsAdvc", New: func() Message { return new(auth.Document) }},
	{ID: camt.MessageID, Namespace: camt.Namespace, Root: "FIToFIPmtCxlReq", New: func() Message { return new(camt.Document) }},
	{ID: reda.MessageID, Namespace: reda.Namespace, Root: "PtyQry", New: func() Message { return new(reda.Document) }},
})

func mustRegistry(items []Definition) registry {
	r, err := newRegistry(items)
	if err != nil {
		panic(err)
	}
	return r
}

func newRegistry(items []Definition) (registry, error) {
	r := registry{
		byID:        make(map[string]Definition, len(items)),
		byNamespace: make(map[string]Definition, len(items)),
		ordered:     make([]Definition, 0, len(items)),
	}
	for _, item := range items {
		if _, exists := r.byID[item.ID]; exists {
			return registry{}, fmt.Errorf("registry: duplicate message %s", item.ID)
		}
		if other, exists := r.byNamespace[item.Namespace]; exists {
			return registry{}, fmt.Errorf("registry: namespace %s of %s already used by %s", item.Namespace, item.ID, other.ID)
		}
		r.byID[item.ID] = item
		r.byNamespace[item.Namespace] = item
		r.ordered = append(r.ordered, item)
	}
	slices.SortFunc(r.ordered, func(a, b Definition) int { return cmp.Compare(a.ID, b.ID) })
	return r, nil
}

// Lookup returns the definition for a message identifier.
func Lookup(id string) (Definition, bool) {
	d, ok := defaultRegistry.byID[id]
	return d, ok
}

// ByNamespace returns the definition whose Document lives in namespace.
func ByNamespace(namespace string) (Definition, bool) {
	d, ok := defaultRegistry.byNamespace[namespace]
	return d, ok
}

// All returns the registered definitions ordered by identifier.
func All() []Definition {
	items := make([]Definition, len(defaultRegistry.ordered))
	copy(items, defaultRegistry.ordered)
	return items
}
