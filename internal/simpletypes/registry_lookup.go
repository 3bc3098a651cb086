package simpletypes

// Lookup returns the simple type by name.
func Lookup(name string) (*SimpleType, bool) {
	item, ok := defaultRegistry.byName[name]
	return item, ok
}

// MustLookup returns the simple type and panics when unknown.
func MustLookup(name string) *SimpleType {
	item, ok := Lookup(name)
	if ok {
		return item
	}
	panic("simpletypes: unknown type " + name)
}

// All returns the catalogue in declaration order.
func All() []*SimpleType {
	if len(defaultRegistry.ordered) == 0 {
		return nil
	}
	items := make([]*SimpleType, len(defaultRegistry.ordered))
	copy(items, defaultRegistry.ordered)
	return items
}
