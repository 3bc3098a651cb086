package simpletypes

type registry struct {
	byName  map[string]*SimpleType
	ordered []*SimpleType
}

var defaultRegistry = mustLoad(catalogYAML)

func mustLoad(data []byte) registry {
	items, err := parseCatalog(data)
	if err != nil {
		panic(err)
	}
	r, err := newRegistry(items)
	if err != nil {
		panic(err)
	}
	return r
}
