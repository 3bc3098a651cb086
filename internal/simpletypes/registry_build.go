package simpletypes

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/iso20022/internal/facets"
)

//go:embed catalog.yaml
var catalogYAML []byte

type definition struct {
	Name         string   `yaml:"name"`
	Base         Base     `yaml:"base"`
	MinLength    *int     `yaml:"minLength"`
	MaxLength    *int     `yaml:"maxLength"`
	Pattern      string   `yaml:"pattern"`
	Enumeration  []string `yaml:"enumeration"`
	MinInclusive string   `yaml:"minInclusive"`
}

type catalog struct {
	Types []definition `yaml:"types"`
}

func parseCatalog(data []byte) ([]*SimpleType, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("simpletypes: decode catalog: %w", err)
	}

	items := make([]*SimpleType, 0, len(c.Types))
	for _, def := range c.Types {
		item, err := def.build()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (d definition) build() (*SimpleType, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("simpletypes: catalog entry without name")
	}
	if !d.Base.valid() {
		return nil, fmt.Errorf("simpletypes: %s: unknown base %q", d.Name, d.Base)
	}

	var list []facets.Facet
	if d.MinLength != nil {
		list = append(list, &facets.MinLength{Value: *d.MinLength})
	}
	if d.MaxLength != nil {
		list = append(list, &facets.MaxLength{Value: *d.MaxLength})
	}
	if d.MinLength != nil && d.MaxLength != nil && *d.MinLength > *d.MaxLength {
		return nil, fmt.Errorf("simpletypes: %s: minLength %d exceeds maxLength %d", d.Name, *d.MinLength, *d.MaxLength)
	}
	if d.Pattern != "" {
		p, err := facets.NewPattern(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("simpletypes: %s: %w", d.Name, err)
		}
		list = append(list, p)
	}
	if len(d.Enumeration) > 0 {
		list = append(list, &facets.Enumeration{Values: slices.Clone(d.Enumeration)})
	}
	if d.MinInclusive != "" {
		if d.Base != BaseDecimal {
			return nil, fmt.Errorf("simpletypes: %s: minInclusive on %s base", d.Name, d.Base)
		}
		m, err := facets.NewMinInclusive(d.MinInclusive)
		if err != nil {
			return nil, fmt.Errorf("simpletypes: %s: %w", d.Name, err)
		}
		list = append(list, m)
	}

	slices.SortStableFunc(list, func(a, b facets.Facet) int {
		switch {
		case facets.Less(a, b):
			return -1
		case facets.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return &SimpleType{Name: d.Name, Base: d.Base, Facets: list}, nil
}

func newRegistry(items []*SimpleType) (registry, error) {
	byName := make(map[string]*SimpleType, len(items))
	ordered := make([]*SimpleType, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		if _, exists := byName[item.Name]; exists {
			return registry{}, fmt.Errorf("simpletypes: duplicate type %s", item.Name)
		}
		byName[item.Name] = item
		ordered = append(ordered, item)
	}

	return registry{
		byName:  byName,
		ordered: ordered,
	}, nil
}
