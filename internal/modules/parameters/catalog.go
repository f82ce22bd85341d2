package parameters

import (
	"fmt"
	"strings"
)

// Catalog is the ordered, read-only list of parameters.
//
// The zero value is an empty catalog. A Catalog is safe to copy and to share
// between goroutines: its fields are unexported and never written after
// NewCatalog returns, and every accessor hands out copies.
type Catalog struct {
	params []Parameter
	index  map[string]int
}

// NewCatalog builds a catalog from params in the given order.
// Names are trimmed and must be unique and non-empty.
func NewCatalog(params []Parameter) (Catalog, error) {
	owned := make([]Parameter, len(params))
	index := make(map[string]int, len(params))

	for i, p := range params {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return Catalog{}, fmt.Errorf("parameter at position %d has an empty name", i)
		}
		if prev, exists := index[p.Name]; exists {
			return Catalog{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateParameter, p.Name, prev, i)
		}
		index[p.Name] = i
		owned[i] = p
	}

	return Catalog{params: owned, index: index}, nil
}

// Len returns the number of parameters.
func (c Catalog) Len() int {
	return len(c.params)
}

// IndexOf returns the catalog position of name.
func (c Catalog) IndexOf(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// At returns the parameter at position i.
func (c Catalog) At(i int) Parameter {
	return c.params[i]
}

// Lookup returns the parameter called name.
func (c Catalog) Lookup(name string) (Parameter, error) {
	i, ok := c.index[name]
	if !ok {
		return Parameter{}, &UnknownParameterError{Name: name}
	}
	return c.params[i], nil
}

// Parameters returns a copy of every parameter in catalog order.
func (c Catalog) Parameters() []Parameter {
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// ByCategory returns the parameters of one category, in catalog order.
func (c Catalog) ByCategory(category Category) []Parameter {
	var out []Parameter
	for _, p := range c.params {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// BaseValues returns the base value column as a positional snapshot.
func (c Catalog) BaseValues() []float64 {
	out := make([]float64, len(c.params))
	for i, p := range c.params {
		out[i] = p.Value
	}
	return out
}

// Snapshot returns a positional snapshot equal to the base values with the
// named entries replaced. It is a convenience for callers that only know a
// few names; the store itself only accepts full positional vectors.
func (c Catalog) Snapshot(changes map[string]float64) ([]float64, error) {
	values := c.BaseValues()
	for name, v := range changes {
		i, ok := c.index[name]
		if !ok {
			return nil, &UnknownParameterError{Name: name}
		}
		values[i] = v
	}
	return values, nil
}
