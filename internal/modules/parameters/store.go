package parameters

import "math"

// Store resolves parameter values over two layers: the catalog's base column
// and an optional override column. Resolve always reads the topmost layer
// present, so an override of 0 or a negative override still wins.
//
// Stores are values. WithOverrides returns a new Store and leaves both the
// receiver and the catalog untouched.
type Store struct {
	catalog   Catalog
	overrides []float64 // nil when no override layer is present
}

// NewStore returns a store with only the base layer.
func NewStore(catalog Catalog) Store {
	return Store{catalog: catalog}
}

// Catalog returns the catalog backing the store.
func (s Store) Catalog() Catalog {
	return s.catalog
}

// Resolve returns the value to use for name.
func (s Store) Resolve(name string) (float64, error) {
	i, ok := s.catalog.index[name]
	if !ok {
		return 0, &UnknownParameterError{Name: name}
	}
	if s.overrides != nil {
		return s.overrides[i], nil
	}
	return s.catalog.params[i].Value, nil
}

// WithOverrides returns a store whose override layer is values.
// values is positional and must cover every catalog entry; it is copied, so
// the caller may reuse the slice afterwards. NaN and infinite values are
// rejected.
func (s Store) WithOverrides(values []float64) (Store, error) {
	if len(values) != s.catalog.Len() {
		return Store{}, &CountMismatchError{Expected: s.catalog.Len(), Got: len(values)}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Store{}, &InvalidValueError{Name: s.catalog.params[i].Name, Value: v}
		}
	}

	layer := make([]float64, len(values))
	copy(layer, values)

	return Store{catalog: s.catalog, overrides: layer}, nil
}
