package costs

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// BirthsLookup resolves the yearly births count of a named territory.
type BirthsLookup interface {
	BirthsFor(ctx context.Context, territory string) (float64, error)
}

// Request is a cost computation request as received from a caller.
// Overrides may be nil to use the catalog's base values; Changes then replaces
// individual values by name. Births takes precedence over Territory; when both
// are empty a single birth is assumed.
type Request struct {
	Overrides []float64
	Changes   map[string]float64
	Births    *float64
	Territory string
	Selection Selection
}

// Service runs the cost engine against the catalog loaded at startup.
type Service struct {
	catalog parameters.Catalog
	births  BirthsLookup
	log     zerolog.Logger
}

// NewService creates a cost service. births may be nil, in which case
// requests naming a territory fail.
func NewService(catalog parameters.Catalog, births BirthsLookup, log zerolog.Logger) *Service {
	return &Service{
		catalog: catalog,
		births:  births,
		log:     log.With().Str("service", "costs").Logger(),
	}
}

// Catalog returns the catalog the service computes against.
func (s *Service) Catalog() parameters.Catalog {
	return s.catalog
}

// Compute runs the full pipeline for req.
func (s *Service) Compute(ctx context.Context, req Request) (*Result, error) {
	births := req.Births
	if births == nil && req.Territory != "" {
		if s.births == nil {
			return nil, fmt.Errorf("no births lookup configured for territory %q", req.Territory)
		}
		n, err := s.births.BirthsFor(ctx, req.Territory)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve births for %q: %w", req.Territory, err)
		}
		births = &n
	}

	values, err := s.snapshot(req.Overrides, req.Changes)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := ComputeCosts(s.catalog, values, births, req.Selection)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Float64("births", result.Births).
		Float64("territory_total", result.TerritoryTotal).
		Bool("empty_repartition", result.Repartition.Empty).
		Dur("elapsed", time.Since(start)).
		Msg("Computed costs")

	return result, nil
}

// SensitivityTotal returns the expected cost per birth for the request's
// parameter values. Births and Territory are ignored.
func (s *Service) SensitivityTotal(req Request) (float64, error) {
	values, err := s.snapshot(req.Overrides, req.Changes)
	if err != nil {
		return 0, err
	}
	return ComputeSensitivityTotal(s.catalog, values, req.Selection)
}

// Sweep varies one parameter across its range; see Sweep.
func (s *Service) Sweep(req Request, name string, points int) ([]SweepPoint, error) {
	values, err := s.snapshot(req.Overrides, req.Changes)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := Sweep(s.catalog, values, name, points, req.Selection)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("parameter", name).
		Int("points", points).
		Dur("elapsed", time.Since(start)).
		Msg("Computed sensitivity sweep")

	return result, nil
}

// snapshot substitutes the base values when no overrides were supplied and
// applies named changes on top.
func (s *Service) snapshot(overrides []float64, changes map[string]float64) ([]float64, error) {
	if overrides == nil {
		return s.catalog.Snapshot(changes)
	}
	if len(changes) == 0 {
		return overrides, nil
	}
	if len(overrides) != s.catalog.Len() {
		return nil, &parameters.CountMismatchError{Expected: s.catalog.Len(), Got: len(overrides)}
	}

	values := make([]float64, len(overrides))
	copy(values, overrides)
	for name, v := range changes {
		i, ok := s.catalog.IndexOf(name)
		if !ok {
			return nil, &parameters.UnknownParameterError{Name: name}
		}
		values[i] = v
	}
	return values, nil
}
