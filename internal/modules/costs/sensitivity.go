package costs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// MaxSweepPoints bounds the grid size of a single sweep.
const MaxSweepPoints = 1000

// SweepPoint is one evaluation of a sweep.
type SweepPoint struct {
	Value float64 `json:"value"`
	Total float64 `json:"total"`
}

// Sweep varies a single parameter over points evenly spaced values between
// its catalog minimum and maximum, holding every other parameter at its
// value in overrides, and returns the expected cost per birth at each value.
func Sweep(catalog parameters.Catalog, overrides []float64, name string, points int, selection Selection) ([]SweepPoint, error) {
	if points < 2 || points > MaxSweepPoints {
		return nil, fmt.Errorf("%w: points must be between 2 and %d, got %d", ErrInvalidSweep, MaxSweepPoints, points)
	}
	if len(overrides) != catalog.Len() {
		return nil, &parameters.CountMismatchError{Expected: catalog.Len(), Got: len(overrides)}
	}

	p, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	idx, _ := catalog.IndexOf(name)
	if p.Max < p.Min {
		return nil, fmt.Errorf("%w: parameter %q has max %v below min %v", ErrInvalidSweep, name, p.Max, p.Min)
	}

	grid := floats.Span(make([]float64, points), p.Min, p.Max)

	snapshot := make([]float64, len(overrides))
	copy(snapshot, overrides)

	out := make([]SweepPoint, 0, points)
	for _, v := range grid {
		snapshot[idx] = v
		total, err := ComputeSensitivityTotal(catalog, snapshot, selection)
		if err != nil {
			return nil, err
		}
		out = append(out, SweepPoint{Value: v, Total: total})
	}

	return out, nil
}
