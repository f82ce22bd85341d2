package costs

import (
	"fmt"
	"math"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// evaluation is the part of the pipeline shared by the main computation and
// the sensitivity runner: formulas, aggregation and prevalence weighting.
type evaluation struct {
	groups        []GroupResult
	perCase       Matrix
	sectors       SectorTotals
	perBirth      Matrix
	perBirthTotal float64
}

func evaluate(catalog parameters.Catalog, overrides []float64, selection Selection) (*evaluation, error) {
	store, err := parameters.NewStore(catalog).WithOverrides(overrides)
	if err != nil {
		return nil, err
	}

	groups, err := EvaluateGroups(store, selection)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate cost formulas: %w", err)
	}

	prevalence, err := readPrevalence(store, groups)
	if err != nil {
		return nil, fmt.Errorf("failed to read prevalence: %w", err)
	}

	perCase, sectors := Aggregate(groups)
	perBirth, total := PerBirth(perCase, prevalence)

	if err := checkFinite("per-case", perCase, sectors); err != nil {
		return nil, err
	}
	if err := checkFinite("per-birth", perBirth, SectorTotals{}); err != nil {
		return nil, err
	}

	return &evaluation{
		groups:        groups,
		perCase:       perCase,
		sectors:       sectors,
		perBirth:      perBirth,
		perBirthTotal: total,
	}, nil
}

// readPrevalence resolves the prevalence of every present group.
func readPrevalence(store parameters.Store, groups []GroupResult) (Prevalence, error) {
	prevalence := make(Prevalence, len(groups))
	for _, g := range groups {
		if _, ok := g.Costs(); !ok {
			continue
		}
		v, err := store.Resolve(prevalenceParams[g.Disorder])
		if err != nil {
			return nil, err
		}
		prevalence[g.Disorder] = v
	}
	return prevalence, nil
}

// ComputeCosts runs the full pipeline for one parameter snapshot.
//
// overrides is positional and must have one value per catalog entry. births
// may be nil, in which case a single birth is assumed. Either the complete
// result is returned or an error is; a degenerate repartition (no disorder
// selected) is not an error and is reported by Result.Repartition.Err.
func ComputeCosts(catalog parameters.Catalog, overrides []float64, births *float64, selection Selection) (*Result, error) {
	n, err := ResolveBirths(births)
	if err != nil {
		return nil, err
	}

	ev, err := evaluate(catalog, overrides, selection)
	if err != nil {
		return nil, err
	}

	territoryTotal := ev.perBirthTotal * n
	if math.IsInf(territoryTotal, 0) {
		return nil, fmt.Errorf("%w: territory total overflows for %v births", ErrNonFiniteResult, n)
	}

	return &Result{
		Groups:         presentCosts(ev.groups),
		PerCase:        ev.perCase,
		PerBirth:       ev.perBirth,
		PerBirthTotal:  ev.perBirthTotal,
		Births:         n,
		TerritoryTotal: territoryTotal,
		MotherShare:    MotherShare(ev.perBirth),
		Sectors:        ev.sectors,
		Repartition:    Split(ev.sectors, territoryTotal),
	}, nil
}

// ComputeSensitivityTotal returns the expected cost per birth for one
// parameter snapshot, independent of any territory. It runs the same code
// as ComputeCosts, so for equal inputs it returns exactly
// ComputeCosts(...).PerBirthTotal.
func ComputeSensitivityTotal(catalog parameters.Catalog, overrides []float64, selection Selection) (float64, error) {
	ev, err := evaluate(catalog, overrides, selection)
	if err != nil {
		return 0, err
	}
	return ev.perBirthTotal, nil
}

// checkFinite rejects a matrix or sector totals holding NaN or an infinity.
func checkFinite(stage string, m Matrix, sectors SectorTotals) error {
	rows := m.Rows
	if m.Combined != nil {
		rows = append(rows[:len(rows):len(rows)], *m.Combined)
	}
	for _, r := range rows {
		for _, v := range []float64{r.Mother, r.Baby, r.Total} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s %s cost is %v", ErrNonFiniteResult, stage, r.Label, v)
			}
		}
	}
	for _, v := range []float64{sectors.HealthSocial, sectors.OtherPublic, sectors.Society, sectors.Sum()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s sector total is %v", ErrNonFiniteResult, stage, v)
		}
	}
	return nil
}
