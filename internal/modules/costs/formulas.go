package costs

import (
	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// resolver reads parameters for the formulas and keeps the first lookup
// failure. Once err is set every further read returns 0, and the caller
// discards whatever the formula produced.
type resolver struct {
	store parameters.Store
	err   error
}

func (r *resolver) val(name string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := r.store.Resolve(name)
	if err != nil {
		r.err = err
		return 0
	}
	return v
}

// groupFormula computes one disorder group from the store and the shared
// average post-birth weekly income.
type groupFormula func(r *resolver, income float64) DisorderCosts

var formulas = map[Disorder]groupFormula{
	Depression: depressionCosts,
	Anxiety:    anxietyCosts,
	Psychosis:  psychosisCosts,
}

// averageWeeklyIncome is the average weekly income of an affected woman after
// birth: employment before birth, return to work, and half weight for part
// time return.
func averageWeeklyIncome(r *resolver) float64 {
	return r.val(ParamWeeklyIncome) *
		r.val(ParamEmployedBeforeBirth) / 100 *
		r.val(ParamReturnToWork) / 100 *
		((r.val(ParamFullTimeReturn) / 100) + 1) *
		0.5
}

// EvaluateGroups runs the formulas of every disorder group against store.
// Disabled groups come back Absent. The result always has one entry per
// disorder, in Disorders order.
//
// A lookup of an unknown parameter aborts the whole evaluation: the error is
// returned and no group result is.
func EvaluateGroups(store parameters.Store, selection Selection) ([]GroupResult, error) {
	r := &resolver{store: store}

	income := averageWeeklyIncome(r)

	results := make([]GroupResult, 0, len(Disorders))
	for _, d := range Disorders {
		if !selection.Enabled(d) {
			results = append(results, Absent(d))
			continue
		}
		c := formulas[d](r, income)
		c.Disorder = d
		results = append(results, Present(c))
	}

	if r.err != nil {
		return nil, r.err
	}
	return results, nil
}
