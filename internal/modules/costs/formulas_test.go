package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

const formulaDelta = 1e-6

func assertSubject(t *testing.T, want, got SubjectCosts) {
	t.Helper()
	assert.InDelta(t, want.HealthSocial, got.HealthSocial, formulaDelta, "health/social")
	assert.InDelta(t, want.Education, got.Education, formulaDelta, "education")
	assert.InDelta(t, want.Justice, got.Justice, formulaDelta, "justice")
	assert.InDelta(t, want.QALY, got.QALY, formulaDelta, "qaly")
	assert.InDelta(t, want.Productivity, got.Productivity, formulaDelta, "productivity")
	assert.InDelta(t, want.Other, got.Other, formulaDelta, "other")
}

func TestAverageWeeklyIncome(t *testing.T) {
	r := &resolver{store: parameters.NewStore(loadCatalog(t))}

	// 520 * 0.75 * 0.70 * 1.60 * 0.5
	assert.InDelta(t, 218.4, averageWeeklyIncome(r), formulaDelta)
	assert.NoError(t, r.err)
}

func TestEvaluateGroups_BaseCatalog(t *testing.T) {
	groups, err := EvaluateGroups(parameters.NewStore(loadCatalog(t)), AllDisorders())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	tests := []struct {
		disorder Disorder
		mother   SubjectCosts
		baby     SubjectCosts
	}{
		{
			disorder: Depression,
			mother:   SubjectCosts{HealthSocial: 1500, QALY: 13500, Productivity: 9172.8},
			baby: SubjectCosts{
				HealthSocial: 4435.8, Education: 3000, Justice: 900,
				QALY: 36026, Productivity: 19420, Other: 6270,
			},
		},
		{
			disorder: Anxiety,
			mother:   SubjectCosts{HealthSocial: 2200, QALY: 12000, Productivity: 7425.6},
			baby: SubjectCosts{
				HealthSocial: 1952.8, Education: 800, Justice: 224,
				QALY: 7576, Productivity: 4468, Other: 3574,
			},
		},
		{
			disorder: Psychosis,
			mother:   SubjectCosts{HealthSocial: 12000, QALY: 36000, Productivity: 5000, Other: 2400},
			baby:     SubjectCosts{HealthSocial: 500, QALY: 8400},
		},
	}

	for i, tt := range tests {
		t.Run(string(tt.disorder), func(t *testing.T) {
			c, ok := groups[i].Costs()
			require.True(t, ok)
			assert.Equal(t, tt.disorder, c.Disorder)
			assertSubject(t, tt.mother, c.Mother)
			assertSubject(t, tt.baby, c.Baby)
		})
	}
}

func TestEvaluateGroups_DisabledGroupsAreAbsent(t *testing.T) {
	groups, err := EvaluateGroups(parameters.NewStore(loadCatalog(t)), Selection{Anxiety: true})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	_, ok := groups[0].Costs()
	assert.False(t, ok)
	assert.Equal(t, Depression, groups[0].Disorder)

	c, ok := groups[1].Costs()
	assert.True(t, ok)
	assert.Equal(t, Anxiety, c.Disorder)

	_, ok = groups[2].Costs()
	assert.False(t, ok)
}

func TestEvaluateGroups_MissingParameterAborts(t *testing.T) {
	catalog := catalogWithout(t, ParamCrimeVictimCost)

	groups, err := EvaluateGroups(parameters.NewStore(catalog), AllDisorders())
	require.Error(t, err)
	assert.Nil(t, groups)
	assert.ErrorIs(t, err, parameters.ErrUnknownParameter)

	var unknown *parameters.UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, ParamCrimeVictimCost, unknown.Name)
}

func TestEvaluateGroups_MissingParameterOfDisabledGroupIsIgnored(t *testing.T) {
	catalog := catalogWithout(t, ParamPsychosisChildDeathRisk)

	_, err := EvaluateGroups(parameters.NewStore(catalog), Selection{Depression: true, Anxiety: true})
	assert.NoError(t, err)
}

func TestEvaluateGroups_ZeroOverrideWins(t *testing.T) {
	catalog := loadCatalog(t)
	store, err := parameters.NewStore(catalog).WithOverrides(snapshot(t, catalog, map[string]float64{
		ParamValueOfLife: 0,
	}))
	require.NoError(t, err)

	groups, err := EvaluateGroups(store, Selection{Psychosis: true})
	require.NoError(t, err)

	c, ok := groups[2].Costs()
	require.True(t, ok)
	assert.Equal(t, 0.0, c.Baby.QALY)
	// Mother QALY keeps only the quality-of-life term: 0.4 * 1 * 30000
	assert.InDelta(t, 12000, c.Mother.QALY, formulaDelta)
}

func TestEvaluateGroups_NegativeOverrideIsUsed(t *testing.T) {
	catalog := loadCatalog(t)
	store, err := parameters.NewStore(catalog).WithOverrides(snapshot(t, catalog, map[string]float64{
		ParamDepressionPublicCost: -500,
	}))
	require.NoError(t, err)

	groups, err := EvaluateGroups(store, Selection{Depression: true})
	require.NoError(t, err)

	c, _ := groups[0].Costs()
	assert.Equal(t, -500.0, c.Mother.HealthSocial)
}
