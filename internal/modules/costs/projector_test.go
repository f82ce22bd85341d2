package costs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

func storeFor(t *testing.T, changes map[string]float64) parameters.Store {
	t.Helper()
	catalog := loadCatalog(t)
	store, err := parameters.NewStore(catalog).WithOverrides(snapshot(t, catalog, changes))
	require.NoError(t, err)
	return store
}

func TestPerBirth_WeightsByPrevalencePercent(t *testing.T) {
	perCase := Matrix{Rows: []Row{
		{Disorder: Depression, Label: Depression.Label(), Mother: 1000, Baby: 3000, Total: 4000},
		{Disorder: Psychosis, Label: Psychosis.Label(), Mother: 50000, Baby: 10000, Total: 60000},
	}}

	perBirth, total := PerBirth(perCase, Prevalence{Depression: 10, Psychosis: 0.5})

	require.Len(t, perBirth.Rows, 2)
	assert.InDelta(t, 100, perBirth.Rows[0].Mother, 1e-9)
	assert.InDelta(t, 300, perBirth.Rows[0].Baby, 1e-9)
	assert.InDelta(t, 400, perBirth.Rows[0].Total, 1e-9)
	assert.InDelta(t, 250, perBirth.Rows[1].Mother, 1e-9)
	assert.InDelta(t, 50, perBirth.Rows[1].Baby, 1e-9)

	require.NotNil(t, perBirth.Combined)
	assert.Equal(t, CombinedLabel, perBirth.Combined.Label)
	assert.Empty(t, perBirth.Combined.Disorder)
	assert.InDelta(t, 350, perBirth.Combined.Mother, 1e-9)
	assert.InDelta(t, 350, perBirth.Combined.Baby, 1e-9)
	assert.InDelta(t, 700, total, 1e-9)
	assert.Equal(t, total, perBirth.Combined.Total)

	for _, r := range perBirth.Rows {
		assert.Equal(t, r.Mother+r.Baby, r.Total)
	}
}

func TestPerBirth_Linearity(t *testing.T) {
	perCase := Matrix{Rows: []Row{
		{Disorder: Anxiety, Mother: 21625.6, Baby: 18594.8, Total: 40220.4},
	}}

	_, at10 := PerBirth(perCase, Prevalence{Anxiety: 10})
	_, at20 := PerBirth(perCase, Prevalence{Anxiety: 20})
	_, at0 := PerBirth(perCase, Prevalence{Anxiety: 0})

	assert.InEpsilon(t, 2*at10, at20, 1e-12)
	assert.Equal(t, 0.0, at0)
}

func TestPerBirth_Empty(t *testing.T) {
	perBirth, total := PerBirth(Matrix{Rows: []Row{}}, Prevalence{})

	assert.Empty(t, perBirth.Rows)
	require.NotNil(t, perBirth.Combined)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, perBirth.Combined.Total)
}

func TestResolveBirths(t *testing.T) {
	tests := []struct {
		name    string
		births  *float64
		want    float64
		wantErr bool
	}{
		{"absent defaults to one", nil, 1, false},
		{"zero", floatPtr(0), 0, false},
		{"country", floatPtr(756662), 756662, false},
		{"fractional", floatPtr(12.5), 12.5, false},
		{"negative", floatPtr(-1), 0, true},
		{"nan", floatPtr(math.NaN()), 0, true},
		{"infinite", floatPtr(math.Inf(1)), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBirths(tt.births)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBirthsCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit(t *testing.T) {
	rep := Split(SectorTotals{HealthSocial: 20, OtherPublic: 5, Society: 75}, 1000)

	assert.False(t, rep.Empty)
	assert.NoError(t, rep.Err())
	assert.InDelta(t, 0.20, rep.Shares.HealthSocial, 1e-12)
	assert.InDelta(t, 0.05, rep.Shares.OtherPublic, 1e-12)
	assert.InDelta(t, 0.75, rep.Shares.Society, 1e-12)
	assert.InDelta(t, 1, rep.Shares.Sum(), 1e-9)
	assert.InDelta(t, 200, rep.Amounts.HealthSocial, 1e-9)
	assert.InDelta(t, 50, rep.Amounts.OtherPublic, 1e-9)
	assert.InDelta(t, 750, rep.Amounts.Society, 1e-9)
	assert.InDelta(t, 1000, rep.Amounts.Sum(), 1e-6)
}

func TestSplit_ZeroSumIsEmpty(t *testing.T) {
	rep := Split(SectorTotals{}, 0)

	assert.True(t, rep.Empty)
	assert.ErrorIs(t, rep.Err(), ErrEmptyRepartition)
	assert.Equal(t, SectorTotals{}, rep.Shares)
	assert.Equal(t, SectorTotals{}, rep.Amounts)
}

func TestMotherShare(t *testing.T) {
	assert.Equal(t, 0.0, MotherShare(Matrix{}))
	assert.Equal(t, 0.0, MotherShare(Matrix{Combined: &Row{}}))
	assert.InDelta(t, 0.25, MotherShare(Matrix{Combined: &Row{Mother: 1, Baby: 3, Total: 4}}), 1e-12)
}
