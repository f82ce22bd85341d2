package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParams() []Parameter {
	return []Parameter{
		{Name: "Average weekly income of a woman", Value: 520, Min: 200, Max: 1500, Step: 10, Unit: "€", Category: CategoryEconomic},
		{Name: "Prevalence of depression", Value: 10, Min: 0, Max: 30, Step: 0.5, Unit: "%", Category: CategoryMedical},
		{Name: "Average duration of perinatal depression", Value: 1.5, Unit: "years", Category: CategoryDepressionMother},
	}
}

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Len())

	i, ok := catalog.IndexOf("Prevalence of depression")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 10.0, catalog.At(i).Value)

	_, ok = catalog.IndexOf("missing")
	assert.False(t, ok)
}

func TestNewCatalog_TrimsNames(t *testing.T) {
	params := sampleParams()
	params[0].Name = "  Average weekly income of a woman "

	catalog, err := NewCatalog(params)
	require.NoError(t, err)

	p, err := catalog.Lookup("Average weekly income of a woman")
	require.NoError(t, err)
	assert.Equal(t, 520.0, p.Value)
}

func TestNewCatalog_Rejects(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		params := append(sampleParams(), Parameter{Name: "Prevalence of depression", Value: 3})
		_, err := NewCatalog(params)
		assert.ErrorIs(t, err, ErrDuplicateParameter)
	})

	t.Run("empty name", func(t *testing.T) {
		params := append(sampleParams(), Parameter{Name: "   "})
		_, err := NewCatalog(params)
		assert.Error(t, err)
	})
}

func TestCatalog_ZeroValue(t *testing.T) {
	var catalog Catalog
	assert.Equal(t, 0, catalog.Len())
	assert.Empty(t, catalog.BaseValues())

	_, err := catalog.Lookup("anything")
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	params := sampleParams()
	catalog, err := NewCatalog(params)
	require.NoError(t, err)

	params[0].Value = -1
	assert.Equal(t, 520.0, catalog.At(0).Value, "input slice is not retained")

	list := catalog.Parameters()
	list[0].Value = -2
	assert.Equal(t, 520.0, catalog.At(0).Value)

	base := catalog.BaseValues()
	base[0] = -3
	assert.Equal(t, []float64{520, 10, 1.5}, catalog.BaseValues())
}

func TestCatalog_ByCategory(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	medical := catalog.ByCategory(CategoryMedical)
	require.Len(t, medical, 1)
	assert.Equal(t, "Prevalence of depression", medical[0].Name)

	assert.Empty(t, catalog.ByCategory(CategoryPsychosisBaby))
}

func TestCatalog_Snapshot(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	values, err := catalog.Snapshot(map[string]float64{"Prevalence of depression": 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{520, 0, 1.5}, values)

	values, err = catalog.Snapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.BaseValues(), values)

	_, err = catalog.Snapshot(map[string]float64{"unknown": 1})
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown", unknown.Name)
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("finance").Valid())
}
