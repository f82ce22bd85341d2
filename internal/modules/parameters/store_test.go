package parameters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ResolveBaseLayer(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	store := NewStore(catalog)

	v, err := store.Resolve("Prevalence of depression")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = store.Resolve("Prevalence of nothing")
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestStore_OverrideAlwaysWins(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	tests := []struct {
		name     string
		override float64
	}{
		{"positive", 700},
		{"zero", 0},
		{"negative", -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(catalog).WithOverrides([]float64{tt.override, 10, 1.5})
			require.NoError(t, err)

			v, err := store.Resolve("Average weekly income of a woman")
			require.NoError(t, err)
			assert.Equal(t, tt.override, v)
		})
	}
}

func TestStore_WithOverridesIsIsolated(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	base := NewStore(catalog)
	values := []float64{1, 2, 3}
	layered, err := base.WithOverrides(values)
	require.NoError(t, err)

	values[0] = 99
	v, _ := layered.Resolve("Average weekly income of a woman")
	assert.Equal(t, 1.0, v, "override layer is copied")

	v, _ = base.Resolve("Average weekly income of a woman")
	assert.Equal(t, 520.0, v, "receiver is untouched")

	v, _ = layered.Resolve("Prevalence of depression")
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 520.0, catalog.At(0).Value)
}

func TestStore_WithOverridesCountMismatch(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	for _, values := range [][]float64{nil, {1, 2}, {1, 2, 3, 4}} {
		_, err := NewStore(catalog).WithOverrides(values)
		require.ErrorIs(t, err, ErrParameterCountMismatch)

		var mismatch *CountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 3, mismatch.Expected)
		assert.Equal(t, len(values), mismatch.Got)
	}
}

func TestStore_WithOverridesRejectsNonFinite(t *testing.T) {
	catalog, err := NewCatalog(sampleParams())
	require.NoError(t, err)

	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(catalog).WithOverrides([]float64{520, tt.value, 1.5})
			require.ErrorIs(t, err, ErrInvalidParameterValue)

			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "Prevalence of depression", invalid.Name)
		})
	}
}
