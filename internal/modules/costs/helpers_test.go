package costs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psyperinat/psycost/internal/modules/parameters"
)

func loadCatalog(t *testing.T) parameters.Catalog {
	t.Helper()
	catalog, err := parameters.LoadFile(filepath.Join("testdata", "parameters.csv"))
	require.NoError(t, err)
	return catalog
}

// catalogWithout returns the reference catalog minus the named parameter.
func catalogWithout(t *testing.T, name string) parameters.Catalog {
	t.Helper()
	var kept []parameters.Parameter
	for _, p := range loadCatalog(t).Parameters() {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	catalog, err := parameters.NewCatalog(kept)
	require.NoError(t, err)
	return catalog
}

func snapshot(t *testing.T, catalog parameters.Catalog, changes map[string]float64) []float64 {
	t.Helper()
	values, err := catalog.Snapshot(changes)
	require.NoError(t, err)
	return values
}

func floatPtr(v float64) *float64 {
	return &v
}

type goldenRow struct {
	Disorder Disorder `json:"disorder"`
	Mother   float64  `json:"mother"`
	Baby     float64  `json:"baby"`
	Total    float64  `json:"total"`
}

type golden struct {
	Births         float64      `json:"births"`
	PerCase        []goldenRow  `json:"per_case"`
	PerBirth       []goldenRow  `json:"per_birth"`
	Combined       goldenRow    `json:"combined"`
	PerBirthTotal  float64      `json:"per_birth_total"`
	TerritoryTotal float64      `json:"territory_total"`
	Sectors        SectorTotals `json:"sectors"`
	Shares         SectorTotals `json:"shares"`
	Amounts        SectorTotals `json:"amounts"`
	MotherShare    float64      `json:"mother_share"`
}

func loadGolden(t *testing.T, name string) golden {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	var g golden
	require.NoError(t, json.Unmarshal(raw, &g))
	return g
}

// rowFor returns the row of d in m, if any.
func rowFor(m Matrix, d Disorder) (Row, bool) {
	for _, r := range m.Rows {
		if r.Disorder == d {
			return r, true
		}
	}
	return Row{}, false
}
