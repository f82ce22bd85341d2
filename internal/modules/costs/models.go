// Package costs turns a parameter snapshot into per-case, per-birth and
// territory-wide cost estimates for perinatal depression, anxiety and psychosis.
//
// Every entry point is a pure function of an immutable catalog and a
// positional override vector: nothing is cached and nothing is retained
// between calls.
package costs

// Disorder identifies one of the modelled perinatal conditions.
type Disorder string

const (
	Depression Disorder = "depression"
	Anxiety    Disorder = "anxiety"
	Psychosis  Disorder = "psychosis"
)

// Disorders lists the modelled conditions in matrix row order.
var Disorders = []Disorder{Depression, Anxiety, Psychosis}

// Label returns the row label used in result tables.
func (d Disorder) Label() string {
	switch d {
	case Depression:
		return "Perinatal depression"
	case Anxiety:
		return "Perinatal anxiety"
	case Psychosis:
		return "Perinatal psychosis"
	}
	return string(d)
}

// CombinedLabel labels the synthetic per-birth row summing every disorder.
const CombinedLabel = "All three disorders"

// Selection says which disorder groups take part in a computation.
type Selection struct {
	Depression bool `json:"depression"`
	Anxiety    bool `json:"anxiety"`
	Psychosis  bool `json:"psychosis"`
}

// AllDisorders enables every group.
func AllDisorders() Selection {
	return Selection{Depression: true, Anxiety: true, Psychosis: true}
}

// Enabled reports whether d is selected.
func (s Selection) Enabled(d Disorder) bool {
	switch d {
	case Depression:
		return s.Depression
	case Anxiety:
		return s.Anxiety
	case Psychosis:
		return s.Psychosis
	}
	return false
}

// SubjectCosts is the cost breakdown for one subject (mother or baby) of one
// disorder, per case.
type SubjectCosts struct {
	// Public sector
	HealthSocial float64 `json:"health_social"`
	Education    float64 `json:"education"`
	Justice      float64 `json:"justice"`

	// Society-wide
	QALY         float64 `json:"qaly"`
	Productivity float64 `json:"productivity"`
	Other        float64 `json:"other"`
}

// PublicSector is the public-sector cost per case.
func (c SubjectCosts) PublicSector() float64 {
	return c.HealthSocial + c.Education + c.Justice
}

// Societal is the society-wide cost per case.
func (c SubjectCosts) Societal() float64 {
	return c.QALY + c.Productivity + c.Other
}

// Total is the public-sector plus society-wide cost per case.
func (c SubjectCosts) Total() float64 {
	return c.PublicSector() + c.Societal()
}

// DisorderCosts holds the mother and baby breakdowns of one disorder.
type DisorderCosts struct {
	Disorder Disorder     `json:"disorder"`
	Mother   SubjectCosts `json:"mother"`
	Baby     SubjectCosts `json:"baby"`
}

// GroupResult is the outcome of one disorder group: either Present with its
// costs, or Absent because the group was disabled. An absent group has no
// costs at all, which is different from a present group whose costs are zero.
type GroupResult struct {
	Disorder Disorder
	costs    *DisorderCosts
}

// Present wraps computed costs.
func Present(c DisorderCosts) GroupResult {
	return GroupResult{Disorder: c.Disorder, costs: &c}
}

// Absent marks d as disabled.
func Absent(d Disorder) GroupResult {
	return GroupResult{Disorder: d}
}

// Costs returns the group's costs and whether the group is present.
func (g GroupResult) Costs() (DisorderCosts, bool) {
	if g.costs == nil {
		return DisorderCosts{}, false
	}
	return *g.costs, true
}

// Row is one line of a cost matrix.
type Row struct {
	Disorder Disorder `json:"disorder,omitempty"`
	Label    string   `json:"label"`
	Mother   float64  `json:"mother"`
	Baby     float64  `json:"baby"`
	Total    float64  `json:"total"`
}

// Matrix is a cost table with one row per enabled disorder, in Disorders
// order. Combined is only set on per-birth matrices.
type Matrix struct {
	Rows     []Row `json:"rows"`
	Combined *Row  `json:"combined,omitempty"`
}

// SectorTotals accumulates per-case costs by paying sector.
type SectorTotals struct {
	HealthSocial float64 `json:"health_social"`
	OtherPublic  float64 `json:"other_public"`
	Society      float64 `json:"society"`
}

// Sum returns the total over the three sectors.
func (s SectorTotals) Sum() float64 {
	return s.HealthSocial + s.OtherPublic + s.Society
}

// Repartition splits the territory total across sectors.
// When Empty is set (no disorder selected, so nothing to split) the shares
// and amounts are zero and Err returns ErrEmptyRepartition.
type Repartition struct {
	Empty   bool         `json:"empty"`
	Shares  SectorTotals `json:"shares"`
	Amounts SectorTotals `json:"amounts"`
}

// Err returns ErrEmptyRepartition for a degenerate repartition.
func (r Repartition) Err() error {
	if r.Empty {
		return ErrEmptyRepartition
	}
	return nil
}

// Result is the full output bundle of ComputeCosts.
type Result struct {
	Groups         []DisorderCosts `json:"groups"`
	PerCase        Matrix          `json:"per_case"`
	PerBirth       Matrix          `json:"per_birth"`
	PerBirthTotal  float64         `json:"per_birth_total"`
	Births         float64         `json:"births"`
	TerritoryTotal float64         `json:"territory_total"`
	MotherShare    float64         `json:"mother_share"`
	Sectors        SectorTotals    `json:"sectors"`
	Repartition    Repartition     `json:"repartition"`
}
