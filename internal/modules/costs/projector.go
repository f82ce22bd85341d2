package costs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Prevalence holds the prevalence percentage (0-100) of each disorder.
type Prevalence map[Disorder]float64

// PerBirth weights the cost-per-case matrix by prevalence, turning the cost
// of a case into the expected cost per birth, and appends the combined row.
// Percentages are divided by 100 before use.
//
// It returns the per-birth matrix and the per-birth grand total, which is the
// sum of the disease rows' total column. The combined row is not part of that
// sum.
func PerBirth(perCase Matrix, prevalence Prevalence) (Matrix, float64) {
	out := Matrix{Rows: make([]Row, 0, len(perCase.Rows))}

	mothers := make([]float64, 0, len(perCase.Rows))
	babies := make([]float64, 0, len(perCase.Rows))
	totals := make([]float64, 0, len(perCase.Rows))

	for _, row := range perCase.Rows {
		rate := prevalence[row.Disorder] / 100

		weighted := Row{
			Disorder: row.Disorder,
			Label:    row.Label,
			Mother:   row.Mother * rate,
			Baby:     row.Baby * rate,
		}
		weighted.Total = weighted.Mother + weighted.Baby
		out.Rows = append(out.Rows, weighted)

		mothers = append(mothers, weighted.Mother)
		babies = append(babies, weighted.Baby)
		totals = append(totals, weighted.Total)
	}

	grandTotal := floats.Sum(totals)

	out.Combined = &Row{
		Label:  CombinedLabel,
		Mother: floats.Sum(mothers),
		Baby:   floats.Sum(babies),
		Total:  grandTotal,
	}

	return out, grandTotal
}

// MotherShare is the fraction of the per-birth cost borne by mothers.
func MotherShare(perBirth Matrix) float64 {
	if perBirth.Combined == nil {
		return 0
	}
	all := perBirth.Combined.Mother + perBirth.Combined.Baby
	if all == 0 {
		return 0
	}
	return perBirth.Combined.Mother / all
}

// ResolveBirths validates a births count. A nil count means "not supplied"
// and yields 1, so the territory total reads as a single-birth estimate.
func ResolveBirths(births *float64) (float64, error) {
	if births == nil {
		return 1, nil
	}
	b := *births
	if b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBirthsCount, b)
	}
	return b, nil
}

// Split spreads territoryTotal across sectors in proportion to sectors.
// When the sector totals sum to zero the repartition is marked Empty.
func Split(sectors SectorTotals, territoryTotal float64) Repartition {
	sum := sectors.Sum()
	if sum == 0 {
		return Repartition{Empty: true}
	}

	shares := SectorTotals{
		HealthSocial: sectors.HealthSocial / sum,
		OtherPublic:  sectors.OtherPublic / sum,
		Society:      sectors.Society / sum,
	}

	return Repartition{
		Shares: shares,
		Amounts: SectorTotals{
			HealthSocial: shares.HealthSocial * territoryTotal,
			OtherPublic:  shares.OtherPublic * territoryTotal,
			Society:      shares.Society * territoryTotal,
		},
	}
}
