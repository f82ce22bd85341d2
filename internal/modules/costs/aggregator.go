package costs

// Aggregate builds the cost-per-case matrix and the sector totals from the
// group results. Absent groups contribute neither a row nor any sector amount.
//
// Sector assignment:
//   - health and social: the mother's public-sector cost and the baby's
//     health/social cost
//   - other public sector: the baby's education and justice costs (mothers
//     have none in this model)
//   - society: every society-wide cost of mother and baby
func Aggregate(groups []GroupResult) (Matrix, SectorTotals) {
	matrix := Matrix{Rows: make([]Row, 0, len(groups))}
	var sectors SectorTotals

	for _, g := range groups {
		c, ok := g.Costs()
		if !ok {
			continue
		}

		mother := c.Mother.Total()
		baby := c.Baby.Total()
		matrix.Rows = append(matrix.Rows, Row{
			Disorder: c.Disorder,
			Label:    c.Disorder.Label(),
			Mother:   mother,
			Baby:     baby,
			Total:    mother + baby,
		})

		sectors.HealthSocial += c.Mother.PublicSector() + c.Baby.HealthSocial
		sectors.OtherPublic += c.Baby.Education + c.Baby.Justice
		sectors.Society += c.Mother.Societal() + c.Baby.Societal()
	}

	return matrix, sectors
}

// presentCosts returns the costs of the present groups only.
func presentCosts(groups []GroupResult) []DisorderCosts {
	out := make([]DisorderCosts, 0, len(groups))
	for _, g := range groups {
		if c, ok := g.Costs(); ok {
			out = append(out, c)
		}
	}
	return out
}
