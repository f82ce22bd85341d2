// Package parameters holds the parameter catalog and the layered value store
// the cost engine reads from.
package parameters

// Category groups parameters the way the estimator's input screens do.
type Category string

const (
	CategoryMedical          Category = "medical"
	CategoryEconomic         Category = "economic"
	CategoryDepressionMother Category = "depression_mother"
	CategoryDepressionBaby   Category = "depression_baby"
	CategoryAnxietyMother    Category = "anxiety_mother"
	CategoryAnxietyBaby      Category = "anxiety_baby"
	CategoryPsychosisMother  Category = "psychosis_mother"
	CategoryPsychosisBaby    Category = "psychosis_baby"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMedical,
	CategoryEconomic,
	CategoryDepressionMother,
	CategoryDepressionBaby,
	CategoryAnxietyMother,
	CategoryAnxietyBaby,
	CategoryPsychosisMother,
	CategoryPsychosisBaby,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Parameter is a single catalog entry.
// Only Name and Value are read by the engine; the rest is presentation
// metadata (slider bounds, unit label, help text) passed through untouched.
type Parameter struct {
	Name        string   `json:"name"`
	Value       float64  `json:"value"`
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	Step        float64  `json:"step"`
	Unit        string   `json:"unit"`
	Category    Category `json:"category"`
	Explanation string   `json:"explanation"`
}
