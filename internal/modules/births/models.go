// Package births provides the territory births lookup used to scale
// per-birth costs to a territory-wide total.
package births

import "errors"

// Level is the administrative scale of a territory.
type Level string

const (
	LevelCountry      Level = "country"
	LevelRegion       Level = "region"
	LevelDepartment   Level = "department"
	LevelCity         Level = "city"
	LevelConstituency Level = "constituency"
)

// Levels lists the supported scales from broadest to narrowest.
var Levels = []Level{LevelCountry, LevelRegion, LevelDepartment, LevelCity, LevelConstituency}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// Territory is a named area with its yearly births count.
type Territory struct {
	Name   string `json:"name"`
	Level  Level  `json:"level"`
	Births int64  `json:"births"`
}

// ErrTerritoryNotFound is returned when no territory has the requested name.
var ErrTerritoryNotFound = errors.New("territory not found")
