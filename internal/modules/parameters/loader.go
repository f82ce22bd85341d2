package parameters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Required catalog columns. Extra columns are ignored.
var csvColumns = []string{"name", "value", "min", "max", "step", "unit", "category", "explanation"}

// LoadFile reads a catalog from a CSV file.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to open parameter catalog: %w", err)
	}
	defer f.Close()

	catalog, err := LoadCSV(f)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to load parameter catalog %s: %w", path, err)
	}
	return catalog, nil
}

// LoadCSV reads a catalog from CSV with a header row naming the columns
// name, value, min, max, step, unit, category and explanation.
// Row order is preserved: it is the positional order of override vectors.
func LoadCSV(r io.Reader) (Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("catalog is empty")
		}
		return Catalog{}, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range csvColumns {
		if _, ok := cols[c]; !ok {
			return Catalog{}, fmt.Errorf("catalog header is missing column %q", c)
		}
	}

	var params []Parameter
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Catalog{}, fmt.Errorf("line %d: %w", line, err)
		}

		p, err := parseRecord(record, cols)
		if err != nil {
			return Catalog{}, fmt.Errorf("line %d: %w", line, err)
		}
		params = append(params, p)
	}

	return NewCatalog(params)
}

func parseRecord(record []string, cols map[string]int) (Parameter, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	number := func(name string) (float64, error) {
		raw := field(name)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: invalid number %q", name, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("column %s: %w %q", name, ErrInvalidParameterValue, raw)
		}
		return v, nil
	}

	p := Parameter{
		Name:        field("name"),
		Unit:        field("unit"),
		Category:    Category(field("category")),
		Explanation: field("explanation"),
	}

	if field("value") == "" {
		return Parameter{}, fmt.Errorf("parameter %q has no value", p.Name)
	}
	if p.Category != "" && !p.Category.Valid() {
		return Parameter{}, fmt.Errorf("parameter %q has unknown category %q", p.Name, p.Category)
	}

	var err error
	if p.Value, err = number("value"); err != nil {
		return Parameter{}, err
	}
	if p.Min, err = number("min"); err != nil {
		return Parameter{}, err
	}
	if p.Max, err = number("max"); err != nil {
		return Parameter{}, err
	}
	if p.Step, err = number("step"); err != nil {
		return Parameter{}, err
	}

	return p, nil
}
