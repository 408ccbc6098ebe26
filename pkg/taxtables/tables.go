// Package taxtables holds the versioned tax reference data consumed by the
// rule engine: depreciation brackets, the declining-balance window, heritage
// depreciation terms, the capitalization threshold and the regional
// transfer-tax table. The data is injected into calculations rather than
// embedded in them, so regulatory updates never touch calculation logic.
// Tables can be overridden from a YAML file.
package taxtables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DepreciationBracket selects a linear depreciation rate and duration by
// construction-year range. FromYear/ToYear are inclusive; zero means open.
type DepreciationBracket struct {
	FromYear      int     `yaml:"fromYear"`
	ToYear        int     `yaml:"toYear"`
	Rate          float64 `yaml:"rate"`
	DurationYears int     `yaml:"durationYears"`
}

// DecliningBalanceRule bounds the declining-balance method to an acquisition
// window (month granularity) and fixes its rate on the remaining balance.
type DecliningBalanceRule struct {
	WindowStart     string  `yaml:"windowStart"`
	WindowEnd       string  `yaml:"windowEnd"`
	Rate            float64 `yaml:"rate"`
	ComparisonYears int     `yaml:"comparisonYears"`
}

// HeritageRule fixes the heritage-building depreciation terms for rented and
// owner-occupied use.
type HeritageRule struct {
	RentedShare           float64 `yaml:"rentedShare"`
	RentedYears           int     `yaml:"rentedYears"`
	OwnerOccupiedShare    float64 `yaml:"ownerOccupiedShare"`
	OwnerOccupiedYears    int     `yaml:"ownerOccupiedYears"`
	RentedSchedule        string  `yaml:"rentedSchedule"`
	OwnerOccupiedSchedule string  `yaml:"ownerOccupiedSchedule"`
}

// CapitalizationRule holds the near-purchase renovation threshold and the
// forced depreciation duration applied when it is breached.
type CapitalizationRule struct {
	ThresholdRate float64 `yaml:"thresholdRate"`
	WindowYears   int     `yaml:"windowYears"`
	ForcedYears   int     `yaml:"forcedYears"`
}

// Tables is the full injected tax reference data set.
type Tables struct {
	Version              string                `yaml:"version"`
	DepreciationBrackets []DepreciationBracket `yaml:"depreciationBrackets"`
	DecliningBalance     DecliningBalanceRule  `yaml:"decliningBalance"`
	Heritage             HeritageRule          `yaml:"heritage"`
	Capitalization       CapitalizationRule    `yaml:"capitalization"`
	TransferTaxRates     map[string]float64    `yaml:"transferTaxRates"`
}

// Default returns the built-in reference tables.
func Default() Tables {
	return Tables{
		Version: "2026-01",
		DepreciationBrackets: []DepreciationBracket{
			{FromYear: 2023, Rate: 3.0, DurationYears: 33},
			{FromYear: 1925, ToYear: 2022, Rate: 2.0, DurationYears: 50},
			{ToYear: 1924, Rate: 2.5, DurationYears: 40},
		},
		DecliningBalance: DecliningBalanceRule{
			WindowStart:     "2023-10",
			WindowEnd:       "2029-09",
			Rate:            5.0,
			ComparisonYears: 15,
		},
		Heritage: HeritageRule{
			RentedShare:           1.0,
			RentedYears:           12,
			OwnerOccupiedShare:    0.9,
			OwnerOccupiedYears:    10,
			RentedSchedule:        "8x9% + 4x7%",
			OwnerOccupiedSchedule: "10x9%",
		},
		Capitalization: CapitalizationRule{
			ThresholdRate: 0.15,
			WindowYears:   3,
			ForcedYears:   50,
		},
		TransferTaxRates: map[string]float64{
			"Baden-Württemberg":      5.0,
			"Bayern":                 3.5,
			"Berlin":                 6.0,
			"Brandenburg":            6.5,
			"Bremen":                 5.0,
			"Hamburg":                5.5,
			"Hessen":                 6.0,
			"Mecklenburg-Vorpommern": 6.0,
			"Niedersachsen":          5.0,
			"Nordrhein-Westfalen":    6.5,
			"Rheinland-Pfalz":        5.0,
			"Saarland":               6.5,
			"Sachsen":                5.5,
			"Sachsen-Anhalt":         5.0,
			"Schleswig-Holstein":     6.5,
			"Thüringen":              5.0,
		},
	}
}

// Load reads a YAML override file and merges it over the defaults: sections
// left empty in the file keep their built-in values.
func Load(path string) (Tables, error) {
	tables := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("error reading tax tables at %s: %w", path, err)
	}

	var override Tables
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return tables, fmt.Errorf("unable to decode tax tables at %s: %w", path, err)
	}

	if override.Version != "" {
		tables.Version = override.Version
	}
	if len(override.DepreciationBrackets) > 0 {
		tables.DepreciationBrackets = override.DepreciationBrackets
	}
	if override.DecliningBalance.Rate > 0 {
		tables.DecliningBalance = override.DecliningBalance
	}
	if override.Heritage.RentedYears > 0 {
		tables.Heritage = override.Heritage
	}
	if override.Capitalization.ThresholdRate > 0 {
		tables.Capitalization = override.Capitalization
	}
	if len(override.TransferTaxRates) > 0 {
		tables.TransferTaxRates = override.TransferTaxRates
	}

	return tables, nil
}

// BracketFor returns the depreciation bracket matching a construction year.
func (t Tables) BracketFor(constructionYear int) (DepreciationBracket, bool) {
	for _, bracket := range t.DepreciationBrackets {
		if bracket.FromYear != 0 && constructionYear < bracket.FromYear {
			continue
		}
		if bracket.ToYear != 0 && constructionYear > bracket.ToYear {
			continue
		}
		return bracket, true
	}
	return DepreciationBracket{}, false
}

// TransferTaxRate returns the transfer-tax percentage for a region, falling
// back to the given default when the region is unknown.
func (t Tables) TransferTaxRate(region string, fallback float64) float64 {
	if rate, ok := t.TransferTaxRates[region]; ok {
		return rate
	}
	return fallback
}
