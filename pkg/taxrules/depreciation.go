// Package taxrules implements the deterministic tax calculations:
// depreciation method selection, the capitalization threshold, the fair
// price estimate, the leverage effect and the closing-cost breakdown. All
// regulatory parameters come from injected taxtables reference data.
package taxrules

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/datetime"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
	"immo-analyzer/pkg/taxtables"
)

// DepreciationInput describes a building for depreciation purposes.
// AcquisitionMonth uses the "2006-01" layout and gates the declining-balance
// method; it may be empty.
type DepreciationInput struct {
	BuildingValue          float64
	ConstructionYear       int
	AcquisitionMonth       string
	NewBuild               bool
	Heritage               bool
	Rented                 bool
	HeritageRenovationCost float64
}

// LinearDepreciation is the bracket-selected straight-line result.
type LinearDepreciation struct {
	Rate          float64 `json:"rate"`
	DurationYears int     `json:"durationYears"`
	Annual        float64 `json:"annual"`
}

// DecliningBalanceDepreciation is the iterative remaining-balance result,
// including the comparison against linear and the recommended switch year.
// The switch is informational only; it is never auto-applied.
type DecliningBalanceDepreciation struct {
	Rate                  float64   `json:"rate"`
	ComparisonYears       int       `json:"comparisonYears"`
	AnnualAmounts         []float64 `json:"annualAmounts"`
	Total                 float64   `json:"total"`
	AdvantageVsLinear     float64   `json:"advantageVsLinear"`
	RecommendedSwitchYear int       `json:"recommendedSwitchYear"`
}

// HeritageDepreciation covers renovation cost write-off for listed buildings.
type HeritageDepreciation struct {
	RenovationCost  float64 `json:"renovationCost"`
	DeductibleShare float64 `json:"deductibleShare"`
	DurationYears   int     `json:"durationYears"`
	TotalDeductible float64 `json:"totalDeductible"`
	AverageAnnual   float64 `json:"averageAnnual"`
	Schedule        string  `json:"schedule"`
}

// Depreciation aggregates the applicable methods. Sections whose rule does
// not apply are simply absent rather than zero-filled.
type Depreciation struct {
	Fault            *fault.Fault                  `json:"fault,omitempty"`
	TablesVersion    string                        `json:"tablesVersion"`
	Linear           *LinearDepreciation           `json:"linear,omitempty"`
	DecliningBalance *DecliningBalanceDepreciation `json:"decliningBalance,omitempty"`
	Heritage         *HeritageDepreciation         `json:"heritage,omitempty"`
}

// ComputeDepreciation evaluates every depreciation method applicable to the
// input against the injected tables.
func ComputeDepreciation(in DepreciationInput, tables taxtables.Tables) Depreciation {
	if in.BuildingValue <= 0 {
		return Depreciation{Fault: fault.Invalid("building value must be positive, got %.2f", in.BuildingValue)}
	}
	if in.ConstructionYear <= 0 {
		return Depreciation{Fault: fault.Invalid("construction year is required for depreciation")}
	}

	result := Depreciation{TablesVersion: tables.Version}

	bracket, ok := tables.BracketFor(in.ConstructionYear)
	if !ok {
		return Depreciation{Fault: fault.NotApplicable("no depreciation bracket covers construction year %d", in.ConstructionYear)}
	}
	linear := &LinearDepreciation{
		Rate:          bracket.Rate,
		DurationYears: bracket.DurationYears,
		Annual:        mathutil.Round(in.BuildingValue * bracket.Rate / constants.PercentageMultiplier),
	}
	result.Linear = linear

	if declining := computeDecliningBalance(in, tables.DecliningBalance, linear); declining != nil {
		result.DecliningBalance = declining
	}

	if in.Heritage && in.HeritageRenovationCost > 0 {
		result.Heritage = computeHeritage(in, tables.Heritage)
	}

	return result
}

// computeDecliningBalance returns nil when the method does not apply: it is
// restricted to new builds acquired within the table's window.
func computeDecliningBalance(in DepreciationInput, rule taxtables.DecliningBalanceRule, linear *LinearDepreciation) *DecliningBalanceDepreciation {
	if !in.NewBuild || in.AcquisitionMonth == "" {
		return nil
	}
	inWindow, err := datetime.WithinWindow(in.AcquisitionMonth, rule.WindowStart, rule.WindowEnd)
	if err != nil || !inWindow {
		return nil
	}

	remaining := in.BuildingValue
	amounts := make([]float64, 0, rule.ComparisonYears)
	total := 0.0
	for year := 1; year <= rule.ComparisonYears; year++ {
		annual := remaining * rule.Rate / constants.PercentageMultiplier
		amounts = append(amounts, mathutil.Round(annual))
		total += annual
		remaining -= annual
	}

	linearTotal := linear.Annual * float64(rule.ComparisonYears)

	// The switch to linear pays off once the declining rate falls below the
	// remaining-value straight line over the remaining duration.
	switchYear := rule.ComparisonYears
	for year := 1; year <= linear.DurationYears; year++ {
		remainingYears := float64(linear.DurationYears - year + 1)
		if rule.Rate/constants.PercentageMultiplier <= 1/remainingYears {
			switchYear = year
			break
		}
	}

	return &DecliningBalanceDepreciation{
		Rate:                  rule.Rate,
		ComparisonYears:       rule.ComparisonYears,
		AnnualAmounts:         amounts,
		Total:                 mathutil.Round(total),
		AdvantageVsLinear:     mathutil.Round(total - linearTotal),
		RecommendedSwitchYear: switchYear,
	}
}

func computeHeritage(in DepreciationInput, rule taxtables.HeritageRule) *HeritageDepreciation {
	share := rule.RentedShare
	years := rule.RentedYears
	schedule := rule.RentedSchedule
	if !in.Rented {
		share = rule.OwnerOccupiedShare
		years = rule.OwnerOccupiedYears
		schedule = rule.OwnerOccupiedSchedule
	}

	total := in.HeritageRenovationCost * share
	return &HeritageDepreciation{
		RenovationCost:  mathutil.Round(in.HeritageRenovationCost),
		DeductibleShare: share * constants.PercentageMultiplier,
		DurationYears:   years,
		TotalDeductible: mathutil.Round(total),
		AverageAnnual:   mathutil.Round(total / float64(years)),
		Schedule:        schedule,
	}
}
