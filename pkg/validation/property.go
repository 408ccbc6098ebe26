package validation

import (
	"fmt"
	"time"

	"immo-analyzer/pkg/constants"
)

// PropertyInput is the subset of the configuration the plausibility checks
// look at.
type PropertyInput struct {
	PurchasePrice    float64
	LivingArea       float64
	MonthlyRent      float64
	ConstructionYear int
	Equity           float64
	InterestRate     float64
	AmortizationRate float64
}

// Plausibility bounds. Values outside these produce warnings, not errors;
// unusual markets exist.
const (
	minPlausiblePricePerSqm = 500.0
	maxPlausiblePricePerSqm = 15000.0
	minPlausibleLivingArea  = 10.0
	maxPlausibleLivingArea  = 1000.0
	maxPlausibleGrossYield  = 12.0
	maxPlausibleRate        = 10.0
	minConstructionYear     = 1800
)

// ValidateProperty runs plausibility checks over the inputs and returns
// human-readable warnings. It never rejects; hard input errors are caught by
// the calculation layer.
func ValidateProperty(in PropertyInput) []string {
	var warnings []string

	if in.LivingArea > 0 {
		if in.LivingArea < minPlausibleLivingArea || in.LivingArea > maxPlausibleLivingArea {
			warnings = append(warnings, fmt.Sprintf("living area of %.1f sqm is outside the plausible range", in.LivingArea))
		}
		if in.PurchasePrice > 0 {
			perSqm := in.PurchasePrice / in.LivingArea
			if perSqm < minPlausiblePricePerSqm || perSqm > maxPlausiblePricePerSqm {
				warnings = append(warnings, fmt.Sprintf("price of %.0f per sqm is outside the plausible range", perSqm))
			}
		}
	}

	if in.PurchasePrice > 0 && in.MonthlyRent > 0 {
		grossYield := in.MonthlyRent * float64(constants.MonthsPerYear) / in.PurchasePrice * constants.PercentageMultiplier
		if grossYield > maxPlausibleGrossYield {
			warnings = append(warnings, fmt.Sprintf("gross yield of %.1f%% is unusually high - verify the rent figure", grossYield))
		}
	}

	if in.Equity > in.PurchasePrice && in.PurchasePrice > 0 {
		warnings = append(warnings, "equity exceeds the purchase price - no financing is required")
	}

	if in.InterestRate > maxPlausibleRate {
		warnings = append(warnings, fmt.Sprintf("interest rate of %.2f%% is unusually high", in.InterestRate))
	}
	if in.AmortizationRate > maxPlausibleRate {
		warnings = append(warnings, fmt.Sprintf("amortization rate of %.2f%% is unusually high", in.AmortizationRate))
	}

	if in.ConstructionYear != 0 {
		currentYear := time.Now().Year()
		if in.ConstructionYear < minConstructionYear || in.ConstructionYear > currentYear+2 {
			warnings = append(warnings, fmt.Sprintf("construction year %d is implausible", in.ConstructionYear))
		}
	}

	return warnings
}
