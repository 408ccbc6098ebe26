package taxrules

import (
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
	"immo-analyzer/pkg/taxtables"
)

// CapitalizationCheck is the result of the near-purchase renovation
// threshold test. When triggered, the entire spend must be depreciated over
// ForcedYears instead of being expensed immediately.
type CapitalizationCheck struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	Threshold                float64 `json:"threshold"`
	WindowYears              int     `json:"windowYears"`
	TotalCosts               float64 `json:"totalCosts"`
	Triggered                bool    `json:"triggered"`
	Excess                   float64 `json:"excess"`
	Headroom                 float64 `json:"headroom"`
	ImmediatelyDeductible    float64 `json:"immediatelyDeductible"`
	ForcedYears              int     `json:"forcedYears"`
	ForcedAnnualDepreciation float64 `json:"forcedAnnualDepreciation"`
}

// CheckCapitalizationThreshold sums the repair costs of the post-purchase
// window and tests them against the threshold share of the building value.
func CheckCapitalizationThreshold(buildingValue float64, repairCostsByYear []float64, tables taxtables.Tables) CapitalizationCheck {
	if buildingValue <= 0 {
		return CapitalizationCheck{Fault: fault.Invalid("building value must be positive, got %.2f", buildingValue)}
	}

	rule := tables.Capitalization
	threshold := buildingValue * rule.ThresholdRate

	total := 0.0
	for i, costs := range repairCostsByYear {
		if i >= rule.WindowYears {
			break
		}
		total += costs
	}

	check := CapitalizationCheck{
		Threshold:   mathutil.Round(threshold),
		WindowYears: rule.WindowYears,
		TotalCosts:  mathutil.Round(total),
		ForcedYears: rule.ForcedYears,
	}

	if total > threshold {
		check.Triggered = true
		check.Excess = mathutil.Round(total - threshold)
		check.ImmediatelyDeductible = 0
		check.ForcedAnnualDepreciation = mathutil.Round(total / float64(rule.ForcedYears))
	} else {
		check.Headroom = mathutil.Round(threshold - total)
		check.ImmediatelyDeductible = mathutil.Round(total)
	}

	return check
}
