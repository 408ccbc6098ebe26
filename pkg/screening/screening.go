// Package screening applies the disqualification ("no-go") rules and the
// free-text warning-signal scan to a property listing. Screening runs before
// any financial analysis; a single disqualifying reason makes the property
// non-investable regardless of every other score.
package screening

import (
	"fmt"
	"math"
	"strings"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/mathutil"
)

// Property is the screening view of a listing. Every field is optional;
// missing data weakens a rule to a soft warning instead of crashing it.
type Property struct {
	PurchasePrice    float64
	LivingArea       float64
	ConstructionYear int
	EnergyClass      string
	MonthlyRent      float64
	Tenanted         bool
	PropertyType     string
	Description      string
}

// Policy bundles the named screening thresholds so they stay testable and
// configurable instead of being scattered across rules.
type Policy struct {
	PrefabEraStart        int
	PrefabEraEnd          int
	SeverityCap           int
	CriticalThreshold     int
	LowLegacyRentPerSqm   float64
	RenovationCostPerSqm  float64
	GrantRate             float64
	GrantBasisCap         float64
	SavingPerSqmYear      float64
	PaybackThresholdYears float64
	ValueUpliftRate       float64
}

// DefaultPolicy returns the standard screening policy.
func DefaultPolicy() Policy {
	return Policy{
		PrefabEraStart:        constants.PrefabProblemEraStart,
		PrefabEraEnd:          constants.PrefabProblemEraEnd,
		SeverityCap:           constants.SeverityCap,
		CriticalThreshold:     constants.SeverityCriticalThreshold,
		LowLegacyRentPerSqm:   constants.LowLegacyRentPerSqm,
		RenovationCostPerSqm:  constants.RenovationCostPerSqm,
		GrantRate:             constants.RenovationGrantRate,
		GrantBasisCap:         constants.RenovationGrantBasisCap,
		SavingPerSqmYear:      constants.EnergySavingPerSqmYear,
		PaybackThresholdYears: constants.RenovationPaybackThresholdYears,
		ValueUpliftRate:       constants.RenovationValueUpliftRate,
	}
}

// Signal is one matched warning phrase with its severity contribution.
// Matches are reported individually, never merged.
type Signal struct {
	Phrase      string `json:"phrase"`
	Description string `json:"description"`
	Severity    int    `json:"severity"`
}

// EnergyAssessment carries the cost/benefit figures behind the energy-class
// decision, so a demotion to a soft warning stays auditable.
type EnergyAssessment struct {
	EnergyClass    string  `json:"energyClass"`
	RenovationCost float64 `json:"renovationCost"`
	Grant          float64 `json:"grant"`
	EffectiveCost  float64 `json:"effectiveCost"`
	AnnualSaving   float64 `json:"annualSaving"`
	PaybackYears   float64 `json:"paybackYears"`
	ValueUplift    float64 `json:"valueUplift"`
	Justified      bool    `json:"justified"`
}

// Result is the screening outcome. Investable is false whenever
// Disqualifiers is non-empty.
type Result struct {
	Disqualifiers []string          `json:"disqualifiers"`
	Warnings      []string          `json:"warnings"`
	Signals       []Signal          `json:"signals"`
	Severity      int               `json:"severity"`
	Critical      bool              `json:"critical"`
	Investable    bool              `json:"investable"`
	Energy        *EnergyAssessment `json:"energy,omitempty"`
}

var leaseholdKeywords = []string{"erbpacht", "erbbaurecht"}
var prefabKeywords = []string{"fertighaus"}
var worstEnergyClasses = []string{"G", "H"}

// Screen runs the no-go rules and the warning-signal scan.
func Screen(p Property, policy Policy) Result {
	result := Result{}
	text := strings.ToLower(p.Description)

	// Leasehold indicators disqualify outright.
	for _, keyword := range leaseholdKeywords {
		if strings.Contains(text, keyword) {
			result.Disqualifiers = append(result.Disqualifiers, fmt.Sprintf("leasehold indicator %q in description", keyword))
			break
		}
	}

	// Prefabricated construction in the problem era disqualifies when the
	// type or text confirms it; an unconfirmed problem-era year is only a
	// soft warning.
	if p.ConstructionYear >= policy.PrefabEraStart && p.ConstructionYear <= policy.PrefabEraEnd {
		confirmed := containsAny(strings.ToLower(p.PropertyType), prefabKeywords) || containsAny(text, prefabKeywords)
		if confirmed {
			result.Disqualifiers = append(result.Disqualifiers,
				fmt.Sprintf("prefabricated construction from the problem era (built %d)", p.ConstructionYear))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("built %d: verify whether this is a problem-era prefabricated building", p.ConstructionYear))
		}
	}

	// Worst energy classes disqualify unless the renovation case holds up
	// economically, in which case the rule demotes to a soft warning
	// carrying the full figures.
	if class := strings.ToUpper(strings.TrimSpace(p.EnergyClass)); containsAny(class, worstEnergyClasses) && len(class) == 1 {
		assessment := assessEnergyRenovation(p, policy, class)
		result.Energy = &assessment
		if assessment.Justified {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"energy class %s: renovation economically justified (effective cost %.2f, payback %.1f years, value uplift %.2f)",
				class, assessment.EffectiveCost, assessment.PaybackYears, assessment.ValueUplift))
		} else {
			result.Disqualifiers = append(result.Disqualifiers, fmt.Sprintf("very poor energy class: %s", class))
		}
	}

	signals, severity := detectSignals(p, policy, text)
	result.Signals = signals
	if severity > policy.SeverityCap {
		severity = policy.SeverityCap
	}
	result.Severity = severity
	result.Critical = severity >= policy.CriticalThreshold
	result.Investable = len(result.Disqualifiers) == 0

	return result
}

// assessEnergyRenovation estimates the renovation economics for a worst
// energy class: full renovation cost from living area, the subsidy-adjusted
// effective cost, the energy-saving payback and the assumed value uplift.
func assessEnergyRenovation(p Property, policy Policy, class string) EnergyAssessment {
	cost := p.LivingArea * policy.RenovationCostPerSqm
	grant := policy.GrantRate * mathutil.Min(policy.GrantBasisCap, cost)
	effective := cost - grant
	saving := p.LivingArea * policy.SavingPerSqmYear

	payback := math.Inf(1)
	if saving > 0 {
		payback = effective / saving
	}
	uplift := p.PurchasePrice * policy.ValueUpliftRate

	return EnergyAssessment{
		EnergyClass:    class,
		RenovationCost: mathutil.Round(cost),
		Grant:          mathutil.Round(grant),
		EffectiveCost:  mathutil.Round(effective),
		AnnualSaving:   mathutil.Round(saving),
		PaybackYears:   mathutil.Round(payback),
		ValueUplift:    mathutil.Round(uplift),
		Justified:      payback < policy.PaybackThresholdYears || uplift > effective,
	}
}

// DetectLeasehold reports whether the listing text carries a leasehold
// indicator.
func DetectLeasehold(description string) bool {
	return containsAny(strings.ToLower(description), leaseholdKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
