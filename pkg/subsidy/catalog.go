// Package subsidy matches a purchase against the static catalog of public
// funding programs. Matching is declarative: each program is an eligibility
// predicate plus a payload, and the matcher only iterates the catalog and
// sorts the results, so new programs are pure data additions.
package subsidy

import (
	"fmt"

	"immo-analyzer/pkg/mathutil"
)

// Query carries the property and household attributes the predicates see.
type Query struct {
	OwnerOccupied      bool
	Children           int
	HouseholdIncome    float64
	EnergyClass        string
	Region             string
	HeatingReplacement bool
	NaturalRefrigerant bool
	ReplacesFossil     bool
	HeatingCost        float64
}

// Priority orders matches for presentation; higher tiers sort first.
type Priority int

const (
	PriorityMedium Priority = iota + 1
	PriorityHigh
	PriorityVeryHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityVeryHigh:
		return "very high"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// Match is one eligible program with its computed payload.
type Match struct {
	ProgramID     string   `json:"programId"`
	Name          string   `json:"name"`
	Priority      Priority `json:"priority"`
	PriorityLabel string   `json:"priorityLabel"`
	Reason        string   `json:"reason"`
	MaxLoan       float64  `json:"maxLoan,omitempty"`
	MaxGrant      float64  `json:"maxGrant,omitempty"`
	GrantRate     float64  `json:"grantRate,omitempty"`
	IncomeCeiling float64  `json:"incomeCeiling,omitempty"`
	Details       []string `json:"details,omitempty"`
}

// Program is one catalog entry: identity plus an eligibility predicate that
// also computes the payload.
type Program struct {
	ID       string
	Name     string
	Evaluate func(q Query) (Match, bool)
}

// Catalog is the versioned program set.
type Catalog struct {
	Version  string
	Programs []Program
}

// Family-program parameters: income ceiling base plus increment per child
// beyond the first.
const (
	familyIncomeCeilingBase      = 90000.0
	familyIncomeCeilingIncrement = 10000.0
	familyLoanBase               = 100000.0
	familyLoanLargeFamily        = 150000.0
	familyLargeFamilyChildren    = 3
)

// Heating-program bonus percentages, stacked and capped.
const (
	heatingBaseRate           = 30.0
	heatingEfficiencyBonus    = 5.0
	heatingClimateBonus       = 20.0
	heatingIncomeBonus        = 30.0
	heatingIncomeBonusCeiling = 40000.0
	heatingRateCap            = 70.0
)

// DefaultCatalog returns the built-in program catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Version: "2026-01",
		Programs: []Program{
			{
				ID:   "owner-occupancy-loan",
				Name: "Home ownership loan program",
				Evaluate: func(q Query) (Match, bool) {
					if !q.OwnerOccupied {
						return Match{}, false
					}
					return Match{
						Priority: PriorityHigh,
						Reason:   "owner-occupied purchase",
						MaxLoan:  100000,
						Details:  []string{"apply before signing the purchase contract"},
					}, true
				},
			},
			{
				ID:   "energy-renovation-loan",
				Name: "Energy renovation loan with repayment grant",
				Evaluate: func(q Query) (Match, bool) {
					if !energyClassAtOrBelow(q.EnergyClass, "D") {
						return Match{}, false
					}
					return Match{
						Priority: PriorityHigh,
						Reason:   fmt.Sprintf("energy class %s qualifies for renovation funding", normalizeEnergyClass(q.EnergyClass)),
						MaxLoan:  150000,
						MaxGrant: 67500,
						Details:  []string{"apply before construction starts", "energy consultant required"},
					}, true
				},
			},
			{
				ID:   "family-purchase-loan",
				Name: "Family purchase program for unrenovated stock",
				Evaluate: func(q Query) (Match, bool) {
					if !q.OwnerOccupied || q.Children <= 0 || !energyClassAtOrBelow(q.EnergyClass, "F") {
						return Match{}, false
					}
					ceiling := familyIncomeCeilingBase + float64(q.Children-1)*familyIncomeCeilingIncrement
					if q.HouseholdIncome > 0 && q.HouseholdIncome > ceiling {
						return Match{}, false
					}
					loan := familyLoanBase
					if q.Children >= familyLargeFamilyChildren {
						loan = familyLoanLargeFamily
					}
					return Match{
						Priority:      PriorityVeryHigh,
						Reason:        fmt.Sprintf("family with %d child(ren) and energy class %s", q.Children, normalizeEnergyClass(q.EnergyClass)),
						MaxLoan:       loan,
						IncomeCeiling: ceiling,
						Details:       []string{"renovation obligation within 54 months", "owner-occupiers only"},
					}, true
				},
			},
			{
				ID:   "heating-replacement-grant",
				Name: "Heating replacement grant",
				Evaluate: func(q Query) (Match, bool) {
					if !q.HeatingReplacement {
						return Match{}, false
					}
					rate, details := heatingGrantRate(q)
					priority := PriorityMedium
					if rate >= 50 {
						priority = PriorityHigh
					}
					match := Match{
						Priority:  priority,
						Reason:    "heating system due for replacement",
						GrantRate: rate,
						Details:   details,
					}
					if q.HeatingCost > 0 {
						match.MaxGrant = mathutil.Round(q.HeatingCost * rate / 100)
					}
					return match, true
				},
			},
			{
				ID:   "renovation-measures-grant",
				Name: "Individual renovation measures grant",
				Evaluate: func(q Query) (Match, bool) {
					return Match{
						Priority:  PriorityMedium,
						Reason:    "individual measures (insulation, windows) are generally eligible",
						GrantRate: 15,
						Details:   []string{"20% with an individual renovation roadmap"},
					}, true
				},
			},
			{
				ID:   "regional-program",
				Name: "Regional ownership program",
				Evaluate: func(q Query) (Match, bool) {
					regional, ok := regionalPrograms[q.Region]
					if !ok {
						return Match{}, false
					}
					return Match{
						Priority: regional.priority,
						Reason:   fmt.Sprintf("regional program available in %s", q.Region),
						MaxLoan:  regional.maxLoan,
						Details:  regional.details,
					}, true
				},
			},
		},
	}
}

type regionalProgram struct {
	maxLoan  float64
	priority Priority
	details  []string
}

var regionalPrograms = map[string]regionalProgram{
	"Nordrhein-Westfalen": {
		maxLoan:  184000,
		priority: PriorityHigh,
		details:  []string{"0% base loan over 30 years", "24,000 bonus per child", "10% repayment waiver"},
	},
	"Hessen": {
		maxLoan:  200000,
		priority: PriorityMedium,
		details:  []string{"0.6% nominal rate, 20-year fixed", "subordinate land-register entry"},
	},
	"Bayern": {
		maxLoan:  0,
		priority: PriorityMedium,
		details:  []string{"7,500 grant per child", "loan share of 30-40% of eligible costs"},
	},
	"Baden-Württemberg": {
		maxLoan:  100000,
		priority: PriorityMedium,
		details:  []string{"10 years of interest subsidy"},
	},
}

// heatingGrantRate stacks the heating bonuses and caps the result.
func heatingGrantRate(q Query) (float64, []string) {
	rate := heatingBaseRate
	details := []string{fmt.Sprintf("%.0f%% base grant", heatingBaseRate)}

	if q.NaturalRefrigerant {
		rate += heatingEfficiencyBonus
		details = append(details, fmt.Sprintf("+%.0f%% efficiency bonus (natural refrigerant)", heatingEfficiencyBonus))
	}
	if q.OwnerOccupied && q.ReplacesFossil {
		rate += heatingClimateBonus
		details = append(details, fmt.Sprintf("+%.0f%% climate bonus (fossil replacement)", heatingClimateBonus))
	}
	if q.HouseholdIncome > 0 && q.HouseholdIncome <= heatingIncomeBonusCeiling {
		rate += heatingIncomeBonus
		details = append(details, fmt.Sprintf("+%.0f%% income bonus", heatingIncomeBonus))
	}
	if rate > heatingRateCap {
		rate = heatingRateCap
	}
	return rate, details
}
