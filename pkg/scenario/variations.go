package scenario

import (
	"math"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/financing"
	"immo-analyzer/pkg/mathutil"
)

// RentChangePercents are the rent perturbations of the rental variation
// analysis, in percent of the reference rent.
var RentChangePercents = []float64{-20, -10, 0, 10, 20}

// RentalVariation is one rent perturbation result.
type RentalVariation struct {
	Fault           *fault.Fault `json:"fault,omitempty"`
	ChangePercent   float64      `json:"changePercent"`
	MonthlyRent     float64      `json:"monthlyRent"`
	MonthlyCashflow float64      `json:"monthlyCashflow"`
	AnnualCashflow  float64      `json:"annualCashflow"`
	SelfSustaining  bool         `json:"selfSustaining"`
	GrossYield      float64      `json:"grossYield"`
}

// RentalVariations re-runs the financing core across the rent perturbation
// ladder.
func (e *Engine) RentalVariations(base Base) []RentalVariation {
	variations := make([]RentalVariation, 0, len(RentChangePercents))
	for _, percent := range RentChangePercents {
		rent := base.MonthlyRent * (1 + percent/constants.PercentageMultiplier)
		snapshot := financing.ComputeCashflow(financing.Input{
			PurchasePrice:    base.PurchasePrice,
			MonthlyRent:      rent,
			MonthlyCosts:     base.MonthlyCosts,
			Equity:           base.Equity,
			InterestRate:     base.InterestRate,
			AmortizationRate: base.AmortizationRate,
		}, e.bands)
		variations = append(variations, RentalVariation{
			Fault:           snapshot.Fault,
			ChangePercent:   percent,
			MonthlyRent:     mathutil.Round(rent),
			MonthlyCashflow: snapshot.MonthlyCashflow,
			AnnualCashflow:  snapshot.AnnualCashflow,
			SelfSustaining:  snapshot.SelfSustaining,
			GrossYield:      snapshot.GrossYield,
		})
	}
	return variations
}

// FinancingStrategy is one named (interest, amortization) pairing.
type FinancingStrategy struct {
	Name             string  `json:"name"`
	InterestRate     float64 `json:"interestRate"`
	AmortizationRate float64 `json:"amortizationRate"`
}

// DefaultFinancingStrategies returns the fixed strategy catalog compared by
// the financing-mix analysis.
func DefaultFinancingStrategies() []FinancingStrategy {
	return []FinancingStrategy{
		{Name: "low payment", InterestRate: 3.5, AmortizationRate: 1.0},
		{Name: "standard", InterestRate: 3.75, AmortizationRate: 1.25},
		{Name: "fast payoff", InterestRate: 3.75, AmortizationRate: 2.0},
		{Name: "aggressive payoff", InterestRate: 3.75, AmortizationRate: 3.0},
		{Name: "high-rate stress case", InterestRate: 5.0, AmortizationRate: 1.5},
	}
}

// FinancingOption is one strategy comparison result. YearsToPayoff uses the
// rule-of-thumb round(100 / amortization%).
type FinancingOption struct {
	Fault              *fault.Fault `json:"fault,omitempty"`
	Name               string       `json:"name"`
	InterestRate       float64      `json:"interestRate"`
	AmortizationRate   float64      `json:"amortizationRate"`
	MonthlyPayment     float64      `json:"monthlyPayment"`
	MonthlyCashflow    float64      `json:"monthlyCashflow"`
	SelfSustaining     bool         `json:"selfSustaining"`
	YearsToPayoff      int          `json:"yearsToPayoff"`
	EstimatedTotalCost float64      `json:"estimatedTotalCost"`
}

// FinancingOptions re-runs the financing core across the strategy catalog.
func (e *Engine) FinancingOptions(base Base, strategies []FinancingStrategy) []FinancingOption {
	if len(strategies) == 0 {
		strategies = DefaultFinancingStrategies()
	}
	options := make([]FinancingOption, 0, len(strategies))
	for _, strategy := range strategies {
		snapshot := financing.ComputeCashflow(financing.Input{
			PurchasePrice:    base.PurchasePrice,
			MonthlyRent:      base.MonthlyRent,
			MonthlyCosts:     base.MonthlyCosts,
			Equity:           base.Equity,
			InterestRate:     strategy.InterestRate,
			AmortizationRate: strategy.AmortizationRate,
		}, e.bands)

		years := 0
		if strategy.AmortizationRate > 0 {
			years = int(math.Round(constants.PercentageMultiplier / strategy.AmortizationRate))
		}

		options = append(options, FinancingOption{
			Fault:              snapshot.Fault,
			Name:               strategy.Name,
			InterestRate:       strategy.InterestRate,
			AmortizationRate:   strategy.AmortizationRate,
			MonthlyPayment:     snapshot.MonthlyPayment,
			MonthlyCashflow:    snapshot.MonthlyCashflow,
			SelfSustaining:     snapshot.SelfSustaining,
			YearsToPayoff:      years,
			EstimatedTotalCost: mathutil.Round(snapshot.MonthlyPayment * constants.MonthsPerYear * float64(years)),
		})
	}
	return options
}
