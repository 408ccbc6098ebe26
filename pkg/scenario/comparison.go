package scenario

import (
	"math"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/mathutil"
	"immo-analyzer/pkg/projection"
)

// Comparison contrasts the terminal property net worth against a passive
// alternative compounding at a fixed reference return. When the first-year
// monthly cashflow is negative, its absolute value is treated as a recurring
// monthly contribution to the alternative, since the buyer would otherwise
// have to feed that shortfall into the property.
type Comparison struct {
	HorizonYears                 int      `json:"horizonYears"`
	AnnualReturn                 float64  `json:"annualReturn"`
	PropertyFinalNetWorth        float64  `json:"propertyFinalNetWorth"`
	InvestedEquity               float64  `json:"investedEquity"`
	MonthlyContribution          float64  `json:"monthlyContribution"`
	TotalInvested                float64  `json:"totalInvested"`
	ReturnFactor                 *float64 `json:"returnFactor,omitempty"`
	AlternativeEquityOnly        float64  `json:"alternativeEquityOnly"`
	AlternativeWithContributions float64  `json:"alternativeWithContributions"`
	AdvantageVsEquityOnly        float64  `json:"advantageVsEquityOnly"`
	AdvantageVsContributions     float64  `json:"advantageVsContributions"`
	PropertyAhead                bool     `json:"propertyAhead"`
}

// Compare builds the alternative-asset comparison for a completed plan using
// standard compound-interest and annuity-future-value formulas.
func (e *Engine) Compare(base Base, plan projection.Plan) Comparison {
	horizon := base.HorizonYears
	if horizon <= 0 {
		horizon = constants.DefaultHorizonYears
	}

	annualReturn := constants.ReferenceAnnualReturn
	growthFactor := math.Pow(1+annualReturn/constants.PercentageMultiplier, float64(horizon))
	equityOnly := base.Equity * growthFactor

	contribution := 0.0
	if len(plan.Years) > 0 && plan.Years[0].MonthlyCashflow < 0 {
		contribution = math.Abs(plan.Years[0].MonthlyCashflow)
	}

	months := horizon * constants.MonthsPerYear
	withContributions := equityOnly
	if contribution > 0 {
		monthlyRate := math.Pow(1+annualReturn/constants.PercentageMultiplier, 1.0/constants.MonthsPerYear) - 1
		withContributions += contribution * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate)
	}

	finalNetWorth := plan.Summary.FinalNetWorth

	var returnFactor *float64
	if base.Equity > 0 {
		factor := mathutil.Round(finalNetWorth / base.Equity)
		returnFactor = &factor
	}

	return Comparison{
		HorizonYears:                 horizon,
		AnnualReturn:                 annualReturn,
		PropertyFinalNetWorth:        mathutil.Round(finalNetWorth),
		InvestedEquity:               mathutil.Round(base.Equity),
		MonthlyContribution:          mathutil.Round(contribution),
		TotalInvested:                mathutil.Round(base.Equity + contribution*float64(months)),
		ReturnFactor:                 returnFactor,
		AlternativeEquityOnly:        mathutil.Round(equityOnly),
		AlternativeWithContributions: mathutil.Round(withContributions),
		AdvantageVsEquityOnly:        mathutil.Round(finalNetWorth - equityOnly),
		AdvantageVsContributions:     mathutil.Round(finalNetWorth - withContributions),
		PropertyAhead:                finalNetWorth > withContributions,
	}
}
