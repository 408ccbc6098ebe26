package financing

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// BreakEven describes the equity level at which the annual cashflow is
// exactly zero. Feasible is true only when that equity lies within
// [0, purchase price].
type BreakEven struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	RequiredEquity  float64 `json:"requiredEquity"`
	EquityShare     float64 `json:"equityShare"`
	MaxLoan         float64 `json:"maxLoan"`
	AnnualAvailable float64 `json:"annualAvailable"`
	Feasible        bool    `json:"feasible"`
	AlreadyPositive bool    `json:"alreadyPositive"`
	Note            string  `json:"note"`
}

/// SolveBreakEven inverts the cashflow formula: with annual annuity
// loan * rate / 100 equal to the annual rent surplus, the maximum loan is
// surplus * 100 / rate and the required equity is price minus that loan.
func SolveBreakEven(price, monthlyRent, monthlyCosts, interestRate, amortizationRate float64) BreakEven {
	if price <= 0 {
		return BreakEven{Fault: fault.Invalid("purchase price must be positive, got %.2f", price)}
	}
	annuityRate := interestRate + amortizationRate
	if annuityRate <= 0 {
		return BreakEven{Fault: fault.Infeasibility("annuity rate must be positive to solve for break-even equity")}
	}

	available := (monthlyRent - monthlyCosts) * constants.MonthsPerYear
	maxLoan := available * constants.PercentageMultiplier / annuityRate
	required := price - maxLoan

	result := BreakEven{
		AnnualAvailable: mathutil.Round(available),
		MaxLoan:         mathutil.Round(mathutil.Max(0, maxLoan)),
		Feasible:        required >= 0 && required <= price,
	}

	switch {
	case required <= 0:
		// Cashflow is already non-negative with full financing; report that
		// explicitly instead of a negative equity requirement.
		result.RequiredEquity = 0
		result.EquityShare = 0
		result.AlreadyPositive = true
		result.Feasible = true
		result.Note = "cashflow is non-negative at zero equity"
	case required > price:
		result.RequiredEquity = mathutil.Round(required)
		result.EquityShare = mathutil.RoundPercent(mathutil.Min(constants.PercentageMultiplier,
			required/price*constants.PercentageMultiplier))
		result.Note = "break-even not reachable even at full equity"
	default:
		result.RequiredEquity = mathutil.Round(required)
		result.EquityShare = mathutil.RoundPercent(required / price * constants.PercentageMultiplier)
		result.Note = "break-even reachable"
	}

	return result
}
