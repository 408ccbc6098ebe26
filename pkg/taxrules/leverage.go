package taxrules

import (
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// Leverage is the borrowing amplification of the equity yield. Negative
// leverage (debt rate above the property yield) is flagged, never hidden.
type Leverage struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	PropertyYield    float64 `json:"propertyYield"`
	DebtRate         float64 `json:"debtRate"`
	Spread           float64 `json:"spread"`
	LeverageRatio    float64 `json:"leverageRatio"`
	EquityYield      float64 `json:"equityYield"`
	PositiveLeverage bool    `json:"positiveLeverage"`
	BreakEvenRate    float64 `json:"breakEvenRate"`
	Warning          string  `json:"warning,omitempty"`
}

// ComputeLeverage applies the leverage formula
// equity yield = property yield + (property yield - debt rate) * debt/equity.
// Equity must be positive; the ratio is undefined otherwise and the result
// carries an infeasibility fault instead of a fabricated number.
func ComputeLeverage(propertyYield, debtRate, equity, debt float64) Leverage {
	if equity <= 0 {
		return Leverage{Fault: fault.Infeasibility("leverage requires positive equity, got %.2f", equity)}
	}
	if debt < 0 {
		return Leverage{Fault: fault.Invalid("debt must not be negative, got %.2f", debt)}
	}

	ratio := debt / equity
	spread := propertyYield - debtRate
	equityYield := propertyYield + spread*ratio

	result := Leverage{
		PropertyYield:    mathutil.RoundPercent(propertyYield),
		DebtRate:         mathutil.RoundPercent(debtRate),
		Spread:           mathutil.RoundPercent(spread),
		LeverageRatio:    mathutil.Round(ratio),
		EquityYield:      mathutil.RoundPercent(equityYield),
		PositiveLeverage: spread > 0,
		BreakEvenRate:    mathutil.RoundPercent(propertyYield),
	}
	if !result.PositiveLeverage {
		result.Warning = "negative leverage: debt rate exceeds property yield"
	}
	return result
}
