package financing

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// InvestmentMetrics holds the quick valuation ratios of a purchase: the
// purchase-price factor (price over annual cold rent) and the gross yield,
// each with a qualitative rating and score.
type InvestmentMetrics struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	PriceRentFactor float64  `json:"priceRentFactor"`
	FactorRating    string   `json:"factorRating"`
	FactorScore     float64  `json:"factorScore"`
	GrossYield      float64  `json:"grossYield"`
	YieldRating     string   `json:"yieldRating"`
	YieldScore      float64  `json:"yieldScore"`
	PricePerSqm     *float64 `json:"pricePerSqm,omitempty"`
}

// ComputeInvestmentMetrics derives the price/rent ratios. Unlike the cashflow
// snapshot this requires a positive rent; yield math is meaningless without it.
func ComputeInvestmentMetrics(price, annualRent, livingArea float64) InvestmentMetrics {
	if price <= 0 {
		return InvestmentMetrics{Fault: fault.Invalid("purchase price must be positive, got %.2f", price)}
	}
	if annualRent <= 0 {
		return InvestmentMetrics{Fault: fault.Invalid("annual rent must be positive, got %.2f", annualRent)}
	}

	factor := price / annualRent
	grossYield := annualRent / price * constants.PercentageMultiplier

	metrics := InvestmentMetrics{
		PriceRentFactor: mathutil.Round(factor),
		GrossYield:      mathutil.RoundPercent(grossYield),
	}

	switch {
	case factor < 20:
		metrics.FactorRating, metrics.FactorScore = "very good", 90
	case factor < 25:
		metrics.FactorRating, metrics.FactorScore = "good", 70
	case factor < 30:
		metrics.FactorRating, metrics.FactorScore = "moderate", 50
	default:
		metrics.FactorRating, metrics.FactorScore = "poor", 30
	}

	switch {
	case grossYield >= 5:
		metrics.YieldRating, metrics.YieldScore = "very good", 90
	case grossYield >= 4:
		metrics.YieldRating, metrics.YieldScore = "good", 70
	case grossYield >= 3:
		metrics.YieldRating, metrics.YieldScore = "moderate", 50
	default:
		metrics.YieldRating, metrics.YieldScore = "poor", 30
	}

	if livingArea > 0 {
		perSqm := mathutil.Round(price / livingArea)
		metrics.PricePerSqm = &perSqm
	}

	return metrics
}
