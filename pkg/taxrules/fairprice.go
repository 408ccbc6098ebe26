package taxrules

import (
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// Fair-price blend weights. The three valuations are independent; the blend
// is a fixed-weight average.
const (
	FairPriceYieldWeight         = 0.4
	FairPriceFactorWeight        = 0.3
	FairPriceAffordabilityWeight = 0.3
)

// FairPrice is the blended fair-price estimate with the deviation of the
// actual price from it.
type FairPrice struct {
	Fault *fault.Fault `json:"fault,omitempty"`

	YieldBased         float64 `json:"yieldBased"`
	FactorBased        float64 `json:"factorBased"`
	AffordabilityBased float64 `json:"affordabilityBased"`
	Blended            float64 `json:"blended"`
	ActualPrice        float64 `json:"actualPrice"`
	DeviationPercent   float64 `json:"deviationPercent"`
	Verdict            string  `json:"verdict"`
}

// Fair-price verdicts.
const (
	VerdictOverpriced = "overpriced"
	VerdictFair       = "fair"
	VerdictCheap      = "cheap"
)

// EstimateFairPrice blends three independent valuations: yield-based
// (annual rent over target yield), multiplier-based (annual rent times the
// target factor) and affordability-based (the loan a serviceable share of
// rent carries at the reference annuity rate, with a safety buffer).
func EstimateFairPrice(price, annualRent float64) FairPrice {
	if price <= 0 {
		return FairPrice{Fault: fault.Invalid("purchase price must be positive, got %.2f", price)}
	}
	if annualRent <= 0 {
		return FairPrice{Fault: fault.Invalid("annual rent must be positive, got %.2f", annualRent)}
	}

	yieldBased := annualRent / (constants.FairPriceTargetYield / constants.PercentageMultiplier)
	factorBased := annualRent * constants.FairPriceTargetFactor

	serviceable := annualRent * constants.FairPriceServiceableShare
	maxLoan := serviceable / (constants.FairPriceReferenceAnnuity / constants.PercentageMultiplier)
	affordabilityBased := maxLoan * constants.FairPriceBuffer

	blended := yieldBased*FairPriceYieldWeight +
		factorBased*FairPriceFactorWeight +
		affordabilityBased*FairPriceAffordabilityWeight

	deviation := (price/blended - 1) * constants.PercentageMultiplier

	verdict := VerdictFair
	switch {
	case deviation > constants.FairPriceToleranceBand:
		verdict = VerdictOverpriced
	case deviation < -constants.FairPriceToleranceBand:
		verdict = VerdictCheap
	}

	return FairPrice{
		YieldBased:         mathutil.Round(yieldBased),
		FactorBased:        mathutil.Round(factorBased),
		AffordabilityBased: mathutil.Round(affordabilityBased),
		Blended:            mathutil.Round(blended),
		ActualPrice:        mathutil.Round(price),
		DeviationPercent:   mathutil.RoundPercent(deviation),
		Verdict:            verdict,
	}
}
