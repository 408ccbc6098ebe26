package scenario

import (
	"golang.org/x/sync/errgroup"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/financing"
	"immo-analyzer/pkg/mathutil"
)

// InterestRateOffsets are the row perturbations of the sensitivity matrix in
// percentage points relative to the reference rate.
var InterestRateOffsets = []float64{-1.0, -0.5, 0, 0.5, 1.0}

// EquityShares are the column perturbations of the sensitivity matrix as
// percentages of the purchase price.
var EquityShares = []float64{0, 10, 20, 30, 40}

// Cell is one sensitivity matrix entry.
type Cell struct {
	Fault           *fault.Fault `json:"fault,omitempty"`
	MonthlyCashflow float64      `json:"monthlyCashflow"`
	AnnualCashflow  float64      `json:"annualCashflow"`
	SelfSustaining  bool         `json:"selfSustaining"`
}

// Matrix is the interest-rate x equity sensitivity grid. The reference
// indices mark the cell matching the caller's actual rate and equity so a
// UI can highlight it.
type Matrix struct {
	Cells                 [][]Cell  `json:"cells"`
	InterestRates         []float64 `json:"interestRates"`
	EquityValues          []float64 `json:"equityValues"`
	EquityShares          []float64 `json:"equityShares"`
	AmortizationRate      float64   `json:"amortizationRate"`
	ReferenceRateIndex    int       `json:"referenceRateIndex"`
	ReferenceEquityIndex  int       `json:"referenceEquityIndex"`
	ReferenceInterestRate float64   `json:"referenceInterestRate"`
	ReferenceEquity       float64   `json:"referenceEquity"`
}

// Sensitivity builds the 5x5 grid by invoking the financing core at each
// (rate offset, equity share) pair. Perturbed rates are floored so the low
// end of the grid never goes below the minimum physical rate. Rows are
// independent and computed concurrently.
func (e *Engine) Sensitivity(base Base) Matrix {
	rates := make([]float64, len(InterestRateOffsets))
	for i, offset := range InterestRateOffsets {
		rates[i] = mathutil.Max(constants.MinimumInterestRate, base.InterestRate+offset)
	}

	equityValues := make([]float64, len(EquityShares))
	for i, share := range EquityShares {
		equityValues[i] = mathutil.Round(base.PurchasePrice * share / constants.PercentageMultiplier)
	}

	cells := make([][]Cell, len(rates))
	var group errgroup.Group
	for i := range rates {
		i := i
		group.Go(func() error {
			row := make([]Cell, len(equityValues))
			for j, equity := range equityValues {
				snapshot := financing.ComputeCashflow(financing.Input{
					PurchasePrice:    base.PurchasePrice,
					MonthlyRent:      base.MonthlyRent,
					MonthlyCosts:     base.MonthlyCosts,
					Equity:           equity,
					InterestRate:     rates[i],
					AmortizationRate: base.AmortizationRate,
				}, e.bands)
				row[j] = Cell{
					Fault:           snapshot.Fault,
					MonthlyCashflow: snapshot.MonthlyCashflow,
					AnnualCashflow:  snapshot.AnnualCashflow,
					SelfSustaining:  snapshot.SelfSustaining,
				}
			}
			cells[i] = row
			return nil
		})
	}
	_ = group.Wait()

	return Matrix{
		Cells:                 cells,
		InterestRates:         rates,
		EquityValues:          equityValues,
		EquityShares:          append([]float64(nil), EquityShares...),
		AmortizationRate:      base.AmortizationRate,
		ReferenceRateIndex:    referenceRateIndex(rates, base.InterestRate),
		ReferenceEquityIndex:  referenceEquityIndex(equityValues, base.Equity),
		ReferenceInterestRate: base.InterestRate,
		ReferenceEquity:       base.Equity,
	}
}

// referenceRateIndex finds the row holding the unperturbed rate. The center
// row is the fallback when flooring moved every candidate off the reference.
func referenceRateIndex(rates []float64, reference float64) int {
	for i, rate := range rates {
		if rate == reference {
			return i
		}
	}
	return len(rates) / 2
}

// referenceEquityIndex finds the highest column whose equity does not exceed
// the caller's actual equity.
func referenceEquityIndex(equityValues []float64, reference float64) int {
	index := 0
	for i, equity := range equityValues {
		if reference >= equity {
			index = i
		}
	}
	return index
}
