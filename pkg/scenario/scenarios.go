// Package scenario runs the financing core and the amortization projector
// under parameter perturbations: canonical market scenarios, the interest
// rate / equity sensitivity matrix, rent variations, financing-mix options,
// and the passive-investment comparison.
package scenario

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/financing"
	"immo-analyzer/pkg/mathutil"
	"immo-analyzer/pkg/projection"
)

// Base holds the caller's reference parameters perturbed by every analysis
// in this package.
type Base struct {
	PurchasePrice    float64
	MonthlyRent      float64
	MonthlyCosts     float64
	Equity           float64
	InterestRate     float64
	AmortizationRate float64
	HorizonYears     int
}

// Definition is a named scenario parameter set.
type Definition struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	RateDelta       float64 `json:"rateDelta"`
	RentMultiplier  float64 `json:"rentMultiplier"`
	RentGrowthRate  float64 `json:"rentGrowthRate"`
	ValueGrowthRate float64 `json:"valueGrowthRate"`
}

// CanonicalDefinitions returns the three standard scenarios. The rent
// multiplier models vacancy risk; effective interest rates are floored so a
// downward delta never produces a non-physical rate.
func CanonicalDefinitions() []Definition {
	return []Definition{
		{
			Name:            "conservative",
			Description:     "worst case with higher interest and vacancy",
			RateDelta:       1.0,
			RentMultiplier:  0.95,
			RentGrowthRate:  0.5,
			ValueGrowthRate: 0.5,
		},
		{
			Name:            "realistic",
			Description:     "expected case with current parameters",
			RateDelta:       0.0,
			RentMultiplier:  0.98,
			RentGrowthRate:  1.5,
			ValueGrowthRate: 1.5,
		},
		{
			Name:            "optimistic",
			Description:     "best case with lower interest and strong growth",
			RateDelta:       -0.5,
			RentMultiplier:  0.98,
			RentGrowthRate:  2.5,
			ValueGrowthRate: 2.0,
		},
	}
}

// Scenario pairs a definition with its computed results.
type Scenario struct {
	Definition            Definition         `json:"definition"`
	EffectiveInterestRate float64            `json:"effectiveInterestRate"`
	EffectiveMonthlyRent  float64            `json:"effectiveMonthlyRent"`
	Cashflow              financing.Snapshot `json:"cashflow"`
	Plan                  projection.Plan    `json:"plan"`
}

// Engine runs scenario and sensitivity analyses. All runs are pure functions
// of their inputs, so independent cells are computed concurrently and only
// aggregated back into their original positions.
type Engine struct {
	logger    *zap.Logger
	bands     financing.RatingBands
	projector *projection.Projector
}

// NewEngine creates an engine. A nil logger is replaced with a no-op and
// empty rating bands with the defaults.
func NewEngine(logger *zap.Logger, bands financing.RatingBands) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(bands) == 0 {
		bands = financing.DefaultRatingBands()
	}
	return &Engine{
		logger:    logger,
		bands:     bands,
		projector: projection.NewProjector(logger),
	}
}

// Run evaluates the given definitions against the base parameters, one full
// projector run per scenario. Scenarios are independent and run in parallel.
func (e *Engine) Run(base Base, definitions []Definition) []Scenario {
	if len(definitions) == 0 {
		definitions = CanonicalDefinitions()
	}

	results := make([]Scenario, len(definitions))
	var group errgroup.Group
	for i := range definitions {
		i := i
		group.Go(func() error {
			results[i] = e.runOne(base, definitions[i])
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func (e *Engine) runOne(base Base, def Definition) Scenario {
	rate := mathutil.Max(constants.MinimumInterestRate, base.InterestRate+def.RateDelta)
	rent := base.MonthlyRent * def.RentMultiplier

	cashflow := financing.ComputeCashflow(financing.Input{
		PurchasePrice:    base.PurchasePrice,
		MonthlyRent:      rent,
		MonthlyCosts:     base.MonthlyCosts,
		Equity:           base.Equity,
		InterestRate:     rate,
		AmortizationRate: base.AmortizationRate,
	}, e.bands)

	plan := e.projector.Project(projection.Assumptions{
		PurchasePrice:    base.PurchasePrice,
		Equity:           base.Equity,
		InterestRate:     rate,
		AmortizationRate: base.AmortizationRate,
		MonthlyRent:      rent,
		MonthlyCosts:     base.MonthlyCosts,
		HorizonYears:     base.HorizonYears,
		RentGrowthRate:   def.RentGrowthRate,
		ValueGrowthRate:  def.ValueGrowthRate,
	})

	return Scenario{
		Definition:            def,
		EffectiveInterestRate: rate,
		EffectiveMonthlyRent:  mathutil.Round(rent),
		Cashflow:              cashflow,
		Plan:                  plan,
	}
}
