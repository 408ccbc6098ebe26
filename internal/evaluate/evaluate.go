// Package evaluate orchestrates a full property evaluation: screening, the
// financing core, projections, scenario and sensitivity analyses, tax rules,
// subsidy matching and the final recommendation.
package evaluate

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"immo-analyzer/internal/config"
	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/financing"
	"immo-analyzer/pkg/marketdata"
	"immo-analyzer/pkg/projection"
	"immo-analyzer/pkg/scenario"
	"immo-analyzer/pkg/screening"
	"immo-analyzer/pkg/subsidy"
	"immo-analyzer/pkg/taxrules"
	"immo-analyzer/pkg/taxtables"
)

// Recommendation values.
const (
	RecommendationInvest = "invest"
	RecommendationReview = "review"
	RecommendationReject = "reject"
)

// Evaluation is the complete analysis result for one property.
type Evaluation struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`

	EffectiveMonthlyRent float64                `json:"effectiveMonthlyRent"`
	RentEstimated        bool                   `json:"rentEstimated"`
	Market               *marketdata.CityMarket `json:"market,omitempty"`

	Screening  screening.Result     `json:"screening"`
	QuickCheck screening.QuickCheck `json:"quickCheck"`

	Cashflow  financing.Snapshot          `json:"cashflow"`
	Metrics   financing.InvestmentMetrics `json:"metrics"`
	BreakEven financing.BreakEven         `json:"breakEven"`

	Plan       projection.Plan       `json:"plan"`
	Milestones projection.Milestones `json:"milestones"`

	Scenarios        []scenario.Scenario        `json:"scenarios"`
	Sensitivity      scenario.Matrix            `json:"sensitivity"`
	RentalVariations []scenario.RentalVariation `json:"rentalVariations"`
	FinancingOptions []scenario.FinancingOption `json:"financingOptions"`
	Comparison       scenario.Comparison        `json:"comparison"`

	FairPrice      taxrules.FairPrice           `json:"fairPrice"`
	Depreciation   taxrules.Depreciation        `json:"depreciation"`
	Capitalization taxrules.CapitalizationCheck `json:"capitalization"`
	Leverage       taxrules.Leverage            `json:"leverage"`
	ClosingCosts   taxrules.ClosingCosts        `json:"closingCosts"`

	Subsidies []subsidy.Match `json:"subsidies"`

	Warnings       []string `json:"warnings,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// Analyzer wires the analysis engines together.
type Analyzer struct {
	logger    *zap.Logger
	tables    taxtables.Tables
	catalog   subsidy.Catalog
	market    marketdata.Provider
	projector *projection.Projector
	engine    *scenario.Engine
}

// NewAnalyzer creates an analyzer. A nil logger is replaced with a no-op, an
// empty catalog with the default one and a nil market provider with the
// static tables.
func NewAnalyzer(logger *zap.Logger, tables taxtables.Tables, catalog subsidy.Catalog, market marketdata.Provider) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(catalog.Programs) == 0 {
		catalog = subsidy.DefaultCatalog()
	}
	if market == nil {
		market = marketdata.NewStaticProvider(logger)
	}
	return &Analyzer{
		logger:    logger,
		tables:    tables,
		catalog:   catalog,
		market:    market,
		projector: projection.NewProjector(logger),
		engine:    scenario.NewEngine(logger, financing.DefaultRatingBands()),
	}
}

// Evaluate runs the full analysis. Individual calculation faults are embedded
// in their sections; this never aborts on a bad number.
func (a *Analyzer) Evaluate(conf *config.Configuration) Evaluation {
	evaluation := Evaluation{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Warnings:    conf.ValidateConfiguration(),
	}

	evaluation.Screening = screening.Screen(conf.ScreeningProperty(), screening.DefaultPolicy())

	if market, ok := a.market.Lookup(conf.Property.City); ok {
		evaluation.Market = &market
	}

	rent := conf.Property.MonthlyRent
	if rent == 0 {
		if estimate := a.market.EstimateMonthlyRent(conf.Property.City, conf.Property.LivingArea); estimate > 0 {
			rent = estimate
			evaluation.RentEstimated = true
			a.logger.Info("no rent configured, substituting market estimate",
				zap.String("op", "evaluate.Evaluate"),
				zap.String("city", conf.Property.City),
				zap.Float64("estimatedRent", estimate),
			)
		}
	}
	evaluation.EffectiveMonthlyRent = rent

	evaluation.Cashflow = financing.ComputeCashflow(conf.FinancingInput(rent), financing.DefaultRatingBands())
	evaluation.Metrics = financing.ComputeInvestmentMetrics(conf.Property.PurchasePrice,
		rent*constants.MonthsPerYear, conf.Property.LivingArea)
	evaluation.BreakEven = financing.SolveBreakEven(conf.Property.PurchasePrice, rent,
		conf.Property.MonthlyCosts, conf.Financing.InterestRate, conf.Financing.AmortizationRate)

	evaluation.Plan = a.projector.Project(conf.ProjectionAssumptions(rent))

	// Milestones scan a longer horizon than the reported plan so late
	// milestones still register.
	milestoneAssumptions := conf.ProjectionAssumptions(rent)
	milestoneAssumptions.HorizonYears = constants.MilestoneHorizonYears
	evaluation.Milestones = projection.ScanMilestones(a.projector.Project(milestoneAssumptions))

	evaluation.QuickCheck = screening.RunQuickCheck(screening.QuickCheckInput{
		GrossYield:         evaluation.Cashflow.GrossYield,
		PriceRentFactor:    evaluation.Metrics.PriceRentFactor,
		MonthlyCashflow:    evaluation.Cashflow.MonthlyCashflow,
		EnergyClass:        conf.Property.EnergyClass,
		Leasehold:          conf.Property.Leasehold || screening.DetectLeasehold(conf.Property.Description),
		SocialHousingBound: conf.Property.SocialHousingBound,
	})

	base := conf.ScenarioBase(rent)

	// The remaining sections are independent pure computations over disjoint
	// fields, so they run concurrently.
	var group errgroup.Group
	group.Go(func() error {
		evaluation.Scenarios = a.engine.Run(base, nil)
		return nil
	})
	group.Go(func() error {
		evaluation.Sensitivity = a.engine.Sensitivity(base)
		return nil
	})
	group.Go(func() error {
		evaluation.RentalVariations = a.engine.RentalVariations(base)
		return nil
	})
	group.Go(func() error {
		evaluation.FinancingOptions = a.engine.FinancingOptions(base, nil)
		return nil
	})
	group.Go(func() error {
		evaluation.Comparison = a.engine.Compare(base, evaluation.Plan)
		return nil
	})
	group.Go(func() error {
		evaluation.FairPrice = taxrules.EstimateFairPrice(conf.Property.PurchasePrice, rent*constants.MonthsPerYear)
		evaluation.Depreciation = taxrules.ComputeDepreciation(conf.DepreciationInput(), a.tables)
		evaluation.Capitalization = taxrules.CheckCapitalizationThreshold(
			conf.DepreciationInput().BuildingValue, conf.Property.RepairCostsByYear, a.tables)
		evaluation.Leverage = taxrules.ComputeLeverage(evaluation.Cashflow.NetYield,
			conf.Financing.InterestRate, conf.Financing.Equity, evaluation.Cashflow.LoanAmount)
		evaluation.ClosingCosts = taxrules.ComputeClosingCosts(conf.Property.PurchasePrice,
			conf.Property.Region, conf.Property.WithBroker, a.tables)
		return nil
	})
	group.Go(func() error {
		evaluation.Subsidies = a.catalog.Match(conf.SubsidyQuery())
		return nil
	})
	_ = group.Wait()

	evaluation.Recommendation = recommend(evaluation)

	a.logger.Debug("evaluation complete",
		zap.String("op", "evaluate.Evaluate"),
		zap.String("id", evaluation.ID),
		zap.String("recommendation", evaluation.Recommendation),
	)

	return evaluation
}

// recommend reduces the evaluation to a single verdict. Screening always has
// the final word; a disqualified property is rejected regardless of its
// numbers.
func recommend(evaluation Evaluation) string {
	if !evaluation.Screening.Investable {
		return RecommendationReject
	}
	if evaluation.Cashflow.Fault != nil {
		return RecommendationReview
	}
	if evaluation.Screening.Critical {
		return RecommendationReview
	}
	if evaluation.Cashflow.Score >= 60 && evaluation.FairPrice.Verdict != taxrules.VerdictOverpriced {
		return RecommendationInvest
	}
	return RecommendationReview
}
