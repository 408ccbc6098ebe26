// Package projection generates multi-year amortization projections for a
// financed property and scans them for investment milestones.
package projection

import (
	"fmt"

	"go.uber.org/zap"

	"immo-analyzer/pkg/constants"
	"immo-analyzer/pkg/fault"
	"immo-analyzer/pkg/mathutil"
)

// Assumptions holds the inputs of a projection run. Rates are annual
// percentages; the horizon is in years.
type Assumptions struct {
	PurchasePrice    float64
	Equity           float64
	InterestRate     float64
	AmortizationRate float64
	MonthlyRent      float64
	MonthlyCosts     float64
	HorizonYears     int
	RentGrowthRate   float64
	ValueGrowthRate  float64
}

// Year is one projected year. Growth applies after a year is recorded, so
// year 1 always uses the starting rent and value.
type Year struct {
	Year            int     `json:"year"`
	RemainingDebt   float64 `json:"remainingDebt"`
	PrincipalToDate float64 `json:"principalToDate"`
	InterestYear    float64 `json:"interestYear"`
	PrincipalYear   float64 `json:"principalYear"`
	AnnualCashflow  float64 `json:"annualCashflow"`
	MonthlyCashflow float64 `json:"monthlyCashflow"`
	PropertyValue   float64 `json:"propertyValue"`
	CurrentRent     float64 `json:"currentRent"`
	EquityBuilt     float64 `json:"equityBuilt"`
	NetWorth        float64 `json:"netWorth"`
}

// Summary aggregates a projection run. YearsToFullRepayment is nil when the
// loan does not fully amortize within the horizon.
type Summary struct {
	LoanAmount           float64 `json:"loanAmount"`
	StartingEquity       float64 `json:"startingEquity"`
	AnnualPayment        float64 `json:"annualPayment"`
	MonthlyPayment       float64 `json:"monthlyPayment"`
	TotalInterest        float64 `json:"totalInterest"`
	TotalPrincipal       float64 `json:"totalPrincipal"`
	TotalFinancingCost   float64 `json:"totalFinancingCost"`
	RemainingDebt        float64 `json:"remainingDebt"`
	FinalPropertyValue   float64 `json:"finalPropertyValue"`
	FinalNetWorth        float64 `json:"finalNetWorth"`
	FirstYearCashflow    float64 `json:"firstYearCashflow"`
	FinalYearCashflow    float64 `json:"finalYearCashflow"`
	YearsToFullRepayment *int    `json:"yearsToFullRepayment,omitempty"`
}

// Plan is a full projection: the ordered year rows plus the summary. The
// series stops once the loan is fully repaid, so it may be shorter than the
// nominal horizon; callers must treat the last row as the final year.
type Plan struct {
	Fault   *fault.Fault `json:"fault,omitempty"`
	Years   []Year       `json:"years"`
	Summary Summary      `json:"summary"`
}

// Projector generates amortization plans.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a projector. A nil logger is replaced with a no-op.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// Project runs the year-by-year amortization. Interest for a year is always
// computed on the debt at the start of that year, even when the year's
// principal is capped by the remaining balance.
func (p *Projector) Project(a Assumptions) Plan {
	if a.PurchasePrice <= 0 {
		return Plan{Fault: fault.Invalid("purchase price must be positive, got %.2f", a.PurchasePrice)}
	}
	if a.Equity < 0 || a.Equity > a.PurchasePrice {
		return Plan{Fault: fault.Invalid("equity %.2f must lie within [0, %.2f]", a.Equity, a.PurchasePrice)}
	}
	horizon := a.HorizonYears
	if horizon <= 0 {
		horizon = constants.DefaultHorizonYears
	}

	loan := a.PurchasePrice - a.Equity
	annuityRate := a.InterestRate + a.AmortizationRate
	annualPayment := loan * annuityRate / constants.PercentageMultiplier

	debt := loan
	rent := a.MonthlyRent
	value := a.PurchasePrice

	var years []Year
	totalInterest := 0.0
	totalPrincipal := 0.0

	for year := 1; year <= horizon; year++ {
		interest := debt * a.InterestRate / constants.PercentageMultiplier
		principal := annualPayment - interest
		if principal < 0 {
			principal = 0
		}
		if principal > debt {
			principal = debt
		}
		debt = mathutil.Max(0, debt-principal)
		totalInterest += interest
		totalPrincipal += principal

		annualCashflow := rent*constants.MonthsPerYear - annualPayment - a.MonthlyCosts*constants.MonthsPerYear
		equityBuilt := a.Equity + totalPrincipal

		years = append(years, Year{
			Year:            year,
			RemainingDebt:   mathutil.Round(debt),
			PrincipalToDate: mathutil.Round(totalPrincipal),
			InterestYear:    mathutil.Round(interest),
			PrincipalYear:   mathutil.Round(principal),
			AnnualCashflow:  mathutil.Round(annualCashflow),
			MonthlyCashflow: mathutil.Round(annualCashflow / constants.MonthsPerYear),
			PropertyValue:   mathutil.Round(value),
			CurrentRent:     mathutil.Round(rent),
			EquityBuilt:     mathutil.Round(equityBuilt),
			NetWorth:        mathutil.Round(value - debt),
		})

		// Growth applies only after the year is recorded.
		rent *= 1 + a.RentGrowthRate/constants.PercentageMultiplier
		value *= 1 + a.ValueGrowthRate/constants.PercentageMultiplier

		if mathutil.IsZero(debt) {
			debt = 0
			p.logger.Debug(fmt.Sprintf("loan fully repaid after %d years, stopping projection", year),
				zap.String("op", "projection.Project"),
			)
			break
		}
	}

	summary := Summary{
		LoanAmount:         mathutil.Round(loan),
		StartingEquity:     mathutil.Round(a.Equity),
		AnnualPayment:      mathutil.Round(annualPayment),
		MonthlyPayment:     mathutil.Round(annualPayment / constants.MonthsPerYear),
		TotalInterest:      mathutil.Round(totalInterest),
		TotalPrincipal:     mathutil.Round(totalPrincipal),
		TotalFinancingCost: mathutil.Round(loan + totalInterest),
		RemainingDebt:      mathutil.Round(debt),
	}
	if len(years) > 0 {
		first := years[0]
		final := years[len(years)-1]
		summary.FinalPropertyValue = final.PropertyValue
		summary.FinalNetWorth = final.NetWorth
		summary.FirstYearCashflow = first.AnnualCashflow
		summary.FinalYearCashflow = final.AnnualCashflow
		if mathutil.IsZero(debt) {
			repaid := final.Year
			summary.YearsToFullRepayment = &repaid
		}
	}

	return Plan{Years: years, Summary: summary}
}
