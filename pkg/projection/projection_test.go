package projection

import (
	"math"
	"testing"

	"immo-analyzer/pkg/financing"
)

func baseAssumptions() Assumptions {
	return Assumptions{
		PurchasePrice:    300000,
		Equity:           60000,
		InterestRate:     3.75,
		AmortizationRate: 1.25,
		MonthlyRent:      1200,
		MonthlyCosts:     250,
		HorizonYears:     30,
	}
}

func TestProjectFirstYear(t *testing.T) {
	plan := NewProjector(nil).Project(baseAssumptions())
	if plan.Fault != nil {
		t.Fatalf("unexpected fault: %v", plan.Fault)
	}
	if len(plan.Years) == 0 {
		t.Fatalf("expected projected years")
	}

	first := plan.Years[0]
	if first.InterestYear != 9000 {
		t.Errorf("first-year interest = %v, expected 9000", first.InterestYear)
	}
	if first.PrincipalYear != 3000 {
		t.Errorf("first-year principal = %v, expected 3000", first.PrincipalYear)
	}
	if first.RemainingDebt != 237000 {
		t.Errorf("first-year remaining debt = %v, expected 237000", first.RemainingDebt)
	}
	if first.CurrentRent != 1200 {
		t.Errorf("growth must not apply to year one, rent = %v", first.CurrentRent)
	}
	if plan.Summary.AnnualPayment != 12000 {
		t.Errorf("annual payment = %v, expected 12000", plan.Summary.AnnualPayment)
	}
}

// A one-year projection must agree with the single-period cashflow core.
func TestProjectMatchesCashflowCore(t *testing.T) {
	a := baseAssumptions()
	a.HorizonYears = 1

	plan := NewProjector(nil).Project(a)
	if len(plan.Years) != 1 {
		t.Fatalf("expected exactly one year, got %d", len(plan.Years))
	}

	snapshot := financing.ComputeCashflow(financing.Input{
		PurchasePrice:    a.PurchasePrice,
		MonthlyRent:      a.MonthlyRent,
		MonthlyCosts:     a.MonthlyCosts,
		Equity:           a.Equity,
		InterestRate:     a.InterestRate,
		AmortizationRate: a.AmortizationRate,
	}, nil)

	if math.Abs(plan.Years[0].AnnualCashflow-snapshot.AnnualCashflow) > 0.01 {
		t.Errorf("projection cashflow %v disagrees with core %v",
			plan.Years[0].AnnualCashflow, snapshot.AnnualCashflow)
	}
	if math.Abs(plan.Summary.MonthlyPayment-snapshot.MonthlyPayment) > 0.01 {
		t.Errorf("projection payment %v disagrees with core %v",
			plan.Summary.MonthlyPayment, snapshot.MonthlyPayment)
	}
}

func TestProjectDebtMonotone(t *testing.T) {
	plan := NewProjector(nil).Project(baseAssumptions())

	previous := plan.Summary.LoanAmount
	for _, year := range plan.Years {
		if year.RemainingDebt > previous+0.01 {
			t.Fatalf("debt increased in year %d: %v -> %v", year.Year, previous, year.RemainingDebt)
		}
		if year.RemainingDebt < 0 {
			t.Fatalf("debt went negative in year %d: %v", year.Year, year.RemainingDebt)
		}
		previous = year.RemainingDebt
	}
}

func TestProjectStopsAtPayoff(t *testing.T) {
	a := baseAssumptions()
	a.InterestRate = 3.0
	a.AmortizationRate = 10.0

	plan := NewProjector(nil).Project(a)
	if len(plan.Years) >= a.HorizonYears {
		t.Fatalf("expected early payoff, got %d years", len(plan.Years))
	}

	final := plan.Years[len(plan.Years)-1]
	if final.RemainingDebt != 0 {
		t.Errorf("final remaining debt = %v, expected 0", final.RemainingDebt)
	}
	if math.Abs(plan.Summary.TotalPrincipal-plan.Summary.LoanAmount) > 0.01 {
		t.Errorf("total principal %v should equal loan %v once fully amortized",
			plan.Summary.TotalPrincipal, plan.Summary.LoanAmount)
	}
	if plan.Summary.YearsToFullRepayment == nil {
		t.Fatalf("YearsToFullRepayment should be set")
	}
	if *plan.Summary.YearsToFullRepayment != final.Year {
		t.Errorf("YearsToFullRepayment = %d, expected %d", *plan.Summary.YearsToFullRepayment, final.Year)
	}
}

func TestProjectSlowAmortizationRunsFullHorizon(t *testing.T) {
	plan := NewProjector(nil).Project(baseAssumptions())
	if len(plan.Years) != 30 {
		t.Fatalf("expected the full 30-year horizon, got %d years", len(plan.Years))
	}
	if plan.Summary.YearsToFullRepayment != nil {
		t.Errorf("YearsToFullRepayment should be nil while debt remains, got %d", *plan.Summary.YearsToFullRepayment)
	}
	if plan.Summary.RemainingDebt <= 0 {
		t.Errorf("expected remaining debt after 30 years at 1.25%% amortization, got %v", plan.Summary.RemainingDebt)
	}
}

func TestProjectGrowth(t *testing.T) {
	a := baseAssumptions()
	a.RentGrowthRate = 2.0
	a.ValueGrowthRate = 1.0
	a.HorizonYears = 3

	plan := NewProjector(nil).Project(a)
	if len(plan.Years) != 3 {
		t.Fatalf("expected 3 years, got %d", len(plan.Years))
	}

	if plan.Years[0].CurrentRent != 1200 || plan.Years[0].PropertyValue != 300000 {
		t.Errorf("year one must use starting values, got rent %v value %v",
			plan.Years[0].CurrentRent, plan.Years[0].PropertyValue)
	}
	if plan.Years[1].CurrentRent != 1224 {
		t.Errorf("year two rent = %v, expected 1224", plan.Years[1].CurrentRent)
	}
	if plan.Years[1].PropertyValue != 303000 {
		t.Errorf("year two value = %v, expected 303000", plan.Years[1].PropertyValue)
	}
	if math.Abs(plan.Years[2].CurrentRent-1248.48) > 0.01 {
		t.Errorf("year three rent = %v, expected 1248.48", plan.Years[2].CurrentRent)
	}
}

func TestProjectFaults(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Assumptions)
	}{
		{"Zero price", func(a *Assumptions) { a.PurchasePrice = 0 }},
		{"Negative equity", func(a *Assumptions) { a.Equity = -1 }},
		{"Equity beyond price", func(a *Assumptions) { a.Equity = a.PurchasePrice + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baseAssumptions()
			tt.edit(&a)
			plan := NewProjector(nil).Project(a)
			if plan.Fault == nil {
				t.Errorf("expected fault, got none")
			}
		})
	}
}
