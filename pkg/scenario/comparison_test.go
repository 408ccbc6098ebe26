package scenario

import (
	"math"
	"testing"

	"immo-analyzer/pkg/projection"
)

func TestCompareEquityOnlyGrowth(t *testing.T) {
	base := testBase()
	engine := NewEngine(nil, nil)
	plan := projection.NewProjector(nil).Project(projection.Assumptions{
		PurchasePrice:    base.PurchasePrice,
		Equity:           base.Equity,
		InterestRate:     base.InterestRate,
		AmortizationRate: base.AmortizationRate,
		MonthlyRent:      base.MonthlyRent,
		MonthlyCosts:     base.MonthlyCosts,
		HorizonYears:     base.HorizonYears,
	})

	comparison := engine.Compare(base, plan)

	if comparison.HorizonYears != 30 {
		t.Errorf("HorizonYears = %d, expected 30", comparison.HorizonYears)
	}

	// 60000 * 1.07^30
	expected := 60000 * math.Pow(1.07, 30)
	if math.Abs(comparison.AlternativeEquityOnly-expected) > 0.5 {
		t.Errorf("AlternativeEquityOnly = %v, expected about %v", comparison.AlternativeEquityOnly, expected)
	}

	// The base case runs at a monthly shortfall of 50, which becomes a
	// recurring contribution to the alternative.
	if comparison.MonthlyContribution != 50 {
		t.Errorf("MonthlyContribution = %v, expected 50", comparison.MonthlyContribution)
	}
	if comparison.AlternativeWithContributions <= comparison.AlternativeEquityOnly {
		t.Errorf("contributions must increase the alternative: %v vs %v",
			comparison.AlternativeWithContributions, comparison.AlternativeEquityOnly)
	}

	if comparison.ReturnFactor == nil {
		t.Fatalf("ReturnFactor should be set with positive equity")
	}
	expectedFactor := plan.Summary.FinalNetWorth / base.Equity
	if math.Abs(*comparison.ReturnFactor-expectedFactor) > 0.01 {
		t.Errorf("ReturnFactor = %v, expected %v", *comparison.ReturnFactor, expectedFactor)
	}
}

func TestCompareZeroEquity(t *testing.T) {
	base := testBase()
	base.Equity = 0

	engine := NewEngine(nil, nil)
	plan := projection.NewProjector(nil).Project(projection.Assumptions{
		PurchasePrice:    base.PurchasePrice,
		InterestRate:     base.InterestRate,
		AmortizationRate: base.AmortizationRate,
		MonthlyRent:      base.MonthlyRent,
		MonthlyCosts:     base.MonthlyCosts,
		HorizonYears:     base.HorizonYears,
	})

	comparison := engine.Compare(base, plan)

	if comparison.ReturnFactor != nil {
		t.Errorf("ReturnFactor must be nil at zero equity, got %v", *comparison.ReturnFactor)
	}
	if comparison.AlternativeEquityOnly != 0 {
		t.Errorf("AlternativeEquityOnly = %v, expected 0", comparison.AlternativeEquityOnly)
	}
}

func TestComparePositiveCashflowHasNoContribution(t *testing.T) {
	base := testBase()
	base.MonthlyRent = 2000

	engine := NewEngine(nil, nil)
	plan := projection.NewProjector(nil).Project(projection.Assumptions{
		PurchasePrice:    base.PurchasePrice,
		Equity:           base.Equity,
		InterestRate:     base.InterestRate,
		AmortizationRate: base.AmortizationRate,
		MonthlyRent:      base.MonthlyRent,
		MonthlyCosts:     base.MonthlyCosts,
		HorizonYears:     base.HorizonYears,
	})

	comparison := engine.Compare(base, plan)

	if comparison.MonthlyContribution != 0 {
		t.Errorf("MonthlyContribution = %v, expected 0 with positive cashflow", comparison.MonthlyContribution)
	}
	if comparison.AlternativeWithContributions != comparison.AlternativeEquityOnly {
		t.Errorf("alternatives should coincide without contributions: %v vs %v",
			comparison.AlternativeWithContributions, comparison.AlternativeEquityOnly)
	}
}
