package projection

import "testing"

func TestScanMilestonesLoanShares(t *testing.T) {
	a := Assumptions{
		PurchasePrice:    300000,
		Equity:           60000,
		InterestRate:     3.0,
		AmortizationRate: 10.0,
		MonthlyRent:      1200,
		MonthlyCosts:     250,
		HorizonYears:     30,
	}
	plan := NewProjector(nil).Project(a)
	milestones := ScanMilestones(plan)

	if milestones.LoanRepaid25 == nil || milestones.LoanRepaid50 == nil ||
		milestones.LoanRepaid75 == nil || milestones.LoanRepaidFull == nil {
		t.Fatalf("all loan milestones should be reached with 10%% amortization")
	}
	if !(*milestones.LoanRepaid25 <= *milestones.LoanRepaid50 &&
		*milestones.LoanRepaid50 <= *milestones.LoanRepaid75 &&
		*milestones.LoanRepaid75 <= *milestones.LoanRepaidFull) {
		t.Errorf("loan milestones out of order: %d %d %d %d",
			*milestones.LoanRepaid25, *milestones.LoanRepaid50,
			*milestones.LoanRepaid75, *milestones.LoanRepaidFull)
	}
	if milestones.LoanRepaidFull != nil && plan.Summary.YearsToFullRepayment != nil {
		if *milestones.LoanRepaidFull != *plan.Summary.YearsToFullRepayment {
			t.Errorf("LoanRepaidFull = %d disagrees with summary %d",
				*milestones.LoanRepaidFull, *plan.Summary.YearsToFullRepayment)
		}
	}
}

func TestScanMilestonesCashflowAndEquity(t *testing.T) {
	a := Assumptions{
		PurchasePrice:    200000,
		Equity:           50000,
		InterestRate:     3.75,
		AmortizationRate: 2.0,
		MonthlyRent:      1100,
		MonthlyCosts:     150,
		HorizonYears:     40,
		RentGrowthRate:   1.5,
		ValueGrowthRate:  1.5,
	}
	plan := NewProjector(nil).Project(a)
	milestones := ScanMilestones(plan)

	if milestones.FirstPositiveCashflow == nil {
		t.Fatalf("expected a positive-cashflow year")
	}
	if *milestones.FirstPositiveCashflow != 1 {
		t.Errorf("FirstPositiveCashflow = %d, expected 1", *milestones.FirstPositiveCashflow)
	}

	if milestones.EquityDoubled == nil {
		t.Fatalf("expected equity to double within 40 years")
	}
	doubledRow := plan.Years[*milestones.EquityDoubled-1]
	if doubledRow.EquityBuilt < 2*a.Equity {
		t.Errorf("equity built %v in year %d has not doubled %v",
			doubledRow.EquityBuilt, doubledRow.Year, a.Equity)
	}

	if milestones.NetWorth[100000] == nil {
		t.Errorf("net worth 100000 should be reached")
	}
}

func TestScanMilestonesNotReached(t *testing.T) {
	a := Assumptions{
		PurchasePrice:    100000,
		Equity:           0,
		InterestRate:     3.75,
		AmortizationRate: 1.0,
		MonthlyRent:      300,
		MonthlyCosts:     100,
		HorizonYears:     5,
	}
	plan := NewProjector(nil).Project(a)
	milestones := ScanMilestones(plan)

	if milestones.LoanRepaidFull != nil {
		t.Errorf("loan cannot be repaid within 5 years at 1%% amortization")
	}
	if milestones.EquityDoubled != nil {
		t.Errorf("EquityDoubled must stay nil at zero starting equity")
	}
	if milestones.NetWorth[500000] != nil {
		t.Errorf("net worth 500000 is unreachable here")
	}
}
