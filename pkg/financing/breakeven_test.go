package financing

import (
	"math"
	"testing"

	"immo-analyzer/pkg/fault"
)

func TestSolveBreakEven(t *testing.T) {
	tests := []struct {
		name                    string
		price                   float64
		monthlyRent             float64
		monthlyCosts            float64
		interestRate            float64
		amortizationRate        float64
		expectedRequiredEquity  float64
		expectedEquityShare     float64
		expectedFeasible        bool
		expectedAlreadyPositive bool
	}{
		{
			name:                   "Break-even within range",
			price:                  300000,
			monthlyRent:            1200,
			monthlyCosts:           250,
			interestRate:           3.75,
			amortizationRate:       1.25,
			expectedRequiredEquity: 72000,
			expectedEquityShare:    24,
			expectedFeasible:       true,
		},
		{
			name:                    "Already positive at full financing",
			price:                   200000,
			monthlyRent:             2000,
			monthlyCosts:            200,
			interestRate:            3.75,
			amortizationRate:        1.25,
			expectedRequiredEquity:  0,
			expectedEquityShare:     0,
			expectedFeasible:        true,
			expectedAlreadyPositive: true,
		},
		{
			name:                   "Not reachable when costs exceed rent",
			price:                  300000,
			monthlyRent:            100,
			monthlyCosts:           300,
			interestRate:           3.75,
			amortizationRate:       1.25,
			expectedRequiredEquity: 348000,
			expectedEquityShare:    100,
			expectedFeasible:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SolveBreakEven(tt.price, tt.monthlyRent, tt.monthlyCosts, tt.interestRate, tt.amortizationRate)
			if result.Fault != nil {
				t.Fatalf("unexpected fault: %v", result.Fault)
			}
			if result.RequiredEquity != tt.expectedRequiredEquity {
				t.Errorf("RequiredEquity = %v, expected %v", result.RequiredEquity, tt.expectedRequiredEquity)
			}
			if result.EquityShare != tt.expectedEquityShare {
				t.Errorf("EquityShare = %v, expected %v", result.EquityShare, tt.expectedEquityShare)
			}
			if result.Feasible != tt.expectedFeasible {
				t.Errorf("Feasible = %v, expected %v", result.Feasible, tt.expectedFeasible)
			}
			if result.AlreadyPositive != tt.expectedAlreadyPositive {
				t.Errorf("AlreadyPositive = %v, expected %v", result.AlreadyPositive, tt.expectedAlreadyPositive)
			}
		})
	}
}

// Feeding the solved equity back into the cashflow core must land within one
// cent of zero.
func TestSolveBreakEvenRoundTrip(t *testing.T) {
	price, rent, costs := 300000.0, 1200.0, 250.0
	interest, amortization := 3.75, 1.25

	result := SolveBreakEven(price, rent, costs, interest, amortization)
	if result.Fault != nil {
		t.Fatalf("unexpected fault: %v", result.Fault)
	}
	if !result.Feasible {
		t.Fatalf("expected feasible break-even")
	}

	snapshot := ComputeCashflow(Input{
		PurchasePrice:    price,
		MonthlyRent:      rent,
		MonthlyCosts:     costs,
		Equity:           result.RequiredEquity,
		InterestRate:     interest,
		AmortizationRate: amortization,
	}, nil)
	if snapshot.Fault != nil {
		t.Fatalf("unexpected cashflow fault: %v", snapshot.Fault)
	}
	if math.Abs(snapshot.AnnualCashflow) > 0.01 {
		t.Errorf("cashflow at break-even equity = %v, expected 0", snapshot.AnnualCashflow)
	}
}

func TestSolveBreakEvenFaults(t *testing.T) {
	if result := SolveBreakEven(0, 1000, 100, 3.75, 1.25); result.Fault == nil || result.Fault.Code != fault.InvalidInput {
		t.Errorf("zero price should produce an invalid-input fault, got %v", result.Fault)
	}
	if result := SolveBreakEven(300000, 1000, 100, 0, 0); result.Fault == nil || result.Fault.Code != fault.Infeasible {
		t.Errorf("zero annuity rate should produce an infeasible fault, got %v", result.Fault)
	}
}
