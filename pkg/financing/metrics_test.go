package financing

import (
	"math"
	"testing"
)

func TestComputeInvestmentMetrics(t *testing.T) {
	tests := []struct {
		name                 string
		price                float64
		annualRent           float64
		livingArea           float64
		expectedFactor       float64
		expectedFactorRating string
		expectedYield        float64
		expectedYieldRating  string
	}{
		{
			name:                 "Good factor and yield",
			price:                300000,
			annualRent:           14400,
			livingArea:           80,
			expectedFactor:       20.83,
			expectedFactorRating: "good",
			expectedYield:        4.8,
			expectedYieldRating:  "good",
		},
		{
			name:                 "Very good cheap purchase",
			price:                150000,
			annualRent:           9000,
			livingArea:           60,
			expectedFactor:       16.67,
			expectedFactorRating: "very good",
			expectedYield:        6.0,
			expectedYieldRating:  "very good",
		},
		{
			name:                 "Poor expensive purchase",
			price:                500000,
			annualRent:           15000,
			livingArea:           0,
			expectedFactor:       33.33,
			expectedFactorRating: "poor",
			expectedYield:        3.0,
			expectedYieldRating:  "moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := ComputeInvestmentMetrics(tt.price, tt.annualRent, tt.livingArea)
			if metrics.Fault != nil {
				t.Fatalf("unexpected fault: %v", metrics.Fault)
			}
			if math.Abs(metrics.PriceRentFactor-tt.expectedFactor) > 0.01 {
				t.Errorf("PriceRentFactor = %v, expected %v", metrics.PriceRentFactor, tt.expectedFactor)
			}
			if metrics.FactorRating != tt.expectedFactorRating {
				t.Errorf("FactorRating = %q, expected %q", metrics.FactorRating, tt.expectedFactorRating)
			}
			if math.Abs(metrics.GrossYield-tt.expectedYield) > 0.01 {
				t.Errorf("GrossYield = %v, expected %v", metrics.GrossYield, tt.expectedYield)
			}
			if metrics.YieldRating != tt.expectedYieldRating {
				t.Errorf("YieldRating = %q, expected %q", metrics.YieldRating, tt.expectedYieldRating)
			}
		})
	}
}

func TestComputeInvestmentMetricsPricePerSqm(t *testing.T) {
	withArea := ComputeInvestmentMetrics(300000, 14400, 80)
	if withArea.PricePerSqm == nil {
		t.Fatalf("PricePerSqm should be set when living area is positive")
	}
	if *withArea.PricePerSqm != 3750 {
		t.Errorf("PricePerSqm = %v, expected 3750", *withArea.PricePerSqm)
	}

	withoutArea := ComputeInvestmentMetrics(300000, 14400, 0)
	if withoutArea.PricePerSqm != nil {
		t.Errorf("PricePerSqm should be nil without living area")
	}
}

func TestComputeInvestmentMetricsFaults(t *testing.T) {
	if metrics := ComputeInvestmentMetrics(0, 14400, 80); metrics.Fault == nil {
		t.Errorf("zero price should produce a fault")
	}
	if metrics := ComputeInvestmentMetrics(300000, 0, 80); metrics.Fault == nil {
		t.Errorf("zero rent should produce a fault")
	}
}
