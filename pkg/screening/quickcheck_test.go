package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunQuickCheck(t *testing.T) {
	tests := []struct {
		name           string
		input          QuickCheckInput
		expectedPassed int
		expectedLight  string
	}{
		{
			name: "All gates pass",
			input: QuickCheckInput{
				GrossYield:      5.2,
				PriceRentFactor: 19,
				MonthlyCashflow: 120,
				EnergyClass:     "C",
			},
			expectedPassed: 6,
			expectedLight:  "green",
		},
		{
			name: "One failed gate is still green",
			input: QuickCheckInput{
				GrossYield:      3.8,
				PriceRentFactor: 22,
				MonthlyCashflow: 50,
				EnergyClass:     "D",
			},
			expectedPassed: 5,
			expectedLight:  "green",
		},
		{
			name: "Three passes is yellow",
			input: QuickCheckInput{
				GrossYield:      3.0,
				PriceRentFactor: 28,
				MonthlyCashflow: -150,
				EnergyClass:     "D",
			},
			expectedPassed: 3,
			expectedLight:  "yellow",
		},
		{
			name: "Nearly everything fails",
			input: QuickCheckInput{
				GrossYield:         2.0,
				PriceRentFactor:    35,
				MonthlyCashflow:    -300,
				EnergyClass:        "H",
				Leasehold:          true,
				SocialHousingBound: true,
			},
			expectedPassed: 0,
			expectedLight:  "red",
		},
		{
			name: "Boundary values count as passes",
			input: QuickCheckInput{
				GrossYield:      4.0,
				PriceRentFactor: 25,
				MonthlyCashflow: 0,
				EnergyClass:     "F",
			},
			expectedPassed: 6,
			expectedLight:  "green",
		},
		{
			name: "Zero factor fails its gate",
			input: QuickCheckInput{
				GrossYield:      4.5,
				PriceRentFactor: 0,
				MonthlyCashflow: 10,
				EnergyClass:     "C",
			},
			expectedPassed: 5,
			expectedLight:  "green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RunQuickCheck(tt.input)
			assert.Equal(t, tt.expectedPassed, result.Passed)
			assert.Equal(t, 6, result.Total)
			assert.Equal(t, tt.expectedLight, result.TrafficLight)
			assert.NotEmpty(t, result.Verdict)
		})
	}
}

func TestRunQuickCheckEnergyGate(t *testing.T) {
	g := RunQuickCheck(QuickCheckInput{EnergyClass: "g"})
	for _, check := range g.Checks {
		if check.Name == "energy class better than G" {
			assert.False(t, check.Passed)
		}
	}

	empty := RunQuickCheck(QuickCheckInput{EnergyClass: ""})
	for _, check := range empty.Checks {
		if check.Name == "energy class better than G" {
			assert.True(t, check.Passed, "missing class does not fail the gate")
		}
	}
}
