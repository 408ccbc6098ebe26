package taxrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateFairPriceComponents(t *testing.T) {
	result := EstimateFairPrice(240000, 12000)
	require.Nil(t, result.Fault)

	assert.InDelta(t, 266666.67, result.YieldBased, 0.01)
	assert.InDelta(t, 264000.0, result.FactorBased, 0.01)
	// 12000 * 0.65 / 0.053 * 0.9
	assert.InDelta(t, 132452.83, result.AffordabilityBased, 0.01)
	// 0.4, 0.3 and 0.3 weighted blend.
	assert.InDelta(t, 225602.52, result.Blended, 0.01)
}

func TestEstimateFairPriceVerdicts(t *testing.T) {
	tests := []struct {
		name            string
		price           float64
		expectedVerdict string
	}{
		{"Well above the band", 280000, VerdictOverpriced},
		{"Just above the band", 237000, VerdictOverpriced},
		{"At the estimate", 225600, VerdictFair},
		{"Slightly below", 220000, VerdictFair},
		{"Well below the band", 200000, VerdictCheap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateFairPrice(tt.price, 12000)
			require.Nil(t, result.Fault)
			assert.Equal(t, tt.expectedVerdict, result.Verdict)
		})
	}
}

func TestEstimateFairPriceDeviationSign(t *testing.T) {
	overpriced := EstimateFairPrice(280000, 12000)
	assert.Positive(t, overpriced.DeviationPercent)

	cheap := EstimateFairPrice(180000, 12000)
	assert.Negative(t, cheap.DeviationPercent)
}

func TestEstimateFairPriceFaults(t *testing.T) {
	assert.NotNil(t, EstimateFairPrice(0, 12000).Fault)
	assert.NotNil(t, EstimateFairPrice(240000, 0).Fault)
	assert.NotNil(t, EstimateFairPrice(240000, -100).Fault)
}
