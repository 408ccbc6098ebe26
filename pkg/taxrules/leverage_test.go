package taxrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immo-analyzer/pkg/fault"
)

func TestComputeLeverage(t *testing.T) {
	t.Run("Positive leverage amplifies the yield", func(t *testing.T) {
		result := ComputeLeverage(4.5, 3.0, 50000, 150000)
		require.Nil(t, result.Fault)
		assert.Equal(t, 3.0, result.LeverageRatio)
		assert.Equal(t, 1.5, result.Spread)
		// 4.5 + 1.5 * 3
		assert.Equal(t, 9.0, result.EquityYield)
		assert.True(t, result.PositiveLeverage)
		assert.Empty(t, result.Warning)
	})

	t.Run("Negative leverage is flagged", func(t *testing.T) {
		result := ComputeLeverage(4.5, 6.0, 50000, 150000)
		require.Nil(t, result.Fault)
		assert.Equal(t, -1.5, result.Spread)
		assert.Equal(t, 0.0, result.EquityYield)
		assert.False(t, result.PositiveLeverage)
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("No debt leaves the yield untouched", func(t *testing.T) {
		result := ComputeLeverage(4.5, 3.0, 200000, 0)
		require.Nil(t, result.Fault)
		assert.Equal(t, 0.0, result.LeverageRatio)
		assert.Equal(t, 4.5, result.EquityYield)
	})

	t.Run("Zero equity is infeasible", func(t *testing.T) {
		result := ComputeLeverage(4.5, 3.0, 0, 150000)
		require.NotNil(t, result.Fault)
		assert.Equal(t, fault.Infeasible, result.Fault.Code)
	})

	t.Run("Negative debt is invalid", func(t *testing.T) {
		result := ComputeLeverage(4.5, 3.0, 50000, -1)
		require.NotNil(t, result.Fault)
		assert.Equal(t, fault.InvalidInput, result.Fault.Code)
	})
}
