package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildGridConfig_SpacingFormula tests the total-span-over-gaps spacing
// calculation
func TestBuildGridConfig_SpacingFormula(t *testing.T) {
	cfg := BuildGridConfig(GridForm{
		InvestmentAmount: 1000,
		GridCount:        10,
		RangePercentage:  10,
	})
	assert.InDelta(t, 20.0/9.0, cfg.Spacing.FixedSpacing, 1e-9)
	assert.Equal(t, GridSpacingModeFixed, cfg.Spacing.Mode)

	cfg = BuildGridConfig(GridForm{
		InvestmentAmount: 1000,
		GridCount:        2,
		RangePercentage:  10,
	})
	assert.Equal(t, 20.0, cfg.Spacing.FixedSpacing)
}

// TestBuildGridConfig_InventoryProportions tests the fixed risk proportions
// derived from the investment amount
func TestBuildGridConfig_InventoryProportions(t *testing.T) {
	cfg := BuildGridConfig(GridForm{
		InvestmentAmount: 2000,
		GridCount:        5,
		RangePercentage:  8,
	})

	assert.Equal(t, 1000.0, cfg.RiskSettings.MaxInventory)
	assert.Equal(t, 600.0, cfg.MarketMaking.MaxInventoryDeviation)
	assert.True(t, cfg.MarketMaking.Enabled)
	assert.Equal(t, GridOrderRefreshSeconds, cfg.MarketMaking.OrderRefreshSeconds)
}

// TestBuildGridConfig_OptionalRiskLimits tests that stop-loss and take-profit
// only serialize when their toggles are on
func TestBuildGridConfig_OptionalRiskLimits(t *testing.T) {
	cfg := BuildGridConfig(GridForm{
		InvestmentAmount: 500,
		GridCount:        4,
		RangePercentage:  6,
	})
	assert.Nil(t, cfg.RiskSettings.StopLossPercentage)
	assert.Nil(t, cfg.RiskSettings.TakeProfitPercentage)

	cfg = BuildGridConfig(GridForm{
		InvestmentAmount:     500,
		GridCount:            4,
		RangePercentage:      6,
		EnableStopLoss:       true,
		StopLossPercentage:   5,
		EnableTakeProfit:     true,
		TakeProfitPercentage: 12,
	})
	require.NotNil(t, cfg.RiskSettings.StopLossPercentage)
	assert.Equal(t, 5.0, *cfg.RiskSettings.StopLossPercentage)
	require.NotNil(t, cfg.RiskSettings.TakeProfitPercentage)
	assert.Equal(t, 12.0, *cfg.RiskSettings.TakeProfitPercentage)
}
