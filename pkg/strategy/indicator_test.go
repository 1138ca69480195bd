package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildRSIConfig_Defaults tests that the fixed sub-blocks carry the
// contract defaults alongside the user fields
func TestBuildRSIConfig_Defaults(t *testing.T) {
	cfg := BuildRSIConfig(RSIForm{
		InvestmentAmount:   250,
		Period:             14,
		Oversold:           30,
		Overbought:         70,
		StopLossPercentage: 5,
	})

	assert.Equal(t, 14, cfg.Period)
	assert.Equal(t, 30.0, cfg.OversoldThreshold)
	assert.Equal(t, 70.0, cfg.OverboughtThreshold)

	assert.Equal(t, PositionSizingModeFixed, cfg.PositionSizing.Mode)
	assert.Equal(t, 250.0, cfg.PositionSizing.BaseAmount)
	assert.Equal(t, DefaultMaxPositionPercentage, cfg.PositionSizing.MaxPositionPercentage)
	assert.False(t, cfg.PositionSizing.ScaleInEnabled)

	assert.Equal(t, 5.0, cfg.RiskManagement.StopLossPercentage)
	assert.Nil(t, cfg.RiskManagement.TakeProfitPercentage)
	assert.Equal(t, DefaultMaxDailyLossPercentage, cfg.RiskManagement.MaxDailyLossPercentage)
	assert.Equal(t, DefaultMaxOpenPositions, cfg.RiskManagement.MaxOpenPositions)

	assert.Equal(t, DefaultMinVolumeUSD, cfg.SignalFilters.MinVolumeUSD)
	assert.Equal(t, DefaultConfirmationCandles, cfg.SignalFilters.ConfirmationCandles)
	assert.Equal(t, DefaultCooldownMinutes, cfg.SignalFilters.CooldownMinutes)

	assert.Equal(t, ExitModeSignal, cfg.ExitStrategy.Mode)
	assert.Equal(t, DefaultMaxHoldDays, cfg.ExitStrategy.MaxHoldDays)

	assert.Equal(t, DefaultEvaluationWindowDays, cfg.PerformanceConfig.EvaluationWindowDays)
	assert.False(t, cfg.PerformanceConfig.AutoPauseEnabled)
}

// TestBuildRSIConfig_TakeProfitToggle tests the toggle-gated take-profit field
func TestBuildRSIConfig_TakeProfitToggle(t *testing.T) {
	cfg := BuildRSIConfig(RSIForm{
		InvestmentAmount:     100,
		Period:               14,
		Oversold:             30,
		Overbought:           70,
		StopLossPercentage:   5,
		EnableTakeProfit:     true,
		TakeProfitPercentage: 15,
	})

	require.NotNil(t, cfg.RiskManagement.TakeProfitPercentage)
	assert.Equal(t, 15.0, *cfg.RiskManagement.TakeProfitPercentage)
}

// TestBuildSMAConfig tests the SMA crossover mapping
func TestBuildSMAConfig(t *testing.T) {
	cfg := BuildSMAConfig(SMAForm{
		InvestmentAmount:   300,
		FastPeriod:         10,
		SlowPeriod:         50,
		StopLossPercentage: 4,
	})

	assert.Equal(t, 10, cfg.FastPeriod)
	assert.Equal(t, 50, cfg.SlowPeriod)
	assert.Equal(t, 300.0, cfg.InvestmentAmount)
	assert.Equal(t, 300.0, cfg.PositionSizing.BaseAmount)
	assert.Equal(t, 4.0, cfg.RiskManagement.StopLossPercentage)
}

// TestBuildMACDConfig tests the MACD mapping
func TestBuildMACDConfig(t *testing.T) {
	cfg := BuildMACDConfig(MACDForm{
		InvestmentAmount:   150,
		FastPeriod:         12,
		SlowPeriod:         26,
		SignalPeriod:       9,
		StopLossPercentage: 6,
	})

	assert.Equal(t, 12, cfg.FastPeriod)
	assert.Equal(t, 26, cfg.SlowPeriod)
	assert.Equal(t, 9, cfg.SignalPeriod)
	assert.Equal(t, ExitModeSignal, cfg.ExitStrategy.Mode)
	assert.Equal(t, DefaultMinVolumeUSD, cfg.SignalFilters.MinVolumeUSD)
}
