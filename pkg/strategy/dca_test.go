package strategy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeriveFrequency_Table tests the fixed interval-to-frequency mapping
func TestDeriveFrequency_Table(t *testing.T) {
	one := 1
	four := 4

	cases := []struct {
		interval string
		want     Frequency
	}{
		{"1m", Frequency{Hourly: &one}},
		{"5m", Frequency{Hourly: &one}},
		{"15m", Frequency{Hourly: &one}},
		{"30m", Frequency{Hourly: &one}},
		{"1h", Frequency{Hourly: &four}},
		{"4h", Frequency{Hourly: &four}},
		{"1d", Frequency{Daily: &one}},
		{"1w", Frequency{Weekly: &one}},
		{"unknown", Frequency{Daily: &one}},
		{"", Frequency{Daily: &one}},
	}

	for _, tc := range cases {
		got := DeriveFrequency(tc.interval)
		assert.Equal(t, tc.want, got, "interval %q", tc.interval)
	}
}

// TestDeriveFrequency_SingleVariant tests that exactly one frequency variant
// is ever set, for every interval in and outside the enumerated domain
func TestDeriveFrequency_SingleVariant(t *testing.T) {
	intervals := []string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w", "2h", "garbage"}

	for _, interval := range intervals {
		freq := DeriveFrequency(interval)

		set := 0
		for _, v := range []*int{freq.Hourly, freq.Daily, freq.Weekly, freq.Monthly, freq.Custom} {
			if v != nil {
				set++
			}
		}
		assert.Equal(t, 1, set, "interval %q must set exactly one variant", interval)
	}
}

// TestFrequency_Serialization tests that unset variants are key-absent in the
// serialized object, since the backend dispatches on key presence
func TestFrequency_Serialization(t *testing.T) {
	data, err := json.Marshal(Hourly(4))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Hourly":4}`, string(data))

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Len(t, keys, 1)
}

// TestBuildDipLevels_Monotonic tests that drops and multipliers strictly
// increase across the ladder while trigger budgets never increase
func TestBuildDipLevels_Monotonic(t *testing.T) {
	cases := []struct {
		threshold    float64
		multiplier   float64
		maxPurchases int
	}{
		{5, 2, 3},
		{1, 1, 1},
		{2.5, 1.2, 10},
		{7, 3, 2},
	}

	for _, tc := range cases {
		levels := BuildDipLevels(tc.threshold, tc.multiplier, tc.maxPurchases)
		require.Len(t, levels, DipLevelCount)

		for i := 1; i < len(levels); i++ {
			assert.Greater(t, levels[i].PriceDropPercentage, levels[i-1].PriceDropPercentage)
			assert.Greater(t, levels[i].AmountMultiplier, levels[i-1].AmountMultiplier)
			assert.LessOrEqual(t, levels[i].MaxTriggers, levels[i-1].MaxTriggers)
			assert.GreaterOrEqual(t, levels[i].MaxTriggers, 1)
		}
		assert.Equal(t, 1, levels[len(levels)-1].MaxTriggers)
	}
}

// TestBuildDipLevels_ClampsMidTriggers tests the floor-divide clamp on the
// middle level's trigger budget
func TestBuildDipLevels_ClampsMidTriggers(t *testing.T) {
	levels := BuildDipLevels(5, 2, 1)
	assert.Equal(t, 1, levels[1].MaxTriggers)

	levels = BuildDipLevels(5, 2, 5)
	assert.Equal(t, 2, levels[1].MaxTriggers)
}

// TestBuildDCAConfig_DipBuying tests the documented end-to-end DipBuying
// example, clamp included
func TestBuildDCAConfig_DipBuying(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{
		BaseAmount:             100,
		Interval:               "1d",
		StrategyType:           DCADipBuying,
		DipThresholdPercentage: 5,
		DipMultiplier:          2,
		MaxDipPurchases:        3,
	})

	require.Len(t, cfg.DipLevels, 3)
	assert.Equal(t, DipLevel{PriceDropPercentage: 5, AmountMultiplier: 2, MaxTriggers: 3}, cfg.DipLevels[0])
	assert.Equal(t, DipLevel{PriceDropPercentage: 10, AmountMultiplier: 3, MaxTriggers: 1}, cfg.DipLevels[1])
	assert.Equal(t, DipLevel{PriceDropPercentage: 20, AmountMultiplier: 6, MaxTriggers: 1}, cfg.DipLevels[2])

	require.NotNil(t, cfg.ReferencePeriodDays)
	assert.Equal(t, 30, *cfg.ReferencePeriodDays)
}

// TestBuildDCAConfig_DisabledTogglesAreKeyAbsent tests that a disabled
// sub-config block never serializes, not even as null
func TestBuildDCAConfig_DisabledTogglesAreKeyAbsent(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{
		BaseAmount:   50,
		Interval:     "1h",
		StrategyType: DCASimple,
		EnableRSI:    false,
	})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))

	assert.NotContains(t, keys, "rsi_config")
	assert.NotContains(t, keys, "volatility_config")
	assert.NotContains(t, keys, "sentiment_config")
	assert.NotContains(t, keys, "dip_levels")
	assert.NotContains(t, keys, "dynamic_factors")
	assert.NotContains(t, keys, "max_position_size")

	// the filters block is always present, even when empty
	assert.Contains(t, keys, "filters")
}

// TestBuildDCAConfig_EnabledToggles tests that enabled blocks carry the user
// fields plus the fixed neutral multiplier
func TestBuildDCAConfig_EnabledToggles(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{
		BaseAmount:   50,
		Interval:     "1h",
		StrategyType: DCARSIBased,

		EnableRSI:            true,
		RSIPeriod:            14,
		RSIOversold:          30,
		RSIOverbought:        70,
		OversoldMultiplier:   2.0,
		OverboughtMultiplier: 0.5,

		SentimentMultiplier:   true,
		FearMultiplier:        1.5,
		ExtremeFearMultiplier: 2.0,
		GreedMultiplier:       0.5,
	})

	require.NotNil(t, cfg.RSIConfig)
	assert.Equal(t, 1.0, cfg.RSIConfig.NormalMultiplier)
	assert.Equal(t, 14, cfg.RSIConfig.Period)
	assert.Equal(t, 30.0, cfg.RSIConfig.OversoldThreshold)

	require.NotNil(t, cfg.SentimentConfig)
	assert.Equal(t, 1.0, cfg.SentimentConfig.NormalMultiplier)
	assert.Equal(t, 1.5, cfg.SentimentConfig.FearMultiplier)

	assert.Nil(t, cfg.VolatilityConfig)
}

// TestBuildDCAConfig_DynamicForcesSubConfigs tests that Dynamic attaches both
// indicator configs with defaults when the user left them disabled
func TestBuildDCAConfig_DynamicForcesSubConfigs(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{
		BaseAmount:   50,
		Interval:     "4h",
		StrategyType: DCADynamic,
	})

	require.NotNil(t, cfg.RSIConfig)
	assert.Equal(t, DefaultRSIPeriod, cfg.RSIConfig.Period)
	assert.Equal(t, DefaultRSIOversold, cfg.RSIConfig.OversoldThreshold)
	assert.Equal(t, DefaultRSIOverbought, cfg.RSIConfig.OverboughtThreshold)

	require.NotNil(t, cfg.VolatilityConfig)
	assert.Equal(t, DefaultVolatilityPeriod, cfg.VolatilityConfig.Period)
	assert.Equal(t, DefaultLowVolatilityThreshold, cfg.VolatilityConfig.LowThreshold)
	assert.Equal(t, DefaultHighVolatilityThreshold, cfg.VolatilityConfig.HighThreshold)

	require.NotNil(t, cfg.DynamicFactors)
	assert.Equal(t, 0.0, cfg.DynamicFactors.RSIWeight)
	assert.Equal(t, 0.0, cfg.DynamicFactors.VolatilityWeight)
	assert.Equal(t, 0.0, cfg.DynamicFactors.SentimentWeight)
	assert.Equal(t, DynamicTrendWeight, cfg.DynamicFactors.TrendWeight)
	assert.Equal(t, DynamicMaxMultiplier, cfg.DynamicFactors.MaxMultiplier)
	assert.Equal(t, DynamicMinMultiplier, cfg.DynamicFactors.MinMultiplier)
}

// TestBuildDCAConfig_DynamicWeights tests that active toggles contribute
// their fixed weights
func TestBuildDCAConfig_DynamicWeights(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{
		BaseAmount:           50,
		Interval:             "1d",
		StrategyType:         DCADynamic,
		EnableRSI:            true,
		RSIPeriod:            21,
		VolatilityAdjustment: true,
		VolatilityPeriod:     10,
		SentimentMultiplier:  true,
	})

	require.NotNil(t, cfg.DynamicFactors)
	assert.Equal(t, DynamicRSIWeight, cfg.DynamicFactors.RSIWeight)
	assert.Equal(t, DynamicVolatilityWeight, cfg.DynamicFactors.VolatilityWeight)
	assert.Equal(t, DynamicSentimentWeight, cfg.DynamicFactors.SentimentWeight)

	// user-configured sub-configs win over the forced defaults
	require.NotNil(t, cfg.RSIConfig)
	assert.Equal(t, 21, cfg.RSIConfig.Period)
	require.NotNil(t, cfg.VolatilityConfig)
	assert.Equal(t, 10, cfg.VolatilityConfig.Period)
}

// TestBuildDCAConfig_MaxPositionSize tests that the cap is only emitted for
// positive values
func TestBuildDCAConfig_MaxPositionSize(t *testing.T) {
	cfg := BuildDCAConfig(DCAForm{BaseAmount: 50, Interval: "1d", StrategyType: DCASimple})
	assert.Nil(t, cfg.MaxPositionSize)

	cfg = BuildDCAConfig(DCAForm{BaseAmount: 50, Interval: "1d", StrategyType: DCASimple, MaxPositionSize: 1000})
	require.NotNil(t, cfg.MaxPositionSize)
	assert.Equal(t, 1000.0, *cfg.MaxPositionSize)
}
