package strategy

// DCA builder constants. These are product decisions baked into the backend
// contract; changing any of them changes what the backend executes.
const (
	// Every adjustment sub-config carries the same neutral multiplier
	NormalMultiplier = 1.0

	// DipBuying ladder policy
	DipLevelCount          = 3
	DipReferencePeriodDays = 30

	// Dynamic strategy factor weights
	DynamicRSIWeight        = 0.4
	DynamicVolatilityWeight = 0.3
	DynamicSentimentWeight  = 0.2
	DynamicTrendWeight      = 0.1
	DynamicMaxMultiplier    = 3.0
	DynamicMinMultiplier    = 0.3

	// Defaults force-attached when Dynamic needs a sub-config the user
	// did not configure
	DefaultRSIPeriod            = 14
	DefaultRSIOversold          = 30.0
	DefaultRSIOverbought        = 70.0
	DefaultOversoldMultiplier   = 2.0
	DefaultOverboughtMultiplier = 0.5

	DefaultVolatilityPeriod         = 20
	DefaultLowVolatilityThreshold   = 10.0
	DefaultHighVolatilityThreshold  = 30.0
	DefaultLowVolatilityMultiplier  = 1.5
	DefaultHighVolatilityMultiplier = 0.5
)

// DeriveFrequency maps a backtest candlestick interval to a DCA execution
// frequency, so a simulated strategy never trades more often than the data
// resolution allows. Total over any input; unknown intervals fall back to
// daily execution.
func DeriveFrequency(interval string) Frequency {
	switch interval {
	case "1m", "5m", "15m", "30m":
		return Hourly(1)
	case "1h", "4h":
		return Hourly(4)
	case "1d":
		return Daily(1)
	case "1w":
		return Weekly(1)
	default:
		return Daily(1)
	}
}

// BuildDCAConfig assembles the backend DCA payload from the flat form state.
// The filters block is always present; the adjustment sub-configs are attached
// only when their toggle is on, except under Dynamic, which always requires
// RSI and volatility configs and fills in defaults for whichever the user
// left disabled.
func BuildDCAConfig(f DCAForm) DCAConfig {
	cfg := DCAConfig{
		BaseAmount:   f.BaseAmount,
		Frequency:    DeriveFrequency(f.Interval),
		StrategyType: f.StrategyType,
		Filters:      buildFilters(f),
	}

	if f.SentimentMultiplier {
		cfg.SentimentConfig = &SentimentConfig{
			NormalMultiplier:      NormalMultiplier,
			FearMultiplier:        f.FearMultiplier,
			ExtremeFearMultiplier: f.ExtremeFearMultiplier,
			GreedMultiplier:       f.GreedMultiplier,
		}
	}

	if f.VolatilityAdjustment {
		cfg.VolatilityConfig = &VolatilityConfig{
			Period:                   f.VolatilityPeriod,
			LowThreshold:             f.LowVolatilityThreshold,
			HighThreshold:            f.HighVolatilityThreshold,
			NormalMultiplier:         NormalMultiplier,
			LowVolatilityMultiplier:  f.LowVolatilityMultiplier,
			HighVolatilityMultiplier: f.HighVolatilityMultiplier,
		}
	}

	if f.EnableRSI {
		cfg.RSIConfig = &RSIThresholds{
			Period:               f.RSIPeriod,
			OversoldThreshold:    f.RSIOversold,
			OverboughtThreshold:  f.RSIOverbought,
			NormalMultiplier:     NormalMultiplier,
			OversoldMultiplier:   f.OversoldMultiplier,
			OverboughtMultiplier: f.OverboughtMultiplier,
		}
	}

	switch f.StrategyType {
	case DCADipBuying:
		cfg.DipLevels = BuildDipLevels(f.DipThresholdPercentage, f.DipMultiplier, f.MaxDipPurchases)
		days := DipReferencePeriodDays
		cfg.ReferencePeriodDays = &days

	case DCADynamic:
		cfg.DynamicFactors = buildDynamicFactors(f)
		// Dynamic always evaluates both indicators, regardless of the
		// user's toggles.
		if cfg.RSIConfig == nil {
			cfg.RSIConfig = defaultRSIThresholds()
		}
		if cfg.VolatilityConfig == nil {
			cfg.VolatilityConfig = defaultVolatilityConfig()
		}
	}

	if f.MaxPositionSize > 0 {
		size := f.MaxPositionSize
		cfg.MaxPositionSize = &size
	}

	return cfg
}

// BuildDipLevels expands a single threshold/multiplier pair into the fixed
// three-level ladder: each level doubles the drop required (x1, x2, x4) while
// raising the buy multiplier (x1, x1.5, x3) and tightening the trigger budget
// down to a single final trigger.
func BuildDipLevels(threshold, multiplier float64, maxPurchases int) []DipLevel {
	midTriggers := maxPurchases / 2
	if midTriggers < 1 {
		midTriggers = 1
	}

	return []DipLevel{
		{
			PriceDropPercentage: threshold,
			AmountMultiplier:    multiplier,
			MaxTriggers:         maxPurchases,
		},
		{
			PriceDropPercentage: threshold * 2,
			AmountMultiplier:    multiplier * 1.5,
			MaxTriggers:         midTriggers,
		},
		{
			PriceDropPercentage: threshold * 4,
			AmountMultiplier:    multiplier * 3,
			MaxTriggers:         1,
		},
	}
}

// buildDynamicFactors weights each signal by whether its toggle is active.
// The trend weight is fixed; it has no user-facing toggle.
func buildDynamicFactors(f DCAForm) *DynamicFactors {
	factors := &DynamicFactors{
		TrendWeight:   DynamicTrendWeight,
		MaxMultiplier: DynamicMaxMultiplier,
		MinMultiplier: DynamicMinMultiplier,
	}
	if f.EnableRSI {
		factors.RSIWeight = DynamicRSIWeight
	}
	if f.VolatilityAdjustment {
		factors.VolatilityWeight = DynamicVolatilityWeight
	}
	if f.SentimentMultiplier {
		factors.SentimentWeight = DynamicSentimentWeight
	}
	return factors
}

func defaultRSIThresholds() *RSIThresholds {
	return &RSIThresholds{
		Period:               DefaultRSIPeriod,
		OversoldThreshold:    DefaultRSIOversold,
		OverboughtThreshold:  DefaultRSIOverbought,
		NormalMultiplier:     NormalMultiplier,
		OversoldMultiplier:   DefaultOversoldMultiplier,
		OverboughtMultiplier: DefaultOverboughtMultiplier,
	}
}

func defaultVolatilityConfig() *VolatilityConfig {
	return &VolatilityConfig{
		Period:                   DefaultVolatilityPeriod,
		LowThreshold:             DefaultLowVolatilityThreshold,
		HighThreshold:            DefaultHighVolatilityThreshold,
		NormalMultiplier:         NormalMultiplier,
		LowVolatilityMultiplier:  DefaultLowVolatilityMultiplier,
		HighVolatilityMultiplier: DefaultHighVolatilityMultiplier,
	}
}

func buildFilters(f DCAForm) DCAFilters {
	var filters DCAFilters
	if f.MinPrice > 0 {
		v := f.MinPrice
		filters.MinPrice = &v
	}
	if f.MaxPrice > 0 {
		v := f.MaxPrice
		filters.MaxPrice = &v
	}
	if f.FearGreedMin > 0 {
		v := f.FearGreedMin
		filters.FearGreedMin = &v
	}
	if f.FearGreedMax > 0 {
		v := f.FearGreedMax
		filters.FearGreedMax = &v
	}
	return filters
}
