package strategy

// Static defaults for the indicator strategies (RSI, SMA crossover, MACD).
// The backend expects every sub-block fully populated; these literals are the
// contract and must not drift.
const (
	PositionSizingModeFixed = "fixed"
	ExitModeSignal          = "signal"

	DefaultMaxPositionPercentage  = 25.0
	DefaultMaxDailyLossPercentage = 5.0
	DefaultMaxOpenPositions       = 1

	DefaultMinVolumeUSD        = 1_000_000.0
	DefaultConfirmationCandles = 1
	DefaultCooldownMinutes     = 60

	DefaultMaxHoldDays          = 30
	DefaultEvaluationWindowDays = 30
)

// BuildRSIConfig assembles the RSI strategy payload.
func BuildRSIConfig(f RSIForm) RSIConfig {
	return RSIConfig{
		Period:              f.Period,
		OversoldThreshold:   f.Oversold,
		OverboughtThreshold: f.Overbought,
		InvestmentAmount:    f.InvestmentAmount,

		PositionSizing:    defaultPositionSizing(f.InvestmentAmount),
		RiskManagement:    buildRiskManagement(f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage),
		SignalFilters:     defaultSignalFilters(),
		ExitStrategy:      defaultExitStrategy(),
		PerformanceConfig: defaultPerformanceConfig(),
	}
}

// BuildSMAConfig assembles the SMA crossover payload.
func BuildSMAConfig(f SMAForm) SMAConfig {
	return SMAConfig{
		FastPeriod:       f.FastPeriod,
		SlowPeriod:       f.SlowPeriod,
		InvestmentAmount: f.InvestmentAmount,

		PositionSizing:    defaultPositionSizing(f.InvestmentAmount),
		RiskManagement:    buildRiskManagement(f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage),
		SignalFilters:     defaultSignalFilters(),
		ExitStrategy:      defaultExitStrategy(),
		PerformanceConfig: defaultPerformanceConfig(),
	}
}

// BuildMACDConfig assembles the MACD payload.
func BuildMACDConfig(f MACDForm) MACDConfig {
	return MACDConfig{
		FastPeriod:       f.FastPeriod,
		SlowPeriod:       f.SlowPeriod,
		SignalPeriod:     f.SignalPeriod,
		InvestmentAmount: f.InvestmentAmount,

		PositionSizing:    defaultPositionSizing(f.InvestmentAmount),
		RiskManagement:    buildRiskManagement(f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage),
		SignalFilters:     defaultSignalFilters(),
		ExitStrategy:      defaultExitStrategy(),
		PerformanceConfig: defaultPerformanceConfig(),
	}
}

func defaultPositionSizing(investment float64) PositionSizing {
	return PositionSizing{
		Mode:                  PositionSizingModeFixed,
		BaseAmount:            investment,
		MaxPositionPercentage: DefaultMaxPositionPercentage,
		ScaleInEnabled:        false,
	}
}

func buildRiskManagement(stopLoss float64, takeProfitEnabled bool, takeProfit float64) RiskManagement {
	rm := RiskManagement{
		StopLossPercentage:     stopLoss,
		MaxDailyLossPercentage: DefaultMaxDailyLossPercentage,
		MaxOpenPositions:       DefaultMaxOpenPositions,
		TrailingStopEnabled:    false,
	}
	if takeProfitEnabled {
		v := takeProfit
		rm.TakeProfitPercentage = &v
	}
	return rm
}

func defaultSignalFilters() SignalFilters {
	return SignalFilters{
		MinVolumeUSD:        DefaultMinVolumeUSD,
		ConfirmationCandles: DefaultConfirmationCandles,
		CooldownMinutes:     DefaultCooldownMinutes,
		TrendFilterEnabled:  false,
	}
}

func defaultExitStrategy() ExitStrategy {
	return ExitStrategy{
		Mode:          ExitModeSignal,
		TimeStopHours: 0,
		MaxHoldDays:   DefaultMaxHoldDays,
	}
}

func defaultPerformanceConfig() PerformanceConfig {
	return PerformanceConfig{
		EvaluationWindowDays: DefaultEvaluationWindowDays,
		MinWinRate:           0.0,
		AutoPauseEnabled:     false,
	}
}
