package validation

import (
	"fmt"
	"regexp"

	"github.com/ducminhle1904/strategy-console/pkg/strategy"
)

// Validation limits shared across strategy types
const (
	MaxNameLength = 100
	MinGridCount  = 2
	MinRSIPeriod  = 2
	MaxRSIValue   = 100
)

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,11}$`)

// FieldErrors maps a form field name to a single human-readable message.
// An empty map means the form may be submitted. Validators have no side
// effects and are safe to re-run on every edit.
type FieldErrors map[string]string

// Valid reports whether the form passed validation.
func (e FieldErrors) Valid() bool { return len(e) == 0 }

// ValidateStrategyName checks the shared name policy. Returns an empty
// string when the name is acceptable.
func ValidateStrategyName(name string) string {
	if name == "" {
		return "strategy name is required"
	}
	if len(name) > MaxNameLength {
		return fmt.Sprintf("strategy name must be at most %d characters", MaxNameLength)
	}
	return ""
}

// ValidateAssetSymbol checks for a plausible uppercase ticker.
func ValidateAssetSymbol(symbol string) string {
	if symbol == "" {
		return "asset symbol is required"
	}
	if !symbolPattern.MatchString(symbol) {
		return "asset symbol must be an uppercase ticker (e.g. BTC, ETHUSDT)"
	}
	return ""
}

// ValidateInvestmentAmount checks the shared positive-amount policy.
func ValidateInvestmentAmount(amount float64) string {
	if amount <= 0 {
		return "investment amount must be greater than zero"
	}
	return ""
}

// ValidateDCAForm runs every DCA check and returns the field-keyed results.
func ValidateDCAForm(f strategy.DCAForm) FieldErrors {
	errs := FieldErrors{}

	setIf(errs, "name", ValidateStrategyName(f.Name))
	setIf(errs, "asset_symbol", ValidateAssetSymbol(f.AssetSymbol))
	if f.BaseAmount <= 0 {
		errs["base_amount"] = "base amount must be greater than zero"
	}
	if !f.StrategyType.Valid() {
		errs["strategy_type"] = fmt.Sprintf("unknown strategy type %q", f.StrategyType)
	}
	if f.MaxPositionSize < 0 {
		errs["max_position_size"] = "max position size cannot be negative"
	}

	if f.EnableRSI {
		validateRSIThresholds(errs, f.RSIPeriod, f.RSIOversold, f.RSIOverbought)
	}

	if f.VolatilityAdjustment {
		if f.VolatilityPeriod <= 0 {
			errs["volatility_period"] = "volatility period must be greater than zero"
		}
		if f.LowVolatilityThreshold >= f.HighVolatilityThreshold {
			errs["volatility_thresholds"] = fmt.Sprintf(
				"low volatility threshold (%.1f) must be less than high threshold (%.1f)",
				f.LowVolatilityThreshold, f.HighVolatilityThreshold)
		}
	}

	if f.StrategyType == strategy.DCADipBuying {
		if f.DipThresholdPercentage <= 0 {
			errs["dip_threshold_percentage"] = "dip threshold must be greater than zero"
		}
		if f.DipMultiplier <= 0 {
			errs["dip_multiplier"] = "dip multiplier must be greater than zero"
		}
		if f.MaxDipPurchases < 1 {
			errs["max_dip_purchases"] = "max dip purchases must be at least 1"
		}
	}

	if f.MinPrice > 0 && f.MaxPrice > 0 && f.MinPrice >= f.MaxPrice {
		errs["price_filter"] = "min price must be less than max price"
	}

	return errs
}

// ValidateGridForm runs every grid trading check. The grid count floor keeps
// the spacing formula's divisor positive; a single-level grid has no gaps to
// space.
func ValidateGridForm(f strategy.GridForm) FieldErrors {
	errs := FieldErrors{}

	setIf(errs, "name", ValidateStrategyName(f.Name))
	setIf(errs, "asset_symbol", ValidateAssetSymbol(f.AssetSymbol))
	setIf(errs, "investment_amount", ValidateInvestmentAmount(f.InvestmentAmount))

	if f.GridCount < MinGridCount {
		errs["grid_count"] = fmt.Sprintf("grid count must be at least %d", MinGridCount)
	}
	if f.RangePercentage <= 0 {
		errs["range_percentage"] = "range percentage must be greater than zero"
	}
	if f.EnableStopLoss && f.StopLossPercentage <= 0 {
		errs["stop_loss_percentage"] = "stop loss percentage must be greater than zero"
	}
	if f.EnableTakeProfit && f.TakeProfitPercentage <= 0 {
		errs["take_profit_percentage"] = "take profit percentage must be greater than zero"
	}

	return errs
}

// ValidateRSIForm runs every RSI strategy check.
func ValidateRSIForm(f strategy.RSIForm) FieldErrors {
	errs := FieldErrors{}

	setIf(errs, "name", ValidateStrategyName(f.Name))
	setIf(errs, "asset_symbol", ValidateAssetSymbol(f.AssetSymbol))
	setIf(errs, "investment_amount", ValidateInvestmentAmount(f.InvestmentAmount))

	validateRSIThresholds(errs, f.Period, f.Oversold, f.Overbought)
	validateRiskFields(errs, f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage)

	return errs
}

// ValidateSMAForm runs every SMA crossover check.
func ValidateSMAForm(f strategy.SMAForm) FieldErrors {
	errs := FieldErrors{}

	setIf(errs, "name", ValidateStrategyName(f.Name))
	setIf(errs, "asset_symbol", ValidateAssetSymbol(f.AssetSymbol))
	setIf(errs, "investment_amount", ValidateInvestmentAmount(f.InvestmentAmount))

	if f.FastPeriod < 1 || f.SlowPeriod < 1 {
		errs["periods"] = "moving average periods must be at least 1"
	} else if f.FastPeriod >= f.SlowPeriod {
		errs["periods"] = fmt.Sprintf("fast period (%d) must be less than slow period (%d)", f.FastPeriod, f.SlowPeriod)
	}
	validateRiskFields(errs, f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage)

	return errs
}

// ValidateMACDForm runs every MACD check.
func ValidateMACDForm(f strategy.MACDForm) FieldErrors {
	errs := FieldErrors{}

	setIf(errs, "name", ValidateStrategyName(f.Name))
	setIf(errs, "asset_symbol", ValidateAssetSymbol(f.AssetSymbol))
	setIf(errs, "investment_amount", ValidateInvestmentAmount(f.InvestmentAmount))

	if f.FastPeriod < 1 || f.SlowPeriod < 1 || f.SignalPeriod < 1 {
		errs["periods"] = "MACD periods must be at least 1"
	} else if f.FastPeriod >= f.SlowPeriod {
		errs["periods"] = fmt.Sprintf("fast period (%d) must be less than slow period (%d)", f.FastPeriod, f.SlowPeriod)
	}
	validateRiskFields(errs, f.StopLossPercentage, f.EnableTakeProfit, f.TakeProfitPercentage)

	return errs
}

func validateRSIThresholds(errs FieldErrors, period int, oversold, overbought float64) {
	if period < MinRSIPeriod {
		errs["rsi_period"] = fmt.Sprintf("RSI period must be at least %d", MinRSIPeriod)
	}
	if oversold <= 0 || oversold >= MaxRSIValue {
		errs["rsi_oversold"] = fmt.Sprintf("RSI oversold must be between 0 and %d", MaxRSIValue)
	}
	if overbought <= 0 || overbought >= MaxRSIValue {
		errs["rsi_overbought"] = fmt.Sprintf("RSI overbought must be between 0 and %d", MaxRSIValue)
	}
	if _, ok := errs["rsi_oversold"]; !ok {
		if _, ok := errs["rsi_overbought"]; !ok && oversold >= overbought {
			errs["rsi_thresholds"] = fmt.Sprintf("RSI oversold (%.1f) must be less than overbought (%.1f)", oversold, overbought)
		}
	}
}

func validateRiskFields(errs FieldErrors, stopLoss float64, takeProfitEnabled bool, takeProfit float64) {
	if stopLoss <= 0 {
		errs["stop_loss_percentage"] = "stop loss percentage must be greater than zero"
	}
	if takeProfitEnabled && takeProfit <= 0 {
		errs["take_profit_percentage"] = "take profit percentage must be greater than zero"
	}
}

func setIf(errs FieldErrors, field, msg string) {
	if msg != "" {
		errs[field] = msg
	}
}
