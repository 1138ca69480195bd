package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducminhle1904/strategy-console/pkg/strategy"
)

func validRSIForm() strategy.RSIForm {
	return strategy.RSIForm{
		Name:               "RSI swing",
		AssetSymbol:        "BTC",
		InvestmentAmount:   100,
		Period:             14,
		Oversold:           30,
		Overbought:         70,
		StopLossPercentage: 5,
	}
}

// TestValidateStrategyName tests the shared name policy
func TestValidateStrategyName(t *testing.T) {
	assert.NotEmpty(t, ValidateStrategyName(""))
	assert.NotEmpty(t, ValidateStrategyName(strings.Repeat("x", MaxNameLength+1)))
	assert.Empty(t, ValidateStrategyName("Weekly BTC buys"))
	assert.Empty(t, ValidateStrategyName(strings.Repeat("x", MaxNameLength)))
}

// TestValidateAssetSymbol tests the ticker format policy
func TestValidateAssetSymbol(t *testing.T) {
	assert.Empty(t, ValidateAssetSymbol("BTC"))
	assert.Empty(t, ValidateAssetSymbol("ETHUSDT"))
	assert.NotEmpty(t, ValidateAssetSymbol(""))
	assert.NotEmpty(t, ValidateAssetSymbol("btc"))
	assert.NotEmpty(t, ValidateAssetSymbol("B T C"))
	assert.NotEmpty(t, ValidateAssetSymbol("1INCH")) // must start with a letter
}

// TestValidateInvestmentAmount tests the positive-amount policy
func TestValidateInvestmentAmount(t *testing.T) {
	assert.NotEmpty(t, ValidateInvestmentAmount(0))
	assert.NotEmpty(t, ValidateInvestmentAmount(-5))
	assert.Empty(t, ValidateInvestmentAmount(0.01))
}

// TestValidateRSIForm_ThresholdOrdering tests that inverted thresholds are
// rejected and ordered thresholds pass
func TestValidateRSIForm_ThresholdOrdering(t *testing.T) {
	f := validRSIForm()
	f.Oversold = 70
	f.Overbought = 30
	errs := ValidateRSIForm(f)
	assert.Contains(t, errs, "rsi_thresholds")

	f = validRSIForm()
	errs = ValidateRSIForm(f)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

// TestValidateGridForm_GridCountFloor tests that a single-level grid is
// rejected before the spacing formula can divide by zero
func TestValidateGridForm_GridCountFloor(t *testing.T) {
	f := strategy.GridForm{
		Name:             "BTC grid",
		AssetSymbol:      "BTC",
		InvestmentAmount: 1000,
		GridCount:        1,
		RangePercentage:  10,
	}
	errs := ValidateGridForm(f)
	assert.Contains(t, errs, "grid_count")

	f.GridCount = 2
	errs = ValidateGridForm(f)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

// TestValidateGridForm_ToggledRiskFields tests that stop-loss and take-profit
// are only required when their toggles are on
func TestValidateGridForm_ToggledRiskFields(t *testing.T) {
	f := strategy.GridForm{
		Name:             "BTC grid",
		AssetSymbol:      "BTC",
		InvestmentAmount: 1000,
		GridCount:        10,
		RangePercentage:  10,
	}
	assert.True(t, ValidateGridForm(f).Valid())

	f.EnableStopLoss = true
	errs := ValidateGridForm(f)
	assert.Contains(t, errs, "stop_loss_percentage")

	f.StopLossPercentage = 5
	assert.True(t, ValidateGridForm(f).Valid())
}

// TestValidateDCAForm_VolatilityOrdering tests the low < high threshold
// ordering under the volatility toggle
func TestValidateDCAForm_VolatilityOrdering(t *testing.T) {
	f := strategy.DCAForm{
		Name:                    "DCA vol",
		AssetSymbol:             "ETH",
		BaseAmount:              50,
		Interval:                "1d",
		StrategyType:            strategy.DCAVolatilityBased,
		VolatilityAdjustment:    true,
		VolatilityPeriod:        20,
		LowVolatilityThreshold:  30,
		HighVolatilityThreshold: 10,
	}
	errs := ValidateDCAForm(f)
	assert.Contains(t, errs, "volatility_thresholds")

	f.LowVolatilityThreshold = 10
	f.HighVolatilityThreshold = 30
	assert.True(t, ValidateDCAForm(f).Valid(), "unexpected errors: %v", ValidateDCAForm(f))
}

// TestValidateDCAForm_UnknownType tests that the closed enum is enforced
func TestValidateDCAForm_UnknownType(t *testing.T) {
	f := strategy.DCAForm{
		Name:         "DCA",
		AssetSymbol:  "BTC",
		BaseAmount:   50,
		Interval:     "1d",
		StrategyType: "Martingale",
	}
	errs := ValidateDCAForm(f)
	assert.Contains(t, errs, "strategy_type")
}

// TestValidateDCAForm_DipBuyingFields tests the DipBuying-specific checks
func TestValidateDCAForm_DipBuyingFields(t *testing.T) {
	f := strategy.DCAForm{
		Name:         "Dips",
		AssetSymbol:  "BTC",
		BaseAmount:   50,
		Interval:     "1d",
		StrategyType: strategy.DCADipBuying,
	}
	errs := ValidateDCAForm(f)
	assert.Contains(t, errs, "dip_threshold_percentage")
	assert.Contains(t, errs, "dip_multiplier")
	assert.Contains(t, errs, "max_dip_purchases")

	f.DipThresholdPercentage = 5
	f.DipMultiplier = 2
	f.MaxDipPurchases = 3
	assert.True(t, ValidateDCAForm(f).Valid())
}

// TestValidateSMAForm_PeriodOrdering tests fast < slow enforcement
func TestValidateSMAForm_PeriodOrdering(t *testing.T) {
	f := strategy.SMAForm{
		Name:               "Golden cross",
		AssetSymbol:        "BTC",
		InvestmentAmount:   100,
		FastPeriod:         50,
		SlowPeriod:         10,
		StopLossPercentage: 5,
	}
	errs := ValidateSMAForm(f)
	assert.Contains(t, errs, "periods")

	f.FastPeriod, f.SlowPeriod = 10, 50
	assert.True(t, ValidateSMAForm(f).Valid())
}

// TestValidateMACDForm tests the MACD period checks
func TestValidateMACDForm(t *testing.T) {
	f := strategy.MACDForm{
		Name:               "MACD trend",
		AssetSymbol:        "ETH",
		InvestmentAmount:   100,
		FastPeriod:         12,
		SlowPeriod:         26,
		SignalPeriod:       9,
		StopLossPercentage: 5,
	}
	assert.True(t, ValidateMACDForm(f).Valid())

	f.SignalPeriod = 0
	assert.Contains(t, ValidateMACDForm(f), "periods")
}
