package main

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/api"
	"github.com/ducminhle1904/strategy-console/internal/state"
	"github.com/ducminhle1904/strategy-console/pkg/strategy"
	"github.com/ducminhle1904/strategy-console/pkg/validation"
)

func cmdCreateDCA(args []string) error {
	fs := flag.NewFlagSet("create-dca", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	f := strategy.DCAForm{}
	fs.StringVar(&f.Name, "name", "", "Strategy name")
	fs.StringVar(&f.AssetSymbol, "symbol", "", "Asset symbol (e.g. BTCUSDT)")
	fs.Float64Var(&f.BaseAmount, "amount", 100, "Base purchase amount in USD")
	fs.StringVar(&f.Interval, "interval", "1d", "Candlestick interval driving execution frequency")
	strategyType := fs.String("strategy", string(strategy.DCASimple), "DCA sub-strategy")

	fs.Float64Var(&f.MaxPositionSize, "max-position", 0, "Maximum position size in USD (0 = unlimited)")

	fs.BoolVar(&f.SentimentMultiplier, "sentiment", false, "Scale purchases by market sentiment")
	fs.Float64Var(&f.FearMultiplier, "fear-multiplier", 1.5, "Purchase multiplier during fear")
	fs.Float64Var(&f.ExtremeFearMultiplier, "extreme-fear-multiplier", 2.0, "Purchase multiplier during extreme fear")
	fs.Float64Var(&f.GreedMultiplier, "greed-multiplier", 0.5, "Purchase multiplier during greed")

	fs.BoolVar(&f.VolatilityAdjustment, "volatility", false, "Scale purchases by realized volatility")
	fs.IntVar(&f.VolatilityPeriod, "volatility-period", 20, "Volatility lookback period")
	fs.Float64Var(&f.LowVolatilityThreshold, "low-vol-threshold", 10, "Low volatility threshold percentage")
	fs.Float64Var(&f.HighVolatilityThreshold, "high-vol-threshold", 30, "High volatility threshold percentage")
	fs.Float64Var(&f.LowVolatilityMultiplier, "low-vol-multiplier", 1.5, "Purchase multiplier in low volatility")
	fs.Float64Var(&f.HighVolatilityMultiplier, "high-vol-multiplier", 0.5, "Purchase multiplier in high volatility")

	fs.BoolVar(&f.EnableRSI, "rsi", false, "Scale purchases by RSI")
	fs.IntVar(&f.RSIPeriod, "rsi-period", 14, "RSI period")
	fs.Float64Var(&f.RSIOversold, "rsi-oversold", 30, "RSI oversold threshold")
	fs.Float64Var(&f.RSIOverbought, "rsi-overbought", 70, "RSI overbought threshold")
	fs.Float64Var(&f.OversoldMultiplier, "oversold-multiplier", 2.0, "Purchase multiplier when oversold")
	fs.Float64Var(&f.OverboughtMultiplier, "overbought-multiplier", 0.5, "Purchase multiplier when overbought")

	fs.Float64Var(&f.DipThresholdPercentage, "dip-threshold", 5, "First dip trigger percentage (DipBuying)")
	fs.Float64Var(&f.DipMultiplier, "dip-multiplier", 2, "First dip purchase multiplier (DipBuying)")
	fs.IntVar(&f.MaxDipPurchases, "max-dip-purchases", 3, "Purchases allowed at the first dip level (DipBuying)")

	fs.Float64Var(&f.MinPrice, "min-price", 0, "Skip purchases below this price (0 = no floor)")
	fs.Float64Var(&f.MaxPrice, "max-price", 0, "Skip purchases above this price (0 = no ceiling)")
	fs.IntVar(&f.FearGreedMin, "fear-greed-min", 0, "Skip purchases below this fear and greed index")
	fs.IntVar(&f.FearGreedMax, "fear-greed-max", 0, "Skip purchases above this fear and greed index (0 = no cap)")

	stage := fs.Bool("backtest", false, "Stage for backtesting instead of creating")

	usage := common.NewUsageFormatter("create-dca", "Create a DCA strategy").
		AddExample("strategy-console create-dca -name weekly-btc -symbol BTCUSDT -amount 100 -interval 1w", "Simple weekly DCA").
		AddExample("strategy-console create-dca -name dip-hunter -symbol ETHUSDT -strategy DipBuying -dip-threshold 5 -backtest", "Stage a dip-buying config for backtesting")
	fs.Usage = func() { usage.PrintUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	f.StrategyType = strategy.DCAStrategyType(*strategyType)

	if errs := validation.ValidateDCAForm(f); !errs.Valid() {
		return reportFieldErrors(errs)
	}

	cfg := strategy.BuildDCAConfig(f)
	if *stage {
		return stagePending(g, api.StrategyTypeDCA, f.Name, f.AssetSymbol, cfg)
	}

	return createAndReport(g, f.Name, func(ctx context.Context, app *application) (*api.Strategy, error) {
		return app.client.CreateDCAStrategy(ctx, f.Name, f.AssetSymbol, cfg)
	})
}

func cmdCreateGrid(args []string) error {
	fs := flag.NewFlagSet("create-grid", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	f := strategy.GridForm{}
	fs.StringVar(&f.Name, "name", "", "Strategy name")
	fs.StringVar(&f.AssetSymbol, "symbol", "", "Asset symbol (e.g. BTCUSDT)")
	fs.Float64Var(&f.InvestmentAmount, "amount", 1000, "Total investment in USD")
	fs.IntVar(&f.GridCount, "grids", 10, "Number of grid levels")
	fs.Float64Var(&f.RangePercentage, "range", 10, "Price range around current price, percent")
	fs.BoolVar(&f.EnableStopLoss, "stop-loss", false, "Enable the stop loss")
	fs.Float64Var(&f.StopLossPercentage, "stop-loss-pct", 15, "Stop loss percentage")
	fs.BoolVar(&f.EnableTakeProfit, "take-profit", false, "Enable the take profit")
	fs.Float64Var(&f.TakeProfitPercentage, "take-profit-pct", 25, "Take profit percentage")
	stage := fs.Bool("backtest", false, "Stage for backtesting instead of creating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if errs := validation.ValidateGridForm(f); !errs.Valid() {
		return reportFieldErrors(errs)
	}

	cfg := strategy.BuildGridConfig(f)
	if *stage {
		return stagePending(g, api.StrategyTypeGrid, f.Name, f.AssetSymbol, cfg)
	}

	return createAndReport(g, f.Name, func(ctx context.Context, app *application) (*api.Strategy, error) {
		return app.client.CreateGridStrategy(ctx, f.Name, f.AssetSymbol, cfg)
	})
}

func cmdCreateRSI(args []string) error {
	fs := flag.NewFlagSet("create-rsi", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	f := strategy.RSIForm{}
	fs.StringVar(&f.Name, "name", "", "Strategy name")
	fs.StringVar(&f.AssetSymbol, "symbol", "", "Asset symbol (e.g. BTCUSDT)")
	fs.Float64Var(&f.InvestmentAmount, "amount", 1000, "Total investment in USD")
	fs.IntVar(&f.Period, "period", 14, "RSI period")
	fs.Float64Var(&f.Oversold, "oversold", 30, "RSI oversold threshold (buy signal)")
	fs.Float64Var(&f.Overbought, "overbought", 70, "RSI overbought threshold (sell signal)")
	fs.Float64Var(&f.StopLossPercentage, "stop-loss-pct", 5, "Stop loss percentage")
	fs.BoolVar(&f.EnableTakeProfit, "take-profit", false, "Enable the take profit")
	fs.Float64Var(&f.TakeProfitPercentage, "take-profit-pct", 10, "Take profit percentage")
	stage := fs.Bool("backtest", false, "Stage for backtesting instead of creating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if errs := validation.ValidateRSIForm(f); !errs.Valid() {
		return reportFieldErrors(errs)
	}

	cfg := strategy.BuildRSIConfig(f)
	if *stage {
		return stagePending(g, api.StrategyTypeRSI, f.Name, f.AssetSymbol, cfg)
	}

	return createAndReport(g, f.Name, func(ctx context.Context, app *application) (*api.Strategy, error) {
		return app.client.CreateRSIStrategy(ctx, f.Name, f.AssetSymbol, cfg)
	})
}

func cmdCreateSMA(args []string) error {
	fs := flag.NewFlagSet("create-sma", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	f := strategy.SMAForm{}
	fs.StringVar(&f.Name, "name", "", "Strategy name")
	fs.StringVar(&f.AssetSymbol, "symbol", "", "Asset symbol (e.g. BTCUSDT)")
	fs.Float64Var(&f.InvestmentAmount, "amount", 1000, "Total investment in USD")
	fs.IntVar(&f.FastPeriod, "fast", 10, "Fast SMA period")
	fs.IntVar(&f.SlowPeriod, "slow", 30, "Slow SMA period")
	fs.Float64Var(&f.StopLossPercentage, "stop-loss-pct", 5, "Stop loss percentage")
	fs.BoolVar(&f.EnableTakeProfit, "take-profit", false, "Enable the take profit")
	fs.Float64Var(&f.TakeProfitPercentage, "take-profit-pct", 10, "Take profit percentage")
	stage := fs.Bool("backtest", false, "Stage for backtesting instead of creating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if errs := validation.ValidateSMAForm(f); !errs.Valid() {
		return reportFieldErrors(errs)
	}

	cfg := strategy.BuildSMAConfig(f)
	if *stage {
		return stagePending(g, api.StrategyTypeSMA, f.Name, f.AssetSymbol, cfg)
	}

	return createAndReport(g, f.Name, func(ctx context.Context, app *application) (*api.Strategy, error) {
		return app.client.CreateSMAStrategy(ctx, f.Name, f.AssetSymbol, cfg)
	})
}

func cmdCreateMACD(args []string) error {
	fs := flag.NewFlagSet("create-macd", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	f := strategy.MACDForm{}
	fs.StringVar(&f.Name, "name", "", "Strategy name")
	fs.StringVar(&f.AssetSymbol, "symbol", "", "Asset symbol (e.g. BTCUSDT)")
	fs.Float64Var(&f.InvestmentAmount, "amount", 1000, "Total investment in USD")
	fs.IntVar(&f.FastPeriod, "fast", 12, "MACD fast EMA period")
	fs.IntVar(&f.SlowPeriod, "slow", 26, "MACD slow EMA period")
	fs.IntVar(&f.SignalPeriod, "signal", 9, "MACD signal period")
	fs.Float64Var(&f.StopLossPercentage, "stop-loss-pct", 5, "Stop loss percentage")
	fs.BoolVar(&f.EnableTakeProfit, "take-profit", false, "Enable the take profit")
	fs.Float64Var(&f.TakeProfitPercentage, "take-profit-pct", 10, "Take profit percentage")
	stage := fs.Bool("backtest", false, "Stage for backtesting instead of creating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if errs := validation.ValidateMACDForm(f); !errs.Valid() {
		return reportFieldErrors(errs)
	}

	cfg := strategy.BuildMACDConfig(f)
	if *stage {
		return stagePending(g, api.StrategyTypeMACD, f.Name, f.AssetSymbol, cfg)
	}

	return createAndReport(g, f.Name, func(ctx context.Context, app *application) (*api.Strategy, error) {
		return app.client.CreateMACDStrategy(ctx, f.Name, f.AssetSymbol, cfg)
	})
}

// reportFieldErrors folds per-field validation messages into the flag
// validator's output shape so form and flag errors read the same.
func reportFieldErrors(errs validation.FieldErrors) error {
	v := common.NewFlagValidator().AddFieldErrors(errs)
	v.PrintErrors()
	return v.GetError()
}

// createAndReport runs the shared create flow once the config is built.
func createAndReport(g *globalOpts, name string, create func(context.Context, *application) (*api.Strategy, error)) error {
	app, err := buildApp(g)
	if err != nil {
		return err
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	common.Progress("Creating strategy %s", name)
	created, err := create(ctx, app)
	if err != nil {
		return err
	}

	common.Success("Strategy created: %s (id %s)", created.Name, created.ID)
	return nil
}

// stagePending stores the built config for a later backtest run instead of
// creating the strategy. The backtest command consumes and clears it.
func stagePending(g *globalOpts, strategyType, name, assetSymbol string, cfg any) error {
	app, err := buildApp(g)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	pending := state.PendingBacktest{
		Type:        strategyType,
		Config:      raw,
		Name:        name,
		AssetSymbol: assetSymbol,
	}
	if err := app.store.SavePendingBacktest(pending); err != nil {
		return err
	}

	common.Success("Staged %s for backtesting. Run '%s backtest' to execute.", name, appName)
	return nil
}
