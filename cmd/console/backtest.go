package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/api"
	"github.com/ducminhle1904/strategy-console/internal/state"
	"github.com/ducminhle1904/strategy-console/pkg/reporting"
)

const backtestDateLayout = "2006-01-02"

func cmdBacktest(args []string) error {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	g := registerGlobalFlags(fs)

	symbol := fs.String("symbol", "", "Asset symbol (defaults to the staged strategy's symbol)")
	interval := fs.String("interval", "1h", "Candlestick interval")
	start := fs.String("start", "", "Start date (YYYY-MM-DD, default one year ago)")
	end := fs.String("end", "", "End date (YYYY-MM-DD, default today)")
	balance := fs.Float64("balance", 10000, "Initial balance in USD")
	stopLoss := fs.Float64("stop-loss-pct", 0, "Stop loss percentage override (0 = none)")
	takeProfit := fs.Float64("take-profit-pct", 0, "Take profit percentage override (0 = none)")

	strategyName := fs.String("strategy", "", "Strategy type when no staged config exists (dca, grid, rsi, sma, macd)")
	paramsFile := fs.String("params", "", "Strategy parameters JSON file when no staged config exists")

	excelOut := fs.String("excel", "", "Write results to an Excel workbook at this path")
	jsonOut := fs.String("json", "", "Write raw results as JSON to this path")
	keep := fs.Bool("keep", false, "Keep the staged config after running")

	usage := common.NewUsageFormatter("backtest", "Run a backtest, staged or from flags").
		AddExample("strategy-console backtest -start 2024-01-01 -end 2024-12-31 -excel results.xlsx", "Run the staged strategy over 2024").
		AddExample("strategy-console backtest -strategy grid -params grid.json -symbol BTCUSDT", "Run from a parameters file")
	fs.Usage = func() { usage.PrintUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	req, staged, err := resolveBacktestRequest(app, *symbol, *strategyName, *paramsFile)
	if err != nil {
		return err
	}

	req.Interval = *interval
	req.InitialBalance = *balance
	req.StartDate, req.EndDate, err = resolveDateRange(*start, *end)
	if err != nil {
		return err
	}
	if *stopLoss > 0 {
		req.StopLossPercentage = stopLoss
	}
	if *takeProfit > 0 {
		req.TakeProfitPercentage = takeProfit
	}

	v := common.NewFlagValidator().
		ValidateRequired("symbol", req.Symbol).
		ValidateFloat("balance", req.InitialBalance, 1, 100_000_000)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	common.Progress("Running backtest for %s on %s (%s to %s)", req.StrategyName, req.Symbol, req.StartDate, req.EndDate)
	result, err := app.client.RunBacktest(ctx, *req)
	if err != nil {
		return err
	}

	app.reporter.RenderBacktest(result)
	common.Quiet("Net: %s over %d trades (%s return)",
		common.FormatCurrency(result.FinalBalance-result.StartBalance),
		result.TotalTrades,
		common.FormatPercent(result.TotalReturn*100, 2))

	if *excelOut != "" {
		if err := reporting.NewExcelReporter().WriteBacktestXLSX(result, req.StrategyName, *excelOut); err != nil {
			return err
		}
		common.Success("Excel report written to %s", *excelOut)
	}
	if *jsonOut != "" {
		if err := reporting.WriteJSON(result, *jsonOut); err != nil {
			return err
		}
		common.Success("JSON results written to %s", *jsonOut)
	}

	if staged && !*keep {
		if err := app.store.ClearPendingBacktest(); err != nil {
			app.log.WithError(err).Warn("could not clear staged backtest")
		}
	}

	return nil
}

// resolveBacktestRequest prefers a staged config from a create-* run and
// falls back to the -strategy/-params flags. The bool reports whether the
// staged config was used.
func resolveBacktestRequest(app *application, symbol, strategyName, paramsFile string) (*api.BacktestRequest, bool, error) {
	pending, err := app.store.LoadPendingBacktest()
	if err != nil && !errors.Is(err, state.ErrNoPendingBacktest) {
		return nil, false, err
	}

	if pending != nil {
		req := &api.BacktestRequest{
			Symbol:             pending.AssetSymbol,
			StrategyName:       pending.Type,
			StrategyParameters: pending.Config,
		}
		if symbol != "" {
			req.Symbol = symbol
		}
		common.Info("Using staged strategy %s (%s)", pending.Name, pending.Type)
		return req, true, nil
	}

	if strategyName == "" || paramsFile == "" {
		return nil, false, errors.New("no staged backtest found; pass -strategy and -params, or stage one with a create command's -backtest flag")
	}

	v := common.NewFlagValidator().
		ValidateChoice("strategy", strategyName, api.StrategyTypePaths).
		ValidateFile("params", paramsFile, true)
	if v.HasErrors() {
		v.PrintErrors()
		return nil, false, v.GetError()
	}

	raw, err := os.ReadFile(paramsFile)
	if err != nil {
		return nil, false, err
	}
	if !json.Valid(raw) {
		return nil, false, errors.New("params file is not valid JSON")
	}

	return &api.BacktestRequest{
		Symbol:             symbol,
		StrategyName:       strategyName,
		StrategyParameters: raw,
	}, false, nil
}

func resolveDateRange(start, end string) (string, string, error) {
	now := time.Now()
	if end == "" {
		end = now.Format(backtestDateLayout)
	}
	if start == "" {
		start = now.AddDate(-1, 0, 0).Format(backtestDateLayout)
	}

	startAt, err := time.Parse(backtestDateLayout, start)
	if err != nil {
		return "", "", errors.New("start must be a YYYY-MM-DD date")
	}
	endAt, err := time.Parse(backtestDateLayout, end)
	if err != nil {
		return "", "", errors.New("end must be a YYYY-MM-DD date")
	}
	if !startAt.Before(endAt) {
		return "", "", errors.New("start date must be before end date")
	}

	return start, end, nil
}
