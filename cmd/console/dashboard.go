package main

import (
	"flag"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/api"
	"github.com/ducminhle1904/strategy-console/pkg/reporting"
)

func cmdDashboard(args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	strategyType := fs.String("type", "", "Limit the strategy table to one type (dca, grid, rsi, sma, macd)")
	activeOnly := fs.Bool("active", false, "Show active strategies only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	if *strategyType != "" {
		v := common.NewFlagValidator().ValidateChoice("type", *strategyType, api.StrategyTypePaths)
		if v.HasErrors() {
			v.PrintErrors()
			return v.GetError()
		}
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	common.Header("Strategy Dashboard")

	summary := app.client.StrategySummaryOrEmpty(ctx)
	app.reporter.RenderSummary(summary)

	types := api.StrategyTypePaths
	if *strategyType != "" {
		types = []string{*strategyType}
	}

	var all []api.Strategy
	for _, t := range types {
		strategies, err := app.client.ListStrategies(ctx, t)
		if err != nil {
			// One failed type must not blank the whole dashboard.
			app.log.WithError(err).WithField("strategy_type", t).Warn("strategy list unavailable")
			common.Warn("Could not load %s strategies: %s", t, api.FriendlyMessage(err))
			continue
		}
		all = append(all, strategies...)
	}

	if *activeOnly {
		all = reporting.FilterActive(all)
	}

	common.Section("Strategies")
	app.reporter.RenderStrategies(all)

	portfolio := reporting.Aggregate(all)
	common.Quiet("Total invested: $%s | P&L: $%s | Active: %d of %d",
		portfolio.TotalInvested.StringFixed(2),
		portfolio.TotalProfitLoss.StringFixed(2),
		portfolio.ActiveStrategies, portfolio.TotalStrategies)

	return nil
}

func cmdStart(args []string) error {
	return runLifecycle("start", args)
}

func cmdStop(args []string) error {
	return runLifecycle("stop", args)
}

func runLifecycle(action string, args []string) error {
	fs := flag.NewFlagSet(action, flag.ExitOnError)
	g := registerGlobalFlags(fs)
	strategyType := fs.String("type", "", "Strategy type (dca, grid, rsi, sma, macd)")
	id := fs.String("id", "", "Strategy ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := common.NewFlagValidator().
		ValidateChoice("type", *strategyType, api.StrategyTypePaths).
		ValidateRequired("id", *id)
	if v.HasErrors() {
		v.PrintErrors()
		return v.GetError()
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	ctx, cancel := app.ctx()
	defer cancel()

	if err := app.ensureSession(ctx); err != nil {
		return err
	}

	if action == "start" {
		if err := app.client.StartStrategy(ctx, *strategyType, *id); err != nil {
			return err
		}
		common.Success("Strategy %s started", *id)
		return nil
	}

	if err := app.client.StopStrategy(ctx, *strategyType, *id); err != nil {
		return err
	}
	common.Success("Strategy %s stopped", *id)
	return nil
}
