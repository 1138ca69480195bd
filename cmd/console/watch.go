package main

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/ducminhle1904/strategy-console/cmd/common"
	"github.com/ducminhle1904/strategy-console/internal/watch"
)

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	g := registerGlobalFlags(fs)
	interval := fs.Duration("interval", 0, "Poll interval (overrides config)")
	metricsAddr := fs.String("metrics-addr", "", "Prometheus listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	app, err := buildApp(g)
	if err != nil {
		return err
	}

	if *interval > 0 {
		app.cfg.Watch.Interval = *interval
	}
	if *metricsAddr != "" {
		app.cfg.Watch.MetricsAddr = *metricsAddr
	}
	if app.cfg.Watch.Interval < time.Second {
		return errors.New("watch interval must be at least one second")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The watch loop authenticates up front so the first poll is not a 401.
	authCtx, cancel := app.ctx()
	err = app.ensureSession(authCtx)
	cancel()
	if err != nil {
		return err
	}

	common.Header("Watch Mode")
	common.Info("Polling every %s, metrics on %s", app.cfg.Watch.Interval, app.cfg.Watch.MetricsAddr)
	common.Quiet("Press Ctrl+C to stop")

	watcher := watch.New(app.client, app.reporter, app.log, app.cfg.Watch.Interval, app.cfg.Watch.MetricsAddr)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
