package watch

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ducminhle1904/strategy-console/internal/api"
	"github.com/ducminhle1904/strategy-console/internal/monitoring"
	"github.com/ducminhle1904/strategy-console/pkg/reporting"
)

// Watcher polls the account's strategy summary, re-renders it, and exposes
// Prometheus metrics and a health endpoint while running.
type Watcher struct {
	client      *api.Client
	reporter    *reporting.ConsoleReporter
	health      *monitoring.HealthChecker
	log         *logrus.Entry
	interval    time.Duration
	metricsAddr string
}

// New creates a watcher polling at the given interval.
func New(client *api.Client, reporter *reporting.ConsoleReporter, log *logrus.Logger, interval time.Duration, metricsAddr string) *Watcher {
	return &Watcher{
		client:      client,
		reporter:    reporter,
		health:      monitoring.NewHealthChecker(interval),
		log:         log.WithField("component", "watch"),
		interval:    interval,
		metricsAddr: metricsAddr,
	}
}

// Run polls until ctx is cancelled. The metrics server is best-effort: a
// busy port logs a warning but does not stop the watch loop.
func (w *Watcher) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	mux.Handle("/healthz", w.health)

	srv := &http.Server{Addr: w.metricsAddr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.log.WithError(err).Warn("metrics server unavailable")
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	w.log.WithFields(logrus.Fields{"interval": w.interval, "metrics_addr": w.metricsAddr}).Info("watch started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("watch stopped")
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// poll fetches one summary. A failed poll degrades health and metrics but
// never ends the loop; the dashboard keeps rendering the last good state's
// cadence with an empty result.
func (w *Watcher) poll(ctx context.Context) {
	start := time.Now()
	summary, err := w.client.StrategySummary(ctx)
	monitoring.RecordRequest("/auth/strategy-summary", http.MethodGet, time.Since(start))

	if err != nil {
		apiErr := api.Wrap(err)
		monitoring.RecordAPIError(apiErr.Status)
		w.health.RecordFailure(apiErr)
		w.log.WithField("status", apiErr.Status).Warn(api.FriendlyMessage(apiErr))
		return
	}

	w.health.RecordSuccess()

	byType := make(map[string]int, len(summary.StrategyTypes))
	for _, st := range summary.StrategyTypes {
		byType[st.StrategyType] = st.Count
	}
	monitoring.UpdateStrategyCounts(summary.TotalStrategies, summary.TotalActive, byType)

	w.reporter.RenderSummary(summary)
}
