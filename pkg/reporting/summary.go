package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/ducminhle1904/strategy-console/internal/api"
)

// PortfolioSummary aggregates backend-owned strategy figures for display.
// The client only sums and filters; it never computes P&L itself.
type PortfolioSummary struct {
	TotalStrategies  int
	ActiveStrategies int
	TotalInvested    decimal.Decimal
	TotalProfitLoss  decimal.Decimal
}

// Aggregate folds a strategy list into the dashboard header figures.
func Aggregate(strategies []api.Strategy) PortfolioSummary {
	summary := PortfolioSummary{
		TotalInvested:   decimal.Zero,
		TotalProfitLoss: decimal.Zero,
	}

	for _, s := range strategies {
		summary.TotalStrategies++
		if s.Status == api.StrategyStatusActive {
			summary.ActiveStrategies++
		}
		summary.TotalInvested = summary.TotalInvested.Add(s.TotalInvested)
		summary.TotalProfitLoss = summary.TotalProfitLoss.Add(s.CurrentProfitLoss)
	}

	return summary
}

// FilterActive returns only the running strategies.
func FilterActive(strategies []api.Strategy) []api.Strategy {
	active := make([]api.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s.Status == api.StrategyStatusActive {
			active = append(active, s)
		}
	}
	return active
}
