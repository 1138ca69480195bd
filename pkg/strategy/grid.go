package strategy

// Grid builder constants. The inventory proportions are fixed product
// decisions, not tunables.
const (
	GridSpacingModeFixed = "fixed"

	GridMaxInventoryRatio       = 0.5
	GridInventoryDeviationRatio = 0.3

	GridOrderRefreshSeconds = 30
)

// BuildGridConfig assembles the grid trading payload. Spacing is the total
// range span (both sides of the midpoint) divided by the number of gaps
// between levels, so GridCount must be at least 2; the validator rejects
// anything smaller before it reaches this builder.
func BuildGridConfig(f GridForm) GridConfig {
	cfg := GridConfig{
		InvestmentAmount: f.InvestmentAmount,
		GridCount:        f.GridCount,
		RangePercentage:  f.RangePercentage,
		Spacing: GridSpacing{
			Mode:         GridSpacingModeFixed,
			FixedSpacing: (f.RangePercentage * 2) / float64(f.GridCount-1),
		},
		RiskSettings: GridRiskSettings{
			MaxInventory: f.InvestmentAmount * GridMaxInventoryRatio,
		},
		MarketMaking: MarketMaking{
			Enabled:               true,
			MaxInventoryDeviation: f.InvestmentAmount * GridInventoryDeviationRatio,
			OrderRefreshSeconds:   GridOrderRefreshSeconds,
		},
	}

	if f.EnableStopLoss {
		v := f.StopLossPercentage
		cfg.RiskSettings.StopLossPercentage = &v
	}
	if f.EnableTakeProfit {
		v := f.TakeProfitPercentage
		cfg.RiskSettings.TakeProfitPercentage = &v
	}

	return cfg
}
