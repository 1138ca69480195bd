package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// User is the authenticated account returned by the auth endpoints.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StrategySummary is the per-account aggregate the dashboard renders.
type StrategySummary struct {
	Authenticated   bool                  `json:"authenticated"`
	StrategyTypes   []StrategyTypeSummary `json:"strategy_types"`
	TotalStrategies int                   `json:"total_strategies"`
	TotalActive     int                   `json:"total_active"`
}

// StrategyTypeSummary counts strategies of one type.
type StrategyTypeSummary struct {
	StrategyType string `json:"strategy_type"`
	Count        int    `json:"count"`
	HasActive    bool   `json:"has_active"`
}

// Strategy is the backend-owned read model. The client never computes these
// figures; it only aggregates them for display.
type Strategy struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AssetSymbol       string          `json:"asset_symbol"`
	Status            string          `json:"status"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	CurrentProfitLoss decimal.Decimal `json:"current_profit_loss"`
	RecentExecutions  []Execution     `json:"recent_executions"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Execution is one strategy run recorded by the backend.
type Execution struct {
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// StrategyStatusActive is the backend's running state.
const StrategyStatusActive = "active"

// BacktestRequest is the payload for POST /backtesting/run. Dates are
// ISO-8601 date strings.
type BacktestRequest struct {
	Symbol               string          `json:"symbol"`
	Interval             string          `json:"interval"`
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	InitialBalance       float64         `json:"initial_balance"`
	StrategyName         string          `json:"strategy_name"`
	StrategyParameters   json.RawMessage `json:"strategy_parameters"`
	StopLossPercentage   *float64        `json:"stop_loss_percentage,omitempty"`
	TakeProfitPercentage *float64        `json:"take_profit_percentage,omitempty"`
}

// BacktestResult is the engine output rendered and exported by the console.
type BacktestResult struct {
	StartBalance  float64         `json:"start_balance"`
	FinalBalance  float64         `json:"final_balance"`
	TotalReturn   float64         `json:"total_return"`
	MaxDrawdown   float64         `json:"max_drawdown"`
	SharpeRatio   float64         `json:"sharpe_ratio"`
	TotalTrades   int             `json:"total_trades"`
	WinningTrades int             `json:"winning_trades"`
	LosingTrades  int             `json:"losing_trades"`
	WinRate       float64         `json:"win_rate"`
	Trades        []BacktestTrade `json:"trades"`
}

// BacktestTrade is one simulated fill.
type BacktestTrade struct {
	Timestamp time.Time       `json:"timestamp"`
	Side      string          `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	PnL       decimal.Decimal `json:"pnl"`
}

// ExchangeConnectionRequest carries new exchange credentials to the backend,
// which encrypts and stores them. The client never persists them.
type ExchangeConnectionRequest struct {
	ExchangeName string `json:"exchange_name"`
	DisplayName  string `json:"display_name"`
	APIKey       string `json:"api_key"`
	APISecret    string `json:"api_secret"`
	Password     string `json:"password"`
}

// ExchangeConnection is the stored connection read model.
type ExchangeConnection struct {
	ID           string    `json:"id"`
	ExchangeName string    `json:"exchange_name"`
	DisplayName  string    `json:"display_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AssetBalance is one asset's balance on a connected exchange.
type AssetBalance struct {
	Asset    string          `json:"asset"`
	Free     decimal.Decimal `json:"free"`
	Locked   decimal.Decimal `json:"locked"`
	USDValue decimal.Decimal `json:"usd_value"`
}

// LiveBalancesResponse groups balances by connection display name.
type LiveBalancesResponse struct {
	Balances      map[string][]AssetBalance `json:"balances"`
	TotalUSDValue decimal.Decimal           `json:"total_usd_value"`
}
