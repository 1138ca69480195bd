package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ducminhle1904/strategy-console/pkg/strategy"
)

// Strategy type path segments, as the backend routes them.
const (
	StrategyTypeDCA  = "dca"
	StrategyTypeGrid = "grid"
	StrategyTypeRSI  = "rsi"
	StrategyTypeSMA  = "sma"
	StrategyTypeMACD = "macd"
)

// StrategyTypePaths lists every strategy endpoint family.
var StrategyTypePaths = []string{
	StrategyTypeDCA,
	StrategyTypeGrid,
	StrategyTypeRSI,
	StrategyTypeSMA,
	StrategyTypeMACD,
}

// CreateDCAStrategy creates a DCA strategy. The DCA endpoint is the odd one
// out: it takes the config as a JSON string under config_json rather than a
// nested object.
func (c *Client) CreateDCAStrategy(ctx context.Context, name, assetSymbol string, cfg strategy.DCAConfig) (*Strategy, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, Wrap(err)
	}

	body := struct {
		Name        string `json:"name"`
		AssetSymbol string `json:"asset_symbol"`
		ConfigJSON  string `json:"config_json"`
	}{Name: name, AssetSymbol: assetSymbol, ConfigJSON: string(raw)}

	var created Strategy
	if err := c.do(ctx, http.MethodPost, "/dca/strategies", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateGridStrategy creates a grid trading strategy.
func (c *Client) CreateGridStrategy(ctx context.Context, name, assetSymbol string, cfg strategy.GridConfig) (*Strategy, error) {
	return c.createStrategy(ctx, StrategyTypeGrid, name, assetSymbol, cfg)
}

// CreateRSIStrategy creates an RSI strategy.
func (c *Client) CreateRSIStrategy(ctx context.Context, name, assetSymbol string, cfg strategy.RSIConfig) (*Strategy, error) {
	return c.createStrategy(ctx, StrategyTypeRSI, name, assetSymbol, cfg)
}

// CreateSMAStrategy creates an SMA crossover strategy.
func (c *Client) CreateSMAStrategy(ctx context.Context, name, assetSymbol string, cfg strategy.SMAConfig) (*Strategy, error) {
	return c.createStrategy(ctx, StrategyTypeSMA, name, assetSymbol, cfg)
}

// CreateMACDStrategy creates a MACD strategy.
func (c *Client) CreateMACDStrategy(ctx context.Context, name, assetSymbol string, cfg strategy.MACDConfig) (*Strategy, error) {
	return c.createStrategy(ctx, StrategyTypeMACD, name, assetSymbol, cfg)
}

// createStrategy posts the shared non-DCA creation shape: the mapped config
// rides as a nested object under config.
func (c *Client) createStrategy(ctx context.Context, strategyType, name, assetSymbol string, cfg any) (*Strategy, error) {
	body := struct {
		Name        string `json:"name"`
		AssetSymbol string `json:"asset_symbol"`
		Config      any    `json:"config"`
	}{Name: name, AssetSymbol: assetSymbol, Config: cfg}

	var created Strategy
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/%s/strategies", strategyType), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListStrategies fetches every strategy of one type.
func (c *Client) ListStrategies(ctx context.Context, strategyType string) ([]Strategy, error) {
	var strategies []Strategy
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/strategies", strategyType), nil, &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// StartStrategy resumes a stopped strategy.
func (c *Client) StartStrategy(ctx context.Context, strategyType, id string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/%s/strategies/%s/start", strategyType, id), nil, nil)
}

// StopStrategy pauses a running strategy.
func (c *Client) StopStrategy(ctx context.Context, strategyType, id string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/%s/strategies/%s/stop", strategyType, id), nil, nil)
}
