package api

import (
	"context"
	"net/http"
)

// RunBacktest submits a simulation request and waits for the engine result.
// The call is network-bound for the whole simulation; cancel via ctx.
func (c *Client) RunBacktest(ctx context.Context, req BacktestRequest) (*BacktestResult, error) {
	var result BacktestResult
	if err := c.do(ctx, http.MethodPost, "/backtesting/run", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
