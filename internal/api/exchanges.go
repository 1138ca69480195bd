package api

import (
	"context"
	"net/http"
)

// ConnectExchange stores exchange credentials with the backend, which owns
// their encryption. The password unlocks the user's credential vault.
func (c *Client) ConnectExchange(ctx context.Context, req ExchangeConnectionRequest) (*ExchangeConnection, error) {
	var conn ExchangeConnection
	if err := c.do(ctx, http.MethodPost, "/exchanges/connections", req, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListExchangeConnections fetches the stored connections.
func (c *Client) ListExchangeConnections(ctx context.Context) ([]ExchangeConnection, error) {
	var conns []ExchangeConnection
	if err := c.do(ctx, http.MethodGet, "/exchanges/connections", nil, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

// LiveBalances fetches current balances across every connected exchange. A
// POST because the vault password rides in the body.
func (c *Client) LiveBalances(ctx context.Context, password string) (*LiveBalancesResponse, error) {
	body := struct {
		Password string `json:"password"`
	}{Password: password}

	var resp LiveBalancesResponse
	if err := c.do(ctx, http.MethodPost, "/exchanges/live-balances", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
