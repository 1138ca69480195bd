package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User      User   `json:"user"`
	CSRFToken string `json:"csrf_token"`
}

// Login establishes a session. The backend sets the session cookie; the CSRF
// token from the response body is held for subsequent mutating requests.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.setToken(resp.CSRFToken)
	return &resp.User, nil
}

// Signup creates an account and establishes a session, like Login.
func (c *Client) Signup(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.setToken(resp.CSRFToken)
	return &resp.User, nil
}

// Logout ends the session. The held token is dropped even when the request
// fails; the session is gone either way as far as this process is concerned.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.clearToken()
	return err
}

// RefreshToken rotates the CSRF token for the current session.
func (c *Client) RefreshToken(ctx context.Context) error {
	var resp struct {
		CSRFToken string `json:"csrf_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &resp); err != nil {
		return err
	}
	c.setToken(resp.CSRFToken)
	return nil
}

// StrategySummary fetches the per-account strategy aggregate.
func (c *Client) StrategySummary(ctx context.Context) (*StrategySummary, error) {
	var summary StrategySummary
	if err := c.do(ctx, http.MethodGet, "/auth/strategy-summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// StrategySummaryOrEmpty is StrategySummary with the dashboard's fallback
// policy: a failed aggregate load logs and yields an empty summary so
// rendering never hard-fails on one bad sub-request.
func (c *Client) StrategySummaryOrEmpty(ctx context.Context) *StrategySummary {
	summary, err := c.StrategySummary(ctx)
	if err != nil {
		c.log.WithError(err).Warn("strategy summary unavailable, using empty result")
		return &StrategySummary{StrategyTypes: []StrategyTypeSummary{}}
	}
	return summary
}
