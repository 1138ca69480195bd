package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/strategy-console/pkg/strategy"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(Options{BaseURL: ts.URL}), ts
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// TestClient_LoginHoldsCSRFToken tests that the token from the login response
// is injected on subsequent mutating requests but never on GETs
func TestClient_LoginHoldsCSRFToken(t *testing.T) {
	var getHeader, postHeader string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"user":       map[string]any{"id": "u1", "email": "a@b.c"},
			"csrf_token": "tok-123",
		})
	})
	mux.HandleFunc("GET /auth/strategy-summary", func(w http.ResponseWriter, r *http.Request) {
		getHeader = r.Header.Get("X-CSRF-Token")
		writeJSON(w, http.StatusOK, StrategySummary{Authenticated: true})
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		postHeader = r.Header.Get("X-CSRF-Token")
		writeJSON(w, http.StatusOK, map[string]string{"csrf_token": "tok-456"})
	})

	c, _ := newTestClient(t, mux)

	user, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-123", c.Token())

	_, err = c.StrategySummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, getHeader, "GET requests must not carry the CSRF header")

	require.NoError(t, c.RefreshToken(context.Background()))
	assert.Equal(t, "tok-123", postHeader)
	assert.Equal(t, "tok-456", c.Token(), "refresh rotates the held token")
}

// TestClient_UnauthorizedClearsToken tests that any 401 response drops the
// held token and surfaces status 401
func TestClient_UnauthorizedClearsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"user":       map[string]any{"id": "u1"},
			"csrf_token": "tok-123",
		})
	})
	mux.HandleFunc("GET /auth/strategy-summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "session expired"})
	})

	c, _ := newTestClient(t, mux)
	_, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", c.Token())

	_, err = c.StrategySummary(context.Background())
	require.Error(t, err)

	apiErr := Wrap(err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "session expired", apiErr.Message)
	assert.Empty(t, c.Token(), "401 must clear the held CSRF token")
}

// TestClient_NetworkErrorIsStatusZero tests the fixed transport-failure shape
func TestClient_NetworkErrorIsStatusZero(t *testing.T) {
	// Closed port: the request never reaches a backend.
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"})

	_, err := c.StrategySummary(context.Background())
	require.Error(t, err)

	apiErr := Wrap(err)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, NetworkErrorMessage, apiErr.Message)
	assert.True(t, apiErr.IsNetworkError())
}

// TestClient_ErrorBodyParsing tests the message/error field fallback chain
func TestClient_ErrorBodyParsing(t *testing.T) {
	cases := []struct {
		name string
		body any
		want string
	}{
		{"message field", map[string]string{"message": "strategy already exists"}, "strategy already exists"},
		{"error field", map[string]string{"error": "bad symbol"}, "bad symbol"},
		{"empty body", map[string]string{}, "400 Bad Request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, tc.body)
			}))

			err := c.do(context.Background(), http.MethodPost, "/dca/strategies", map[string]string{}, nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, Wrap(err).Message)
		})
	}
}

// TestClient_CreateDCAStrategySendsConfigJSON tests the DCA endpoint's
// stringified-config contract
func TestClient_CreateDCAStrategySendsConfigJSON(t *testing.T) {
	var received struct {
		Name        string `json:"name"`
		AssetSymbol string `json:"asset_symbol"`
		ConfigJSON  string `json:"config_json"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /dca/strategies", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, http.StatusCreated, Strategy{ID: "s1", Name: received.Name})
	})

	c, _ := newTestClient(t, mux)

	cfg := strategy.BuildDCAConfig(strategy.DCAForm{
		BaseAmount:   100,
		Interval:     "1d",
		StrategyType: strategy.DCASimple,
	})
	created, err := c.CreateDCAStrategy(context.Background(), "Daily BTC", "BTC", cfg)
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	assert.Equal(t, "Daily BTC", received.Name)
	assert.Equal(t, "BTC", received.AssetSymbol)

	// config_json must be a string holding the serialized config, with the
	// disabled blocks key-absent
	var inner map[string]any
	require.NoError(t, json.Unmarshal([]byte(received.ConfigJSON), &inner))
	assert.Equal(t, "Simple", inner["strategy_type"])
	assert.Contains(t, inner, "filters")
	assert.NotContains(t, inner, "rsi_config")
}

// TestFriendlyMessage tests the substring translation table
func TestFriendlyMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&APIError{Status: 409, Message: "strategy already exists"},
			"A strategy with this name already exists. Choose a different name."},
		{&APIError{Status: 400, Message: "Invalid API credentials"},
			"The exchange rejected these API credentials. Check the key and secret."},
		{&APIError{Status: 400, Message: "Password must be at least 8 characters"},
			"Incorrect password. Please try again."},
		{&APIError{Status: 0, Message: NetworkErrorMessage}, NetworkErrorMessage},
		{&APIError{Status: 401, Message: "missing session"},
			"Authentication required. Please log in again."},
		{&APIError{Status: 500, Message: "boom"}, "boom"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FriendlyMessage(tc.err))
	}
}

// TestWrap_UnexpectedErrorBecomes500 tests that foreign errors are coerced to
// the generic 500 shape
func TestWrap_UnexpectedErrorBecomes500(t *testing.T) {
	wrapped := Wrap(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, wrapped.Status)
	assert.Equal(t, "An unexpected error occurred", wrapped.Message)

	// already-typed errors pass through untouched
	orig := &APIError{Status: 404, Message: "not found"}
	assert.Same(t, orig, Wrap(orig))
}
