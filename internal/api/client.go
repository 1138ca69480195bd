package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the backend address used when no environment override is
// present.
const DefaultBaseURL = "http://localhost:8080/api/v1"

const defaultTimeout = 30 * time.Second

// BaseURLFromEnv resolves the backend base URL. STRATEGY_API_URL wins; the
// legacy NEXT_PUBLIC_API_URL name from the web dashboard is still honored.
func BaseURLFromEnv() string {
	if v := os.Getenv("STRATEGY_API_URL"); v != "" {
		return v
	}
	if v := os.Getenv("NEXT_PUBLIC_API_URL"); v != "" {
		return v
	}
	return DefaultBaseURL
}

// Client is the single point of contact with the strategy platform backend.
// It carries session cookies on every request and exactly one piece of
// mutable state: the current CSRF token, set on login/signup/refresh and
// cleared on logout or any 401 response.
type Client struct {
	http *resty.Client
	log  *logrus.Entry

	mu        sync.Mutex
	csrfToken string
}

// Options configures a Client. Zero values fall back to the environment and
// the documented defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logrus.Logger
}

// NewClient creates a backend client with a fresh cookie jar.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURLFromEnv()
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	c := &Client{
		log: opts.Logger.WithField("component", "api"),
	}

	jar, _ := cookiejar.New(nil)
	c.http = resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil {
				return false
			}
			// Mutating requests are not replayed on 5xx: the backend may
			// have already applied them.
			if resp.StatusCode() == http.StatusTooManyRequests {
				return true
			}
			return resp.Request.Method == http.MethodGet && resp.StatusCode() >= 500
		})

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Method != http.MethodGet {
			if token := c.Token(); token != "" {
				req.SetHeader("X-CSRF-Token", token)
			}
		}
		return nil
	})

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.clearToken()
		}
		return nil
	})

	return c
}

// Token returns the currently held CSRF token, empty before login.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.csrfToken
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.csrfToken = token
	c.mu.Unlock()
}

func (c *Client) clearToken() {
	c.setToken("")
}

// do executes one request against the backend. Transport failures surface as
// status 0 with the fixed network message; non-2xx responses surface as an
// *APIError carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Warn("request failed")
		return &APIError{Status: 0, Message: NetworkErrorMessage}
	}
	if resp.IsError() {
		apiErr := errorFromResponse(resp)
		c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": apiErr.Status}).
			Warn(apiErr.Message)
		return apiErr
	}
	return nil
}

// errorFromResponse extracts the backend's message field, falling back to the
// error field and then the HTTP status text.
func errorFromResponse(resp *resty.Response) *APIError {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		message = body.Message
		if message == "" {
			message = body.Error
		}
	}
	if message == "" {
		message = resp.Status()
	}

	return &APIError{Status: resp.StatusCode(), Message: message}
}
