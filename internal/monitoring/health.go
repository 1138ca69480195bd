package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker reports whether the watch daemon is keeping up with the
// backend. A poll that has not succeeded for three intervals marks the
// daemon degraded.
type HealthChecker struct {
	mu           sync.RWMutex
	pollInterval time.Duration
	lastSuccess  time.Time
	lastError    string
}

// HealthStatus is the /healthz response body.
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	LastSuccess time.Time `json:"last_success"`
	Uptime      string    `json:"uptime"`
	LastError   string    `json:"last_error,omitempty"`
}

// NewHealthChecker creates a checker for the given poll interval.
func NewHealthChecker(pollInterval time.Duration) *HealthChecker {
	return &HealthChecker{pollInterval: pollInterval}
}

// RecordSuccess marks a completed summary poll.
func (h *HealthChecker) RecordSuccess() {
	h.mu.Lock()
	h.lastSuccess = time.Now()
	h.lastError = ""
	h.mu.Unlock()
}

// RecordFailure marks a failed summary poll.
func (h *HealthChecker) RecordFailure(err error) {
	h.mu.Lock()
	h.lastError = err.Error()
	h.mu.Unlock()
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if h.lastSuccess.IsZero() || time.Since(h.lastSuccess) > 3*h.pollInterval {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	health := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		LastSuccess: h.lastSuccess,
		Uptime:      time.Since(startTime).String(),
		LastError:   h.lastError,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(health)
}
