package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthChecker_DegradedBeforeFirstPoll verifies a fresh checker reports
// degraded until a poll succeeds.
func TestHealthChecker_DegradedBeforeFirstPoll(t *testing.T) {
	h := NewHealthChecker(30 * time.Second)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status.Status)
}

// TestHealthChecker_HealthyAfterSuccess verifies a recent successful poll
// flips the status to healthy and clears the last error.
func TestHealthChecker_HealthyAfterSuccess(t *testing.T) {
	h := NewHealthChecker(30 * time.Second)
	h.RecordFailure(assert.AnError)
	h.RecordSuccess()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Empty(t, status.LastError)
}

// TestHealthChecker_FailureKeepsLastError verifies a failure after a success
// surfaces the error while the success is still fresh.
func TestHealthChecker_FailureKeepsLastError(t *testing.T) {
	h := NewHealthChecker(30 * time.Second)
	h.RecordSuccess()
	h.RecordFailure(assert.AnError)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.NotEmpty(t, status.LastError)
}
