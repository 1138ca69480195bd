package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NetworkErrorMessage is the fixed message carried by transport-level
// failures (status 0).
const NetworkErrorMessage = "Network error - please check your connection"

// APIError is the typed error every facade call returns on failure. Status
// is the HTTP status code, or 0 when the request never reached the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// IsNetworkError reports whether the request failed before reaching the
// backend.
func (e *APIError) IsNetworkError() bool { return e.Status == 0 }

// IsAuthError reports whether the backend rejected the session.
func (e *APIError) IsAuthError() bool { return e.Status == http.StatusUnauthorized }

// Wrap coerces any error into an *APIError. Errors that did not originate in
// the facade become a generic 500, so callers can rely on the type downstream.
func Wrap(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Status: http.StatusInternalServerError, Message: "An unexpected error occurred"}
}

// FriendlyMessage translates backend error text into user-facing copy by
// substring matching, the same mapping the web dashboard applies. The backend
// has no structured error codes, so the substrings below are load-bearing.
func FriendlyMessage(err error) string {
	apiErr := Wrap(err)

	if apiErr.IsNetworkError() {
		return NetworkErrorMessage
	}
	if apiErr.IsAuthError() {
		return "Authentication required. Please log in again."
	}

	switch {
	case strings.Contains(apiErr.Message, "already exists"):
		return "A strategy with this name already exists. Choose a different name."
	case strings.Contains(apiErr.Message, "Invalid API credentials"):
		return "The exchange rejected these API credentials. Check the key and secret."
	case strings.Contains(apiErr.Message, "Password"):
		return "Incorrect password. Please try again."
	}

	return apiErr.Message
}
