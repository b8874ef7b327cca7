package smartthings

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoToken is returned by NewClient when no API token is provided.
	ErrNoToken = errors.New("smartthings: no API token")
)

// APIError is the error returned for non-2xx responses from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("smartthings: api error %d", e.StatusCode)
	}
	return fmt.Sprintf("smartthings: api error %d: %s", e.StatusCode, e.Message)
}

func apiStatus(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is an API error caused by a missing,
// invalid, or expired token.
func IsUnauthorized(err error) bool {
	code, ok := apiStatus(err)
	return ok && (code == http.StatusUnauthorized || code == http.StatusForbidden)
}

// IsNotFound reports whether err is an API not-found error.
func IsNotFound(err error) bool {
	code, ok := apiStatus(err)
	return ok && code == http.StatusNotFound
}

// IsRateLimited reports whether err is an API rate-limit error.
func IsRateLimited(err error) bool {
	code, ok := apiStatus(err)
	return ok && code == http.StatusTooManyRequests
}
