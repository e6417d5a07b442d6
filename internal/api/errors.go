package api

import "fmt"

// InvalidRefError reports an input that does not look like a repository
// reference.
type InvalidRefError struct {
	Input string
}

func (e *InvalidRefError) Error() string {
	return fmt.Sprintf("invalid repository reference: %q", e.Input)
}

// APIError is a non-2xx response from the GitHub API. StatusCode is kept
// so callers can tell rate limiting (403/429) from a missing resource (404).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GitHub API: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API: HTTP %d", e.StatusCode)
}

// RequestError wraps a transport-level failure. Nothing was received from
// the API, so nothing is cached.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
