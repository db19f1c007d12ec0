package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoData is returned when a successful reply carries no task.
var ErrNoData = errors.New("no task in response")

// Error is returned for every failed request. Transport is true when the
// request never produced an HTTP response.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Transport  bool
	Err        error
}

// Error implements the error interface. The text is the single descriptive
// message surfaced to the user.
func (e *Error) Error() string {
	if e.Transport {
		if e.Err != nil {
			return "network error: " + e.Err.Error()
		}
		return "network error"
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the session was rejected.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsTransport reports whether err is a network level failure.
func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Transport
}
