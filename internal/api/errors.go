package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the service answers with a non-2xx status
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string // Leading part of the response body, for the operator log
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
}

// TransportError is returned when the request never produced a response
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is returned when a 2xx body is not JSON of the expected shape
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the service
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// Kind names the failure class of err for logging: "status", "transport", "parse" or "other"
func Kind(err error) string {
	var (
		statusErr    *StatusError
		transportErr *TransportError
		parseErr     *ParseError
	)
	switch {
	case errors.As(err, &statusErr):
		return "status"
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
