package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// RequestError is a call that did not yield a usable answer. StatusCode is zero when the request never
// got a response, which lets callers tell an unreachable ledger from one that refused the request.
type RequestError struct {
	Err        error
	StatusCode int
	Body       string
}

func newTransportError(err error) *RequestError {
	return &RequestError{Err: err}
}

func newStatusError(code int, body string) *RequestError {
	return &RequestError{
		Err:        errors.Errorf("unexpected status %d %s", code, http.StatusText(code)),
		StatusCode: code,
		Body:       body,
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Body)
	}
	return e.Err.Error()
}

// ParseError is a 200 response whose body could not be decoded. The request itself took effect.
type ParseError struct {
	Err error
}

func newParseError(err error) *ParseError {
	return &ParseError{Err: err}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return "malformed response: " + e.Err.Error()
}

// StatusCode returns the HTTP status the failed call received, zero if it never got a response.
func StatusCode(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return http.StatusOK
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
