package practicum

import (
	"errors"
	"fmt"
)

var (
	ErrNoHomeworks    = errors.New(`response has no "homeworks" key`)
	ErrEmptyHomeworks = errors.New("homeworks list is empty")
	ErrMissingName    = errors.New(`homework record has no "homework_name"`)
	ErrMissingStatus  = errors.New(`homework record has no "status"`)
)

// RequestError is a transport-level failure: the request never produced a
// usable HTTP response.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("practicum request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a non-200 answer from the API. Message carries the service's
// own error text when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("practicum API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("practicum API returned status %d: %s", e.StatusCode, e.Message)
}

// DecodeError is a 200 answer whose body could not be decoded as the
// expected JSON shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("practicum response is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownStatusError is a homework status outside the documented set.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("undocumented homework status %q", e.Status)
}
