package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUpstream              = errors.New("upstream returned unsuccessful status")
	ErrNetwork               = errors.New("upstream transport failure")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// UpstreamError is returned when the data provider answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status=%d url=%s", e.StatusCode, e.URL)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NetworkError wraps a transport failure such as a timeout, DNS failure or refused connection.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream network failure url=%s", e.URL)
	}
	return fmt.Sprintf("upstream network failure url=%s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
