package apiclient

import (
	"errors"
	"fmt"
)

// ErrNetwork matches every failure where no usable HTTP response arrived.
var ErrNetwork = errors.New("network error")

// FetchError is a non-2xx answer from the booking API.
type FetchError struct {
	Op     string
	Status int
	Detail string
}

func (e *FetchError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error %d", e.Status)
}

// NetworkError wraps transport failures: unreachable host, open breaker,
// timeouts and undecodable bodies.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
