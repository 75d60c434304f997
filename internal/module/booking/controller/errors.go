package controller

import "errors"

var (
	ErrWrongPhase   = errors.New("action not allowed in the current phase")
	ErrTourNotFound = errors.New("tour not found in the current list")
	ErrNotBookable  = errors.New("tour is not bookable")
	ErrCancelled    = errors.New("booking was cancelled")
	ErrClosed       = errors.New("controller is closed")
)

// ValidationError is a local guard failure. It never reaches the network.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BookingRejected carries the backend's business reason verbatim.
type BookingRejected struct {
	Message string
}

func (e *BookingRejected) Error() string {
	return e.Message
}
