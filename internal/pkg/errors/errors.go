package errors

import (
	"errors"
	"net/http"
)

// CustomError is an error that knows which HTTP status it maps to.
type CustomError struct {
	Code    int
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return CustomError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{Code: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return CustomError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return CustomError{Code: http.StatusConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return CustomError{Code: http.StatusInternalServerError, Message: msg}
}

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var ce CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}
