// Package apierr holds the error type surfaced to the HTTP layer.
package apierr

import (
	"context"
	"errors"
	"net/http"
)

type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

// StatusOf returns the status carried by err. A request that ran out of time
// is 504, anything else is 500.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}
