package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"tour-booking/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: errors.BadRequest("x"), want: http.StatusBadRequest},
		{name: "not found", err: errors.NotFound("x"), want: http.StatusNotFound},
		{name: "conflict", err: errors.Conflict("x"), want: http.StatusConflict},
		{name: "wrapped", err: fmt.Errorf("outer: %w", errors.UnauthorizedError("x")), want: http.StatusUnauthorized},
		{name: "plain error", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.StatusCode(tc.err))
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	assert.Equal(t, "Only 2 spots left for this tour.", errors.BadRequest("Only 2 spots left for this tour.").Error())
}
