package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/pkg/log"
	"tour-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	m := &middleware.Middleware{Log: log.Setup()}
	app := fiber.New()
	app.Use(m.RequestLogger)
	app.Get("/tours", m.ValidateDateQuery("tour_date"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestValidateDateQuery(t *testing.T) {
	app := newApp()

	testCases := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{name: "valid", target: "/tours?tour_date=2025-01-20", status: fiber.StatusOK, body: "ok"},
		{name: "missing", target: "/tours", status: fiber.StatusBadRequest, body: `{"detail":"tour_date is required"}`},
		{name: "malformed", target: "/tours?tour_date=2025-13-01", status: fiber.StatusBadRequest, body: `{"detail":"tour_date must be formatted as YYYY-MM-DD"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tc.body, string(body))
		})
	}
}
