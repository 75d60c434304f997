package handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/module/booking/models/response"
	"tour-booking/internal/module/manifest/generator"
	"tour-booking/internal/module/manifest/handler"
	"tour-booking/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.ManifestHandler
	app *fiber.App
)

func setup() {
	h = &handler.ManifestHandler{Log: log.Setup()}
	app = fiber.New()
	app.Get("/tours/manifest", h.GetDayManifest)
	app.Get("/tours/schedule", h.GetSchedule)
}

func teardown() {
	h = nil
	app = nil
}

func TestGetDayManifest(t *testing.T) {
	setup()
	defer teardown()

	t.Run("Test case 1 | GetDayManifest", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tours/manifest?date=2025-01-20", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var tours []generator.TourDay
		require.NoError(t, json.Unmarshal(body, &tours))
		assert.Equal(t, generator.DayDetailsFor("2025-01-20"), tours)
	})

	t.Run("Test case 2 | GetDayManifest bad date", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tours/manifest?date=20-01-2025", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var e response.Error
		require.NoError(t, json.Unmarshal(body, &e))
		assert.Equal(t, "date must be formatted as YYYY-MM-DD", e.Detail)
	})
}

func TestGetSchedule(t *testing.T) {
	setup()
	defer teardown()

	t.Run("Test case 1 | GetSchedule", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tours/schedule?year=2025&month=1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var days map[string]generator.DaySummary
		require.NoError(t, json.Unmarshal(body, &days))
		assert.Len(t, days, 31)
		assert.Equal(t, generator.Summarize("2025-01-20", generator.DayDetailsFor("2025-01-20")), days["2025-01-20"])
	})

	t.Run("Test case 2 | GetSchedule invalid month", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/tours/schedule?year=2025&month=13", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
