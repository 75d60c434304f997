package handler

import (
	"time"

	"tour-booking/internal/module/manifest/generator"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type ManifestHandler struct {
	Log log.Logger
}

// GetDayManifest serves GET /tours/manifest?date=YYYY-MM-DD.
func (h *ManifestHandler) GetDayManifest(ctx *fiber.Ctx) error {
	date := ctx.Query("date")
	if _, err := time.Parse(generator.DateLayout, date); err != nil {
		h.Log.Warn(ctx.UserContext(), "error parse manifest date", date, err)
		return helpers.RespError(ctx, h.Log, errors.BadRequest("date must be formatted as YYYY-MM-DD"))
	}

	return helpers.RespSuccess(ctx, h.Log, generator.DayDetailsFor(date), "success get day manifest")
}

// GetSchedule serves GET /tours/schedule?year=&month=, keyed by date.
func (h *ManifestHandler) GetSchedule(ctx *fiber.Ctx) error {
	year := ctx.QueryInt("year")
	month := ctx.QueryInt("month")
	if year < 1 || month < 1 || month > 12 {
		h.Log.Warn(ctx.UserContext(), "error validate schedule query", year, month)
		return helpers.RespError(ctx, h.Log, errors.BadRequest("year and month (1-12) are required"))
	}

	days := generator.MonthSummary(year, time.Month(month))
	resp := make(map[string]generator.DaySummary, len(days))
	for _, d := range days {
		resp[d.Date] = d
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get monthly schedule")
}
