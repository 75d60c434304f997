package router

import (
	bookingHandler "tour-booking/internal/module/booking/handler"
	manifestHandler "tour-booking/internal/module/manifest/handler"
	"tour-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/hibiken/asynqmon"
)

func Initialize(app *fiber.App, handlerBooking *bookingHandler.BookingHandler, handlerManifest *manifestHandler.ManifestHandler, m *middleware.Middleware, monitoring *asynqmon.HTTPHandler) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	if monitoring != nil {
		app.All(monitoring.RootPath()+"/*", adaptor.HTTPHandler(monitoring))
	}

	Api := app.Group("/api", m.RequestLogger)

	// public routes
	v1 := Api.Group("/v1")
	v1.Get("/tours/available", m.ValidateDateQuery("tour_date"), handlerBooking.ListAvailableTours)
	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Get("/bookings/status/:uuid", handlerBooking.GetBookingStatus)
	v1.Post("/bookings/:uuid/confirm", handlerBooking.ConfirmPayment)

	// admin dashboard
	v1.Get("/tours/manifest", m.ValidateDateQuery("date"), handlerManifest.GetDayManifest)
	v1.Get("/tours/schedule", handlerManifest.GetSchedule)

	return app

}
