package http

import (
	"fmt"
	"log"

	"tour-booking/internal/module/booking/models/response"
	"tour-booking/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tour-booking",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	return app
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}

// errorHandler keeps the {"detail": ...} body for errors that escape handlers,
// including fiber's own 404 and 405.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := errors.StatusCode(err)
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	return ctx.Status(code).JSON(response.Error{Detail: err.Error()})
}
