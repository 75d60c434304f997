package helpers

import (
	"tour-booking/internal/module/booking/models/response"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// RespSuccess writes data as the response body. The message only goes to
// the log, the public contract returns bare payloads.
func RespSuccess(ctx *fiber.Ctx, log log.Logger, data interface{}, message string) error {
	log.Debug(ctx.UserContext(), message, ctx.Method(), ctx.Path())
	if data == nil {
		return ctx.SendStatus(fiber.StatusOK)
	}
	return ctx.Status(fiber.StatusOK).JSON(data)
}

func RespCreated(ctx *fiber.Ctx, log log.Logger, data interface{}, message string) error {
	log.Debug(ctx.UserContext(), message, ctx.Method(), ctx.Path())
	return ctx.Status(fiber.StatusCreated).JSON(data)
}

// RespError writes the {"detail": ...} error body with the status carried
// by err. Unknown errors are reported as 500 without leaking their text.
func RespError(ctx *fiber.Ctx, log log.Logger, err error) error {
	code := errors.StatusCode(err)
	detail := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Error(ctx.UserContext(), "internal error", ctx.Method(), ctx.Path(), err)
		if _, ok := err.(errors.CustomError); !ok {
			detail = "Internal server error"
		}
	}
	return ctx.Status(code).JSON(response.Error{Detail: detail})
}
