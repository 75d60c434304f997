package middleware

import (
	"fmt"
	"time"

	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Middleware struct {
	Log    log.Logger
	Tracer *apm.Tracer
}

// RequestLogger opens an apm transaction per request, when a tracer is
// set, and logs the outcome.
func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()

	if m.Tracer != nil {
		tx := m.Tracer.StartTransaction(fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), "request")
		defer tx.End()
		ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))
	}

	err := ctx.Next()

	m.Log.Info(ctx.UserContext(), "http request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", ctx.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
	)
	return err
}

// ValidateDateQuery rejects requests whose query parameter param is not a
// yyyy-MM-dd date.
func (m *Middleware) ValidateDateQuery(param string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		value := ctx.Query(param)
		if value == "" {
			return helpers.RespError(ctx, m.Log, errors.BadRequest(fmt.Sprintf("%s is required", param)))
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			m.Log.Warn(ctx.UserContext(), "error validate date query", param, value)
			return helpers.RespError(ctx, m.Log, errors.BadRequest(fmt.Sprintf("%s must be formatted as YYYY-MM-DD", param)))
		}
		return ctx.Next()
	}
}
