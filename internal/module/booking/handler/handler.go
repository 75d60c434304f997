package handler

import (
	"context"
	"fmt"

	"tour-booking/internal/module/booking/models/request"
	"tour-booking/internal/module/booking/usecases"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/log"
	"tour-booking/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) ListAvailableTours(ctx *fiber.Ctx) error {
	date := ctx.Query("tour_date")
	if date == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("tour_date is required"))
	}

	resp, err := h.Usecase.ListAvailableTours(ctx.UserContext(), date)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error list available tours: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list available tours")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(validationDetail(err)))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Warn(ctx.UserContext(), fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) GetBookingStatus(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBookingStatus(ctx.UserContext(), ctx.Params("uuid"))
	if err != nil {
		h.Log.Warn(ctx.UserContext(), fmt.Sprintf("error get booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking status")
}

// ConfirmPayment settles a booking by hand. The body is optional; an
// amount, when given, must match the booking total.
func (h *BookingHandler) ConfirmPayment(ctx *fiber.Ctx) error {
	var req request.ConfirmPayment
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
		}
		if err := h.Validator.Struct(req); err != nil {
			return helpers.RespError(ctx, h.Log, errors.BadRequest(validationDetail(err)))
		}
	}

	resp, err := h.Usecase.ConfirmPayment(ctx.UserContext(), ctx.Params("uuid"), req.Amount)
	if err != nil {
		h.Log.Warn(ctx.UserContext(), fmt.Sprintf("error confirm payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success confirm payment")
}

// ConsumePaymentQueue handles pix_payment_received. Malformed messages go
// straight to the poisoned queue; usecase failures are returned so the
// router retries them.
func (h *BookingHandler) ConsumePaymentQueue(msg *message.Message) error {
	var req request.PaymentReceived
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return nil
	}

	_, err := h.Usecase.ConfirmPayment(msg.Context(), req.BookingUUID, req.Amount)
	if err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error consume payment queue: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: messagestream.TopicPaymentReceived,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(messagestream.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *BookingHandler) SetPaymentExpired(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpirePayment(ctx, &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error set payment expired: %v", err))
		return err
	}

	return nil
}

func validationDetail(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return "error validate request"
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address."
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
