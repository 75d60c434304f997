package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"tour-booking/config"
	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/module/booking/models/request"
	"tour-booking/internal/module/booking/models/response"
	"tour-booking/internal/module/booking/repositories"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/log"
	"tour-booking/internal/pkg/messagestream"
	"tour-booking/internal/pkg/pix"
	"tour-booking/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/facebookgo/clock"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type usecase struct {
	repo     repositories.Repositories
	ledger   repositories.BookingLedger
	log      log.Logger
	publish  message.Publisher
	enqueuer scheduler.Enqueuer
	cfg      *config.BookingConfig
	clock    clock.Clock
}

type Usecase interface {
	// http
	ListAvailableTours(ctx context.Context, date string) ([]response.Tour, error)
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.BookingCreated, error)
	GetBookingStatus(ctx context.Context, bookingUUID string) (response.BookingStatus, error)
	ConfirmPayment(ctx context.Context, bookingUUID string, amount float64) (response.BookingStatus, error)
	// queue & scheduler
	ExpirePayment(ctx context.Context, payload *request.PaymentExpiration) error
}

// New wires the sandbox booking flow. enqueuer may be nil, in which case
// pending payments never expire.
func New(repo repositories.Repositories, ledger repositories.BookingLedger, log log.Logger, publish message.Publisher, enqueuer scheduler.Enqueuer, cfg *config.BookingConfig, clk clock.Clock) Usecase {
	return &usecase{
		repo:     repo,
		ledger:   ledger,
		log:      log,
		publish:  publish,
		enqueuer: enqueuer,
		cfg:      cfg,
		clock:    clk,
	}
}

func (u *usecase) ListAvailableTours(ctx context.Context, date string) ([]response.Tour, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, errors.BadRequest("tour_date must be formatted as YYYY-MM-DD")
	}

	reserved, err := u.ledger.Get(ctx, date)
	if err != nil {
		return nil, err
	}

	tours := make([]response.Tour, 0, len(catalog))
	for _, offer := range catalog {
		seats := offer.Capacity - reserved[string(offer.Type)]
		if seats < 0 {
			seats = 0
		}
		tours = append(tours, response.Tour{
			TourInstanceID: instanceID(day, offer),
			TourType:       string(offer.Type),
			TourDate:       date,
			DisplayName:    offer.DisplayName,
			Description:    offer.Description,
			Price:          offer.Price,
			SeatsAvailable: seats,
			IsBookable:     seats > 0 && !blocked(offer.Type, reserved),
			Capacity:       offer.Capacity,
			Duration:       offer.Duration,
			ImageURL:       offer.ImageURL,
		})
	}
	return tours, nil
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.BookingCreated, error) {
	date, offer, err := parseInstanceID(payload.TourID)
	if err != nil {
		u.log.Warn(ctx, "error parse tour id", err)
		return response.BookingCreated{}, errors.NotFound("Tour not found.")
	}

	// 1. the price is recomputed here, the client total is only checked
	total := helpers.RoundMoney(offer.Price * float64(payload.NumPeople))
	if !helpers.SameAmount(total, payload.TotalPrice) {
		return response.BookingCreated{}, errors.BadRequest(fmt.Sprintf("Total price mismatch: expected %s.", helpers.FormatMoney(total)))
	}

	// 2. reserve seats
	err = u.ledger.Reserve(ctx, date, string(offer.Type), payload.NumPeople, offer.Capacity, func(reserved map[string]int) error {
		if blocked(offer.Type, reserved) {
			return errors.BadRequest("This tour is not available on this date because another tour is already booked.")
		}
		return nil
	})
	if err != nil {
		var seats *repositories.InsufficientSeatsError
		if stderrors.As(err, &seats) {
			return response.BookingCreated{}, errors.BadRequest(seats.Error())
		}
		return response.BookingCreated{}, err
	}

	// 3. payment instruction
	id := uuid.New()
	pixCode := pix.Payload{
		Key:          u.cfg.PixKey,
		MerchantName: u.cfg.MerchantName,
		MerchantCity: u.cfg.MerchantCity,
		Amount:       total,
		TxID:         strings.ReplaceAll(id.String(), "-", ""),
	}.Encode()
	qrImage, err := pix.QRCodeDataURI(pixCode)
	if err != nil {
		u.log.Error(ctx, "error render pix qr code", err)
		u.release(ctx, date, offer, payload.NumPeople)
		return response.BookingCreated{}, errors.InternalServerError("error render payment qr code")
	}

	record := entity.BookingRecord{
		UUID:           id,
		TourInstanceID: payload.TourID,
		TourDate:       date,
		TourType:       string(offer.Type),
		GuestName:      payload.GuestName,
		GuestEmail:     payload.GuestEmail,
		NumPeople:      payload.NumPeople,
		TotalPrice:     total,
		SpecialNotes:   payload.SpecialNotes,
		Status:         entity.StatusPendingPayment,
		PixCode:        pixCode,
		CreatedAt:      u.clock.Now(),
	}

	// 4. schedule the end of the payment window
	record.TaskID = u.scheduleExpiry(ctx, id)

	if err := u.repo.UpsertBooking(ctx, record); err != nil {
		u.release(ctx, date, offer, payload.NumPeople)
		return response.BookingCreated{}, err
	}

	u.publishEvent(ctx, messagestream.TopicBookingCreated, record)

	return response.BookingCreated{
		Booking: response.Booking{
			UUID:           id.String(),
			Status:         record.Status,
			TourInstanceID: record.TourInstanceID,
			GuestName:      record.GuestName,
			GuestEmail:     record.GuestEmail,
			NumPeople:      record.NumPeople,
			TotalPrice:     record.TotalPrice,
		},
		PaymentInfo: response.PaymentInfo{
			QRCode:      pixCode,
			QRCodeImage: qrImage,
			Amount:      total,
		},
	}, nil
}

func (u *usecase) GetBookingStatus(ctx context.Context, bookingUUID string) (response.BookingStatus, error) {
	record, err := u.findBooking(ctx, bookingUUID)
	if err != nil {
		return response.BookingStatus{}, err
	}
	return response.BookingStatus{Status: record.Status}, nil
}

// ConfirmPayment settles a pending booking. Confirming twice is a no-op.
func (u *usecase) ConfirmPayment(ctx context.Context, bookingUUID string, amount float64) (response.BookingStatus, error) {
	record, err := u.findBooking(ctx, bookingUUID)
	if err != nil {
		return response.BookingStatus{}, err
	}

	switch record.Status {
	case entity.StatusConfirmed:
		return response.BookingStatus{Status: entity.StatusConfirmed}, nil
	case entity.StatusExpired:
		return response.BookingStatus{}, errors.Conflict("Payment window for this booking has expired.")
	}

	if amount > 0 && !helpers.SameAmount(amount, record.TotalPrice) {
		return response.BookingStatus{}, errors.BadRequest(fmt.Sprintf("Payment amount does not match booking total %s.", helpers.FormatMoney(record.TotalPrice)))
	}

	ok, err := u.repo.UpdateBookingStatus(ctx, record.UUID, entity.StatusPendingPayment, entity.StatusConfirmed)
	if err != nil {
		return response.BookingStatus{}, err
	}
	if !ok {
		// lost a race with expiry or another confirmation
		current, err := u.repo.FindBookingByUUID(ctx, record.UUID)
		if err != nil {
			return response.BookingStatus{}, err
		}
		if current.Status == entity.StatusConfirmed {
			return response.BookingStatus{Status: entity.StatusConfirmed}, nil
		}
		return response.BookingStatus{}, errors.Conflict("Payment window for this booking has expired.")
	}

	record.Status = entity.StatusConfirmed
	u.publishEvent(ctx, messagestream.TopicBookingConfirmed, record)
	u.log.Info(ctx, fmt.Sprintf("booking %s confirmed", record.UUID))

	return response.BookingStatus{Status: entity.StatusConfirmed}, nil
}

// ExpirePayment releases the seats of a booking still waiting for payment.
func (u *usecase) ExpirePayment(ctx context.Context, payload *request.PaymentExpiration) error {
	id, err := uuid.Parse(payload.BookingUUID)
	if err != nil {
		return errors.BadRequest("Invalid booking id.")
	}

	record, err := u.repo.FindBookingByUUID(ctx, id)
	if err != nil {
		return err
	}
	if record.UUID == uuid.Nil {
		u.log.Warn(ctx, "expire unknown booking", payload.BookingUUID)
		return nil
	}

	ok, err := u.repo.UpdateBookingStatus(ctx, id, entity.StatusPendingPayment, entity.StatusExpired)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := u.ledger.Release(ctx, record.TourDate, record.TourType, record.NumPeople); err != nil {
		return err
	}

	record.Status = entity.StatusExpired
	u.publishEvent(ctx, messagestream.TopicBookingExpired, record)
	return nil
}

func (u *usecase) findBooking(ctx context.Context, bookingUUID string) (entity.BookingRecord, error) {
	id, err := uuid.Parse(bookingUUID)
	if err != nil {
		return entity.BookingRecord{}, errors.BadRequest("Invalid booking id.")
	}

	record, err := u.repo.FindBookingByUUID(ctx, id)
	if err != nil {
		return entity.BookingRecord{}, err
	}
	if record.UUID == uuid.Nil {
		return entity.BookingRecord{}, errors.NotFound("Booking not found.")
	}
	return record, nil
}

func (u *usecase) scheduleExpiry(ctx context.Context, id uuid.UUID) string {
	if u.enqueuer == nil {
		return ""
	}

	payload, err := json.Marshal(request.PaymentExpiration{BookingUUID: id.String()})
	if err != nil {
		u.log.Error(ctx, "error marshal expiration payload", err)
		return ""
	}

	task := asynq.NewTask(scheduler.TypeExpirePendingPayment, payload)
	info, err := u.enqueuer.EnqueueContext(ctx, task, asynq.ProcessIn(u.cfg.PaymentWindow), asynq.MaxRetry(3))
	if err != nil {
		u.log.Error(ctx, "error enqueue payment expiration", id.String(), err)
		return ""
	}
	return info.ID
}

func (u *usecase) release(ctx context.Context, date string, offer tourOffer, qty int) {
	if err := u.ledger.Release(ctx, date, string(offer.Type), qty); err != nil {
		u.log.Error(ctx, "error release seats", date, string(offer.Type), err)
	}
}

func (u *usecase) publishEvent(ctx context.Context, topic string, record entity.BookingRecord) {
	if u.publish == nil {
		return
	}

	payload, err := json.Marshal(request.BookingEvent{
		BookingUUID:    record.UUID.String(),
		TourInstanceID: record.TourInstanceID,
		TourDate:       record.TourDate,
		NumPeople:      record.NumPeople,
		TotalPrice:     record.TotalPrice,
		GuestEmail:     record.GuestEmail,
		Status:         record.Status,
		OccurredAt:     u.clock.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}

	if err := u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish booking event", topic, err)
	}
}
