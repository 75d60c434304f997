package apiclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tour-booking/internal/module/booking/apiclient"
	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newClient(t *testing.T, h http.HandlerFunc) *apiclient.Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, apiclient.WithLogger(log.Setup()), apiclient.WithRateLimiter(rate.NewLimiter(rate.Inf, 1)))
}

func TestListTours(t *testing.T) {
	t.Run("success maps snake_case and aliases", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/tours/available", r.URL.Path)
			assert.Equal(t, "2025-01-20", r.URL.Query().Get("tour_date"))
			io.WriteString(w, `[
				{"tour_instance_id": 7, "tour_type": "morning", "tour_date": "2025-01-20", "display_name": "Dolphins",
				 "price": 50, "seats_available": 4, "is_bookable": true, "capacity": 10, "image_url": "img/a.jpg"},
				{"tour_instance_id": 8, "tour_type": "all_day", "tour_date": "2025-01-20", "display_name": "Coast",
				 "price": 100, "seats_available": 0, "is_bookable": true, "capacity": 10, "duration": "6h"}
			]`)
		})

		tours, err := c.ListTours(context.Background(), "2025-01-20")
		require.NoError(t, err)
		require.Len(t, tours, 2)

		assert.Equal(t, entity.TourInstance{
			InstanceID:     7,
			TourType:       entity.TourSunrise,
			Date:           "2025-01-20",
			DisplayName:    "Dolphins",
			PricePerPerson: 50,
			Capacity:       10,
			SeatsRemaining: 4,
			IsBookable:     true,
			DurationLabel:  "2h",
			ImageURL:       "img/a.jpg",
		}, tours[0])
		assert.Equal(t, entity.TourFullDay, tours[1].TourType)
		assert.False(t, tours[1].IsBookable, "no seats means not bookable")
		assert.Equal(t, "6h", tours[1].DurationLabel)
	})

	t.Run("non-2xx carries detail verbatim", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"detail": "invalid tour_date"}`)
		})

		_, err := c.ListTours(context.Background(), "bad")
		var fe *apiclient.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusBadRequest, fe.Status)
		assert.Equal(t, "invalid tour_date", err.Error())
		assert.False(t, errors.Is(err, apiclient.ErrNetwork))
	})

	t.Run("non-2xx without detail", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.ListTours(context.Background(), "2025-01-20")
		assert.EqualError(t, err, "HTTP error 502")
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := apiclient.New(srv.URL, apiclient.WithLogger(log.Setup()))

		_, err := c.ListTours(context.Background(), "2025-01-20")
		assert.True(t, errors.Is(err, apiclient.ErrNetwork))
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/bookings", r.URL.Path)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(7), body["tour_id"])
			assert.Equal(t, "Ana", body["guest_name"])
			assert.Equal(t, "ana@example.com", body["guest_email"])
			assert.Equal(t, float64(3), body["num_people"])
			assert.Equal(t, 450.0, body["total_price"])

			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"booking": {"uuid": "x", "status": "pending_payment"},
				"payment_info": {"qr_code": "000201pix", "qr_code_image": "data:image/png;base64,AA", "amount": 450}}`)
		})

		res, err := c.CreateBooking(context.Background(), entity.BookingRequest{
			TourInstanceID: 7,
			GuestName:      "Ana",
			GuestEmail:     "ana@example.com",
			NumPeople:      3,
			TotalPrice:     450.0000001,
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "x", res.Booking.UUID)
		assert.Equal(t, entity.StatusPendingPayment, res.Booking.Status)
		assert.Equal(t, &entity.PaymentInfo{
			QRCodeImageURL:   "data:image/png;base64,AA",
			PixCopyPasteCode: "000201pix",
			Amount:           450,
		}, res.PaymentInfo)
	})

	t.Run("business rejection is not an error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"detail": "Only 1 spot left for this tour."}`)
		})

		res, err := c.CreateBooking(context.Background(), entity.BookingRequest{TourInstanceID: 7})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Only 1 spot left for this tour.", res.Message)
	})

	t.Run("rejection without detail", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		res, err := c.CreateBooking(context.Background(), entity.BookingRequest{TourInstanceID: 7})
		require.NoError(t, err)
		assert.Equal(t, "Server error: 500", res.Message)
	})

	t.Run("malformed body raises", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"booking":`)
		})

		_, err := c.CreateBooking(context.Background(), entity.BookingRequest{TourInstanceID: 7})
		assert.True(t, errors.Is(err, apiclient.ErrNetwork))
	})
}

func TestGetBookingStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/bookings/status/abc":
			io.WriteString(w, `{"status": "confirmed"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail": "Booking not found."}`)
		}
	})

	status, err := c.GetBookingStatus(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, status.Status)

	_, err = c.GetBookingStatus(context.Background(), "nope")
	assert.EqualError(t, err, "Booking not found.")
}

func TestNormalizeTourType(t *testing.T) {
	assert.Equal(t, entity.TourSunset, apiclient.NormalizeTourType("Evening"))
	assert.Equal(t, entity.TourFullDay, apiclient.NormalizeTourType("all_day"))
	assert.Equal(t, entity.TourType("night"), apiclient.NormalizeTourType("night"))
}
