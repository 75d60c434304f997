package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tour-booking/config"
	"tour-booking/internal/module/booking/apiclient"
	"tour-booking/internal/module/booking/controller"
	bookingHandler "tour-booking/internal/module/booking/handler"
	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/module/booking/repositories"
	"tour-booking/internal/module/booking/usecases"
	manifestHandler "tour-booking/internal/module/manifest/handler"
	"tour-booking/internal/pkg/helpers"
	internalhttp "tour-booking/internal/pkg/http"
	"tour-booking/internal/pkg/log"
	"tour-booking/internal/pkg/messagestream"
	"tour-booking/internal/pkg/middleware"
	router "tour-booking/internal/route"

	"github.com/facebookgo/clock"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDate     = "2025-01-20"
	sunriseID    = int64(202501201)
	fullDayID    = int64(202501202)
	sunsetID     = int64(202501203)
	pollInterval = 3 * time.Second
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := log.Setup()

	publisher, err := messagestream.NewAmpq(&config.MessageStreamConfig{}).NewPublisher()
	require.NoError(t, err)

	cfg := &config.BookingConfig{
		PaymentWindow: 15 * time.Minute,
		PixKey:        "reservas@example.com",
		MerchantName:  "TOURS",
		MerchantCity:  "NATAL",
	}
	usecase := usecases.New(repositories.NewMemory(logger), repositories.NewMemoryLedger(), logger, publisher, nil, cfg, clock.NewMock())

	booking := bookingHandler.BookingHandler{
		Log:       logger,
		Validator: helpers.NewValidator(),
		Usecase:   usecase,
		Publish:   publisher,
	}
	manifest := manifestHandler.ManifestHandler{Log: logger}
	m := middleware.Middleware{Log: logger}

	return router.Initialize(internalhttp.SetupHttpEngine(), &booking, &manifest, &m, nil)
}

func TestHealthAndAdminRoutes(t *testing.T) {
	app := newApp(t)

	testCases := []struct {
		name   string
		target string
		status int
	}{
		{name: "health", target: "/health", status: fiber.StatusOK},
		{name: "manifest", target: "/api/v1/tours/manifest?date=" + testDate, status: fiber.StatusOK},
		{name: "manifest without date", target: "/api/v1/tours/manifest", status: fiber.StatusBadRequest},
		{name: "schedule", target: "/api/v1/tours/schedule?year=2025&month=1", status: fiber.StatusOK},
		{name: "available without date", target: "/api/v1/tours/available", status: fiber.StatusBadRequest},
		{name: "unknown booking", target: "/api/v1/bookings/status/9b2f6a3e-1c1d-4d6e-9a55-1f0c2b7d8e90", status: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func findTour(tours []entity.TourInstance, id int64) (entity.TourInstance, bool) {
	for _, tour := range tours {
		if tour.InstanceID == id {
			return tour, true
		}
	}
	return entity.TourInstance{}, false
}

// TestBookingRoundTrip drives the controller against the sandbox backend
// over real HTTP: list, book, settle the payment, poll to confirmation.
func TestBookingRoundTrip(t *testing.T) {
	srv := httptest.NewServer(adaptor.FiberApp(newApp(t)))
	defer srv.Close()

	clk := clock.NewMock()
	ctl := controller.New(apiclient.New(srv.URL, apiclient.WithLogger(log.Setup())),
		controller.WithClock(clk),
		controller.WithPollInterval(pollInterval),
		controller.WithLogger(log.Setup()),
	)
	defer ctl.Close()

	ctx := context.Background()
	require.NoError(t, ctl.LoadDate(ctx, testDate))
	state := ctl.Snapshot()
	require.Len(t, state.Tours, 3)

	sunset, ok := findTour(state.Tours, sunsetID)
	require.True(t, ok)
	assert.Equal(t, entity.TourSunset, sunset.TourType)
	assert.Equal(t, 10, sunset.SeatsRemaining)

	require.NoError(t, ctl.SelectTour(sunsetID))
	require.NoError(t, ctl.SetGuestName("Ana Souza"))
	require.NoError(t, ctl.SetGuestEmail("ana@example.com"))
	_, err := ctl.SetNumPeople(2)
	require.NoError(t, err)

	require.NoError(t, ctl.Confirm(ctx))
	state = ctl.Snapshot()
	require.Equal(t, controller.PhaseAwaitingPayment, state.Phase)
	require.NotNil(t, state.Booking)
	require.NotNil(t, state.Payment)
	assert.Equal(t, entity.StatusPendingPayment, state.Booking.Status)
	assert.InDelta(t, 100.0, state.Payment.Amount, 0.001)
	assert.NotEmpty(t, state.Payment.PixCopyPasteCode)

	// nothing is paid yet
	clk.Add(pollInterval)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, controller.PhaseAwaitingPayment, ctl.Snapshot().Phase)

	resp, err := http.Post(srv.URL+"/api/v1/bookings/"+state.Booking.UUID+"/confirm", "application/json", nil)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	clk.Add(pollInterval)
	require.Eventually(t, func() bool {
		return ctl.Snapshot().Phase == controller.PhaseConfirmed
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "ana@example.com", ctl.Snapshot().ConfirmedEmail)

	// the list is refreshed after confirmation
	require.Eventually(t, func() bool {
		tour, ok := findTour(ctl.Snapshot().Tours, sunsetID)
		return ok && tour.SeatsRemaining == 8
	}, 2*time.Second, 10*time.Millisecond)

	tours := ctl.Snapshot().Tours
	fullDay, _ := findTour(tours, fullDayID)
	sunrise, _ := findTour(tours, sunriseID)
	assert.False(t, fullDay.IsBookable)
	assert.True(t, sunrise.IsBookable)
}
