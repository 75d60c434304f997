package tui

import (
	"context"
	"testing"

	"tour-booking/internal/module/booking/controller"
	"tour-booking/internal/module/booking/mocks"
	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bookingDate = "2025-01-20"

func sunsetTour() entity.TourInstance {
	return entity.TourInstance{
		InstanceID:     202501203,
		TourType:       entity.TourSunset,
		Date:           bookingDate,
		DisplayName:    "Sunset Lagoon Paddle",
		PricePerPerson: 50,
		Capacity:       10,
		SeatsRemaining: 4,
		IsBookable:     true,
		DurationLabel:  "2h",
	}
}

func newBookingModel(t *testing.T, api *mocks.ToursAPI, lang string) (tea.Model, *controller.Controller) {
	t.Helper()
	ctl := controller.New(api,
		controller.WithClock(clock.NewMock()),
		controller.WithLogger(log.Setup()),
		controller.WithLanguage(lang),
	)
	t.Cleanup(ctl.Close)

	model := NewBookingModel(context.Background(), ctl, nil, bookingDate, lang)
	cmd := model.Init()
	require.NotNil(t, cmd)
	updated, _ := model.Update(cmd())
	return updated, ctl
}

// run executes the command returned by an update and feeds its message
// back into the model.
func run(t *testing.T, model tea.Model, message tea.Msg) tea.Model {
	t.Helper()
	model, cmd := model.Update(message)
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())
	return model
}

func TestBookingModelBrowse(t *testing.T) {
	api := new(mocks.ToursAPI)
	api.On("ListTours", mock.Anything, bookingDate).Return([]entity.TourInstance{sunsetTour()}, nil)
	api.On("ListTours", mock.Anything, "2025-01-21").Return([]entity.TourInstance{}, nil)

	model, _ := newBookingModel(t, api, "en")
	view := plain(model.View())
	assert.Contains(t, view, "Check Tour Availability")
	assert.Contains(t, view, "Sunset Lagoon Paddle")
	assert.Contains(t, view, "R$ 50,00")
	assert.Contains(t, view, "4 spots left")

	model = run(t, model, runeKey('l'))
	assert.Equal(t, "2025-01-21", model.(BookingModel).State().Date)
	assert.Contains(t, plain(model.View()), "No tours available for this date.")
	api.AssertExpectations(t)
}

func TestBookingModelListError(t *testing.T) {
	api := new(mocks.ToursAPI)
	api.On("ListTours", mock.Anything, bookingDate).Return(nil, assert.AnError)

	model, _ := newBookingModel(t, api, "pt")
	assert.Contains(t, plain(model.View()), "Desculpe, não foi possível carregar a disponibilidade.")
}

func TestBookingModelFlow(t *testing.T) {
	api := new(mocks.ToursAPI)
	api.On("ListTours", mock.Anything, bookingDate).Return([]entity.TourInstance{sunsetTour()}, nil)
	api.On("CreateBooking", mock.Anything, entity.BookingRequest{
		TourInstanceID: 202501203,
		GuestName:      "Ana",
		GuestEmail:     "ana@example.com",
		NumPeople:      3,
		TotalPrice:     150,
		SpecialNotes:   "",
	}).Return(entity.CreateBookingResult{
		Success: true,
		Booking: &entity.Booking{UUID: "b-1", Status: entity.StatusPendingPayment},
		PaymentInfo: &entity.PaymentInfo{
			PixCopyPasteCode: "00020126580014BR.GOV.BCB.PIX",
			Amount:           150,
		},
	}, nil).Once()

	model, ctl := newBookingModel(t, api, "en")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, controller.PhaseFormEntry, model.(BookingModel).State().Phase)
	assert.Contains(t, plain(model.View()), "Book Sunset Lagoon Paddle")

	model = press(t, model,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ana")},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ana@example.com")},
		tea.KeyMsg{Type: tea.KeyTab},
		runeKey('+'), runeKey('+'), runeKey('+'), runeKey('+'), runeKey('-'),
	)
	form := ctl.Snapshot().Form
	assert.Equal(t, "Ana", form.GuestName)
	assert.Equal(t, "ana@example.com", form.GuestEmail)
	// Four seats remain, so the fourth "+" is clamped away.
	assert.Equal(t, 3, form.NumPeople)
	assert.Contains(t, plain(model.View()), "R$ 150,00")

	model = run(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	bookingModel := model.(BookingModel)
	require.NoError(t, bookingModel.Err())
	require.Equal(t, controller.PhaseAwaitingPayment, bookingModel.State().Phase)

	view := plain(model.View())
	assert.Contains(t, view, "Booking Reserved!")
	assert.Contains(t, view, "00020126580014BR.GOV.BCB.PIX")
	assert.Contains(t, view, "Waiting for payment confirmation...")

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, controller.PhaseBrowsing, model.(BookingModel).State().Phase)
	assert.Nil(t, ctl.PollTask())
	api.AssertExpectations(t)
}

func TestBookingModelValidation(t *testing.T) {
	api := new(mocks.ToursAPI)
	api.On("ListTours", mock.Anything, bookingDate).Return([]entity.TourInstance{sunsetTour()}, nil)

	model, _ := newBookingModel(t, api, "en")
	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = run(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	bookingModel := model.(BookingModel)
	var verr *controller.ValidationError
	require.ErrorAs(t, bookingModel.Err(), &verr)
	assert.Equal(t, controller.PhaseFormEntry, bookingModel.State().Phase)
	assert.Contains(t, plain(model.View()), "Please provide name and email.")
	api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingModelQuit(t *testing.T) {
	api := new(mocks.ToursAPI)
	api.On("ListTours", mock.Anything, bookingDate).Return([]entity.TourInstance{}, nil)

	model, ctl := newBookingModel(t, api, "en")
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.ErrorIs(t, ctl.LoadDate(context.Background(), bookingDate), controller.ErrClosed)
}
