package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/i18n"
	"tour-booking/internal/pkg/log"

	"github.com/facebookgo/clock"
	"github.com/go-playground/validator/v10"
	"go.elastic.co/apm"
)

const DefaultPollInterval = 3 * time.Second

// ToursAPI is the booking backend as seen by the controller.
type ToursAPI interface {
	ListTours(ctx context.Context, date string) ([]entity.TourInstance, error)
	CreateBooking(ctx context.Context, req entity.BookingRequest) (entity.CreateBookingResult, error)
	GetBookingStatus(ctx context.Context, uuid string) (entity.BookingStatus, error)
}

type guestForm struct {
	GuestName  string `validate:"required"`
	GuestEmail string `validate:"required,email"`
	NumPeople  int    `validate:"min=1"`
}

// Controller drives one booking at a time through the phases Browsing,
// FormEntry, Submitting, AwaitingPayment and Confirmed. All state lives
// here; views read Snapshot and call the intent methods.
type Controller struct {
	api      ToursAPI
	log      log.Logger
	validate *validator.Validate
	clock    clock.Clock
	interval time.Duration
	tracer   *apm.Tracer
	lang     string
	onChange func(State)

	mu      sync.Mutex
	state   State
	poll    *PollTask
	listSeq uint64
	txn     uint64
	email   string
	closed  bool
}

type Option func(*Controller)

func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithPollInterval(d time.Duration) Option {
	return func(ctl *Controller) { ctl.interval = d }
}

func WithLogger(l log.Logger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

func WithTracer(t *apm.Tracer) Option {
	return func(ctl *Controller) { ctl.tracer = t }
}

func WithLanguage(lang string) Option {
	return func(ctl *Controller) { ctl.lang = lang }
}

func WithValidator(v *validator.Validate) Option {
	return func(ctl *Controller) { ctl.validate = v }
}

// OnChange registers a callback invoked with a fresh snapshot after every
// state change. It runs outside the controller lock.
func OnChange(fn func(State)) Option {
	return func(ctl *Controller) { ctl.onChange = fn }
}

func New(api ToursAPI, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		log:      log.GetLogger(),
		clock:    clock.New(),
		interval: DefaultPollInterval,
		lang:     i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.validate == nil {
		c.validate = validator.New()
	}
	return c
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// LoadDate switches the browsing date and fetches its tours.
func (c *Controller) LoadDate(ctx context.Context, date string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase != PhaseBrowsing {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	c.mu.Unlock()
	return c.fetchTours(ctx, date)
}

// Refresh re-fetches the tours of the current date in any phase.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	date := c.state.Date
	c.mu.Unlock()
	return c.fetchTours(ctx, date)
}

// fetchTours replaces the snapshot wholesale. Responses overtaken by a
// newer fetch are dropped.
func (c *Controller) fetchTours(ctx context.Context, date string) error {
	c.mu.Lock()
	c.listSeq++
	seq := c.listSeq
	c.state.Date = date
	c.state.Loading = true
	c.state.ListError = ""
	c.mu.Unlock()
	c.notify()

	tours, err := c.api.ListTours(ctx, date)

	c.mu.Lock()
	if seq != c.listSeq {
		c.mu.Unlock()
		return nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Tours = nil
		c.state.ListError = i18n.T(c.lang, "errorGeneric")
		c.mu.Unlock()
		c.log.Warn(ctx, "error fetch tours", date, err)
		c.notify()
		return err
	}
	c.state.Tours = tours
	c.mu.Unlock()
	c.notify()
	return nil
}

// SelectTour moves from Browsing to FormEntry for a bookable instance.
func (c *Controller) SelectTour(instanceID int64) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase != PhaseBrowsing {
		c.mu.Unlock()
		return ErrWrongPhase
	}

	var found *entity.TourInstance
	for i := range c.state.Tours {
		if c.state.Tours[i].InstanceID == instanceID {
			t := c.state.Tours[i]
			found = &t
			break
		}
	}
	if found == nil {
		c.mu.Unlock()
		return ErrTourNotFound
	}
	if !found.Bookable() {
		c.mu.Unlock()
		return ErrNotBookable
	}

	c.state.Selected = found
	c.state.Form = Form{NumPeople: 1}
	c.state.Message = ""
	c.state.Phase = PhaseFormEntry
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Controller) SetGuestName(name string) error {
	return c.editForm(func(f *Form) { f.GuestName = name })
}

func (c *Controller) SetGuestEmail(email string) error {
	return c.editForm(func(f *Form) { f.GuestEmail = email })
}

func (c *Controller) SetNotes(notes string) error {
	return c.editForm(func(f *Form) { f.SpecialNotes = notes })
}

// SetNumPeople clamps n into [1, seatsRemaining] and returns the value kept.
func (c *Controller) SetNumPeople(n int) (int, error) {
	var kept int
	err := c.editForm(func(f *Form) {
		f.NumPeople = clampPeople(n, c.state.Selected.SeatsRemaining)
		kept = f.NumPeople
	})
	return kept, err
}

func (c *Controller) editForm(fn func(*Form)) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase != PhaseFormEntry {
		c.mu.Unlock()
		return ErrWrongPhase
	}
	fn(&c.state.Form)
	c.mu.Unlock()
	c.notify()
	return nil
}

func clampPeople(n, seats int) int {
	if n > seats {
		n = seats
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Confirm validates the form and submits the booking. A nil return means
// the controller is now AwaitingPayment and polling has started.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase != PhaseFormEntry {
		c.mu.Unlock()
		return ErrWrongPhase
	}

	sel := c.state.Selected
	form := c.state.Form
	form.GuestName = strings.TrimSpace(form.GuestName)
	form.GuestEmail = strings.TrimSpace(form.GuestEmail)

	if verr := c.validateForm(form, sel.SeatsRemaining); verr != nil {
		c.state.Message = verr.Message
		c.mu.Unlock()
		c.notify()
		return verr
	}

	req := entity.BookingRequest{
		TourInstanceID: sel.InstanceID,
		GuestName:      form.GuestName,
		GuestEmail:     form.GuestEmail,
		NumPeople:      form.NumPeople,
		TotalPrice:     helpers.RoundMoney(float64(form.NumPeople) * sel.PricePerPerson),
		SpecialNotes:   strings.TrimSpace(form.SpecialNotes),
	}

	c.state.Phase = PhaseSubmitting
	c.state.Message = ""
	c.txn++
	txn := c.txn
	c.mu.Unlock()
	c.notify()

	result, err := c.api.CreateBooking(ctx, req)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.txn != txn || c.state.Phase != PhaseSubmitting {
		c.mu.Unlock()
		return ErrCancelled
	}

	if err != nil {
		c.state.Phase = PhaseFormEntry
		c.state.Message = i18n.T(c.lang, "alertError")
		c.mu.Unlock()
		c.log.Error(ctx, "error create booking", err)
		c.notify()
		return err
	}

	if !result.Success || result.Booking == nil {
		msg := result.Message
		if msg == "" {
			msg = i18n.T(c.lang, "alertFailed")
		}
		c.state.Phase = PhaseFormEntry
		c.state.Message = msg
		c.mu.Unlock()
		c.log.Info(ctx, "booking rejected", msg)
		c.notify()
		return &BookingRejected{Message: msg}
	}

	c.state.Booking = result.Booking
	c.state.Payment = result.PaymentInfo
	c.state.Form = Form{}
	c.email = req.GuestEmail
	c.state.Phase = PhaseAwaitingPayment
	c.startPollLocked(result.Booking.UUID)
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Controller) validateForm(form Form, seats int) *ValidationError {
	err := c.validate.Struct(guestForm{
		GuestName:  form.GuestName,
		GuestEmail: form.GuestEmail,
		NumPeople:  form.NumPeople,
	})
	if err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return c.validationError(fieldErrs[0])
		}
		return &ValidationError{Key: "alertFailed", Message: i18n.T(c.lang, "alertFailed")}
	}
	if form.NumPeople > seats {
		return &ValidationError{
			Field:   "NumPeople",
			Key:     "alertPartySize",
			Message: i18n.T(c.lang, "alertPartySize"),
		}
	}
	return nil
}

func (c *Controller) validationError(fe validator.FieldError) *ValidationError {
	key := "alertMissing"
	switch {
	case fe.Field() == "NumPeople":
		key = "alertPartySize"
	case fe.Tag() == "email":
		key = "alertEmail"
	}
	return &ValidationError{Field: fe.Field(), Key: key, Message: i18n.T(c.lang, key)}
}

// Cancel resets to Browsing from any phase, stopping the poll and dropping
// every piece of transaction state. It also closes the success view.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.stopPollLocked()
	c.txn++
	c.email = ""
	c.state.Phase = PhaseBrowsing
	c.state.Selected = nil
	c.state.Form = Form{}
	c.state.Message = ""
	c.state.Booking = nil
	c.state.Payment = nil
	c.state.ConfirmedEmail = ""
	c.mu.Unlock()
	c.notify()
}

// Close tears the controller down. Any running poll is stopped, an
// in-flight submission is abandoned and later intents fail with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopPollLocked()
	c.txn++
	c.state.Phase = PhaseBrowsing
	c.mu.Unlock()
}

// PollTask returns the running poll, or nil.
func (c *Controller) PollTask() *PollTask {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poll
}

func (c *Controller) startPollLocked(uuid string) {
	c.stopPollLocked()
	task := newPollTask(uuid)
	c.poll = task
	ticker := c.clock.Ticker(c.interval)
	go c.runPoll(task, ticker)
}

func (c *Controller) stopPollLocked() {
	if c.poll != nil {
		c.poll.Stop()
		c.poll = nil
	}
}

func (c *Controller) runPoll(task *PollTask, ticker *clock.Ticker) {
	defer close(task.done)
	defer ticker.Stop()

	for {
		select {
		case <-task.ctx.Done():
			return
		case <-ticker.C:
			// both cases may be ready; a stopped task never issues a request
			if task.ctx.Err() != nil {
				return
			}
			if c.pollOnce(task) {
				return
			}
		}
	}
}

// pollOnce runs one tick. Ticks are consumed by a single goroutine, so
// status requests never overlap. It reports whether polling is over.
func (c *Controller) pollOnce(task *PollTask) bool {
	c.mu.Lock()
	owned := c.poll == task && !task.Stopped()
	c.mu.Unlock()
	if !owned {
		return true
	}

	ctx := task.ctx
	if c.tracer != nil {
		tx := c.tracer.StartTransaction("poll booking status", "poller")
		defer tx.End()
		ctx = apm.ContextWithTransaction(ctx, tx)
	}

	status, err := c.api.GetBookingStatus(ctx, task.uuid)
	if err != nil {
		// transient; the next tick retries
		c.log.Debug(ctx, "error poll booking status", task.uuid, err)
		return task.Stopped()
	}

	c.mu.Lock()
	if c.poll != task || c.state.Phase != PhaseAwaitingPayment {
		c.mu.Unlock()
		return true
	}

	if status.Status != entity.StatusConfirmed {
		changed := c.state.Booking.Status != status.Status
		c.state.Booking.Status = status.Status
		c.mu.Unlock()
		if changed {
			c.notify()
		}
		return false
	}

	c.stopPollLocked()
	c.state.Phase = PhaseConfirmed
	c.state.Payment = nil
	c.state.Booking.Status = entity.StatusConfirmed
	c.state.ConfirmedEmail = c.email
	date := c.state.Date
	c.mu.Unlock()
	c.notify()

	c.log.Info(context.Background(), fmt.Sprintf("booking %s confirmed", task.uuid))
	_ = c.fetchTours(context.Background(), date)
	return true
}

func (c *Controller) notify() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Snapshot())
}
