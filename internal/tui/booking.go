package tui

import (
	"context"
	"strings"
	"time"

	"tour-booking/internal/module/booking/controller"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const dateLayout = "2006-01-02"

const (
	fieldName = iota
	fieldEmail
	fieldPeople
	fieldNotes
	fieldCount
)

// Notifier turns controller change callbacks into bubbletea messages.
// Bursts of changes collapse into one message; the model re-reads the
// snapshot anyway.
type Notifier struct {
	changed chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{changed: make(chan struct{}, 1)}
}

// Option registers the notifier on a controller.
func (n *Notifier) Option() controller.Option {
	return controller.OnChange(func(controller.State) {
		select {
		case n.changed <- struct{}{}:
		default:
		}
	})
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n.changed
		return stateChangedMsg{}
	}
}

type stateChangedMsg struct{}

type intentDoneMsg struct {
	err error
}

// BookingModel is the guest booking flow. It holds no booking state of
// its own besides the text being typed; everything else is read from the
// controller snapshot.
type BookingModel struct {
	ctx      context.Context
	ctl      *controller.Controller
	notifier *Notifier
	theme    Theme
	keys     KeyMap
	lang     string

	date    string
	state   controller.State
	cursor  int
	focus   int
	inputs  [3]textinput.Model
	lastErr error
}

func NewBookingModel(ctx context.Context, ctl *controller.Controller, notifier *Notifier, date, lang string) BookingModel {
	model := BookingModel{
		ctx:      ctx,
		ctl:      ctl,
		notifier: notifier,
		theme:    DefaultTheme,
		keys:     DefaultKeyMap,
		lang:     lang,
		date:     date,
		state:    ctl.Snapshot(),
	}
	for i := range model.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 120
		model.inputs[i] = input
	}
	return model
}

func (model BookingModel) Init() tea.Cmd {
	date := model.date
	load := model.intent(func(ctx context.Context) error {
		return model.ctl.LoadDate(ctx, date)
	})
	if model.notifier == nil {
		return load
	}
	return tea.Batch(load, model.notifier.wait())
}

// State is the last snapshot the model rendered from.
func (model BookingModel) State() controller.State {
	return model.state
}

// Err is the result of the last asynchronous intent.
func (model BookingModel) Err() error {
	return model.lastErr
}

func (model BookingModel) intent(fn func(ctx context.Context) error) tea.Cmd {
	ctx := model.ctx
	return func() tea.Msg {
		return intentDoneMsg{err: fn(ctx)}
	}
}

func (model BookingModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case stateChangedMsg:
		model.sync()
		if model.notifier == nil {
			return model, nil
		}
		return model, model.notifier.wait()
	case intentDoneMsg:
		model.lastErr = message.err
		model.sync()
		return model, nil
	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			model.ctl.Close()
			return model, tea.Quit
		}
		return model.handleKey(message)
	}
	return model, nil
}

func (model *BookingModel) sync() {
	previous := model.state.Phase
	model.state = model.ctl.Snapshot()
	if model.state.Phase == controller.PhaseFormEntry && previous != controller.PhaseFormEntry && previous != controller.PhaseSubmitting {
		model.resetInputs()
	}
	if model.cursor >= len(model.state.Tours) {
		model.cursor = 0
	}
}

func (model *BookingModel) resetInputs() {
	for i := range model.inputs {
		model.inputs[i].SetValue("")
		model.inputs[i].Blur()
	}
	model.focus = fieldName
	model.inputs[0].Focus()
}

func (model BookingModel) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.state.Phase {
	case controller.PhaseBrowsing:
		return model.handleBrowsingKey(message)
	case controller.PhaseFormEntry:
		return model.handleFormKey(message)
	case controller.PhaseSubmitting, controller.PhaseAwaitingPayment, controller.PhaseConfirmed:
		if key.Matches(message, model.keys.Back) || key.Matches(message, model.keys.Select) {
			model.ctl.Cancel()
			model.sync()
		}
	}
	return model, nil
}

func (model BookingModel) handleBrowsingKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.state.Tours)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Left):
		return model, model.shiftDate(-1)
	case key.Matches(message, model.keys.Right):
		return model, model.shiftDate(1)
	case key.Matches(message, model.keys.Reload):
		return model, model.intent(model.ctl.Refresh)
	case key.Matches(message, model.keys.Select):
		if model.cursor < len(model.state.Tours) {
			model.lastErr = model.ctl.SelectTour(model.state.Tours[model.cursor].InstanceID)
			model.sync()
		}
	}
	return model, nil
}

func (model BookingModel) shiftDate(days int) tea.Cmd {
	current, err := time.Parse(dateLayout, model.state.Date)
	if err != nil {
		return nil
	}
	next := current.AddDate(0, 0, days).Format(dateLayout)
	return model.intent(func(ctx context.Context) error {
		return model.ctl.LoadDate(ctx, next)
	})
}

func (model BookingModel) handleFormKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.ctl.Cancel()
		model.sync()
		return model, nil
	case key.Matches(message, model.keys.NextField):
		model.setFocus((model.focus + 1) % fieldCount)
		return model, nil
	case key.Matches(message, model.keys.Select):
		model.sync()
		return model, model.intent(model.ctl.Confirm)
	}

	if model.focus == fieldPeople {
		switch {
		case key.Matches(message, model.keys.More):
			model.lastErr = model.setPeople(model.state.Form.NumPeople + 1)
		case key.Matches(message, model.keys.Fewer):
			model.lastErr = model.setPeople(model.state.Form.NumPeople - 1)
		}
		model.sync()
		return model, nil
	}

	index := model.inputIndex()
	var cmd tea.Cmd
	model.inputs[index], cmd = model.inputs[index].Update(message)
	value := model.inputs[index].Value()
	switch model.focus {
	case fieldName:
		model.lastErr = model.ctl.SetGuestName(value)
	case fieldEmail:
		model.lastErr = model.ctl.SetGuestEmail(value)
	case fieldNotes:
		model.lastErr = model.ctl.SetNotes(value)
	}
	model.sync()
	return model, cmd
}

func (model *BookingModel) setPeople(n int) error {
	_, err := model.ctl.SetNumPeople(n)
	return err
}

func (model *BookingModel) setFocus(field int) {
	for i := range model.inputs {
		model.inputs[i].Blur()
	}
	model.focus = field
	if field != fieldPeople {
		model.inputs[model.inputIndex()].Focus()
	}
}

// inputIndex maps the focused field onto the text inputs, which skip
// the people counter.
func (model BookingModel) inputIndex() int {
	if model.focus > fieldPeople {
		return model.focus - 1
	}
	return model.focus
}

func (model BookingModel) View() string {
	var b strings.Builder
	switch model.state.Phase {
	case controller.PhaseBrowsing:
		b.WriteString(RenderTourList(model.theme, model.lang, model.state, model.cursor))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.Up, model.keys.Down, model.keys.Left, model.keys.Right, model.keys.Select, model.keys.Quit))
	case controller.PhaseFormEntry, controller.PhaseSubmitting:
		b.WriteString(RenderForm(model.theme, model.lang, model.state, FormFields{
			Name:  model.inputs[0].View(),
			Email: model.inputs[1].View(),
			Notes: model.inputs[2].View(),
			Focus: model.focus,
		}))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.NextField, model.keys.More, model.keys.Fewer, model.keys.Select, model.keys.Back))
	case controller.PhaseAwaitingPayment:
		b.WriteString(RenderPayment(model.theme, model.lang, model.state))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.Back))
	case controller.PhaseConfirmed:
		b.WriteString(RenderSuccess(model.theme, model.lang, model.state))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.Select))
	}
	b.WriteString("\n")
	return b.String()
}
