package tui

import (
	"strings"
	"time"

	"tour-booking/internal/module/manifest/generator"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type DashboardMode int

const (
	ModeCalendar DashboardMode = iota
	ModeDay
	ModePassengers
)

// DashboardModel is the operator view: a month heat map, the tours of a
// day and the passengers of a tour. Admin actions edit per-day copies
// kept for the lifetime of the model.
type DashboardModel struct {
	theme Theme
	keys  KeyMap

	current time.Time
	days    []generator.DaySummary
	edits   map[string]*generator.Day

	mode   DashboardMode
	day    *generator.Day
	cursor int
}

// NewDashboard opens the calendar on the given date.
func NewDashboard(date time.Time) DashboardModel {
	model := DashboardModel{
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
		current: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		edits:   make(map[string]*generator.Day),
	}
	model.loadMonth()
	return model
}

func (model DashboardModel) Init() tea.Cmd {
	return nil
}

func (model DashboardModel) Mode() DashboardMode {
	return model.mode
}

func (model DashboardModel) SelectedDate() string {
	return model.current.Format(generator.DateLayout)
}

// Day returns the day opened in the day or passenger views, or nil.
func (model DashboardModel) Day() *generator.Day {
	return model.day
}

func (model DashboardModel) Summaries() []generator.DaySummary {
	return model.days
}

func (model DashboardModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := message.(tea.KeyMsg)
	if !ok {
		return model, nil
	}
	if key.Matches(keyMsg, model.keys.Quit) {
		return model, tea.Quit
	}

	switch model.mode {
	case ModeCalendar:
		model.updateCalendar(keyMsg)
	case ModeDay:
		model.updateDay(keyMsg)
	case ModePassengers:
		if key.Matches(keyMsg, model.keys.Back) {
			model.mode = ModeDay
		}
	}
	return model, nil
}

func (model *DashboardModel) updateCalendar(keyMsg tea.KeyMsg) {
	switch {
	case key.Matches(keyMsg, model.keys.Left):
		model.moveTo(model.current.AddDate(0, 0, -1))
	case key.Matches(keyMsg, model.keys.Right):
		model.moveTo(model.current.AddDate(0, 0, 1))
	case key.Matches(keyMsg, model.keys.Up):
		model.moveTo(model.current.AddDate(0, 0, -7))
	case key.Matches(keyMsg, model.keys.Down):
		model.moveTo(model.current.AddDate(0, 0, 7))
	case key.Matches(keyMsg, model.keys.PrevMonth):
		model.moveTo(time.Date(model.current.Year(), model.current.Month()-1, 1, 0, 0, 0, 0, time.UTC))
	case key.Matches(keyMsg, model.keys.NextMonth):
		model.moveTo(time.Date(model.current.Year(), model.current.Month()+1, 1, 0, 0, 0, 0, time.UTC))
	case key.Matches(keyMsg, model.keys.Select):
		model.day = model.openDay(model.SelectedDate())
		model.cursor = 0
		model.mode = ModeDay
	}
}

func (model *DashboardModel) updateDay(keyMsg tea.KeyMsg) {
	switch {
	case key.Matches(keyMsg, model.keys.Back):
		model.mode = ModeCalendar
		model.day = nil
	case key.Matches(keyMsg, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(keyMsg, model.keys.Down):
		if model.cursor < len(model.day.Tours)-1 {
			model.cursor++
		}
	case key.Matches(keyMsg, model.keys.ToggleTour):
		model.day.ToggleTour(model.day.Tours[model.cursor].UniqueID)
		model.refreshSummary()
	case key.Matches(keyMsg, model.keys.CancelDay):
		model.day.CancelDay()
		model.refreshSummary()
	case key.Matches(keyMsg, model.keys.Select):
		model.mode = ModePassengers
	}
}

func (model *DashboardModel) moveTo(date time.Time) {
	sameMonth := date.Year() == model.current.Year() && date.Month() == model.current.Month()
	model.current = date
	if !sameMonth {
		model.loadMonth()
	}
}

func (model *DashboardModel) loadMonth() {
	model.days = generator.MonthSummary(model.current.Year(), model.current.Month())
	for i, summary := range model.days {
		if edited, ok := model.edits[summary.Date]; ok {
			model.days[i] = generator.Summarize(summary.Date, edited.Tours)
		}
	}
}

func (model *DashboardModel) openDay(date string) *generator.Day {
	if day, ok := model.edits[date]; ok {
		return day
	}
	day := generator.NewDay(date)
	model.edits[date] = day
	return day
}

func (model *DashboardModel) refreshSummary() {
	index := model.current.Day() - 1
	if index < len(model.days) {
		model.days[index] = generator.Summarize(model.day.Date, model.day.Tours)
	}
}

func (model DashboardModel) View() string {
	var b strings.Builder
	switch model.mode {
	case ModeCalendar:
		b.WriteString(RenderCalendar(model.theme, model.current.Year(), model.current.Month(), model.days, model.current.Day()))
		b.WriteString("\n\n")
		b.WriteString(RenderDaySummary(model.theme, model.days[model.current.Day()-1]))
		b.WriteString("\n\n")
		b.WriteString(renderHelp(model.theme, model.keys.Left, model.keys.Right, model.keys.PrevMonth, model.keys.NextMonth, model.keys.Select, model.keys.Quit))
	case ModeDay:
		b.WriteString(RenderDayTours(model.theme, model.day, model.cursor))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.Select, model.keys.ToggleTour, model.keys.CancelDay, model.keys.Back))
	case ModePassengers:
		b.WriteString(RenderPassengers(model.theme, model.day.Tours[model.cursor]))
		b.WriteString("\n")
		b.WriteString(renderHelp(model.theme, model.keys.Back))
	}
	b.WriteString("\n")
	return b.String()
}
