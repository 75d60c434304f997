package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the dashboard and booking views.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Select key.Binding
	Back   key.Binding

	NextField key.Binding
	More      key.Binding // One more person.
	Fewer     key.Binding // One person less.

	PrevMonth key.Binding
	NextMonth key.Binding

	ToggleTour key.Binding
	CancelDay  key.Binding
	Reload     key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous day"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next day"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more people"),
	),
	Fewer: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer people"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next month"),
	),
	ToggleTour: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle tour"),
	),
	CancelDay: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel day"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
