package tui

import (
	"tour-booking/internal/module/manifest/generator"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette of the terminal views. Colors are ANSI
// 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	ErrorText   lipgloss.Color
	SuccessText lipgloss.Color

	// Indexed by generator.Heat: empty, low, medium, high, cancelled.
	HeatColors [5]lipgloss.Color

	PaymentPaid    lipgloss.Color
	PaymentPending lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("24"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("39"),
	BorderColor:      lipgloss.Color("238"),
	HelpText:         lipgloss.Color("241"),

	ErrorText:   lipgloss.Color("196"),
	SuccessText: lipgloss.Color("42"),

	HeatColors: [5]lipgloss.Color{
		lipgloss.Color("236"),
		lipgloss.Color("28"),
		lipgloss.Color("178"),
		lipgloss.Color("160"),
		lipgloss.Color("240"),
	},

	PaymentPaid:    lipgloss.Color("42"),
	PaymentPending: lipgloss.Color("214"),
}

// HeatColor returns the calendar cell color of a heat level. Unknown
// levels use FaintText.
func (theme Theme) HeatColor(heat generator.Heat) lipgloss.Color {
	if heat < 0 || int(heat) >= len(theme.HeatColors) {
		return theme.FaintText
	}
	return theme.HeatColors[heat]
}

func (theme Theme) PaymentColor(status string) lipgloss.Color {
	if status == generator.PaymentPaid {
		return theme.PaymentPaid
	}
	return theme.PaymentPending
}

func (theme Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
}

func (theme Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.FaintText)
}

func (theme Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
}

func (theme Theme) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)
}
