package tui

import (
	"fmt"
	"strings"
	"time"

	"tour-booking/internal/module/manifest/generator"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// RenderCalendar draws one month as a heat map. selected is the day of
// the month to highlight, or 0.
func RenderCalendar(theme Theme, year int, month time.Month, days []generator.DaySummary, selected int) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	var b strings.Builder
	b.WriteString(theme.header().Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")
	b.WriteString(theme.faint().Render(weekdayHeader))
	b.WriteString("\n")

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))
	for i, day := range days {
		dayOfMonth := i + 1
		heat := day.Heat()
		style := lipgloss.NewStyle().Foreground(theme.HeatColor(heat))
		if heat == generator.HeatCancelled {
			style = style.Strikethrough(true)
		}
		if dayOfMonth == selected {
			style = theme.selected()
		}
		b.WriteString(style.Render(fmt.Sprintf("%2d", dayOfMonth)))

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else if i < len(days)-1 {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLegend(theme))
	return b.String()
}

func renderLegend(theme Theme) string {
	levels := []generator.Heat{
		generator.HeatEmpty,
		generator.HeatLow,
		generator.HeatMedium,
		generator.HeatHigh,
		generator.HeatCancelled,
	}
	parts := make([]string, 0, len(levels))
	for _, h := range levels {
		swatch := lipgloss.NewStyle().Foreground(theme.HeatColor(h)).Render("■")
		parts = append(parts, swatch+" "+h.String())
	}
	return strings.Join(parts, "  ")
}

// RenderDaySummary is the one-line caption under the calendar.
func RenderDaySummary(theme Theme, day generator.DaySummary) string {
	return fmt.Sprintf("%s  %s  %d/%d booked (%.0f%%)",
		theme.header().Render(day.Date),
		day.Heat(),
		day.Bookings, day.Capacity, day.Percent*100)
}

// RenderDayTours lists the tours of one day. cursor is the highlighted
// row, or -1.
func RenderDayTours(theme Theme, day *generator.Day, cursor int) string {
	var b strings.Builder
	b.WriteString(theme.header().Render(day.Date))
	b.WriteString("\n\n")

	for i, t := range day.Tours {
		line := fmt.Sprintf("%s  %-22s %3d/%-3d %s", t.Time, t.Name, t.Booked, t.Capacity, t.Status)
		if i == cursor {
			line = theme.selected().Render(line)
		} else if t.Status == generator.StatusCancelled {
			line = theme.faint().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPassengers renders the manifest of one tour.
func RenderPassengers(theme Theme, tour generator.TourDay) string {
	var b strings.Builder
	b.WriteString(theme.header().Render(fmt.Sprintf("%s %s", tour.Time, tour.Name)))
	b.WriteString("\n")

	if tour.Status == generator.StatusCancelled {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render("cancelled"))
		b.WriteString("\n")
	}
	if len(tour.Bookings) == 0 {
		b.WriteString(theme.faint().Render("no passengers"))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range tour.Bookings {
		payment := lipgloss.NewStyle().Foreground(theme.PaymentColor(p.PaymentStatus)).Render(p.PaymentStatus)
		fmt.Fprintf(&b, "%-20s x%d  %-18s %s", p.GuestName, p.PartySize, p.Phone, payment)
		if p.Notes != "" {
			b.WriteString("  ")
			b.WriteString(theme.faint().Render(p.Notes))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d/%d seats\n", tour.Booked, tour.Capacity)
	return b.String()
}

func renderHelp(theme Theme, bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(strings.Join(parts, " • "))
}
