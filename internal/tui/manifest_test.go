package tui

import (
	"strings"
	"testing"
	"time"

	"tour-booking/internal/module/manifest/generator"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderCalendar(t *testing.T) {
	days := generator.MonthSummary(2024, time.February)
	out := plain(RenderCalendar(DefaultTheme, 2024, time.February, days, 0))

	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, weekdayHeader)
	// 2024-02-01 is a Thursday.
	assert.Contains(t, out, strings.Repeat(" ", 12)+" 1  2  3\n")
	assert.Contains(t, out, "25 26 27 28 29\n")
	assert.NotContains(t, out, "30")
	for _, level := range []string{"empty", "low", "medium", "high", "cancelled"} {
		assert.Contains(t, out, level)
	}
}

func TestRenderDayTours(t *testing.T) {
	day := generator.NewDay("2025-01-20")
	out := plain(RenderDayTours(DefaultTheme, day, 0))

	assert.Contains(t, out, "2025-01-20")
	for _, tpl := range generator.Templates {
		assert.Contains(t, out, tpl.Name)
		assert.Contains(t, out, tpl.Time)
	}

	day.CancelDay()
	out = plain(RenderDayTours(DefaultTheme, day, -1))
	assert.Equal(t, len(day.Tours), strings.Count(out, generator.StatusCancelled))
}

func TestRenderPassengers(t *testing.T) {
	tour := generator.TourDay{
		Template: generator.Templates[0],
		Status:   generator.StatusAvailable,
		Booked:   3,
		Bookings: []generator.Booking{
			{GuestName: "Alice Smith", PartySize: 2, Phone: "+55 84 9999-1234", PaymentStatus: generator.PaymentPaid, Notes: "Bringing a dog"},
			{GuestName: "Bob Jones", PartySize: 1, Phone: "+55 84 9999-4321", PaymentStatus: generator.PaymentPending},
		},
	}
	out := plain(RenderPassengers(DefaultTheme, tour))

	assert.Contains(t, out, "09:00 Morning Mangrove")
	assert.Contains(t, out, "Alice Smith")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "Bringing a dog")
	assert.Contains(t, out, generator.PaymentPending)
	assert.Contains(t, out, "3/15 seats")

	tour.Bookings = nil
	tour.Status = generator.StatusCancelled
	out = plain(RenderPassengers(DefaultTheme, tour))
	assert.Contains(t, out, "cancelled")
	assert.Contains(t, out, "no passengers")
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, DefaultTheme.HeatColors[2], DefaultTheme.HeatColor(generator.HeatMedium))
	assert.Equal(t, DefaultTheme.FaintText, DefaultTheme.HeatColor(generator.Heat(9)))
}
