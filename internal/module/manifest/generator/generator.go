// Package generator produces reproducible demo manifests for the admin
// dashboard. Everything here is a pure function of the date.
package generator

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

const (
	StatusAvailable = "available"
	StatusSoldOut   = "sold_out"
	StatusCancelled = "cancelled"

	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

type Template struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time"`
	Capacity int    `json:"capacity"`
}

var Templates = []Template{
	{ID: 1, Name: "Morning Mangrove", Time: "09:00", Capacity: 15},
	{ID: 2, Name: "Sunset Adventure", Time: "16:00", Capacity: 20},
	{ID: 3, Name: "Full Moon Experience", Time: "20:00", Capacity: 12},
}

var guestNames = []string{
	"Alice Smith",
	"Bob Jones",
	"Charlie Day",
	"Diana Prince",
	"Evan Wright",
	"Fiona Gallagher",
	"George Michael",
	"Hannah Montana",
	"Ian Malcolm",
	"Julia Stiles",
	"Kevin Hart",
	"Laura Croft",
}

var guestNotes = []string{
	"Vegetarian meal request",
	"Needs XL lifejacket",
	"",
	"",
	"Bringing a dog",
	"Celebrating anniversary",
	"",
	"Elderly passenger - needs assistance",
	"",
	"",
	"Allergic to peanuts",
}

type Booking struct {
	ID            string `json:"id"`
	GuestName     string `json:"guest_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PartySize     int    `json:"party_size"`
	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
}

// Manifest is the raw outcome of one template on one day.
type Manifest struct {
	Cancelled   bool
	BookedCount int
	Bookings    []Booking
}

type TourDay struct {
	Template
	UniqueID string    `json:"unique_id"`
	Status   string    `json:"status"`
	Booked   int       `json:"booked"`
	Bookings []Booking `json:"bookings"`
}

// GenerateBookingsForTour draws the manifest of one tour. Every draw
// consumes the next seed, so the order of draws is part of the output.
func GenerateBookingsForTour(date string, capacity, seed int) Manifest {
	cancelled := SeededRandom(seed) > 0.95
	seed++

	density := float64(seed%10) / 10
	if density == 0 {
		density = 0.5
	}

	groupCount := 0
	if !cancelled {
		groupCount = int(math.Floor(float64(capacity/2) * density))
	}

	out := Manifest{Cancelled: cancelled, Bookings: []Booking{}}
	for i := 0; i < groupCount; i++ {
		partySize := SeededInt(1, 4, seed)
		seed++
		if out.BookedCount+partySize > capacity {
			break
		}

		nameIdx := SeededInt(0, len(guestNames)-1, seed)
		seed++
		note := SeededItem(guestNotes, seed)
		seed++
		paid := SeededRandom(seed) > 0.3
		seed++
		phone := SeededInt(1000, 9999, seed)
		seed++

		name := guestNames[nameIdx]
		if i > len(guestNames) {
			name = fmt.Sprintf("%s %d", name, i)
		}
		payment := PaymentPending
		if paid {
			payment = PaymentPaid
		}

		out.Bookings = append(out.Bookings, Booking{
			ID:            fmt.Sprintf("b-%s-%d", date, i),
			GuestName:     name,
			Email:         fmt.Sprintf("guest%d@example.com", i),
			Phone:         fmt.Sprintf("+55 84 9999-%d", phone),
			PartySize:     partySize,
			PaymentStatus: payment,
			Notes:         note,
		})
		out.BookedCount += partySize
	}
	return out
}

// DayDetails returns the three tours of the given calendar day. Only the
// year, month and day of date are used.
func DayDetails(date time.Time) []TourDay {
	return DayDetailsFor(date.Format(DateLayout))
}

// DayDetailsFor is DayDetails for an already formatted yyyy-MM-dd date.
func DayDetailsFor(date string) []TourDay {
	master := DateSeed(date)

	tours := make([]TourDay, 0, len(Templates))
	for _, tpl := range Templates {
		m := GenerateBookingsForTour(date, tpl.Capacity, master+tpl.ID*100)

		status := StatusAvailable
		switch {
		case m.Cancelled:
			status = StatusCancelled
		case m.BookedCount >= tpl.Capacity:
			status = StatusSoldOut
		}

		tours = append(tours, TourDay{
			Template: tpl,
			UniqueID: fmt.Sprintf("%s-%d", date, tpl.ID),
			Status:   status,
			Booked:   m.BookedCount,
			Bookings: m.Bookings,
		})
	}
	return tours
}
