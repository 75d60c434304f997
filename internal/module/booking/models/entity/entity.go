package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type TourType string

const (
	TourSunrise TourType = "sunrise"
	TourSunset  TourType = "sunset"
	TourFullDay TourType = "full_day"
)

const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
	StatusExpired        = "expired"
)

// TourInstance is a read-only snapshot of one bookable tour on one date.
type TourInstance struct {
	InstanceID     int64
	TourType       TourType
	Date           string
	DisplayName    string
	Description    string
	PricePerPerson float64
	Capacity       int
	SeatsRemaining int
	IsBookable     bool
	DurationLabel  string
	ImageURL       string
}

// Bookable reports whether the instance may be selected at all.
func (t TourInstance) Bookable() bool {
	return t.IsBookable && t.SeatsRemaining > 0
}

type BookingRequest struct {
	TourInstanceID int64
	GuestName      string
	GuestEmail     string
	NumPeople      int
	TotalPrice     float64
	SpecialNotes   string
}

type Booking struct {
	UUID           string
	Status         string
	TourInstanceID int64
	GuestName      string
	GuestEmail     string
	NumPeople      int
	TotalPrice     float64
}

type PaymentInfo struct {
	QRCodeImageURL   string
	PixCopyPasteCode string
	Amount           float64
}

type CreateBookingResult struct {
	Success     bool
	Booking     *Booking
	PaymentInfo *PaymentInfo
	Message     string
}

type BookingStatus struct {
	Status string
}

// BookingRecord is the sandbox backend's stored booking.
type BookingRecord struct {
	UUID           uuid.UUID    `db:"uuid"`
	TourInstanceID int64        `db:"tour_instance_id"`
	TourDate       string       `db:"tour_date"`
	TourType       string       `db:"tour_type"`
	GuestName      string       `db:"guest_name"`
	GuestEmail     string       `db:"guest_email"`
	NumPeople      int          `db:"num_people"`
	TotalPrice     float64      `db:"total_price"`
	SpecialNotes   string       `db:"special_notes"`
	Status         string       `db:"status"`
	PixCode        string       `db:"pix_code"`
	TaskID         string       `db:"task_id"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      sql.NullTime `db:"updated_at"`
}
