package controller

import (
	"tour-booking/internal/module/booking/models/entity"
)

type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseFormEntry
	PhaseSubmitting
	PhaseAwaitingPayment
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseFormEntry:
		return "form_entry"
	case PhaseSubmitting:
		return "submitting"
	case PhaseAwaitingPayment:
		return "awaiting_payment"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type Form struct {
	GuestName    string
	GuestEmail   string
	NumPeople    int
	SpecialNotes string
}

// State is what views render. Snapshot hands out copies, so views never
// share memory with the controller.
type State struct {
	Phase     Phase
	Date      string
	Tours     []entity.TourInstance
	Loading   bool
	ListError string

	Selected *entity.TourInstance
	Form     Form
	// Message is the user-facing validation or rejection text of the form.
	Message string

	Booking        *entity.Booking
	Payment        *entity.PaymentInfo
	ConfirmedEmail string
}

// Total is numPeople * pricePerPerson, unrounded.
func (s State) Total() float64 {
	if s.Selected == nil {
		return 0
	}
	return float64(s.Form.NumPeople) * s.Selected.PricePerPerson
}

// InputEnabled reports whether form fields accept edits.
func (s State) InputEnabled() bool {
	return s.Phase == PhaseFormEntry
}

func (s State) clone() State {
	out := s
	if s.Tours != nil {
		out.Tours = append([]entity.TourInstance(nil), s.Tours...)
	}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	if s.Booking != nil {
		b := *s.Booking
		out.Booking = &b
	}
	if s.Payment != nil {
		p := *s.Payment
		out.Payment = &p
	}
	return out
}
