package request

type CreateBooking struct {
	TourID       int64   `json:"tour_id" validate:"required"`
	GuestName    string  `json:"guest_name" validate:"required"`
	GuestEmail   string  `json:"guest_email" validate:"required,email"`
	NumPeople    int     `json:"num_people" validate:"required,min=1"`
	TotalPrice   float64 `json:"total_price" validate:"gte=0"`
	SpecialNotes string  `json:"special_notes,omitempty"`
}

type ConfirmPayment struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

type PaymentReceived struct {
	BookingUUID string  `json:"booking_uuid" validate:"required,uuid"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

type PaymentExpiration struct {
	BookingUUID string `json:"booking_uuid" validate:"required,uuid"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type BookingEvent struct {
	BookingUUID    string  `json:"booking_uuid"`
	TourInstanceID int64   `json:"tour_instance_id"`
	TourDate       string  `json:"tour_date"`
	NumPeople      int     `json:"num_people"`
	TotalPrice     float64 `json:"total_price"`
	GuestEmail     string  `json:"guest_email"`
	Status         string  `json:"status"`
	OccurredAt     string  `json:"occurred_at"`
}
