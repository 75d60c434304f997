package response

// Tour is the wire shape of GET /api/v1/tours/available.
type Tour struct {
	TourInstanceID int64   `json:"tour_instance_id"`
	TourType       string  `json:"tour_type"`
	TourDate       string  `json:"tour_date"`
	DisplayName    string  `json:"display_name"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
	IsBookable     bool    `json:"is_bookable"`
	Capacity       int     `json:"capacity"`
	Duration       string  `json:"duration,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
}

type Booking struct {
	UUID           string  `json:"uuid"`
	Status         string  `json:"status"`
	TourInstanceID int64   `json:"tour_instance_id,omitempty"`
	GuestName      string  `json:"guest_name,omitempty"`
	GuestEmail     string  `json:"guest_email,omitempty"`
	NumPeople      int     `json:"num_people,omitempty"`
	TotalPrice     float64 `json:"total_price,omitempty"`
}

type PaymentInfo struct {
	QRCode      string  `json:"qr_code"`
	QRCodeImage string  `json:"qr_code_image"`
	Amount      float64 `json:"amount"`
}

type BookingCreated struct {
	Booking     Booking     `json:"booking"`
	PaymentInfo PaymentInfo `json:"payment_info"`
}

type BookingStatus struct {
	Status string `json:"status"`
}

type Error struct {
	Detail string `json:"detail"`
}
