package apiclient

import (
	"strings"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/module/booking/models/response"
)

const defaultDuration = "2h"

var tourTypeAliases = map[string]entity.TourType{
	"sunrise":  entity.TourSunrise,
	"morning":  entity.TourSunrise,
	"sunset":   entity.TourSunset,
	"evening":  entity.TourSunset,
	"full_day": entity.TourFullDay,
	"all_day":  entity.TourFullDay,
	"allday":   entity.TourFullDay,
	"all-day":  entity.TourFullDay,
}

// NormalizeTourType folds legacy aliases into the canonical tag. Unknown
// tags pass through lower-cased.
func NormalizeTourType(raw string) entity.TourType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := tourTypeAliases[key]; ok {
		return t
	}
	return entity.TourType(key)
}

// NormalizeTour is the only place the wire shape of a tour is mapped.
func NormalizeTour(t response.Tour) entity.TourInstance {
	seats := t.SeatsAvailable
	if seats < 0 {
		seats = 0
	}
	if t.Capacity > 0 && seats > t.Capacity {
		seats = t.Capacity
	}
	duration := t.Duration
	if duration == "" {
		duration = defaultDuration
	}

	return entity.TourInstance{
		InstanceID:     t.TourInstanceID,
		TourType:       NormalizeTourType(t.TourType),
		Date:           t.TourDate,
		DisplayName:    t.DisplayName,
		Description:    t.Description,
		PricePerPerson: t.Price,
		Capacity:       t.Capacity,
		SeatsRemaining: seats,
		IsBookable:     t.IsBookable && seats > 0,
		DurationLabel:  duration,
		ImageURL:       t.ImageURL,
	}
}

func normalizeBooking(b response.Booking) *entity.Booking {
	return &entity.Booking{
		UUID:           b.UUID,
		Status:         b.Status,
		TourInstanceID: b.TourInstanceID,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		NumPeople:      b.NumPeople,
		TotalPrice:     b.TotalPrice,
	}
}

func normalizePayment(p response.PaymentInfo) *entity.PaymentInfo {
	return &entity.PaymentInfo{
		QRCodeImageURL:   p.QRCodeImage,
		PixCopyPasteCode: p.QRCode,
		Amount:           p.Amount,
	}
}
