package usecases

import (
	"fmt"
	"strconv"
	"time"

	"tour-booking/internal/module/booking/models/entity"
)

const dateLayout = "2006-01-02"

type tourOffer struct {
	Index       int64
	Type        entity.TourType
	DisplayName string
	Description string
	Duration    string
	ImageURL    string
	Price       float64
	Capacity    int
}

var catalog = []tourOffer{
	{
		Index:       1,
		Type:        entity.TourSunrise,
		DisplayName: "Daybreak Dolphin Bay Encounter",
		Description: "A gentle morning paddle to see dolphins at sunrise.",
		Duration:    "2h",
		ImageURL:    "img/Vibe_Beach.jpg",
		Price:       50,
		Capacity:    10,
	},
	{
		Index:       2,
		Type:        entity.TourFullDay,
		DisplayName: "Coastal Exploration",
		Description: "Explore the coastline, beaches, and reefs throughout the day.",
		Duration:    "6h",
		ImageURL:    "img/Vibe_Forest.jpg",
		Price:       100,
		Capacity:    10,
	},
	{
		Index:       3,
		Type:        entity.TourSunset,
		DisplayName: "Sunset Lagoon Paddle",
		Description: "End your day with a calm sunset paddle through the lagoon.",
		Duration:    "2h",
		ImageURL:    "img/Vibe_Beach.jpg",
		Price:       50,
		Capacity:    10,
	},
}

// instanceID packs date and catalog index: 2025-01-20 sunset is 202501203.
func instanceID(date time.Time, offer tourOffer) int64 {
	ymd, _ := strconv.ParseInt(date.Format("20060102"), 10, 64)
	return ymd*10 + offer.Index
}

func parseInstanceID(id int64) (string, tourOffer, error) {
	if id <= 0 {
		return "", tourOffer{}, fmt.Errorf("invalid tour instance id %d", id)
	}
	idx := id % 10
	date, err := time.Parse("20060102", strconv.FormatInt(id/10, 10))
	if err != nil {
		return "", tourOffer{}, fmt.Errorf("invalid tour instance id %d: %w", id, err)
	}
	for _, offer := range catalog {
		if offer.Index == idx {
			return date.Format(dateLayout), offer, nil
		}
	}
	return "", tourOffer{}, fmt.Errorf("invalid tour instance id %d", id)
}

// blocked applies the same-day rule: the full-day tour and the short
// tours exclude each other.
func blocked(t entity.TourType, reserved map[string]int) bool {
	if t == entity.TourFullDay {
		return reserved[string(entity.TourSunrise)] > 0 || reserved[string(entity.TourSunset)] > 0
	}
	return reserved[string(entity.TourFullDay)] > 0
}
