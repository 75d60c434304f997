package generator

import "time"

type Heat int

const (
	HeatEmpty Heat = iota
	HeatLow
	HeatMedium
	HeatHigh
	HeatCancelled
)

func (h Heat) String() string {
	switch h {
	case HeatEmpty:
		return "empty"
	case HeatLow:
		return "low"
	case HeatMedium:
		return "medium"
	case HeatHigh:
		return "high"
	case HeatCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type DaySummary struct {
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Bookings int     `json:"bookings"`
	Capacity int     `json:"capacity"`
	Percent  float64 `json:"percent"`
}

// Heat classifies the day for the calendar heat map.
func (s DaySummary) Heat() Heat {
	if s.Status == StatusCancelled {
		return HeatCancelled
	}
	if s.Bookings == 0 {
		return HeatEmpty
	}
	return HeatLevel(s.Percent)
}

// HeatLevel maps an occupancy ratio to low (<0.4), medium (<0.8) or high.
func HeatLevel(percent float64) Heat {
	switch {
	case percent < 0.4:
		return HeatLow
	case percent < 0.8:
		return HeatMedium
	default:
		return HeatHigh
	}
}

// Summarize folds the tours of one day. A day is cancelled only when all
// of its tours are.
func Summarize(date string, tours []TourDay) DaySummary {
	s := DaySummary{Date: date, Status: StatusAvailable}
	allCancelled := len(tours) > 0
	for _, t := range tours {
		s.Capacity += t.Capacity
		s.Bookings += t.Booked
		if t.Status != StatusCancelled {
			allCancelled = false
		}
	}
	if allCancelled {
		s.Status = StatusCancelled
	}
	if s.Capacity > 0 {
		s.Percent = float64(s.Bookings) / float64(s.Capacity)
	}
	return s
}

// MonthSummary summarizes every day of the month, in date order.
func MonthSummary(year int, month time.Month) []DaySummary {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	out := make([]DaySummary, 0, days)
	for d := 0; d < days; d++ {
		date := first.AddDate(0, 0, d).Format(DateLayout)
		out = append(out, Summarize(date, DayDetailsFor(date)))
	}
	return out
}
