package generator

// Day is an editable copy of one day's manifest. Admin actions change the
// copy only; regenerating the date always yields the original data.
type Day struct {
	Date  string
	Tours []TourDay
}

func NewDay(date string) *Day {
	return &Day{Date: date, Tours: DayDetailsFor(date)}
}

// ToggleTour flips a tour between cancelled and available. It reports
// whether a tour with that unique id exists.
func (d *Day) ToggleTour(uniqueID string) bool {
	for i := range d.Tours {
		if d.Tours[i].UniqueID != uniqueID {
			continue
		}
		if d.Tours[i].Status == StatusCancelled {
			d.Tours[i].Status = StatusAvailable
		} else {
			d.Tours[i].Status = StatusCancelled
		}
		return true
	}
	return false
}

func (d *Day) CancelDay() {
	for i := range d.Tours {
		d.Tours[i].Status = StatusCancelled
	}
}

func (d *Day) Tour(uniqueID string) (TourDay, bool) {
	for _, t := range d.Tours {
		if t.UniqueID == uniqueID {
			return t, true
		}
	}
	return TourDay{}, false
}
