package repositories

import (
	"context"
	"fmt"
	"sync"
)

// BookingLedger tracks reserved seats per date and tour.
type BookingLedger interface {
	// Get returns the reserved seat count per tour id for date.
	Get(ctx context.Context, date string) (map[string]int, error)
	// Reserve adds qty seats to tourID if capacity allows. guard sees the
	// reservations of the whole date and may veto the reservation; it runs
	// under the same lock as the write.
	Reserve(ctx context.Context, date, tourID string, qty, capacity int, guard func(reserved map[string]int) error) error
	Release(ctx context.Context, date, tourID string, qty int) error
}

type InsufficientSeatsError struct {
	Remaining int
}

func (e *InsufficientSeatsError) Error() string {
	if e.Remaining == 1 {
		return "Only 1 spot left for this tour."
	}
	return fmt.Sprintf("Only %d spots left for this tour.", e.Remaining)
}

func checkSeats(reserved map[string]int, tourID string, qty, capacity int) error {
	remaining := capacity - reserved[tourID]
	if remaining < 0 {
		remaining = 0
	}
	if qty > remaining {
		return &InsufficientSeatsError{Remaining: remaining}
	}
	return nil
}

type memoryLedger struct {
	mu    sync.Mutex
	dates map[string]map[string]int
}

func NewMemoryLedger() BookingLedger {
	return &memoryLedger{dates: make(map[string]map[string]int)}
}

func (l *memoryLedger) Get(ctx context.Context, date string) (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.copyOf(date), nil
}

func (l *memoryLedger) Reserve(ctx context.Context, date, tourID string, qty, capacity int, guard func(reserved map[string]int) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	reserved := l.copyOf(date)
	if guard != nil {
		if err := guard(reserved); err != nil {
			return err
		}
	}
	if err := checkSeats(reserved, tourID, qty, capacity); err != nil {
		return err
	}

	day, ok := l.dates[date]
	if !ok {
		day = make(map[string]int)
		l.dates[date] = day
	}
	day[tourID] += qty
	return nil
}

func (l *memoryLedger) Release(ctx context.Context, date, tourID string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	day, ok := l.dates[date]
	if !ok {
		return nil
	}
	day[tourID] -= qty
	if day[tourID] <= 0 {
		delete(day, tourID)
	}
	return nil
}

func (l *memoryLedger) copyOf(date string) map[string]int {
	out := make(map[string]int, len(l.dates[date]))
	for k, v := range l.dates[date] {
		out[k] = v
	}
	return out
}
