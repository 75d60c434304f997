package repositories

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/log"

	"github.com/google/uuid"
)

type memoryRepositories struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]entity.BookingRecord
	log      log.Logger
}

// NewMemory keeps bookings in process. Used when DB_DRIVER=memory.
func NewMemory(log log.Logger) Repositories {
	return &memoryRepositories{
		bookings: make(map[uuid.UUID]entity.BookingRecord),
		log:      log,
	}
}

func (r *memoryRepositories) UpsertBooking(ctx context.Context, booking entity.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.UUID] = booking
	return nil
}

func (r *memoryRepositories) FindBookingByUUID(ctx context.Context, id uuid.UUID) (entity.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bookings[id], nil
}

func (r *memoryRepositories) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = sql.NullTime{Time: time.Now(), Valid: true}
	r.bookings[id] = b
	return true, nil
}
