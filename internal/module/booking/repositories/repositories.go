package repositories

import (
	"context"
	"database/sql"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	UpsertBooking(ctx context.Context, booking entity.BookingRecord) error
	FindBookingByUUID(ctx context.Context, id uuid.UUID) (entity.BookingRecord, error)
	// UpdateBookingStatus moves a booking from one status to another and
	// reports whether it was still in the expected status.
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const bookingColumns = `uuid, tour_instance_id, tour_date, tour_type, guest_name, guest_email,
	num_people, total_price, special_notes, status, pix_code, task_id, created_at, updated_at`

// UpsertBooking implements Repositories.
func (r *repositories) UpsertBooking(ctx context.Context, booking entity.BookingRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return errors.InternalServerError("error starting transaction")
	}

	// Lock the row for update
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE uuid = $1 FOR UPDATE`
	var existing entity.BookingRecord
	err = tx.GetContext(ctx, &existing, query, booking.UUID)
	if err != nil && err != sql.ErrNoRows {
		tx.Rollback()
		r.log.Error(ctx, "error locking rows", err)
		return errors.InternalServerError("error locking rows")
	}

	if err == sql.ErrNoRows {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO bookings (`+bookingColumns+`)
			VALUES (:uuid, :tour_instance_id, :tour_date, :tour_type, :guest_name, :guest_email,
				:num_people, :total_price, :special_notes, :status, :pix_code, :task_id, :created_at, :updated_at)
		`, booking)
	} else {
		_, err = tx.NamedExecContext(ctx, `
			UPDATE bookings
			SET status = :status, pix_code = :pix_code, task_id = :task_id, updated_at = :updated_at
			WHERE uuid = :uuid
		`, booking)
	}
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error upserting booking", err)
		return errors.InternalServerError("error upserting booking")
	}

	err = tx.Commit()
	if err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindBookingByUUID implements Repositories. A missing booking yields the
// zero record and no error.
func (r *repositories) FindBookingByUUID(ctx context.Context, id uuid.UUID) (entity.BookingRecord, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE uuid = $1`
	var booking entity.BookingRecord
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.BookingRecord{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by uuid", err)
		return entity.BookingRecord{}, errors.InternalServerError("error find booking by uuid")
	}
	return booking, nil
}

// UpdateBookingStatus implements Repositories.
func (r *repositories) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	query := `UPDATE bookings SET status = $1, updated_at = now() WHERE uuid = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		r.log.Error(ctx, "error update booking status", err)
		return false, errors.InternalServerError("error update booking status")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error update booking status")
	}
	return n == 1, nil
}
