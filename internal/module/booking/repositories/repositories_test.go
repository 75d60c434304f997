package repositories_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/module/booking/repositories"
	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"uuid", "tour_instance_id", "tour_date", "tour_type", "guest_name", "guest_email",
	"num_people", "total_price", "special_notes", "status", "pix_code", "task_id", "created_at", "updated_at",
}

func newRepo(t *testing.T) (repositories.Repositories, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repositories.New(sqlx.NewDb(db, "postgres"), log.Setup()), mock
}

func bookingFixture() entity.BookingRecord {
	return entity.BookingRecord{
		UUID:           uuid.New(),
		TourInstanceID: 202501202,
		TourDate:       "2025-01-20",
		TourType:       string(entity.TourSunset),
		GuestName:      "Ana Souza",
		GuestEmail:     "ana@example.com",
		NumPeople:      2,
		TotalPrice:     100,
		Status:         entity.StatusPendingPayment,
		PixCode:        "000201",
		CreatedAt:      time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestUpsertBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Test case 1 | insert new booking", func(t *testing.T) {
		repo, mock := newRepo(t)
		b := bookingFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM bookings WHERE uuid = \$1 FOR UPDATE`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns))
		mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.UpsertBooking(ctx, b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Test case 2 | update existing booking", func(t *testing.T) {
		repo, mock := newRepo(t)
		b := bookingFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM bookings WHERE uuid = \$1 FOR UPDATE`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				b.UUID.String(), b.TourInstanceID, b.TourDate, b.TourType, b.GuestName, b.GuestEmail,
				b.NumPeople, b.TotalPrice, b.SpecialNotes, b.Status, b.PixCode, b.TaskID, b.CreatedAt, nil,
			))
		mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		b.Status = entity.StatusConfirmed
		assert.NoError(t, repo.UpsertBooking(ctx, b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Test case 3 | exec error rolls back", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM bookings`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns))
		mock.ExpectExec(`INSERT INTO bookings`).WillReturnError(stderrors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.UpsertBooking(ctx, bookingFixture())
		assert.Error(t, err)
		assert.Equal(t, 500, errors.StatusCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindBookingByUUID(t *testing.T) {
	ctx := context.Background()

	t.Run("Test case 1 | found", func(t *testing.T) {
		repo, mock := newRepo(t)
		b := bookingFixture()

		mock.ExpectQuery(`SELECT .* FROM bookings WHERE uuid = \$1`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				b.UUID.String(), b.TourInstanceID, b.TourDate, b.TourType, b.GuestName, b.GuestEmail,
				b.NumPeople, b.TotalPrice, b.SpecialNotes, b.Status, b.PixCode, b.TaskID, b.CreatedAt, nil,
			))

		got, err := repo.FindBookingByUUID(ctx, b.UUID)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("Test case 2 | not found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT .* FROM bookings`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := repo.FindBookingByUUID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, got.UUID)
	})

	t.Run("Test case 3 | query error", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT .* FROM bookings`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnError(stderrors.New("timeout"))

		_, err := repo.FindBookingByUUID(ctx, uuid.New())
		assert.Equal(t, 500, errors.StatusCode(err))
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Test case 1 | updated", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(`UPDATE bookings SET status = \$1`).
			WithArgs(entity.StatusConfirmed, sqlmock.AnyArg(), entity.StatusPendingPayment).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateBookingStatus(ctx, uuid.New(), entity.StatusPendingPayment, entity.StatusConfirmed)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Test case 2 | status already moved", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(`UPDATE bookings SET status = \$1`).
			WithArgs(entity.StatusExpired, sqlmock.AnyArg(), entity.StatusPendingPayment).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateBookingStatus(ctx, uuid.New(), entity.StatusPendingPayment, entity.StatusExpired)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryRepositories(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemory(log.Setup())
	b := bookingFixture()

	require.NoError(t, repo.UpsertBooking(ctx, b))

	got, err := repo.FindBookingByUUID(ctx, b.UUID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	ok, err := repo.UpdateBookingStatus(ctx, b.UUID, entity.StatusPendingPayment, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateBookingStatus(ctx, b.UUID, entity.StatusPendingPayment, entity.StatusExpired)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _ = repo.FindBookingByUUID(ctx, b.UUID)
	assert.Equal(t, entity.StatusConfirmed, got.Status)
	assert.True(t, got.UpdatedAt.Valid)

	missing, err := repo.FindBookingByUUID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, missing.UUID)
}
