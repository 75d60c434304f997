package repositories_test

import (
	"context"
	"testing"

	"tour-booking/internal/module/booking/repositories"
	"tour-booking/internal/pkg/log"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLedger(t *testing.T) (repositories.BookingLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return repositories.NewRedisLedger(client, log.Setup()), mr
}

func TestRedisLedgerReserve(t *testing.T) {
	ctx := context.Background()
	ledger, mr := newRedisLedger(t)

	require.NoError(t, ledger.Reserve(ctx, "2025-01-20", "sunset", 8, 10, nil))
	assert.Equal(t, "8", mr.HGet("ledger:2025-01-20", "sunset"))

	err := ledger.Reserve(ctx, "2025-01-20", "sunset", 3, 10, nil)
	var seats *repositories.InsufficientSeatsError
	require.ErrorAs(t, err, &seats)
	assert.Equal(t, 2, seats.Remaining)

	require.NoError(t, ledger.Reserve(ctx, "2025-01-20", "sunrise", 4, 15, nil))

	reserved, err := ledger.Get(ctx, "2025-01-20")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"sunset": 8, "sunrise": 4}, reserved)

	reserved, err = ledger.Get(ctx, "2025-01-21")
	require.NoError(t, err)
	assert.Empty(t, reserved)

	// the lock is released after every call
	assert.False(t, mr.Exists("lock:ledger:2025-01-20"))
}

func TestRedisLedgerGuard(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newRedisLedger(t)

	require.NoError(t, ledger.Reserve(ctx, "2025-01-20", "full_day", 2, 12, nil))

	var seen map[string]int
	err := ledger.Reserve(ctx, "2025-01-20", "sunrise", 1, 15, func(reserved map[string]int) error {
		seen = reserved
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, map[string]int{"full_day": 2}, seen)

	reserved, err := ledger.Get(ctx, "2025-01-20")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"full_day": 2}, reserved)
}

func TestRedisLedgerRelease(t *testing.T) {
	ctx := context.Background()
	ledger, mr := newRedisLedger(t)

	require.NoError(t, ledger.Reserve(ctx, "2025-01-20", "sunset", 5, 10, nil))

	require.NoError(t, ledger.Release(ctx, "2025-01-20", "sunset", 2))
	reserved, err := ledger.Get(ctx, "2025-01-20")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"sunset": 3}, reserved)

	require.NoError(t, ledger.Release(ctx, "2025-01-20", "sunset", 3))
	reserved, err = ledger.Get(ctx, "2025-01-20")
	require.NoError(t, err)
	assert.Empty(t, reserved)
	assert.False(t, mr.Exists("ledger:2025-01-20"))

	// freed seats can be booked again
	require.NoError(t, ledger.Reserve(ctx, "2025-01-20", "sunset", 10, 10, nil))
}

func TestRedisLedgerUnavailable(t *testing.T) {
	ctx := context.Background()
	ledger, mr := newRedisLedger(t)
	mr.Close()

	_, err := ledger.Get(ctx, "2025-01-20")
	assert.EqualError(t, err, "error get ledger")
}
