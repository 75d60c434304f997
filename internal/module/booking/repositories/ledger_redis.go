package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tour-booking/internal/pkg/errors"
	"tour-booking/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const ledgerLockExpiry = 5 * time.Second

type redisLedger struct {
	client *redis.Client
	rs     *redsync.Redsync
	log    log.Logger
}

// NewRedisLedger stores reservations in one hash per date, ledger:{date},
// with tour ids as fields. Writes to a date are serialized by a redsync
// mutex.
func NewRedisLedger(client *redis.Client, log log.Logger) BookingLedger {
	return &redisLedger{
		client: client,
		rs:     redsync.New(goredis.NewPool(client)),
		log:    log,
	}
}

func ledgerKey(date string) string {
	return fmt.Sprintf("ledger:%s", date)
}

func (l *redisLedger) Get(ctx context.Context, date string) (map[string]int, error) {
	data, err := l.client.HGetAll(ctx, ledgerKey(date)).Result()
	if err != nil {
		l.log.Error(ctx, "error get ledger", date, err)
		return nil, errors.InternalServerError("error get ledger")
	}

	out := make(map[string]int, len(data))
	for tourID, v := range data {
		n, err := strconv.Atoi(v)
		if err != nil {
			l.log.Error(ctx, "error parse ledger value", date, tourID, err)
			return nil, errors.InternalServerError("error parse ledger value")
		}
		if n > 0 {
			out[tourID] = n
		}
	}
	return out, nil
}

func (l *redisLedger) Reserve(ctx context.Context, date, tourID string, qty, capacity int, guard func(reserved map[string]int) error) error {
	mutex := l.rs.NewMutex("lock:"+ledgerKey(date), redsync.WithExpiry(ledgerLockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		l.log.Error(ctx, "error lock ledger", date, err)
		return errors.InternalServerError("error lock ledger")
	}
	defer l.unlock(ctx, mutex)

	reserved, err := l.Get(ctx, date)
	if err != nil {
		return err
	}
	if guard != nil {
		if err := guard(reserved); err != nil {
			return err
		}
	}
	if err := checkSeats(reserved, tourID, qty, capacity); err != nil {
		return err
	}

	if err := l.client.HIncrBy(ctx, ledgerKey(date), tourID, int64(qty)).Err(); err != nil {
		l.log.Error(ctx, "error reserve seats", date, tourID, err)
		return errors.InternalServerError("error reserve seats")
	}
	return nil
}

func (l *redisLedger) Release(ctx context.Context, date, tourID string, qty int) error {
	mutex := l.rs.NewMutex("lock:"+ledgerKey(date), redsync.WithExpiry(ledgerLockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		l.log.Error(ctx, "error lock ledger", date, err)
		return errors.InternalServerError("error lock ledger")
	}
	defer l.unlock(ctx, mutex)

	left, err := l.client.HIncrBy(ctx, ledgerKey(date), tourID, int64(-qty)).Result()
	if err != nil {
		l.log.Error(ctx, "error release seats", date, tourID, err)
		return errors.InternalServerError("error release seats")
	}
	if left <= 0 {
		if err := l.client.HDel(ctx, ledgerKey(date), tourID).Err(); err != nil {
			l.log.Warn(ctx, "error clean ledger field", date, tourID, err)
		}
	}
	return nil
}

func (l *redisLedger) unlock(ctx context.Context, mutex *redsync.Mutex) {
	if _, err := mutex.UnlockContext(ctx); err != nil {
		l.log.Warn(ctx, "error unlock ledger", err)
	}
}
