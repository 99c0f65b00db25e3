// Package redislock implements ports.OrderLocker on Redis so that several
// service instances do not interleave writes to the same order.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "order-lock"

// Locker obtains one short-lived Redis lock per order id.
type Locker struct {
	client *redislock.Client
	ttl    time.Duration
	retry  redislock.RetryStrategy
}

// NewLocker waits up to roughly ttl for a busy lock before giving up.
func NewLocker(rdb redis.UniversalClient, ttl time.Duration) *Locker {
	const step = 50 * time.Millisecond
	attempts := int(ttl / step)
	if attempts < 1 {
		attempts = 1
	}
	return &Locker{
		client: redislock.New(rdb),
		ttl:    ttl,
		retry:  redislock.LimitRetry(redislock.LinearBackoff(step), attempts),
	}
}

func Key(orderID kernel.UUID) string {
	return fmt.Sprintf("%s:%s", keyPrefix, orderID.String())
}

// Lock returns errs.ConflictRetryError when another holder keeps the lock
// for the whole retry window.
func (l *Locker) Lock(ctx context.Context, orderID kernel.UUID) (func(ctx context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, Key(orderID), l.ttl, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, errs.NewConflictRetryErrorWithCause("order", orderID.String(), err)
	}
	if err != nil {
		return nil, fmt.Errorf("obtain order lock: %w", err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}
