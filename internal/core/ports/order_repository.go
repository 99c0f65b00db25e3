// Package ports defines the contracts between the core and its adapters:
// repositories for every aggregate, the unit of work that binds them to one
// transaction, and the optional per-order locker.
package ports

import (
	"context"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/packing"
)

// OrderRepository persists order aggregates together with their items and history.
type OrderRepository interface {
	// Add persists a new order with version 0.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored version still equals
	// aggregate.Version(), and increments it. A lost race returns
	// errs.ConflictRetryError; a missing order returns errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// OrderNumberSequence hands out per-prefix sequence values for order numbers.
type OrderNumberSequence interface {
	// Next returns the next value for prefix, starting at 1.
	Next(ctx context.Context, prefix string) (int64, error)
}

// OrderLocker serializes writers of one order across processes.
type OrderLocker interface {
	// Lock blocks other holders of the same order until release is called or the
	// lock expires. It returns errs.ConflictRetryError when the lock is busy.
	Lock(ctx context.Context, orderID kernel.UUID) (release func(ctx context.Context) error, err error)
}

// NoopOrderLocker is used when no distributed lock backend is configured.
type NoopOrderLocker struct{}

func (NoopOrderLocker) Lock(context.Context, kernel.UUID) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// DefaultLockTTL bounds how long a single order mutation may hold the lock.
const DefaultLockTTL = 10 * time.Second

// PackingListRepository stores the packing lists issued for orders.
type PackingListRepository interface {
	// Add fails with errs.ValueIsInvalidError when the order already has a list.
	Add(ctx context.Context, list *packing.List) error

	// GetByOrder returns the list of an order or errs.ObjectNotFoundError.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*packing.List, error)
}
