// Package commands contains the operations that change system state.
// Every command is built by a validating constructor and executed by a handler
// that runs inside one unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderNumberSequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	PackingListRepoFactory interface {
		PackingListRepository() ports.PackingListRepository
	}

	PriceRepoFactory interface {
		PriceRepository() ports.PriceRepository
	}

	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW covers order writes. Prices and products are read to snapshot
	// item data, and a packing list is issued when packing starts.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderNumberSequenceFactory
		PackingListRepoFactory
		PriceRepoFactory
		ProductRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW covers product registration and price changes.
	CatalogUoW interface {
		TxManager
		PriceRepoFactory
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// LotUoW covers lot receipt and quantity adjustments.
	LotUoW interface {
		TxManager
		LotRepoFactory
		ProductRepoFactory
	}

	LotUoWFactory interface {
		Create() LotUoW
	}
)

// withOrderLock runs fn while holding the per-order lock.
func withOrderLock(ctx context.Context, locker ports.OrderLocker, orderID kernel.UUID, fn func() error) error {
	release, err := locker.Lock(ctx, orderID)
	if err != nil {
		return err
	}
	defer func() {
		_ = release(ctx)
	}()

	return fn()
}
