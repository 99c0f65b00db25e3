package ports

import (
	"context"
	"time"

	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
)

// PriceRepository is the append-only price ledger.
type PriceRepository interface {
	// Append stores entry and returns it with its insertion id.
	Append(ctx context.Context, entry pricing.Entry) (pricing.Entry, error)

	// LatestAt returns the entry effective at the given date
	// or errs.ObjectNotFoundError.
	LatestAt(ctx context.Context, productCode string, at time.Time) (pricing.Entry, error)

	// History lists every entry of a product, oldest effective date first.
	History(ctx context.Context, productCode string) ([]pricing.Entry, error)
}

type LotRepository interface {
	// Add fails with errs.ValueIsInvalidError when the lot number already exists.
	Add(ctx context.Context, lot *inventory.Lot) error

	Update(ctx context.Context, lot *inventory.Lot) error

	// GetForUpdate loads a lot by number and holds a row lock until the
	// transaction ends.
	GetForUpdate(ctx context.Context, lotNumber string) (*inventory.Lot, error)
}

type ProductRepository interface {
	// Add fails with errs.ValueIsInvalidError when the code already exists.
	Add(ctx context.Context, p *product.Product) error

	// Update overwrites the stored product or returns errs.ObjectNotFoundError.
	Update(ctx context.Context, p *product.Product) error

	Get(ctx context.Context, code string) (*product.Product, error)
}
