package queries

import (
	"context"
	"time"

	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListActiveLotsQueryHandler lists the ACTIVE lots of a product oldest
// manufacturing date first, undated lots last. Each lot carries its remaining
// shelf life and the near expiry flag.
//
// Example:
//
//	handler := NewListActiveLotsQueryHandler(db, clock, 3, 12)
//	query, err := NewListActiveLotsQuery("KR-001")
//	if err != nil {
//	    return err
//	}
//	lots, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, l := range lots {
//	    fmt.Println(l.LotNumber, l.RemainingQty, l.NearExpiry)
//	}
type ListActiveLotsQueryHandler struct {
	db               *gorm.DB
	clock            kernel.Clock
	shelfLifeYears   int
	nearExpiryMonths int
}

// NewListActiveLotsQueryHandler creates a handler reading the lots table
// directly. A non-positive shelf life or near expiry window falls back to the
// inventory defaults.
func NewListActiveLotsQueryHandler(
	db *gorm.DB,
	clock kernel.Clock,
	shelfLifeYears, nearExpiryMonths int,
) ListActiveLotsQueryHandler {
	if shelfLifeYears <= 0 {
		shelfLifeYears = inventory.DefaultShelfLifeYears
	}
	if nearExpiryMonths <= 0 {
		nearExpiryMonths = inventory.DefaultNearExpiryMonths
	}
	return ListActiveLotsQueryHandler{
		db:               db,
		clock:            clock,
		shelfLifeYears:   shelfLifeYears,
		nearExpiryMonths: nearExpiryMonths,
	}
}

// Handle returns an empty slice for a product without active lots.
func (h ListActiveLotsQueryHandler) Handle(ctx context.Context, query ListActiveLotsQuery) ([]ActiveLot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			lot_number,
			manufactured_date,
			received_date,
			initial_qty,
			remaining_qty,
			location
		FROM inventory_lots
		WHERE product_code = ? AND status = ? AND remaining_qty > 0
		ORDER BY manufactured_date ASC NULLS LAST, lot_number ASC
	`, query.ProductCode(), inventory.Active.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.clock.Now()
	lots := make([]ActiveLot, 0)
	for rows.Next() {
		var (
			lot          ActiveLot
			id           uuid.UUID
			manufactured *time.Time
			location     *string
		)
		err = rows.Scan(
			&id,
			&lot.LotNumber,
			&manufactured,
			&lot.ReceivedDate,
			&lot.InitialQty,
			&lot.RemainingQty,
			&location,
		)
		if err != nil {
			return nil, err
		}

		if lot.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if location != nil {
			lot.Location = *location
		}
		if manufactured != nil {
			date := kernel.StartOfDay(*manufactured)
			months := inventory.RemainingShelfLifeMonths(date, h.shelfLifeYears, now)
			lot.ManufacturedDate = &date
			lot.RemainingShelfLifeMonths = &months
			lot.NearExpiry = inventory.IsNearExpiry(months, h.nearExpiryMonths)
		}
		lot.ReceivedDate = kernel.StartOfDay(lot.ReceivedDate)
		lots = append(lots, lot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lots, nil
}
