package queries

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuyerLeaderboardQueryHandler loads every order header, whatever its status,
// and ranks buyers with services.Aggregator by total amount.
//
// Example:
//
//	handler := NewBuyerLeaderboardQueryHandler(db)
//	query, err := NewBuyerLeaderboardQuery(5)
//	if err != nil {
//	    return err
//	}
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, s := range stats {
//	    fmt.Printf("%s %d orders %d\n", s.BuyerName, s.OrderCount, s.TotalAmount)
//	}
type BuyerLeaderboardQueryHandler struct {
	db         *gorm.DB
	aggregator services.Aggregator
}

// NewBuyerLeaderboardQueryHandler creates a handler reading the orders table directly.
func NewBuyerLeaderboardQueryHandler(db *gorm.DB) BuyerLeaderboardQueryHandler {
	return BuyerLeaderboardQueryHandler{db: db, aggregator: services.NewAggregator()}
}

// Handle returns at most the query limit of buyers, best first.
func (h BuyerLeaderboardQueryHandler) Handle(
	ctx context.Context,
	query BuyerLeaderboardQuery,
) ([]services.BuyerStat, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, buyer_id, buyer_name, status, total_final
		FROM orders
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]services.BuyerOrder, 0)
	for rows.Next() {
		var (
			row         services.BuyerOrder
			id, buyerID uuid.UUID
			status      string
		)
		if err = rows.Scan(&id, &buyerID, &row.BuyerName, &status, &row.TotalAmount); err != nil {
			return nil, err
		}
		if row.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if row.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return h.aggregator.BuyerLeaderboard(orders, query.Limit()), nil
}

// ProductLeaderboardQueryHandler ranks products by effective quantity over
// every order line, whatever the order status.
//
// Example:
//
//	handler := NewProductLeaderboardQueryHandler(db)
//	query, err := NewProductLeaderboardQuery(0)
//	if err != nil {
//	    return err
//	}
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, s := range stats {
//	    fmt.Printf("%s %d pcs\n", s.ProductCode, s.TotalQty)
//	}
type ProductLeaderboardQueryHandler struct {
	db         *gorm.DB
	aggregator services.Aggregator
}

// NewProductLeaderboardQueryHandler creates a handler reading order items directly.
func NewProductLeaderboardQueryHandler(db *gorm.DB) ProductLeaderboardQueryHandler {
	return ProductLeaderboardQueryHandler{db: db, aggregator: services.NewAggregator()}
}

// Handle returns at most the query limit of products, best first.
func (h ProductLeaderboardQueryHandler) Handle(
	ctx context.Context,
	query ProductLeaderboardQuery,
) ([]services.ProductStat, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			i.product_code,
			i.product_name,
			COALESCE(i.confirmed_qty, i.requested_qty),
			i.subtotal_final
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]services.ProductSale, 0)
	for rows.Next() {
		var (
			sale   services.ProductSale
			id     uuid.UUID
			status string
		)
		err = rows.Scan(&id, &status, &sale.ProductCode, &sale.ProductName, &sale.Qty, &sale.Amount)
		if err != nil {
			return nil, err
		}
		if sale.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if sale.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return h.aggregator.ProductLeaderboard(sales, query.Limit()), nil
}
