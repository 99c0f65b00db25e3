package queries

import (
	"context"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through orders, newest order date first. The
// filter narrows by status, buyer and order date range.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, err := NewListOrdersQuery(OrderFilter{Statuses: []order.Status{order.Confirmed}, Limit: 20})
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range page.Orders {
//	    fmt.Println(o.Number, o.BuyerName, o.Status)
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler reading the orders table directly.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns one page together with the unpaged count.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}
	filter := query.Filter()

	page := OrderPage{Orders: make([]OrderSummary, 0), Limit: filter.Limit, Offset: filter.Offset}

	if err := h.filtered(ctx, filter).Count(&page.Total).Error; err != nil {
		return OrderPage{}, err
	}
	if page.Total == 0 {
		return page, nil
	}

	rows, err := h.filtered(ctx, filter).
		Select(`o.id, o.number, o.buyer_id, o.buyer_name, o.order_date, o.status,
			o.total_quantity, o.total_cartons, o.total_final,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count`).
		Order("o.order_date DESC").
		Order("o.number DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Rows()
	if err != nil {
		return OrderPage{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary     OrderSummary
			id, buyerID uuid.UUID
			orderDate   time.Time
			status      string
		)
		err = rows.Scan(
			&id,
			&summary.Number,
			&buyerID,
			&summary.BuyerName,
			&orderDate,
			&status,
			&summary.TotalQuantity,
			&summary.TotalCartons,
			&summary.TotalFinal,
			&summary.ItemCount,
		)
		if err != nil {
			return OrderPage{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return OrderPage{}, err
		}
		if summary.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return OrderPage{}, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return OrderPage{}, err
		}
		summary.OrderDate = kernel.StartOfDay(orderDate)
		page.Orders = append(page.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return OrderPage{}, err
	}
	return page, nil
}

func (h ListOrdersQueryHandler) filtered(ctx context.Context, filter OrderFilter) *gorm.DB {
	tx := h.db.WithContext(ctx).Table("orders AS o")
	if len(filter.Statuses) > 0 {
		names := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		tx = tx.Where("o.status IN ?", names)
	}
	if filter.BuyerID != nil {
		tx = tx.Where("o.buyer_id = ?", filter.BuyerID.Bytes())
	}
	if filter.From != nil {
		tx = tx.Where("o.order_date >= ?", kernel.StartOfDay(*filter.From))
	}
	if filter.To != nil {
		tx = tx.Where("o.order_date <= ?", kernel.StartOfDay(*filter.To))
	}
	return tx
}
