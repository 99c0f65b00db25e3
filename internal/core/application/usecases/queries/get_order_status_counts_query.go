package queries

import (
	"context"
	"errors"

	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
	"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
)

type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status order.Status
	Count  int64
}

// GetOrderStatusCountsQueryHandler returns one row per status in lifecycle
// order, statuses without orders included.
//
// Example:
//
//	handler := NewGetOrderStatusCountsQueryHandler(db)
//	counts, err := handler.Handle(ctx, NewGetOrderStatusCountsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, c := range counts {
//	    fmt.Println(c.Status, c.Count)
//	}
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusCountsQueryHandler creates a handler reading the orders table directly.
func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle counts every order once, under its current status.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Count
	}

	result := make([]StatusCount, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		result = append(result, StatusCount{Status: status, Count: counts[status]})
	}
	return result, nil
}
