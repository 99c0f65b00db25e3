package queries

import (
	"errors"
	"fmt"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows ListOrders. Zero fields do not filter; a zero Limit means
// DefaultListLimit. From and To bound the order date inclusively.
type OrderFilter struct {
	Statuses []order.Status
	BuyerID  *kernel.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type ListOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	var errList []error
	for _, s := range filter.Statuses {
		errList = append(errList, s.Validate())
	}
	if filter.BuyerID != nil {
		errList = append(errList, filter.BuyerID.Validate())
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxListLimit))
	}
	if filter.Offset < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("offset is invalid", fmt.Errorf("%d is negative", filter.Offset)))
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("date range is invalid", errors.New("to is before from")))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	filter.Statuses = append([]order.Status(nil), filter.Statuses...)
	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID            kernel.UUID
	Number        string
	BuyerID       kernel.UUID
	BuyerName     string
	OrderDate     time.Time
	Status        order.Status
	TotalQuantity int64
	TotalCartons  int64
	TotalFinal    int64
	ItemCount     int
}

// OrderPage is a slice of the list together with the unpaged row count.
type OrderPage struct {
	Orders []OrderSummary
	Total  int64
	Limit  int
	Offset int
}
