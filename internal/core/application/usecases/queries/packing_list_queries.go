package queries

import (
	"errors"
	"fmt"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListPackingListsQueryIsNotConstructed = errors.New(
		"ListPackingListsQuery must be created via NewListPackingListsQuery constructor",
	)
	ErrGetPackingStatsQueryIsNotConstructed = errors.New(
		"GetPackingStatsQuery must be created via NewGetPackingStatsQuery constructor",
	)
)

type ListPackingListsQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListPackingListsQuery pages packing lists. A zero limit means DefaultListLimit.
func NewListPackingListsQuery(limit, offset int) (ListPackingListsQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	var errList []error
	if limit < 1 || limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if offset < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("offset is invalid", fmt.Errorf("%d is negative", offset)))
	}
	if err := errors.Join(errList...); err != nil {
		return ListPackingListsQuery{}, err
	}
	return ListPackingListsQuery{limit: limit, offset: offset, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackingListsQuery) Validate() error {
	return q.guard.Validate(ErrListPackingListsQueryIsNotConstructed)
}

func (q ListPackingListsQuery) Limit() int  { return q.limit }
func (q ListPackingListsQuery) Offset() int { return q.offset }

type GetPackingStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPackingStatsQuery() GetPackingStatsQuery {
	return GetPackingStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPackingStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingStatsQueryIsNotConstructed)
}

// PackingListView is one row of the packing list register.
type PackingListView struct {
	ID            kernel.UUID
	Number        string
	OrderID       kernel.UUID
	OrderNumber   string
	Consignee     string
	Destinations  []string
	Qty           int64
	Cartons       int64
	Pallets       int64
	NetWeightKg   decimal.Decimal
	GrossWeightKg decimal.Decimal
	CBM           decimal.Decimal
	Amount        int64
	CreatedAt     time.Time
}

type PackingListPage struct {
	Lists  []PackingListView
	Total  int64
	Limit  int
	Offset int
}

// PackingStats sums every packing list issued so far.
type PackingStats struct {
	Count         int64
	Pallets       int64
	NetWeightKg   decimal.Decimal
	GrossWeightKg decimal.Decimal
	CBM           decimal.Decimal
	Amount        int64
}
