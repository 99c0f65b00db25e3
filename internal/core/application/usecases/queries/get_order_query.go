package queries

import (
	"errors"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/services"
	"ruboard/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its items, history and derived rollups.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one line as shown to users.
type OrderItemView struct {
	ID               kernel.UUID
	LineNumber       int
	ProductCode      string
	ProductName      string
	Destination      string
	PcsPerCarton     int
	RequestedQty     int64
	ConfirmedQty     *int64
	EffectiveQty     int64
	UnitPrice        order.UnitPrice
	Subtotal         order.Amounts
	CartonCount      int64
	Availability     order.Availability
	AvailabilityNote string
}

// OrderView is the full read model of an order. ProductGroups,
// DestinationTotals and Destinations feed the product by destination matrix.
type OrderView struct {
	ID                    kernel.UUID
	Number                string
	Buyer                 order.Buyer
	OrderDate             time.Time
	RequestedDeliveryDate *time.Time
	Status                order.Status
	Totals                order.Totals
	Remarks               order.Remarks
	ConfirmedAt           *time.Time
	PackedAt              *time.Time
	ShippedAt             *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    string
	Version               int64

	Items   []OrderItemView
	History []order.HistoryEntry

	ProductGroups     []services.ProductGroup
	DestinationTotals map[string]services.DestinationTotal
	Destinations      []string
	Availability      order.AvailabilitySummary
	ReadyForPacking   bool
	Packing           services.PackingSummary
}
