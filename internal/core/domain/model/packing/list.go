// Package packing holds the packing list issued when an order starts packing.
// A list is written once and never changes afterwards.
package packing

import (
	"errors"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrListIsNotConstructed = errors.New("List must be created via NewList constructor")

// List is the packing list of one order.
type List struct {
	id           kernel.UUID
	number       string
	orderID      kernel.UUID
	orderNumber  string
	consignee    string
	destinations []string
	totals       Totals
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// Number formats a packing list number as PL-<YYYYMMDD>-<order number>.
func Number(orderNumber string, createdAt time.Time) string {
	return "PL-" + createdAt.UTC().Format("20060102") + "-" + strings.TrimSpace(orderNumber)
}

func NewList(
	id kernel.UUID,
	orderID kernel.UUID,
	orderNumber string,
	consignee string,
	destinations []string,
	totals Totals,
	createdAt time.Time,
) (*List, error) {
	return RestoreList(Snapshot{
		ID:           id,
		Number:       Number(orderNumber, createdAt),
		OrderID:      orderID,
		OrderNumber:  orderNumber,
		Consignee:    consignee,
		Destinations: destinations,
		Totals:       totals,
		CreatedAt:    createdAt,
	})
}

// Snapshot carries the stored state of a list.
type Snapshot struct {
	ID           kernel.UUID
	Number       string
	OrderID      kernel.UUID
	OrderNumber  string
	Consignee    string
	Destinations []string
	Totals       Totals
	CreatedAt    time.Time
}

func RestoreList(s Snapshot) (*List, error) {
	l := &List{
		id:           s.ID,
		number:       strings.TrimSpace(s.Number),
		orderID:      s.OrderID,
		orderNumber:  strings.TrimSpace(s.OrderNumber),
		consignee:    strings.TrimSpace(s.Consignee),
		destinations: append([]string(nil), s.Destinations...),
		totals:       s.Totals,
		createdAt:    s.CreatedAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	errList := []error{s.ID.Validate(), s.OrderID.Validate(), s.Totals.Validate()}
	if l.number == "" {
		errList = append(errList, errs.NewValueIsRequiredError("packing list number"))
	}
	if l.orderNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("order number"))
	}
	if l.consignee == "" {
		errList = append(errList, errs.NewValueIsRequiredError("consignee"))
	}
	if s.CreatedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("packing list date"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List) Validate() error {
	return l.guard.Validate(ErrListIsNotConstructed)
}

func (l *List) ID() kernel.UUID      { return l.id }
func (l *List) Number() string       { return l.number }
func (l *List) OrderID() kernel.UUID { return l.orderID }
func (l *List) OrderNumber() string  { return l.orderNumber }
func (l *List) Consignee() string    { return l.consignee }
func (l *List) Totals() Totals       { return l.totals }
func (l *List) CreatedAt() time.Time { return l.createdAt }

// Destinations lists the shipment destinations, sorted.
func (l *List) Destinations() []string {
	return append([]string(nil), l.destinations...)
}
