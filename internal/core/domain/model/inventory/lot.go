// Package inventory tracks stock per manufacturing lot along with the
// shelf-life rules computed from the manufacturing date.
package inventory

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrLotIsNotConstructed = errors.New("Lot must be created via NewLot constructor")

// Lot is one manufacturing batch held in stock. Lots are never deleted;
// a depleted lot is kept for audit.
//
// Invariants:
//   - remainingQty >= 0
//   - status is Depleted exactly when remainingQty == 0
type Lot struct {
	id               kernel.UUID
	productCode      string
	lotNumber        string
	manufacturedDate *time.Time
	receivedDate     time.Time
	initialQty       int64
	remainingQty     int64
	status           LotStatus
	location         string

	guard guard.ConstructorGuard
}

// NewLot registers a received lot. A lot received empty starts Depleted.
func NewLot(
	id kernel.UUID,
	productCode, lotNumber string,
	manufacturedDate *time.Time,
	receivedDate time.Time,
	qty int64,
	location string,
) (*Lot, error) {
	l := &Lot{
		location: strings.TrimSpace(location),
		guard:    guard.NewConstructorGuard(),
	}

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if l.productCode = strings.TrimSpace(productCode); l.productCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if l.lotNumber = strings.TrimSpace(lotNumber); l.lotNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("lot number"))
	}
	if qty < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("lot quantity is invalid", fmt.Errorf("%d is negative", qty)))
	}
	if receivedDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("received date"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	l.id = id
	l.receivedDate = kernel.StartOfDay(receivedDate)
	l.initialQty = qty
	l.remainingQty = qty
	l.status = statusFor(qty)
	if manufacturedDate != nil {
		d := kernel.StartOfDay(*manufacturedDate)
		l.manufacturedDate = &d
	}
	return l, nil
}

// RestoreLot rebuilds a stored lot and checks the status agrees with the quantity.
func RestoreLot(
	id kernel.UUID,
	productCode, lotNumber string,
	manufacturedDate *time.Time,
	receivedDate time.Time,
	initialQty, remainingQty int64,
	status LotStatus,
	location string,
) (*Lot, error) {
	l, err := NewLot(id, productCode, lotNumber, manufacturedDate, receivedDate, remainingQty, location)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status != statusFor(remainingQty) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"lot status is invalid",
			fmt.Errorf("%s does not match remaining quantity %d", status, remainingQty),
		)
	}
	l.initialQty = initialQty
	return l, nil
}

func (l *Lot) Validate() error {
	if l == nil {
		return ErrLotIsNotConstructed
	}
	return l.guard.Validate(ErrLotIsNotConstructed)
}

func (l *Lot) ID() kernel.UUID {
	return l.id
}

func (l *Lot) ProductCode() string {
	return l.productCode
}

func (l *Lot) LotNumber() string {
	return l.lotNumber
}

// ManufacturedDate is nil until the manufacturing date is known.
func (l *Lot) ManufacturedDate() *time.Time {
	return l.manufacturedDate
}

func (l *Lot) ReceivedDate() time.Time {
	return l.receivedDate
}

func (l *Lot) InitialQty() int64 {
	return l.initialQty
}

func (l *Lot) RemainingQty() int64 {
	return l.remainingQty
}

func (l *Lot) Status() LotStatus {
	return l.status
}

func (l *Lot) Location() string {
	return l.location
}

// AdjustQuantity applies delta (positive restocks, negative consumes).
// It fails with InsufficientStockError, leaving the lot untouched, when the
// result would be negative, and with ValueIsOutOfRangeError when it would
// not fit in an int64.
func (l *Lot) AdjustQuantity(delta int64) error {
	if delta == math.MinInt64 || (delta > 0 && l.remainingQty > math.MaxInt64-delta) {
		return errs.NewValueIsOutOfRangeError("lot quantity delta", delta, -l.remainingQty, int64(math.MaxInt64)-l.remainingQty)
	}
	next := l.remainingQty + delta
	if next < 0 {
		return errs.NewInsufficientStockError(l.lotNumber, l.remainingQty, -delta)
	}
	l.remainingQty = next
	l.status = statusFor(next)
	return nil
}

// SetManufacturedDate records a manufacturing date learned after receipt.
func (l *Lot) SetManufacturedDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("manufactured date")
	}
	day := kernel.StartOfDay(d)
	l.manufacturedDate = &day
	return nil
}

// RemainingShelfLifeMonths returns false when the manufacturing date is unknown.
func (l *Lot) RemainingShelfLifeMonths(shelfLifeYears int, now time.Time) (int, bool) {
	if l.manufacturedDate == nil {
		return 0, false
	}
	return RemainingShelfLifeMonths(*l.manufacturedDate, shelfLifeYears, now), true
}

func statusFor(qty int64) LotStatus {
	if qty == 0 {
		return Depleted
	}
	return Active
}
