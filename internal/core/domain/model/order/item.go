package order

import (
	"errors"
	"fmt"
	"strings"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned for an Item not built by NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// UnitPrice is the per-piece price snapshot carried by an item, in whole KRW.
type UnitPrice struct {
	Base       int64
	Commission int64
}

// Final is the buyer-facing unit price.
func (p UnitPrice) Final() int64 {
	return p.Base + p.Commission
}

func (p UnitPrice) Validate() error {
	var errList []error
	if p.Base < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base price is invalid", fmt.Errorf("%d is negative", p.Base)))
	}
	if p.Commission < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("commission is invalid", fmt.Errorf("%d is negative", p.Commission)))
	}
	return errors.Join(errList...)
}

// Amounts is a base/commission/final triple.
// Final always equals Base + Commission.
type Amounts struct {
	Base       int64
	Commission int64
	Final      int64
}

func (a Amounts) add(other Amounts) Amounts {
	return Amounts{
		Base:       a.Base + other.Base,
		Commission: a.Commission + other.Commission,
		Final:      a.Final + other.Final,
	}
}

// Item is one product line of an order. Product code, name and carton size
// are snapshots taken when the line is added.
type Item struct {
	id               kernel.UUID
	lineNumber       int
	productCode      string
	productName      string
	destination      string
	pcsPerCarton     int
	requestedQty     int64
	confirmedQty     *int64
	price            UnitPrice
	subtotal         Amounts
	cartonCount      int64
	availability     Availability
	availabilityNote string

	guard guard.ConstructorGuard
}

// NewItem creates a pending line. Subtotal and carton count are computed immediately.
func NewItem(
	id kernel.UUID,
	productCode, productName, destination string,
	pcsPerCarton int,
	requestedQty int64,
	price UnitPrice,
) (*Item, error) {
	item := &Item{
		productName:  productName,
		destination:  strings.TrimSpace(destination),
		availability: Pending,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductCode(productCode),
		item.setPcsPerCarton(pcsPerCarton),
		item.setRequestedQty(requestedQty),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.recompute()
	return item, nil
}

// ItemState is the persisted form of an Item.
type ItemState struct {
	ID               kernel.UUID
	LineNumber       int
	ProductCode      string
	ProductName      string
	Destination      string
	PcsPerCarton     int
	RequestedQty     int64
	ConfirmedQty     *int64
	Price            UnitPrice
	Availability     Availability
	AvailabilityNote string
}

// RestoreItem rebuilds an item from storage. Derived fields are recomputed, and
// the availability/confirmed quantity pairing is checked.
func RestoreItem(s ItemState) (*Item, error) {
	item, err := NewItem(s.ID, s.ProductCode, s.ProductName, s.Destination, s.PcsPerCarton, s.RequestedQty, s.Price)
	if err != nil {
		return nil, err
	}

	if err = s.Availability.Validate(); err != nil {
		return nil, err
	}
	if err = checkConfirmedQty(s.Availability, s.ConfirmedQty, s.RequestedQty); err != nil {
		return nil, err
	}

	item.lineNumber = s.LineNumber
	item.availability = s.Availability
	item.availabilityNote = s.AvailabilityNote
	item.confirmedQty = copyQty(s.ConfirmedQty)
	item.recompute()
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) LineNumber() int { return i.lineNumber }
func (i *Item) ProductCode() string { return i.productCode }
func (i *Item) ProductName() string { return i.productName }
func (i *Item) Destination() string { return i.destination }
func (i *Item) PcsPerCarton() int { return i.pcsPerCarton }
func (i *Item) RequestedQty() int64 { return i.requestedQty }
func (i *Item) Price() UnitPrice { return i.price }
func (i *Item) Subtotal() Amounts { return i.subtotal }
func (i *Item) CartonCount() int64 { return i.cartonCount }
func (i *Item) Availability() Availability { return i.availability }
func (i *Item) AvailabilityNote() string { return i.availabilityNote }
func (i *Item) ConfirmedQty() *int64 { return copyQty(i.confirmedQty) }

// EffectiveQty is the confirmed quantity when set, the requested one otherwise.
func (i *Item) EffectiveQty() int64 {
	if i.confirmedQty != nil {
		return *i.confirmedQty
	}
	return i.requestedQty
}

// SetAvailability applies the supplier's decision for this line:
//   - Available sets the confirmed quantity to the requested quantity
//   - Partial requires qty in [0, requested]
//   - Unavailable sets it to 0
//   - Pending clears it
//
// On error the item is left untouched.
func (i *Item) SetAvailability(a Availability, qty *int64, note string) error {
	if err := a.Validate(); err != nil {
		return err
	}

	var confirmed *int64
	switch a {
	case Available:
		v := i.requestedQty
		confirmed = &v
	case Partial:
		if err := checkConfirmedQty(Partial, qty, i.requestedQty); err != nil {
			return err
		}
		confirmed = copyQty(qty)
	case Unavailable:
		var zero int64
		confirmed = &zero
	case Pending, UnknownAvailability:
	}

	i.availability = a
	i.confirmedQty = confirmed
	i.availabilityNote = strings.TrimSpace(note)
	i.recompute()
	return nil
}

// refreshPrice replaces the price snapshot.
func (i *Item) refreshPrice(p UnitPrice) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.price = p
	i.recompute()
	return nil
}

func (i *Item) recompute() {
	qty := i.EffectiveQty()
	i.subtotal = Amounts{
		Base:       qty * i.price.Base,
		Commission: qty * i.price.Commission,
		Final:      qty * i.price.Final(),
	}
	i.cartonCount = CartonCount(qty, i.pcsPerCarton)
}

// CartonCount is ceil(qty / pcsPerCarton); zero for non-positive input.
func CartonCount(qty int64, pcsPerCarton int) int64 {
	if qty <= 0 || pcsPerCarton <= 0 {
		return 0
	}
	per := int64(pcsPerCarton)
	return (qty + per - 1) / per
}

func checkConfirmedQty(a Availability, qty *int64, requested int64) error {
	switch a {
	case Pending:
		if qty != nil {
			return errs.NewInvalidQuantityError("confirmed quantity", qty, 0, 0)
		}
	case Available:
		if qty == nil || *qty != requested {
			return errs.NewInvalidQuantityError("confirmed quantity", qty, requested, requested)
		}
	case Partial:
		if qty == nil || *qty < 0 || *qty > requested {
			return errs.NewInvalidQuantityError("confirmed quantity", qty, 0, requested)
		}
	case Unavailable:
		if qty == nil || *qty != 0 {
			return errs.NewInvalidQuantityError("confirmed quantity", qty, 0, 0)
		}
	case UnknownAvailability:
	}
	return nil
}

func copyQty(q *int64) *int64 {
	if q == nil {
		return nil
	}
	v := *q
	return &v
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("product code")
	}
	i.productCode = code
	return nil
}

func (i *Item) setPcsPerCarton(pcs int) error {
	if pcs < 1 {
		return errs.NewValueIsInvalidErrorWithCause("pcs per carton is invalid", fmt.Errorf("%d is not greater than 0", pcs))
	}
	i.pcsPerCarton = pcs
	return nil
}

func (i *Item) setRequestedQty(qty int64) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requested quantity is invalid", fmt.Errorf("%d is not greater than 0", qty))
	}
	i.requestedQty = qty
	return nil
}

func (i *Item) setPrice(p UnitPrice) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.price = p
	return nil
}
