package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Buyer references the purchasing company. Name is a snapshot used by reports.
type Buyer struct {
	ID   kernel.UUID
	Name string
}

func (b Buyer) Validate() error {
	var errList []error
	if err := b.ID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(b.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("buyer name"))
	}
	return errors.Join(errList...)
}

// Order is one buyer purchase request and the aggregate root of its items.
//
// Invariants:
//   - status changes only along the edges of Status
//   - totals.Final == totals.Base + totals.Commission after RecomputeOrderTotals
//   - history is append-only with non-decreasing timestamps
//   - an operation that returns an error leaves the order unmodified
type Order struct {
	id                    kernel.UUID
	number                string
	buyer                 Buyer
	orderDate             time.Time
	requestedDeliveryDate *time.Time
	status                Status
	items                 []*Item
	totals                Totals
	remarks               Remarks
	history               []HistoryEntry

	confirmedAt        *time.Time
	packedAt           *time.Time
	shippedAt          *time.Time
	completedAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string

	// version is the optimistic concurrency token loaded from storage.
	version int64

	guard guard.ConstructorGuard
}

// NewOrder creates an empty DRAFT order and records its creation in the history.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "RU-2026-03-0001", buyer, orderDate, order.ActorBuyer, clock.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, number string, buyer Buyer, orderDate time.Time, actor Actor, now time.Time) (*Order, error) {
	o := &Order{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyer(buyer),
		o.setOrderDate(orderDate),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	o.appendHistory(now, "order created", actor, "")
	return o, nil
}

// State is the persisted form of an Order.
type State struct {
	ID                    kernel.UUID
	Number                string
	Buyer                 Buyer
	OrderDate             time.Time
	RequestedDeliveryDate *time.Time
	Status                Status
	Items                 []*Item
	Totals                Totals
	Remarks               Remarks
	History               []HistoryEntry
	ConfirmedAt           *time.Time
	PackedAt              *time.Time
	ShippedAt             *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    string
	Version               int64
}

// RestoreOrder rebuilds an order loaded from storage. Stored totals must satisfy
// Final == Base + Commission; they are then recomputed from the items.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setBuyer(s.Buyer),
		o.setOrderDate(s.OrderDate),
		s.Status.Validate(),
		validateHistory(s.History),
		validateStoredTotals(s.Totals),
	); err != nil {
		return nil, err
	}
	if s.Version < 0 {
		return nil, errs.NewVersionIsInvalidError("order version", fmt.Errorf("%d is negative", s.Version))
	}

	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	items := make([]*Item, len(s.Items))
	copy(items, s.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].lineNumber < items[j].lineNumber })

	o.status = s.Status
	o.requestedDeliveryDate = s.RequestedDeliveryDate
	o.items = items
	o.remarks = s.Remarks
	o.history = append([]HistoryEntry(nil), s.History...)
	o.confirmedAt = s.ConfirmedAt
	o.packedAt = s.PackedAt
	o.shippedAt = s.ShippedAt
	o.completedAt = s.CompletedAt
	o.cancelledAt = s.CancelledAt
	o.cancellationReason = s.CancellationReason
	o.version = s.Version

	RecomputeOrderTotals(o)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Buyer() Buyer {
	return o.buyer
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) RequestedDeliveryDate() *time.Time {
	return o.requestedDeliveryDate
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) Remarks() Remarks {
	return o.remarks
}

// Items returns the lines ordered by line number.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// History returns a copy of the audit log.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }
func (o *Order) PackedAt() *time.Time { return o.packedAt }
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }
func (o *Order) CompletedAt() *time.Time { return o.completedAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

func (o *Order) Version() int64 {
	return o.version
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", itemID.String())
}

// SetRequestedDeliveryDate is allowed only in DRAFT.
func (o *Order) SetRequestedDeliveryDate(date *time.Time) error {
	if err := o.ensureDraft("edit"); err != nil {
		return err
	}
	o.requestedDeliveryDate = date
	return nil
}

// SetRemark replaces the remark of the given role. The system actor has none.
func (o *Order) SetRemark(actor Actor, text string) error {
	text = strings.TrimSpace(text)
	switch actor {
	case ActorBuyer:
		o.remarks.Buyer = text
	case ActorManager:
		o.remarks.Manager = text
	case ActorSupplier:
		o.remarks.Supplier = text
	case ActorSystem, UnknownActor:
		return errs.NewValueIsInvalidErrorWithCause("actor is invalid", fmt.Errorf("%s cannot leave remarks", actor))
	}
	return nil
}

// AddItem appends a line while the order is in DRAFT. The item receives the
// next line number.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.ensureDraft("add"); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.id.IsEqual(item.id) {
			return errs.NewValueIsInvalidErrorWithCause("order item is invalid", fmt.Errorf("item %s is already in the order", item.id))
		}
	}

	next := 1
	if n := len(o.items); n > 0 {
		next = o.items[n-1].lineNumber + 1
	}
	item.lineNumber = next
	o.items = append(o.items, item)
	return nil
}

// RemoveItem deletes a line while the order is in DRAFT.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.ensureDraft("remove"); err != nil {
		return err
	}
	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order item", itemID.String())
}

// RefreshPrices replaces the price snapshot of every item for which lookup
// reports a price. Items without a price keep their stored snapshot.
// Allowed only in DRAFT.
func (o *Order) RefreshPrices(lookup func(productCode string) (UnitPrice, bool)) error {
	if err := o.ensureDraft("reprice"); err != nil {
		return err
	}

	prices := make(map[kernel.UUID]UnitPrice, len(o.items))
	for _, item := range o.items {
		price, ok := lookup(item.productCode)
		if !ok {
			continue
		}
		if err := price.Validate(); err != nil {
			return err
		}
		prices[item.id] = price
	}

	for _, item := range o.items {
		if price, ok := prices[item.id]; ok {
			_ = item.refreshPrice(price)
		}
	}
	return nil
}

// Transition moves the order to target on behalf of actor.
//
// Beyond the edge set:
//   - DRAFT -> CONFIRMED requires at least one item
//   - CONFIRMED -> PACKING requires IsReadyForPacking
//
// On success the transition timestamp is set, note becomes the cancellation
// reason for CANCELLED, and a history entry is appended.
func (o *Order) Transition(target Status, actor Actor, note string, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	switch {
	case o.status == Draft && next == Confirmed && len(o.items) == 0:
		return errs.NewIllegalTransitionError("order", o.status.String(), next.String(), "order has no items")
	case o.status == Confirmed && next == Packing && !o.IsReadyForPacking():
		pending := o.AvailabilitySummary().Pending
		return errs.NewIllegalTransitionError("order", o.status.String(), next.String(),
			fmt.Sprintf("%d item(s) pending availability", pending))
	}

	note = strings.TrimSpace(note)
	at := o.appendHistory(now, statusChangedAction(next), actor, note)
	o.status = next

	switch next {
	case Confirmed:
		o.confirmedAt = &at
	case Packing:
		o.packedAt = &at
	case Shipped:
		o.shippedAt = &at
	case Completed:
		o.completedAt = &at
	case Cancelled:
		o.cancelledAt = &at
		o.cancellationReason = note
	case Draft, Unknown:
	}
	return nil
}

// SetItemAvailability records the supplier decision for one line. Allowed only
// while the order is CONFIRMED.
func (o *Order) SetItemAvailability(
	itemID kernel.UUID,
	availability Availability,
	qty *int64,
	note string,
	actor Actor,
	now time.Time,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if o.status != Confirmed {
		return errs.NewIllegalTransitionError("item availability", o.status.String(), availability.String(),
			"availability can be set only while the order is CONFIRMED")
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err = item.SetAvailability(availability, qty, note); err != nil {
		return err
	}

	o.appendHistory(now, availabilityChangedAction(item), actor, item.availabilityNote)
	return nil
}

// IsReadyForPacking is true iff the order has items and none is pending.
func (o *Order) IsReadyForPacking() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if item.availability == Pending {
			return false
		}
	}
	return true
}

// AvailabilitySummary counts the items per availability.
func (o *Order) AvailabilitySummary() AvailabilitySummary {
	var s AvailabilitySummary
	for _, item := range o.items {
		switch item.availability {
		case Pending:
			s.Pending++
		case Available:
			s.Available++
		case Partial:
			s.Partial++
		case Unavailable:
			s.Unavailable++
		case UnknownAvailability:
		}
	}
	return s
}

// appendHistory keeps timestamps non-decreasing and returns the recorded time.
func (o *Order) appendHistory(now time.Time, action string, actor Actor, note string) time.Time {
	at := now.UTC()
	if n := len(o.history); n > 0 && o.history[n-1].At.After(at) {
		at = o.history[n-1].At
	}
	o.history = append(o.history, HistoryEntry{At: at, Action: action, Actor: actor, Note: note})
	return at
}

func (o *Order) ensureDraft(operation string) error {
	if o.status != Draft {
		return errs.NewIllegalTransitionError("order items", o.status.String(), operation,
			"items and prices are editable only in DRAFT")
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := validateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setBuyer(b Buyer) error {
	if err := b.Validate(); err != nil {
		return err
	}
	o.buyer = Buyer{ID: b.ID, Name: strings.TrimSpace(b.Name)}
	return nil
}

func (o *Order) setOrderDate(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = kernel.StartOfDay(d)
	return nil
}

func validateHistory(history []HistoryEntry) error {
	for i := 1; i < len(history); i++ {
		if history[i].At.Before(history[i-1].At) {
			return errs.NewValueIsInvalidErrorWithCause("history is invalid", fmt.Errorf("entry %d is older than entry %d", i, i-1))
		}
	}
	return nil
}

func validateStoredTotals(t Totals) error {
	if t.Final != t.Base+t.Commission {
		return errs.NewValueIsInvalidErrorWithCause(
			"totals are invalid",
			fmt.Errorf("final %d is not base %d + commission %d", t.Final, t.Base, t.Commission),
		)
	}
	return nil
}
