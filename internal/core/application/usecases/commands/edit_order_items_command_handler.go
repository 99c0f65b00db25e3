package commands

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/ports"
)

// AddOrderItemCommandHandler appends a line to a DRAFT order. The line is priced
// from the catalog at the moment it is added and the order totals are
// recomputed before the order is stored.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory, locker, clock)
//	cmd, err := NewAddOrderItemCommand(orderID, OrderLine{ProductCode: "KR-002", Destination: "Kazan", Qty: 24})
//	if err != nil {
//	    return err
//	}
//	itemID, err := handler.Handle(ctx, cmd)
//	var illegal *errs.IllegalTransitionError
//	if errors.As(err, &illegal) {
//	    log.Println("Order is no longer a draft")
//	}
//	log.Printf("Item %s added", itemID)
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	clock      kernel.Clock
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
// Requires an OrderUoWFactory, an OrderLocker and the clock used to pick the
// effective price.
func NewAddOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	clock kernel.Clock,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
	}
}

// Handle returns the id of the new item. An order outside DRAFT fails with an
// IllegalTransitionError, a concurrent writer with a ConflictRetryError.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var itemID kernel.UUID
	err := withOrderLock(ctx, h.locker, cmd.OrderID(), func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		item, err := newOrderItem(ctx, uow, cmd.Line(), h.clock.Now())
		if err != nil {
			return err
		}
		if err = o.AddItem(item); err != nil {
			return err
		}
		order.RecomputeOrderTotals(o)

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}

		itemID = item.ID()
		return nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return itemID, nil
}

// RemoveOrderItemCommandHandler deletes a line from a DRAFT order and recomputes
// the totals. A draft may end up empty; confirming it then fails.
//
// Example:
//
//	handler := NewRemoveOrderItemCommandHandler(uowFactory, locker)
//	cmd, err := NewRemoveOrderItemCommand(orderID, itemID)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown order or item")
//	}
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
}

// NewRemoveOrderItemCommandHandler creates a handler for removing order lines.
// Requires an OrderUoWFactory and an OrderLocker.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, locker ports.OrderLocker) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle returns an ObjectNotFoundError for an unknown order or item and an
// IllegalTransitionError when the order is not a draft.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withOrderLock(ctx, h.locker, cmd.OrderID(), func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.RemoveItem(cmd.ItemID()); err != nil {
			return err
		}
		order.RecomputeOrderTotals(o)

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
