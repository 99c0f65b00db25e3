package commands

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/ports"
)

// SetItemAvailabilityCommandHandler records the supplier's answer for one order
// line. Available confirms the requested quantity, Partial an explicit one and
// Unavailable zero. The order totals follow the effective quantities.
//
// Example:
//
//	handler := NewSetItemAvailabilityCommandHandler(uowFactory, locker, clock)
//	qty := int64(30)
//	cmd, err := NewSetItemAvailabilityCommand(orderID, itemID, order.Partial, &qty, "short on cartons", order.ActorSupplier)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrConflictRetry) {
//	    log.Println("Order changed meanwhile, retry")
//	}
type SetItemAvailabilityCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	clock      kernel.Clock
}

// NewSetItemAvailabilityCommandHandler creates a handler for availability answers.
// Requires an OrderUoWFactory, an OrderLocker and the clock stamping the answer.
func NewSetItemAvailabilityCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	clock kernel.Clock,
) SetItemAvailabilityCommandHandler {
	return SetItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
	}
}

// Handle updates the item, recomputes the order totals from the effective
// quantities and stores the order.
func (h SetItemAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetItemAvailabilityCommand) error {
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

		if err = o.SetItemAvailability(cmd.ItemID(), cmd.Availability(), cmd.Qty(), cmd.Note(), cmd.Actor(), h.clock.Now()); err != nil {
			return err
		}
		order.RecomputeOrderTotals(o)

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
