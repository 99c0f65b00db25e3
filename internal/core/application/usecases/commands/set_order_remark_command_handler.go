package commands

import (
	"context"

	"ruboard/internal/core/ports"
)

// SetOrderRemarkCommandHandler stores the buyer, manager or supplier remark
// of an order. Remarks are free text outside the status workflow, so they can
// be written in any status, terminal ones included. The write is guarded by
// the per-order lock and the version check like every other order mutation.
//
// Example:
//
//	handler := NewSetOrderRemarkCommandHandler(uowFactory, locker)
//	cmd, err := NewSetOrderRemarkCommand(orderID, order.ActorSupplier, "ships from the Incheon warehouse")
//	if err != nil {
//	    return err
//	}
//	switch err = handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrConflictRetry):
//	    log.Println("Order changed meanwhile, retry")
//	case err != nil:
//	    log.Printf("Remark not saved: %v", err)
//	}
type SetOrderRemarkCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
}

// NewSetOrderRemarkCommandHandler creates a handler for order remarks.
// Requires an OrderUoWFactory for the version-checked update and an
// OrderLocker to serialize writers of the same order.
func NewSetOrderRemarkCommandHandler(uowFactory OrderUoWFactory, locker ports.OrderLocker) SetOrderRemarkCommandHandler {
	return SetOrderRemarkCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle loads the order, replaces the remark of the command's actor and
// stores the order. It returns an ObjectNotFoundError for an unknown order and
// a ConflictRetryError when another writer got there first.
func (h SetOrderRemarkCommandHandler) Handle(ctx context.Context, cmd SetOrderRemarkCommand) error {
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

		if err = o.SetRemark(cmd.Actor(), cmd.Text()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
