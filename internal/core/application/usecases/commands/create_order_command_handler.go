package commands

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
)

// CreateOrderResult identifies the created order.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Number  string
}

// CreateOrderCommandHandler opens a DRAFT order. Every line is priced from the
// catalog and the price history at creation time, so later catalog edits never
// change an existing order. The order number comes from the region sequence of
// the order month and is allocated in the same transaction as the order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "RU", buyer, orderDate, []OrderLine{
//	    {ProductCode: "KR-001", Destination: "Moscow", Qty: 48},
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown product or no price yet")
//	}
//	log.Printf("Order %s created", res.Number)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for new orders.
// Requires an OrderUoWFactory for the transaction and the clock stamping the
// creation history entry.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle allocates the order number, snapshots every line from the catalog and
// stores the DRAFT order, all in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seq, err := uow.OrderNumberSequence().Next(ctx, order.NumberPrefix(cmd.Region(), cmd.OrderDate()))
	if err != nil {
		return CreateOrderResult{}, err
	}
	number, err := order.FormatNumber(cmd.Region(), cmd.OrderDate(), seq)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, cmd.Buyer(), cmd.OrderDate(), order.ActorBuyer, now)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = o.SetRequestedDeliveryDate(cmd.RequestedDeliveryDate()); err != nil {
		return CreateOrderResult{}, err
	}
	if cmd.BuyerRemark() != "" {
		if err = o.SetRemark(order.ActorBuyer, cmd.BuyerRemark()); err != nil {
			return CreateOrderResult{}, err
		}
	}

	for _, line := range cmd.Lines() {
		item, itemErr := newOrderItem(ctx, uow, line, now)
		if itemErr != nil {
			return CreateOrderResult{}, itemErr
		}
		if err = o.AddItem(item); err != nil {
			return CreateOrderResult{}, err
		}
	}
	order.RecomputeOrderTotals(o)

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: o.ID(), Number: o.Number()}, nil
}
