package commands

import (
	"errors"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
		"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
	)
)

// AddOrderItemCommand appends a line to a DRAFT order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	line    OrderLine

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID kernel.UUID, line OrderLine) (AddOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), line.validate()); err != nil {
		return AddOrderItemCommand{}, err
	}
	return AddOrderItemCommand{
		orderID: orderID,
		line:    line,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) Line() OrderLine {
	return c.line
}

// RemoveOrderItemCommand deletes a line from a DRAFT order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(orderID, itemID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	return RemoveOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
