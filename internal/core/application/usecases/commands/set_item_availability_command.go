package commands

import (
	"errors"
	"strings"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/guard"
)

var ErrSetItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetItemAvailabilityCommand must be created via NewSetItemAvailabilityCommand constructor",
)

// SetItemAvailabilityCommand records the supplier decision for one line.
// qty is read only for Partial; quantity bounds are checked by the order.
type SetItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	itemID       kernel.UUID
	availability order.Availability
	qty          *int64
	note         string
	actor        order.Actor

	guard guard.ConstructorGuard
}

func NewSetItemAvailabilityCommand(
	orderID, itemID kernel.UUID,
	availability order.Availability,
	qty *int64,
	note string,
	actor order.Actor,
) (SetItemAvailabilityCommand, error) {
	cmd := SetItemAvailabilityCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}
	if qty != nil {
		q := *qty
		cmd.qty = &q
	}

	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		availability.Validate(),
		actor.Validate(),
	); err != nil {
		return SetItemAvailabilityCommand{}, err
	}

	cmd.orderID = orderID
	cmd.itemID = itemID
	cmd.availability = availability
	cmd.actor = actor
	return cmd, nil
}

func (c SetItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetItemAvailabilityCommandIsNotConstructed)
}

func (c SetItemAvailabilityCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetItemAvailabilityCommand) ItemID() kernel.UUID { return c.itemID }
func (c SetItemAvailabilityCommand) Availability() order.Availability { return c.availability }
func (c SetItemAvailabilityCommand) Note() string { return c.note }
func (c SetItemAvailabilityCommand) Actor() order.Actor { return c.actor }

// Qty returns a copy of the confirmed quantity, nil when absent.
func (c SetItemAvailabilityCommand) Qty() *int64 {
	if c.qty == nil {
		return nil
	}
	q := *c.qty
	return &q
}
