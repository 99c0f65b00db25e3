package commands

import (
	"errors"
	"strings"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a new status. For CANCELLED the
// note is stored as the cancellation reason.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   order.Actor
	note    string

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(orderID kernel.UUID, target order.Status, actor order.Actor, note string) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c TransitionOrderCommand) Note() string {
	return c.note
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
