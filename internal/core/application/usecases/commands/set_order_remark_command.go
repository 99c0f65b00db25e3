package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

const maxRemarkLength = 2000

var ErrSetOrderRemarkCommandIsNotConstructed = errors.New(
	"SetOrderRemarkCommand must be created via NewSetOrderRemarkCommand constructor",
)

// SetOrderRemarkCommand replaces the remark of one role on an order. An empty
// text clears it.
type SetOrderRemarkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	text    string

	guard guard.ConstructorGuard
}

func NewSetOrderRemarkCommand(orderID kernel.UUID, actor order.Actor, text string) (SetOrderRemarkCommand, error) {
	text = strings.TrimSpace(text)

	var errList []error
	errList = append(errList, orderID.Validate(), actor.Validate())
	if actor == order.ActorSystem {
		errList = append(errList, errs.NewValueIsInvalidError("system actor has no remark"))
	}
	if n := utf8.RuneCountInString(text); n > maxRemarkLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("remark length", n, 0, maxRemarkLength))
	}
	if err := errors.Join(errList...); err != nil {
		return SetOrderRemarkCommand{}, err
	}

	return SetOrderRemarkCommand{
		orderID: orderID,
		actor:   actor,
		text:    text,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderRemarkCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderRemarkCommandIsNotConstructed)
}

func (c SetOrderRemarkCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderRemarkCommand) Actor() order.Actor {
	return c.actor
}

func (c SetOrderRemarkCommand) Text() string {
	return c.text
}
