package commands

import (
	"errors"
	"fmt"
	"strings"

	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeactivateProductCommandIsNotConstructed = errors.New(
		"DeactivateProductCommand must be created via NewDeactivateProductCommand constructor",
	)
)

// PriceChange carries the price fields of a product edit. A nil field keeps
// the amount of the entry currently in effect.
type PriceChange struct {
	Base       *int64
	Commission *int64
}

func (c PriceChange) isEmpty() bool {
	return c.Base == nil && c.Commission == nil
}

// UpdateProductCommand edits catalog fields of a product and, when price
// fields are present, records a new price effective today.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	code    string
	changes product.Changes
	price   PriceChange

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(code string, changes product.Changes, price PriceChange) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		code:    strings.TrimSpace(code),
		changes: changes,
		price:   price,
		guard:   guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if changes.IsEmpty() && price.isEmpty() {
		errList = append(errList, errs.NewValueIsRequiredError("product changes"))
	}
	if changes.Carton != nil {
		errList = append(errList, changes.Carton.Validate())
	}
	if price.Base != nil && *price.Base < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base price is invalid", fmt.Errorf("%d is negative", *price.Base)))
	}
	if price.Commission != nil && *price.Commission < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("commission is invalid", fmt.Errorf("%d is negative", *price.Commission)))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Code() string {
	return c.code
}

func (c UpdateProductCommand) Changes() product.Changes {
	return c.changes
}

func (c UpdateProductCommand) Price() PriceChange {
	return c.price
}

// DeactivateProductCommand withdraws a product from new orders.
type DeactivateProductCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewDeactivateProductCommand(code string) (DeactivateProductCommand, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DeactivateProductCommand{}, errs.NewValueIsRequiredError("product code")
	}
	return DeactivateProductCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateProductCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateProductCommandIsNotConstructed)
}

func (c DeactivateProductCommand) Code() string {
	return c.code
}
