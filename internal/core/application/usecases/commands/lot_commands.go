package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var (
	ErrReceiveLotCommandIsNotConstructed = errors.New(
		"ReceiveLotCommand must be created via NewReceiveLotCommand constructor",
	)
	ErrAdjustLotQuantityCommandIsNotConstructed = errors.New(
		"AdjustLotQuantityCommand must be created via NewAdjustLotQuantityCommand constructor",
	)
)

// ReceiveLotCommand registers stock received for a product. A zero
// receivedDate means today; a nil manufacturedDate means unknown.
type ReceiveLotCommand struct { //nolint:recvcheck //using for validation
	lotID            kernel.UUID
	productCode      string
	lotNumber        string
	manufacturedDate *time.Time
	receivedDate     time.Time
	qty              int64
	location         string

	guard guard.ConstructorGuard
}

func NewReceiveLotCommand(
	lotID kernel.UUID,
	productCode, lotNumber string,
	manufacturedDate *time.Time,
	receivedDate time.Time,
	qty int64,
	location string,
) (ReceiveLotCommand, error) {
	cmd := ReceiveLotCommand{
		lotID:        lotID,
		productCode:  strings.TrimSpace(productCode),
		lotNumber:    strings.TrimSpace(lotNumber),
		receivedDate: receivedDate,
		qty:          qty,
		location:     strings.TrimSpace(location),
		guard:        guard.NewConstructorGuard(),
	}
	if manufacturedDate != nil {
		d := *manufacturedDate
		cmd.manufacturedDate = &d
	}

	var errList []error
	if err := lotID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if cmd.productCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if cmd.lotNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("lot number"))
	}
	if qty <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("lot quantity is invalid", fmt.Errorf("%d is not greater than 0", qty)))
	}
	if err := errors.Join(errList...); err != nil {
		return ReceiveLotCommand{}, err
	}

	return cmd, nil
}

func (c ReceiveLotCommand) Validate() error {
	return c.guard.Validate(ErrReceiveLotCommandIsNotConstructed)
}

func (c ReceiveLotCommand) LotID() kernel.UUID { return c.lotID }
func (c ReceiveLotCommand) ProductCode() string { return c.productCode }
func (c ReceiveLotCommand) LotNumber() string { return c.lotNumber }
func (c ReceiveLotCommand) ManufacturedDate() *time.Time { return c.manufacturedDate }
func (c ReceiveLotCommand) ReceivedDate() time.Time { return c.receivedDate }
func (c ReceiveLotCommand) Qty() int64 { return c.qty }
func (c ReceiveLotCommand) Location() string { return c.location }

// AdjustLotQuantityCommand applies a signed delta to a lot. Positive deltas
// restock, negative ones consume.
type AdjustLotQuantityCommand struct { //nolint:recvcheck //using for validation
	lotNumber string
	delta     int64

	guard guard.ConstructorGuard
}

func NewAdjustLotQuantityCommand(lotNumber string, delta int64) (AdjustLotQuantityCommand, error) {
	cmd := AdjustLotQuantityCommand{
		lotNumber: strings.TrimSpace(lotNumber),
		delta:     delta,
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.lotNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("lot number"))
	}
	if delta == 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity delta is invalid", errors.New("0 changes nothing")))
	}
	if err := errors.Join(errList...); err != nil {
		return AdjustLotQuantityCommand{}, err
	}

	return cmd, nil
}

func (c AdjustLotQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustLotQuantityCommandIsNotConstructed)
}

func (c AdjustLotQuantityCommand) LotNumber() string {
	return c.lotNumber
}

func (c AdjustLotQuantityCommand) Delta() int64 {
	return c.delta
}
