package commands

import (
	"context"

	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"
)

// ReceiveLotCommandHandler books a received lot into inventory. The lot starts
// ACTIVE with its full quantity remaining.
//
// Example:
//
//	handler := NewReceiveLotCommandHandler(uowFactory, clock)
//	cmd, err := NewReceiveLotCommand(kernel.NewUUID(), "KR-001", "L-2024-031", &mfgDate, receivedDate, 480, "A-03")
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrValueIsInvalid) {
//	    log.Println("Lot number already used")
//	}
type ReceiveLotCommandHandler struct {
	uowFactory LotUoWFactory
	clock      kernel.Clock
}

// NewReceiveLotCommandHandler creates a handler for lot receipts.
func NewReceiveLotCommandHandler(uowFactory LotUoWFactory, clock kernel.Clock) ReceiveLotCommandHandler {
	return ReceiveLotCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with ObjectNotFoundError for an unknown product and with
// ValueIsInvalidError for a lot number already in use.
func (h ReceiveLotCommandHandler) Handle(ctx context.Context, cmd ReceiveLotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	received := cmd.ReceivedDate()
	if received.IsZero() {
		received = h.clock.Now()
	}

	lot, err := inventory.NewLot(cmd.LotID(), cmd.ProductCode(), cmd.LotNumber(), cmd.ManufacturedDate(),
		received, cmd.Qty(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductCode()); err != nil {
		return err
	}
	if err = uow.LotRepository().Add(ctx, lot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AdjustLotQuantityResult is the lot state after the adjustment.
type AdjustLotQuantityResult struct {
	LotNumber    string
	RemainingQty int64
	Status       inventory.LotStatus
}

// AdjustLotQuantityCommandHandler adds a signed delta to the remaining quantity
// of a lot. A lot drained to zero becomes DEPLETED.
//
// Example:
//
//	handler := NewAdjustLotQuantityCommandHandler(uowFactory)
//	cmd, err := NewAdjustLotQuantityCommand("L-2024-031", -48)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    log.Println("Not enough left in the lot")
//	}
//	log.Printf("%s: %d left", res.LotNumber, res.RemainingQty)
type AdjustLotQuantityCommandHandler struct {
	uowFactory LotUoWFactory
}

// NewAdjustLotQuantityCommandHandler creates a handler for lot adjustments.
func NewAdjustLotQuantityCommandHandler(uowFactory LotUoWFactory) AdjustLotQuantityCommandHandler {
	return AdjustLotQuantityCommandHandler{uowFactory: uowFactory}
}

// Handle holds the lot row lock from read to commit, so concurrent
// adjustments of one lot apply one after another.
func (h AdjustLotQuantityCommandHandler) Handle(ctx context.Context, cmd AdjustLotQuantityCommand) (AdjustLotQuantityResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdjustLotQuantityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdjustLotQuantityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lotRepo := uow.LotRepository()
	lot, err := lotRepo.GetForUpdate(ctx, cmd.LotNumber())
	if err != nil {
		return AdjustLotQuantityResult{}, err
	}

	if err = lot.AdjustQuantity(cmd.Delta()); err != nil {
		return AdjustLotQuantityResult{}, err
	}

	if err = lotRepo.Update(ctx, lot); err != nil {
		return AdjustLotQuantityResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdjustLotQuantityResult{}, err
	}

	return AdjustLotQuantityResult{
		LotNumber:    lot.LotNumber(),
		RemainingQty: lot.RemainingQty(),
		Status:       lot.Status(),
	}, nil
}
