package commands

import (
	"context"
	"errors"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/pkg/errs"
)

// RecordPriceChangeResult holds the entry effective after the call. Appended
// is false when that entry already carried the same price and nothing was
// recorded.
type RecordPriceChangeResult struct {
	Entry    pricing.Entry
	Appended bool
}

// RecordPriceChangeCommandHandler appends an entry to the price history of a
// product. When the price already effective on that date is the same, nothing
// is appended and the existing entry is returned.
//
// Example:
//
//	handler := NewRecordPriceChangeCommandHandler(uowFactory, clock)
//	cmd, err := NewRecordPriceChangeCommand("KR-001", 1000, 120, effectiveDate)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !res.Appended {
//	    log.Println("Price unchanged")
//	}
type RecordPriceChangeCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

// NewRecordPriceChangeCommandHandler creates a handler for price changes.
// The clock stamps the recording time of each entry.
func NewRecordPriceChangeCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) RecordPriceChangeCommandHandler {
	return RecordPriceChangeCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns an ObjectNotFoundError for an unknown product.
func (h RecordPriceChangeCommandHandler) Handle(ctx context.Context, cmd RecordPriceChangeCommand) (RecordPriceChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordPriceChangeResult{}, err
	}

	entry, err := pricing.NewEntry(cmd.ProductCode(), cmd.Base(), cmd.Commission(), cmd.EffectiveDate(), h.clock.Now())
	if err != nil {
		return RecordPriceChangeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RecordPriceChangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductCode()); err != nil {
		return RecordPriceChangeResult{}, err
	}

	prices := uow.PriceRepository()
	current, err := prices.LatestAt(ctx, entry.ProductCode(), entry.EffectiveDate())
	switch {
	case err == nil && current.SamePrice(entry):
		return RecordPriceChangeResult{Entry: current, Appended: false}, nil
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return RecordPriceChangeResult{}, err
	}

	stored, err := prices.Append(ctx, entry)
	if err != nil {
		return RecordPriceChangeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordPriceChangeResult{}, err
	}

	return RecordPriceChangeResult{Entry: stored, Appended: true}, nil
}
