package commands

import (
	"context"
	"errors"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"
)

// UpdateProductResult is the product after the edit. Price is set only when
// a new ledger entry was appended.
type UpdateProductResult struct {
	Product *product.Product
	Price   *pricing.Entry
}

// UpdateProductCommandHandler edits a catalog entry in one transaction.
// Catalog fields are applied to the product and stored; the carton volume
// follows the new dimensions. Price fields are merged with the entry in
// effect today, and a new entry effective today is appended only when the
// merged price differs from it. A product without any price compares
// against zero.
//
// Example:
//
//	handler := NewUpdateProductCommandHandler(uowFactory, clock)
//	pcs := 30
//	base := int64(1500)
//	cmd, err := NewUpdateProductCommand("KR-001",
//	    product.Changes{PcsPerCarton: &pcs},
//	    PriceChange{Base: &base})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Unknown product")
//	case err != nil:
//	    log.Printf("Update failed: %v", err)
//	case res.Price != nil:
//	    log.Printf("New price %d from today", res.Price.Final())
//	}
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

// NewUpdateProductCommandHandler creates a handler for product edits.
// The clock dates the price entries it appends.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the product, applies the edit and stores it. An edit that
// would leave the product invalid fails with a validation error and nothing
// is written. An unknown code returns an ObjectNotFoundError.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (UpdateProductResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateProductResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateProductResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	p, err := products.Get(ctx, cmd.Code())
	if err != nil {
		return UpdateProductResult{}, err
	}

	if !cmd.Changes().IsEmpty() {
		if err = p.Apply(cmd.Changes()); err != nil {
			return UpdateProductResult{}, err
		}
		if err = products.Update(ctx, p); err != nil {
			return UpdateProductResult{}, err
		}
	}

	result := UpdateProductResult{Product: p}
	if !cmd.Price().isEmpty() {
		entry, appended, priceErr := h.changePrice(ctx, uow, p.Code(), cmd.Price())
		if priceErr != nil {
			return UpdateProductResult{}, priceErr
		}
		if appended {
			result.Price = &entry
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateProductResult{}, err
	}

	return result, nil
}

func (h UpdateProductCommandHandler) changePrice(
	ctx context.Context,
	uow CatalogUoW,
	code string,
	change PriceChange,
) (pricing.Entry, bool, error) {
	now := h.clock.Now()
	prices := uow.PriceRepository()

	var base, commission int64
	current, err := prices.LatestAt(ctx, code, now)
	switch {
	case err == nil:
		base, commission = current.Base(), current.Commission()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return pricing.Entry{}, false, err
	}

	nextBase, nextCommission := base, commission
	if change.Base != nil {
		nextBase = *change.Base
	}
	if change.Commission != nil {
		nextCommission = *change.Commission
	}
	if nextBase == base && nextCommission == commission {
		return pricing.Entry{}, false, nil
	}

	entry, err := pricing.NewEntry(code, nextBase, nextCommission, now, now)
	if err != nil {
		return pricing.Entry{}, false, err
	}
	stored, err := prices.Append(ctx, entry)
	if err != nil {
		return pricing.Entry{}, false, err
	}
	return stored, true, nil
}

// DeactivateProductCommandHandler marks a product inactive. New order lines
// for an inactive product are rejected; orders that already hold it keep
// their lines. Deactivating an inactive product succeeds without a write.
//
// Example:
//
//	handler := NewDeactivateProductCommandHandler(uowFactory)
//	cmd, _ := NewDeactivateProductCommand("KR-001")
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown product")
//	}
type DeactivateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeactivateProductCommandHandler creates a handler for product deactivation.
func NewDeactivateProductCommandHandler(uowFactory CatalogUoWFactory) DeactivateProductCommandHandler {
	return DeactivateProductCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for an unknown code.
func (h DeactivateProductCommandHandler) Handle(ctx context.Context, cmd DeactivateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	p, err := products.Get(ctx, cmd.Code())
	if err != nil {
		return err
	}
	if !p.IsActive() {
		return nil
	}

	p.Deactivate()
	if err = products.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
