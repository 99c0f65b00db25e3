package queries

import (
	"context"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
)

// PriceReader resolves ledger entries; ports.PriceRepository satisfies it.
type PriceReader interface {
	LatestAt(ctx context.Context, productCode string, at time.Time) (pricing.Entry, error)
}

// ProductReader loads catalog entries; ports.ProductRepository satisfies it.
type ProductReader interface {
	Get(ctx context.Context, code string) (*product.Product, error)
}

// GetCurrentPriceQueryHandler returns the price entry effective on a day,
// today when the query names none. It surfaces errs.ObjectNotFoundError when no
// entry is effective yet.
//
// Example:
//
//	handler := NewGetCurrentPriceQueryHandler(priceRepo, clock)
//	query, err := NewGetCurrentPriceQuery("KR-001", nil)
//	if err != nil {
//	    return err
//	}
//	entry, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("No price yet")
//	}
//	fmt.Println(entry.Final())
type GetCurrentPriceQueryHandler struct {
	prices PriceReader
	clock  kernel.Clock
}

// NewGetCurrentPriceQueryHandler creates a handler over a price reader. The
// clock supplies today for queries without a date.
func NewGetCurrentPriceQueryHandler(prices PriceReader, clock kernel.Clock) GetCurrentPriceQueryHandler {
	return GetCurrentPriceQueryHandler{prices: prices, clock: clock}
}

// Handle looks the entry up by the start of the requested day.
func (h GetCurrentPriceQueryHandler) Handle(ctx context.Context, query GetCurrentPriceQuery) (pricing.Entry, error) {
	if err := query.Validate(); err != nil {
		return pricing.Entry{}, err
	}

	at := h.clock.Now()
	if query.At() != nil {
		at = *query.At()
	}
	return h.prices.LatestAt(ctx, query.ProductCode(), kernel.StartOfDay(at))
}

// GetProductQueryHandler returns a catalog product by code, inactive ones
// included.
//
// Example:
//
//	handler := NewGetProductQueryHandler(productRepo)
//	query, err := NewGetProductQuery("KR-001")
//	if err != nil {
//	    return err
//	}
//	p, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown product")
//	}
//	fmt.Println(p.DisplayName(), p.CBM())
type GetProductQueryHandler struct {
	products ProductReader
}

// NewGetProductQueryHandler creates a handler over a product reader.
func NewGetProductQueryHandler(products ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle returns an ObjectNotFoundError for an unknown code.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.Get(ctx, query.Code())
}
