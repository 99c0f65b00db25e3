package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/ports"
	"ruboard/internal/pkg/errs"
)

type catalogReader interface {
	PriceRepoFactory
	ProductRepoFactory
}

// currentPrice reports false when the product has no price effective at at.
func currentPrice(ctx context.Context, prices ports.PriceRepository, productCode string, at time.Time) (order.UnitPrice, bool, error) {
	entry, err := prices.LatestAt(ctx, productCode, at)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.UnitPrice{}, false, nil
	}
	if err != nil {
		return order.UnitPrice{}, false, err
	}
	return order.UnitPrice{Base: entry.Base(), Commission: entry.Commission()}, true, nil
}

// newOrderItem snapshots the product name, carton size and current price.
// A product without a price yet enters the order at zero.
func newOrderItem(ctx context.Context, uow catalogReader, line OrderLine, at time.Time) (*order.Item, error) {
	p, err := uow.ProductRepository().Get(ctx, line.ProductCode)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("product is invalid", fmt.Errorf("%s is inactive", p.Code()))
	}

	price, _, err := currentPrice(ctx, uow.PriceRepository(), p.Code(), at)
	if err != nil {
		return nil, err
	}

	return order.NewItem(kernel.NewUUID(), p.Code(), p.DisplayName(), line.Destination, p.PcsPerCarton(), line.Qty, price)
}
