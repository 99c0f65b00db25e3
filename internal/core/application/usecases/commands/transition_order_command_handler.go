package commands

import (
	"context"
	"errors"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/domain/services"
	"ruboard/internal/core/ports"
	"ruboard/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies one status transition of the order
// workflow under the per-order lock.
//
// Confirming a DRAFT order first refreshes every item's price snapshot from
// the ledger; items whose product has no effective price keep the stored one.
// Moving a CONFIRMED order to PACKING issues its packing list in the same
// transaction: cartons, volume and net weight come from the catalog carton
// data, pallets and gross weight from the packing plan. A product missing
// from the catalog contributes no volume or weight.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, locker, kernel.SystemClock{}).
//	    WithPackingPlan(packing.DefaultPlan())
//	cmd, err := NewTransitionOrderCommand(orderID, order.Packing, order.ActorManager, "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	var illegal *errs.IllegalTransitionError
//	if errors.As(err, &illegal) {
//	    log.Printf("Cannot pack yet: %s", illegal.Reason)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.OrderLocker
	clock      kernel.Clock
	plan       packing.Plan
	aggregator services.Aggregator
}

// NewTransitionOrderCommandHandler creates a transition handler that packs
// with packing.DefaultPlan.
// Requires an OrderUoWFactory, an OrderLocker and the clock stamping history
// entries and packing lists.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.OrderLocker,
	clock kernel.Clock,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		plan:       packing.DefaultPlan(),
		aggregator: services.NewAggregator(),
	}
}

// WithPackingPlan returns a copy of the handler that palletizes with plan.
func (h TransitionOrderCommandHandler) WithPackingPlan(plan packing.Plan) TransitionOrderCommandHandler {
	h.plan = plan
	return h
}

// Handle loads the order, applies the transition and stores the order, plus
// the packing list when packing starts. It returns an IllegalTransitionError
// for an edge the workflow does not allow, an ObjectNotFoundError for an
// unknown order and a ConflictRetryError on a lost race.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withOrderLock(ctx, h.locker, cmd.OrderID(), func() error {
		return h.handle(ctx, cmd)
	})
}

func (h TransitionOrderCommandHandler) handle(ctx context.Context, cmd TransitionOrderCommand) error {
	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := o.Status()
	if from == order.Draft && cmd.Target() == order.Confirmed {
		if err = refreshPrices(ctx, uow.PriceRepository(), o, now); err != nil {
			return err
		}
	}

	if err = o.Transition(cmd.Target(), cmd.Actor(), cmd.Note(), now); err != nil {
		return err
	}
	order.RecomputeOrderTotals(o)

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if from == order.Confirmed && o.Status() == order.Packing {
		list, err := h.packingList(ctx, uow.ProductRepository(), o, now)
		if err != nil {
			return err
		}
		if err = uow.PackingListRepository().Add(ctx, list); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h TransitionOrderCommandHandler) packingList(
	ctx context.Context,
	products ports.ProductRepository,
	o *order.Order,
	now time.Time,
) (*packing.List, error) {
	cartons := make(map[string]product.Dimensions)
	lines := make([]services.PackingLine, 0, len(o.Items()))
	for _, item := range o.Items() {
		code := item.ProductCode()
		carton, seen := cartons[code]
		if !seen {
			p, err := products.Get(ctx, code)
			switch {
			case errors.Is(err, errs.ErrObjectNotFound):
				carton = product.Dimensions{}
			case err != nil:
				return nil, err
			default:
				carton = p.Carton()
			}
			cartons[code] = carton
		}
		lines = append(lines, services.PackingLine{
			ProductCode:     code,
			Cartons:         item.CartonCount(),
			CBMPerCarton:    carton.CBM(),
			WeightPerCarton: carton.WeightKg,
		})
	}

	summary := h.aggregator.PackingTotals(lines)
	totals := o.Totals()
	packed := h.plan.Totals(packing.Load{
		Qty:         totals.Quantity,
		Cartons:     summary.Cartons,
		CBM:         summary.CBM,
		NetWeightKg: summary.WeightKg,
		Amount:      totals.Final,
	})

	return packing.NewList(
		kernel.NewUUID(),
		o.ID(),
		o.Number(),
		o.Buyer().Name,
		h.aggregator.Destinations(services.ItemsFromOrder(o)),
		packed,
		now,
	)
}

func refreshPrices(ctx context.Context, prices ports.PriceRepository, o *order.Order, at time.Time) error {
	found := make(map[string]order.UnitPrice)
	looked := make(map[string]struct{})
	for _, item := range o.Items() {
		code := item.ProductCode()
		if _, seen := looked[code]; seen {
			continue
		}
		looked[code] = struct{}{}
		price, ok, err := currentPrice(ctx, prices, code, at)
		if err != nil {
			return err
		}
		if ok {
			found[code] = price
		}
	}

	return o.RefreshPrices(func(productCode string) (order.UnitPrice, bool) {
		price, ok := found[productCode]
		return price, ok
	})
}
