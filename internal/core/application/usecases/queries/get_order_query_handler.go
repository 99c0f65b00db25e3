package queries

import (
	"context"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderReader loads an order aggregate; ports.OrderRepository satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler reads the aggregate through the repository so the view
// is built from validated state, then joins carton data from the catalog for
// packing totals.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(orderRepo, db)
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Println("Unknown order")
//	}
//	fmt.Println(view.Number, view.Status, view.Destinations)
type GetOrderQueryHandler struct {
	orders     OrderReader
	db         *gorm.DB
	aggregator services.Aggregator
}

// NewGetOrderQueryHandler creates a handler over an order reader and the
// database holding the catalog.
func NewGetOrderQueryHandler(orders OrderReader, db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:     orders,
		db:         db,
		aggregator: services.NewAggregator(),
	}
}

// Handle returns an ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	cartons, err := h.cartonData(ctx, o)
	if err != nil {
		return OrderView{}, err
	}

	return h.view(o, cartons), nil
}

type cartonRow struct {
	Code           string
	CartonWidthCm  decimal.Decimal
	CartonHeightCm decimal.Decimal
	CartonDepthCm  decimal.Decimal
	CartonWeightKg decimal.Decimal
}

func (r cartonRow) dimensions() product.Dimensions {
	return product.Dimensions{
		WidthCm:  r.CartonWidthCm,
		HeightCm: r.CartonHeightCm,
		DepthCm:  r.CartonDepthCm,
		WeightKg: r.CartonWeightKg,
	}
}

func (h GetOrderQueryHandler) cartonData(ctx context.Context, o *order.Order) (map[string]cartonRow, error) {
	codes := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range o.Items() {
		if _, ok := seen[item.ProductCode()]; ok {
			continue
		}
		seen[item.ProductCode()] = struct{}{}
		codes = append(codes, item.ProductCode())
	}

	result := make(map[string]cartonRow, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	var rows []cartonRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT code, carton_width_cm, carton_height_cm, carton_depth_cm, carton_weight_kg
		FROM products
		WHERE code IN ?
	`, codes).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.Code] = row
	}
	return result, nil
}

func (h GetOrderQueryHandler) view(o *order.Order, cartons map[string]cartonRow) OrderView {
	v := OrderView{
		ID:                    o.ID(),
		Number:                o.Number(),
		Buyer:                 o.Buyer(),
		OrderDate:             o.OrderDate(),
		RequestedDeliveryDate: o.RequestedDeliveryDate(),
		Status:                o.Status(),
		Totals:                o.Totals(),
		Remarks:               o.Remarks(),
		ConfirmedAt:           o.ConfirmedAt(),
		PackedAt:              o.PackedAt(),
		ShippedAt:             o.ShippedAt(),
		CompletedAt:           o.CompletedAt(),
		CancelledAt:           o.CancelledAt(),
		CancellationReason:    o.CancellationReason(),
		Version:               o.Version(),
		History:               o.History(),
		Availability:          o.AvailabilitySummary(),
		ReadyForPacking:       o.IsReadyForPacking(),
	}

	lines := make([]services.PackingLine, 0, len(o.Items()))
	for _, item := range o.Items() {
		v.Items = append(v.Items, OrderItemView{
			ID:               item.ID(),
			LineNumber:       item.LineNumber(),
			ProductCode:      item.ProductCode(),
			ProductName:      item.ProductName(),
			Destination:      item.Destination(),
			PcsPerCarton:     item.PcsPerCarton(),
			RequestedQty:     item.RequestedQty(),
			ConfirmedQty:     item.ConfirmedQty(),
			EffectiveQty:     item.EffectiveQty(),
			UnitPrice:        item.Price(),
			Subtotal:         item.Subtotal(),
			CartonCount:      item.CartonCount(),
			Availability:     item.Availability(),
			AvailabilityNote: item.AvailabilityNote(),
		})

		carton := cartons[item.ProductCode()].dimensions()
		lines = append(lines, services.PackingLine{
			ProductCode:     item.ProductCode(),
			Cartons:         item.CartonCount(),
			CBMPerCarton:    carton.CBM(),
			WeightPerCarton: carton.WeightKg,
		})
	}

	items := services.ItemsFromOrder(o)
	v.ProductGroups = h.aggregator.GroupByProduct(items)
	v.DestinationTotals = h.aggregator.TotalsByDestination(items)
	v.Destinations = h.aggregator.Destinations(items)
	v.Packing = h.aggregator.PackingTotals(lines)
	return v
}
