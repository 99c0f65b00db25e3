package http

import (
	"time"

	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func toDatePtr(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}

func fromDatePtr(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func orderResponse(v queries.OrderView) Order {
	resp := Order{
		ID:                    v.ID.Bytes(),
		Number:                v.Number,
		BuyerID:               v.Buyer.ID.Bytes(),
		BuyerName:             v.Buyer.Name,
		OrderDate:             toDate(v.OrderDate),
		RequestedDeliveryDate: toDatePtr(v.RequestedDeliveryDate),
		Status:                v.Status.String(),
		Totals: OrderTotals{
			Quantity: v.Totals.Quantity,
			Cartons:  v.Totals.Cartons,
			Amounts: Amounts{
				Base:       v.Totals.Base,
				Commission: v.Totals.Commission,
				Final:      v.Totals.Final,
			},
		},
		Remarks: Remarks{
			Buyer:    v.Remarks.Buyer,
			Manager:  v.Remarks.Manager,
			Supplier: v.Remarks.Supplier,
		},
		ConfirmedAt:        v.ConfirmedAt,
		PackedAt:           v.PackedAt,
		ShippedAt:          v.ShippedAt,
		CompletedAt:        v.CompletedAt,
		CancelledAt:        v.CancelledAt,
		CancellationReason: v.CancellationReason,
		Version:            v.Version,
		Items:              make([]OrderItem, 0, len(v.Items)),
		History:            make([]HistoryEntry, 0, len(v.History)),
		ProductGroups:      productGroups(v.ProductGroups),
		DestinationTotals:  make(map[string]DestinationTotal, len(v.DestinationTotals)),
		Destinations:       v.Destinations,
		Availability: AvailabilitySummary{
			Pending:     v.Availability.Pending,
			Available:   v.Availability.Available,
			Partial:     v.Availability.Partial,
			Unavailable: v.Availability.Unavailable,
		},
		ReadyForPacking: v.ReadyForPacking,
		Packing: Packing{
			Cartons:  v.Packing.Cartons,
			CBM:      v.Packing.CBM.StringFixed(3),
			WeightKg: v.Packing.WeightKg.StringFixed(2),
		},
	}
	if resp.Destinations == nil {
		resp.Destinations = []string{}
	}

	for _, item := range v.Items {
		resp.Items = append(resp.Items, OrderItem{
			ID:           item.ID.Bytes(),
			LineNumber:   item.LineNumber,
			ProductCode:  item.ProductCode,
			ProductName:  item.ProductName,
			Destination:  item.Destination,
			PcsPerCarton: item.PcsPerCarton,
			RequestedQty: item.RequestedQty,
			ConfirmedQty: item.ConfirmedQty,
			EffectiveQty: item.EffectiveQty,
			UnitPrice: UnitPrice{
				Base:       item.UnitPrice.Base,
				Commission: item.UnitPrice.Commission,
				Final:      item.UnitPrice.Final(),
			},
			Subtotal: Amounts{
				Base:       item.Subtotal.Base,
				Commission: item.Subtotal.Commission,
				Final:      item.Subtotal.Final,
			},
			CartonCount:      item.CartonCount,
			Availability:     item.Availability.String(),
			AvailabilityNote: item.AvailabilityNote,
		})
	}
	for _, h := range v.History {
		resp.History = append(resp.History, HistoryEntry{
			At:     h.At,
			Action: h.Action,
			Actor:  h.Actor.String(),
			Note:   h.Note,
		})
	}
	for dest, total := range v.DestinationTotals {
		resp.DestinationTotals[dest] = DestinationTotal{Qty: total.Qty, Amount: total.Amount}
	}
	return resp
}

func productGroups(groups []services.ProductGroup) []ProductGroup {
	result := make([]ProductGroup, 0, len(groups))
	for _, g := range groups {
		cells := make(map[string]DestinationCell, len(g.ByDestination))
		for dest, cell := range g.ByDestination {
			cells[dest] = DestinationCell{Qty: cell.Qty, Subtotal: cell.Subtotal}
		}
		result = append(result, ProductGroup{
			ProductCode:   g.ProductCode,
			ProductName:   g.ProductName,
			ByDestination: cells,
			TotalQty:      g.TotalQty,
			TotalAmount:   g.TotalAmount,
		})
	}
	return result
}

func orderPageResponse(page queries.OrderPage) OrderPage {
	resp := OrderPage{
		Orders: make([]OrderSummary, 0, len(page.Orders)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, o := range page.Orders {
		resp.Orders = append(resp.Orders, OrderSummary{
			ID:            o.ID.Bytes(),
			Number:        o.Number,
			BuyerID:       o.BuyerID.Bytes(),
			BuyerName:     o.BuyerName,
			OrderDate:     toDate(o.OrderDate),
			Status:        o.Status.String(),
			TotalQuantity: o.TotalQuantity,
			TotalCartons:  o.TotalCartons,
			TotalFinal:    o.TotalFinal,
			ItemCount:     o.ItemCount,
		})
	}
	return resp
}

func buyerStatsResponse(stats []services.BuyerStat) []BuyerStat {
	resp := make([]BuyerStat, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, BuyerStat{
			BuyerID:        s.BuyerID.Bytes(),
			BuyerName:      s.BuyerName,
			OrderCount:     s.OrderCount,
			CompletedCount: s.CompletedCount,
			TotalAmount:    s.TotalAmount,
		})
	}
	return resp
}

func productStatsResponse(stats []services.ProductStat) []ProductStat {
	resp := make([]ProductStat, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, ProductStat(s))
	}
	return resp
}

func statusCountsResponse(counts []queries.StatusCount) []StatusCount {
	resp := make([]StatusCount, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, StatusCount{Status: c.Status.String(), Count: c.Count})
	}
	return resp
}

func productResponse(p *product.Product) Product {
	carton := p.Carton()
	return Product{
		Code:         p.Code(),
		NameKo:       p.NameKo(),
		NameEn:       p.NameEn(),
		DisplayName:  p.DisplayName(),
		PcsPerCarton: p.PcsPerCarton(),
		Carton: Carton{
			WidthCm:  carton.WidthCm.String(),
			HeightCm: carton.HeightCm.String(),
			DepthCm:  carton.DepthCm.String(),
			WeightKg: carton.WeightKg.String(),
		},
		CBM:    p.CBM().StringFixed(3),
		Status: p.Status().String(),
	}
}

func priceResponse(e pricing.Entry) Price {
	return Price{
		ID:            e.ID(),
		ProductCode:   e.ProductCode(),
		Base:          e.Base(),
		Commission:    e.Commission(),
		Final:         e.Final(),
		EffectiveDate: toDate(e.EffectiveDate()),
		RecordedAt:    e.RecordedAt(),
	}
}

func lotsResponse(lots []queries.ActiveLot) []Lot {
	resp := make([]Lot, 0, len(lots))
	for _, l := range lots {
		resp = append(resp, Lot{
			ID:                       l.ID.Bytes(),
			LotNumber:                l.LotNumber,
			ManufacturedDate:         toDatePtr(l.ManufacturedDate),
			ReceivedDate:             toDate(l.ReceivedDate),
			InitialQty:               l.InitialQty,
			RemainingQty:             l.RemainingQty,
			Location:                 l.Location,
			RemainingShelfLifeMonths: l.RemainingShelfLifeMonths,
			NearExpiry:               l.NearExpiry,
		})
	}
	return resp
}

func packingListPageResponse(page queries.PackingListPage) PackingListPage {
	resp := PackingListPage{
		PackingLists: make([]PackingList, 0, len(page.Lists)),
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	for _, l := range page.Lists {
		resp.PackingLists = append(resp.PackingLists, PackingList{
			ID:            l.ID.Bytes(),
			Number:        l.Number,
			OrderID:       l.OrderID.Bytes(),
			OrderNumber:   l.OrderNumber,
			Consignee:     l.Consignee,
			Destinations:  l.Destinations,
			TotalQty:      l.Qty,
			TotalCartons:  l.Cartons,
			TotalPallets:  l.Pallets,
			NetWeightKg:   l.NetWeightKg.StringFixed(3),
			GrossWeightKg: l.GrossWeightKg.StringFixed(3),
			CBM:           l.CBM.StringFixed(3),
			TotalAmount:   l.Amount,
			CreatedAt:     l.CreatedAt,
		})
	}
	return resp
}

func packingStatsResponse(s queries.PackingStats) PackingStats {
	return PackingStats{
		Count:         s.Count,
		TotalPallets:  s.Pallets,
		NetWeightKg:   s.NetWeightKg.StringFixed(3),
		GrossWeightKg: s.GrossWeightKg.StringFixed(3),
		CBM:           s.CBM.StringFixed(3),
		TotalAmount:   s.Amount,
	}
}
