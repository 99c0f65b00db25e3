package queries

import (
	"context"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListPackingListsQueryHandler pages through issued packing lists, newest
// first. Lists issued at the same instant are ordered by number.
//
// Example:
//
//	handler := NewListPackingListsQueryHandler(db)
//	query, err := NewListPackingListsQuery(20, 0)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, pl := range page.Lists {
//	    fmt.Printf("%s %s pallets=%d gw=%s\n", pl.Number, pl.Consignee, pl.Pallets, pl.GrossWeightKg)
//	}
type ListPackingListsQueryHandler struct {
	db *gorm.DB
}

// NewListPackingListsQueryHandler creates a handler reading packing_lists directly.
func NewListPackingListsQueryHandler(db *gorm.DB) ListPackingListsQueryHandler {
	return ListPackingListsQueryHandler{db: db}
}

type packingListRow struct {
	ID           uuid.UUID
	Number       string
	OrderID      uuid.UUID
	OrderNumber  string
	Consignee    string
	Destinations string
	TotalQty     int64
	TotalCartons int64
	TotalPallets int64
	TotalNetKg   decimal.Decimal
	TotalGrossKg decimal.Decimal
	TotalCBM     decimal.Decimal `gorm:"column:total_cbm"`
	TotalAmount  int64
	CreatedAt    time.Time
}

// Handle returns one page together with the unpaged count. An empty register
// yields an empty page, never nil.
func (h ListPackingListsQueryHandler) Handle(ctx context.Context, query ListPackingListsQuery) (PackingListPage, error) {
	if err := query.Validate(); err != nil {
		return PackingListPage{}, err
	}

	page := PackingListPage{Lists: make([]PackingListView, 0), Limit: query.Limit(), Offset: query.Offset()}
	if err := h.db.WithContext(ctx).Table("packing_lists").Count(&page.Total).Error; err != nil {
		return PackingListPage{}, err
	}
	if page.Total == 0 {
		return page, nil
	}

	var rows []packingListRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, order_id, order_number, consignee, destinations,
			total_qty, total_cartons, total_pallets, total_net_kg, total_gross_kg, total_cbm,
			total_amount, created_at
		FROM packing_lists
		ORDER BY created_at DESC, number DESC
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Scan(&rows).Error
	if err != nil {
		return PackingListPage{}, err
	}

	for _, row := range rows {
		view, err := row.view()
		if err != nil {
			return PackingListPage{}, err
		}
		page.Lists = append(page.Lists, view)
	}
	return page, nil
}

func (r packingListRow) view() (PackingListView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return PackingListView{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return PackingListView{}, err
	}

	destinations := make([]string, 0)
	if r.Destinations != "" {
		destinations = strings.Split(r.Destinations, "\n")
	}

	return PackingListView{
		ID:            id,
		Number:        r.Number,
		OrderID:       orderID,
		OrderNumber:   r.OrderNumber,
		Consignee:     r.Consignee,
		Destinations:  destinations,
		Qty:           r.TotalQty,
		Cartons:       r.TotalCartons,
		Pallets:       r.TotalPallets,
		NetWeightKg:   r.TotalNetKg,
		GrossWeightKg: r.TotalGrossKg,
		CBM:           r.TotalCBM,
		Amount:        r.TotalAmount,
		CreatedAt:     r.CreatedAt.UTC(),
	}, nil
}

// GetPackingStatsQueryHandler totals the packing list register: how many
// lists were issued and the pallets, weights, volume and amount they carry.
//
// Example:
//
//	handler := NewGetPackingStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetPackingStatsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d lists, %d pallets, %s m3\n", stats.Count, stats.Pallets, stats.CBM)
type GetPackingStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPackingStatsQueryHandler creates a handler reading packing_lists directly.
func NewGetPackingStatsQueryHandler(db *gorm.DB) GetPackingStatsQueryHandler {
	return GetPackingStatsQueryHandler{db: db}
}

// Handle sums the register. Every figure is zero when no list exists.
func (h GetPackingStatsQueryHandler) Handle(ctx context.Context, query GetPackingStatsQuery) (PackingStats, error) {
	if err := query.Validate(); err != nil {
		return PackingStats{}, err
	}

	var row struct {
		Count   int64
		Pallets int64
		NetKg   decimal.Decimal
		GrossKg decimal.Decimal
		CBM     decimal.Decimal `gorm:"column:cbm"`
		Amount  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS count,
			COALESCE(SUM(total_pallets), 0) AS pallets,
			COALESCE(SUM(total_net_kg), 0) AS net_kg,
			COALESCE(SUM(total_gross_kg), 0) AS gross_kg,
			COALESCE(SUM(total_cbm), 0) AS cbm,
			COALESCE(SUM(total_amount), 0) AS amount
		FROM packing_lists
	`).Scan(&row).Error
	if err != nil {
		return PackingStats{}, err
	}

	return PackingStats{
		Count:         row.Count,
		Pallets:       row.Pallets,
		NetWeightKg:   row.NetKg,
		GrossWeightKg: row.GrossKg,
		CBM:           row.CBM,
		Amount:        row.Amount,
	}, nil
}
