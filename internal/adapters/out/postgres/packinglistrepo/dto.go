// Package packinglistrepo stores packing lists in packing_lists, one row per order.
package packinglistrepo

import (
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/packing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// destinationSeparator joins destinations into one column; destinations are
// free text without line breaks.
const destinationSeparator = "\n"

type PackingListDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number       string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OrderNumber  string          `gorm:"type:varchar(32);not null"`
	Consignee    string          `gorm:"type:varchar(255);not null"`
	Destinations string          `gorm:"type:text"`
	TotalQty     int64           `gorm:"not null"`
	TotalCartons int64           `gorm:"not null"`
	TotalPallets int64           `gorm:"not null"`
	TotalNetKg   decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	TotalGrossKg decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	TotalCBM     decimal.Decimal `gorm:"column:total_cbm;type:numeric(14,6);not null"`
	TotalAmount  int64           `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

func (PackingListDTO) TableName() string {
	return "packing_lists"
}

func fromDomain(l *packing.List) PackingListDTO {
	t := l.Totals()
	return PackingListDTO{
		ID:           l.ID().Bytes(),
		Number:       l.Number(),
		OrderID:      l.OrderID().Bytes(),
		OrderNumber:  l.OrderNumber(),
		Consignee:    l.Consignee(),
		Destinations: strings.Join(l.Destinations(), destinationSeparator),
		TotalQty:     t.Qty,
		TotalCartons: t.Cartons,
		TotalPallets: t.Pallets,
		TotalNetKg:   t.NetWeightKg,
		TotalGrossKg: t.GrossWeightKg,
		TotalCBM:     t.CBM,
		TotalAmount:  t.Amount,
		CreatedAt:    l.CreatedAt(),
	}
}

func toDomain(dto PackingListDTO) (*packing.List, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var destinations []string
	if dto.Destinations != "" {
		destinations = strings.Split(dto.Destinations, destinationSeparator)
	}

	return packing.RestoreList(packing.Snapshot{
		ID:           id,
		Number:       dto.Number,
		OrderID:      orderID,
		OrderNumber:  dto.OrderNumber,
		Consignee:    dto.Consignee,
		Destinations: destinations,
		Totals: packing.Totals{
			Qty:           dto.TotalQty,
			Cartons:       dto.TotalCartons,
			Pallets:       dto.TotalPallets,
			NetWeightKg:   dto.TotalNetKg,
			GrossWeightKg: dto.TotalGrossKg,
			CBM:           dto.TotalCBM,
			Amount:        dto.TotalAmount,
		},
		CreatedAt: dto.CreatedAt,
	})
}
