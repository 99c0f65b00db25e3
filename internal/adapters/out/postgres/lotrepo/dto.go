// Package lotrepo persists inventory lots.
package lotrepo

import (
	"time"

	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LotDTO is one inventory_lots row. Lot numbers are unique across products.
type LotDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductCode      string     `gorm:"type:varchar(64);not null;index"`
	LotNumber        string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	ManufacturedDate *time.Time `gorm:"type:date"`
	ReceivedDate     time.Time  `gorm:"type:date;not null"`
	InitialQty       int64      `gorm:"not null"`
	RemainingQty     int64      `gorm:"not null;check:remaining_qty >= 0"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	Location         string     `gorm:"type:varchar(64)"`
}

func (LotDTO) TableName() string {
	return "inventory_lots"
}

func fromDomain(l *inventory.Lot) LotDTO {
	return LotDTO{
		ID:               l.ID().Bytes(),
		ProductCode:      l.ProductCode(),
		LotNumber:        l.LotNumber(),
		ManufacturedDate: l.ManufacturedDate(),
		ReceivedDate:     l.ReceivedDate(),
		InitialQty:       l.InitialQty(),
		RemainingQty:     l.RemainingQty(),
		Status:           l.Status().String(),
		Location:         l.Location(),
	}
}

func toDomain(dto LotDTO) (*inventory.Lot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := inventory.ParseLotStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreLot(id, dto.ProductCode, dto.LotNumber, dto.ManufacturedDate, dto.ReceivedDate,
		dto.InitialQty, dto.RemainingQty, status, dto.Location)
}
