// Package pricerepo stores the append-only price ledger in price_entries.
package pricerepo

import (
	"time"

	"ruboard/internal/core/domain/model/pricing"
)

// PriceEntryDTO is one price_entries row. ID is the insertion sequence used to
// break ties between entries effective on the same day.
type PriceEntryDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ProductCode   string    `gorm:"type:varchar(64);not null;index:idx_price_entries_lookup,priority:1"`
	BasePrice     int64     `gorm:"not null"`
	Commission    int64     `gorm:"not null"`
	FinalPrice    int64     `gorm:"not null"`
	EffectiveDate time.Time `gorm:"type:date;not null;index:idx_price_entries_lookup,priority:2"`
	RecordedAt    time.Time `gorm:"not null"`
}

func (PriceEntryDTO) TableName() string {
	return "price_entries"
}

func fromDomain(e pricing.Entry) PriceEntryDTO {
	return PriceEntryDTO{
		ID:            e.ID(),
		ProductCode:   e.ProductCode(),
		BasePrice:     e.Base(),
		Commission:    e.Commission(),
		FinalPrice:    e.Final(),
		EffectiveDate: e.EffectiveDate(),
		RecordedAt:    e.RecordedAt(),
	}
}

func toDomain(dto PriceEntryDTO) (pricing.Entry, error) {
	return pricing.RestoreEntry(dto.ID, dto.ProductCode, dto.BasePrice, dto.Commission, dto.EffectiveDate, dto.RecordedAt)
}
