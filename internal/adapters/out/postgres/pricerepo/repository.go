package pricerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPriceRepository struct {
	db *gorm.DB
}

func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// Append inserts a new entry. Existing rows are never updated.
func (r *GormPriceRepository) Append(ctx context.Context, entry pricing.Entry) (pricing.Entry, error) {
	if err := entry.Validate(); err != nil {
		return pricing.Entry{}, err
	}

	dto := fromDomain(entry)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pricing.Entry{}, err
	}
	return toDomain(dto)
}

// LatestAt resolves the entry effective on the given day.
func (r *GormPriceRepository) LatestAt(ctx context.Context, productCode string, at time.Time) (pricing.Entry, error) {
	day := kernel.StartOfDay(at)

	var dto PriceEntryDTO
	err := r.db.WithContext(ctx).
		Where("product_code = ? AND effective_date <= ?", productCode, day).
		Order("effective_date DESC").
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Entry{}, errs.NewObjectNotFoundError("price", fmt.Sprintf("%s at %s", productCode, day.Format(time.DateOnly)))
		}
		return pricing.Entry{}, err
	}
	return toDomain(dto)
}

func (r *GormPriceRepository) History(ctx context.Context, productCode string) ([]pricing.Entry, error) {
	var dtos []PriceEntryDTO
	if err := r.db.WithContext(ctx).
		Where("product_code = ?", productCode).
		Order("effective_date").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]pricing.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
