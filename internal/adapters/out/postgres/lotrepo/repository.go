package lotrepo

import (
	"context"
	"errors"
	"strings"

	"ruboard/internal/adapters/out/postgres/pgerr"
	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLotRepository) Add(ctx context.Context, lot *inventory.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(lot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "lot number", dto.LotNumber)
	}

	r.tracker.TrackAggregate(lot.ID(), lot)
	return nil
}

func (r *GormLotRepository) Update(ctx context.Context, lot *inventory.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(lot)
	result := r.db.WithContext(ctx).Model(&LotDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"manufactured_date": dto.ManufacturedDate,
		"remaining_qty":     dto.RemainingQty,
		"status":            dto.Status,
		"location":          dto.Location,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lot", dto.LotNumber)
	}

	r.tracker.TrackAggregate(lot.ID(), lot)
	return nil
}

// GetForUpdate issues SELECT ... FOR UPDATE, so concurrent adjustments of the
// same lot queue behind the current transaction.
func (r *GormLotRepository) GetForUpdate(ctx context.Context, lotNumber string) (*inventory.Lot, error) {
	lotNumber = strings.TrimSpace(lotNumber)
	if lotNumber == "" {
		return nil, errs.NewValueIsRequiredError("lot number")
	}

	var dto LotDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "lot_number = ?", lotNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lot", lotNumber)
		}
		return nil, err
	}
	return toDomain(dto)
}
