package packinglistrepo

import (
	"context"
	"errors"

	"ruboard/internal/adapters/out/postgres/pgerr"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPackingListRepository struct {
	db *gorm.DB
}

func NewGormPackingListRepository(db *gorm.DB) *GormPackingListRepository {
	return &GormPackingListRepository{db: db}
}

func (r *GormPackingListRepository) Add(ctx context.Context, list *packing.List) error {
	if err := list.Validate(); err != nil {
		return err
	}

	dto := fromDomain(list)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "packing list", list.OrderNumber())
	}
	return nil
}

func (r *GormPackingListRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*packing.List, error) {
	var dto PackingListDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packing list", orderID.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
