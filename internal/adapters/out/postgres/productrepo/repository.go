package productrepo

import (
	"context"
	"errors"

	"ruboard/internal/adapters/out/postgres/pgerr"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "product code", dto.Code)
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("code = ?", dto.Code).Updates(map[string]any{
		"name_ko":          dto.NameKo,
		"name_en":          dto.NameEn,
		"pcs_per_carton":   dto.PcsPerCarton,
		"carton_width_cm":  dto.CartonWidthCm,
		"carton_height_cm": dto.CartonHeightCm,
		"carton_depth_cm":  dto.CartonDepthCm,
		"carton_weight_kg": dto.CartonWeightKg,
		"status":           dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.Code)
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, code string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", code)
		}
		return nil, err
	}
	return toDomain(dto)
}
