// Package productrepo persists the product catalog.
package productrepo

import (
	"ruboard/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	Code           string          `gorm:"type:varchar(64);primaryKey"`
	NameKo         string          `gorm:"type:varchar(255)"`
	NameEn         string          `gorm:"type:varchar(255)"`
	PcsPerCarton   int             `gorm:"not null"`
	CartonWidthCm  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CartonHeightCm decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CartonDepthCm  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CartonWeightKg decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Status         string          `gorm:"type:varchar(16);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	carton := p.Carton()
	return ProductDTO{
		Code:           p.Code(),
		NameKo:         p.NameKo(),
		NameEn:         p.NameEn(),
		PcsPerCarton:   p.PcsPerCarton(),
		CartonWidthCm:  carton.WidthCm,
		CartonHeightCm: carton.HeightCm,
		CartonDepthCm:  carton.DepthCm,
		CartonWeightKg: carton.WeightKg,
		Status:         p.Status().String(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	status, err := product.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(dto.Code, dto.NameKo, dto.NameEn, dto.PcsPerCarton, product.Dimensions{
		WidthCm:  dto.CartonWidthCm,
		HeightCm: dto.CartonHeightCm,
		DepthCm:  dto.CartonDepthCm,
		WeightKg: dto.CartonWeightKg,
	}, status)
}
