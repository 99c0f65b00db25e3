package postgres

import (
	"ruboard/internal/adapters/out/postgres/lotdates"
	"ruboard/internal/adapters/out/postgres/lotrepo"
	"ruboard/internal/adapters/out/postgres/orderrepo"
	"ruboard/internal/adapters/out/postgres/packinglistrepo"
	"ruboard/internal/adapters/out/postgres/pricerepo"
	"ruboard/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&pricerepo.PriceEntryDTO{},
		&lotrepo.LotDTO{},
		&lotdates.LotManufacturingDateDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderHistoryDTO{},
		&orderrepo.OrderSequenceDTO{},
		&packinglistrepo.PackingListDTO{},
	)
}
