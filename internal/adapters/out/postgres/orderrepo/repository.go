package orderrepo

import (
	"context"
	"errors"

	"ruboard/internal/adapters/out/postgres/pgerr"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its items and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order number", dto.Number)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the order row guarded by its version, replaces the item set
// and appends history entries not yet stored.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(dto.columns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(db, aggregate.ID())
	}

	if err := r.replaceItems(db, dto.ID, dto.Items); err != nil {
		return err
	}
	if err := r.appendHistory(db, dto.ID, dto.History); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with items by line number and history by sequence.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_number") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) missingOrStale(db *gorm.DB, id kernel.UUID) error {
	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewConflictRetryError("order", id.String())
}

func (r *GormOrderRepository) replaceItems(db *gorm.DB, orderID uuid.UUID, items []OrderItemDTO) error {
	removed := db.Where("order_id = ?", orderID)
	if len(items) > 0 {
		ids := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		removed = removed.Where("id NOT IN ?", ids)
	}
	if err := removed.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&items).Error
}

func (r *GormOrderRepository) appendHistory(db *gorm.DB, orderID uuid.UUID, history []OrderHistoryDTO) error {
	var stored int64
	if err := db.Model(&OrderHistoryDTO{}).Where("order_id = ?", orderID).Count(&stored).Error; err != nil {
		return err
	}
	if stored > int64(len(history)) {
		return errs.NewConflictRetryError("order history", orderID.String())
	}

	fresh := history[stored:]
	if len(fresh) == 0 {
		return nil
	}
	return db.Create(&fresh).Error
}
