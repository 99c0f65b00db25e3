package orderrepo

import (
	"context"
	"strings"

	"ruboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderNumberSequence issues order number sequence values from the
// order_sequences table with a single upsert per call.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

func (s *GormOrderNumberSequence) Next(ctx context.Context, prefix string) (int64, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return 0, errs.NewValueIsRequiredError("order number prefix")
	}

	row := OrderSequenceDTO{Prefix: prefix, Value: 1}
	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "prefix"}},
				DoUpdates: clause.Assignments(map[string]any{
					"value": gorm.Expr("order_sequences.value + 1"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "value"}}},
		).
		Create(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Value, nil
}
