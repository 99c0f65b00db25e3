package services_test

import (
	"testing"

	"ruboard/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPackingTotals(t *testing.T) {
	agg := services.NewAggregator()
	lines := []services.PackingLine{
		{ProductCode: "A", Cartons: 3, CBMPerCarton: decimal.RequireFromString("0.1"), WeightPerCarton: decimal.RequireFromString("8.35")},
		{ProductCode: "B", Cartons: 7, CBMPerCarton: decimal.RequireFromString("0.2"), WeightPerCarton: decimal.RequireFromString("1.1")},
	}

	summary := agg.PackingTotals(lines)

	assert.Equal(t, int64(10), summary.Cartons)
	// 0.1*3 + 0.2*7 is not exact in binary floating point.
	assert.Equal(t, "1.7", summary.CBM.String())
	assert.Equal(t, "32.75", summary.WeightKg.String())
}

func TestPackingTotals_Empty(t *testing.T) {
	summary := services.NewAggregator().PackingTotals(nil)

	assert.Zero(t, summary.Cartons)
	assert.True(t, summary.CBM.IsZero())
	assert.True(t, summary.WeightKg.IsZero())
}
