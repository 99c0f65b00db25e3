package services

import (
	"github.com/shopspring/decimal"
)

// PackingLine is one item with the carton data of its product.
type PackingLine struct {
	ProductCode     string
	Cartons         int64
	CBMPerCarton    decimal.Decimal
	WeightPerCarton decimal.Decimal
}

// PackingSummary is the shipment volume of a set of lines.
type PackingSummary struct {
	Cartons  int64
	CBM      decimal.Decimal
	WeightKg decimal.Decimal
}

// PackingTotals sums cartons, volume and gross weight.
func (Aggregator) PackingTotals(lines []PackingLine) PackingSummary {
	summary := PackingSummary{CBM: decimal.Zero, WeightKg: decimal.Zero}
	for _, line := range lines {
		cartons := decimal.NewFromInt(line.Cartons)
		summary.Cartons += line.Cartons
		summary.CBM = summary.CBM.Add(line.CBMPerCarton.Mul(cartons))
		summary.WeightKg = summary.WeightKg.Add(line.WeightPerCarton.Mul(cartons))
	}
	return summary
}
