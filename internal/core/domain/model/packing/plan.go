package packing

import (
	"errors"
	"fmt"

	"ruboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	DefaultCartonsPerPallet = 40
	DefaultPalletTareKg     = 20
)

// Plan describes how cartons are stacked on pallets.
type Plan struct {
	CartonsPerPallet int64
	PalletTareKg     decimal.Decimal
}

func NewPlan(cartonsPerPallet int64, palletTareKg decimal.Decimal) (Plan, error) {
	var errList []error
	if cartonsPerPallet < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("cartons per pallet", cartonsPerPallet, 1, "unbounded"))
	}
	if palletTareKg.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pallet tare is invalid", fmt.Errorf("%s is negative", palletTareKg)))
	}
	if err := errors.Join(errList...); err != nil {
		return Plan{}, err
	}
	return Plan{CartonsPerPallet: cartonsPerPallet, PalletTareKg: palletTareKg}, nil
}

func DefaultPlan() Plan {
	return Plan{CartonsPerPallet: DefaultCartonsPerPallet, PalletTareKg: decimal.NewFromInt(DefaultPalletTareKg)}
}

// Pallets is the number of pallets needed for cartons. A partial pallet counts
// as a whole one.
func (p Plan) Pallets(cartons int64) int64 {
	if cartons <= 0 || p.CartonsPerPallet <= 0 {
		return 0
	}
	return (cartons + p.CartonsPerPallet - 1) / p.CartonsPerPallet
}

// Load is what goes into a shipment before palletization.
type Load struct {
	Qty         int64
	Cartons     int64
	CBM         decimal.Decimal
	NetWeightKg decimal.Decimal
	Amount      int64
}

// Totals palletizes load. Gross weight adds the tare of every pallet to the
// net carton weight.
func (p Plan) Totals(load Load) Totals {
	pallets := p.Pallets(load.Cartons)
	return Totals{
		Qty:           load.Qty,
		Cartons:       load.Cartons,
		Pallets:       pallets,
		NetWeightKg:   load.NetWeightKg,
		GrossWeightKg: load.NetWeightKg.Add(p.PalletTareKg.Mul(decimal.NewFromInt(pallets))),
		CBM:           load.CBM,
		Amount:        load.Amount,
	}
}

// Totals are the shipment figures printed on a packing list.
type Totals struct {
	Qty           int64
	Cartons       int64
	Pallets       int64
	NetWeightKg   decimal.Decimal
	GrossWeightKg decimal.Decimal
	CBM           decimal.Decimal
	Amount        int64
}

func (t Totals) Validate() error {
	var errList []error
	for name, v := range map[string]int64{
		"packing qty":     t.Qty,
		"packing cartons": t.Cartons,
		"packing pallets": t.Pallets,
		"packing amount":  t.Amount,
	} {
		if v < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%d is negative", v)))
		}
	}
	for name, v := range map[string]decimal.Decimal{
		"net weight":   t.NetWeightKg,
		"gross weight": t.GrossWeightKg,
		"packing cbm":  t.CBM,
	} {
		if v.IsNegative() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is negative", v)))
		}
	}
	if t.GrossWeightKg.LessThan(t.NetWeightKg) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("gross weight is invalid",
			fmt.Errorf("%s is below net weight %s", t.GrossWeightKg, t.NetWeightKg)))
	}
	return errors.Join(errList...)
}
