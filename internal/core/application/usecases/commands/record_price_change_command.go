package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrRecordPriceChangeCommandIsNotConstructed = errors.New(
	"RecordPriceChangeCommand must be created via NewRecordPriceChangeCommand constructor",
)

// RecordPriceChangeCommand appends a price to the product's ledger.
type RecordPriceChangeCommand struct { //nolint:recvcheck //using for validation
	productCode   string
	base          int64
	commission    int64
	effectiveDate time.Time

	guard guard.ConstructorGuard
}

func NewRecordPriceChangeCommand(productCode string, base, commission int64, effectiveDate time.Time) (RecordPriceChangeCommand, error) {
	cmd := RecordPriceChangeCommand{
		productCode:   strings.TrimSpace(productCode),
		base:          base,
		commission:    commission,
		effectiveDate: effectiveDate,
		guard:         guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.productCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if base < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base price is invalid", fmt.Errorf("%d is negative", base)))
	}
	if commission < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("commission is invalid", fmt.Errorf("%d is negative", commission)))
	}
	if effectiveDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("effective date"))
	}
	if err := errors.Join(errList...); err != nil {
		return RecordPriceChangeCommand{}, err
	}

	return cmd, nil
}

func (c RecordPriceChangeCommand) Validate() error {
	return c.guard.Validate(ErrRecordPriceChangeCommandIsNotConstructed)
}

func (c RecordPriceChangeCommand) ProductCode() string { return c.productCode }
func (c RecordPriceChangeCommand) Base() int64 { return c.base }
func (c RecordPriceChangeCommand) Commission() int64 { return c.commission }
func (c RecordPriceChangeCommand) EffectiveDate() time.Time { return c.effectiveDate }
