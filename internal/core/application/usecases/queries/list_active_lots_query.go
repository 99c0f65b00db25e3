package queries

import (
	"errors"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrListActiveLotsQueryIsNotConstructed = errors.New(
	"ListActiveLotsQuery must be created via NewListActiveLotsQuery constructor",
)

type ListActiveLotsQuery struct {
	productCode string

	guard guard.ConstructorGuard
}

func NewListActiveLotsQuery(productCode string) (ListActiveLotsQuery, error) {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return ListActiveLotsQuery{}, errs.NewValueIsRequiredError("product code")
	}
	return ListActiveLotsQuery{productCode: productCode, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActiveLotsQuery) Validate() error {
	return q.guard.Validate(ErrListActiveLotsQueryIsNotConstructed)
}

func (q ListActiveLotsQuery) ProductCode() string {
	return q.productCode
}

// ActiveLot is a lot with stock left. Shelf life is unknown, and both shelf
// life fields are empty, when the manufacturing date is.
type ActiveLot struct {
	ID                       kernel.UUID
	LotNumber                string
	ManufacturedDate         *time.Time
	ReceivedDate             time.Time
	InitialQty               int64
	RemainingQty             int64
	Location                 string
	RemainingShelfLifeMonths *int
	NearExpiry               bool
}
