package queries

import (
	"errors"
	"strings"
	"time"

	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var (
	ErrGetCurrentPriceQueryIsNotConstructed = errors.New(
		"GetCurrentPriceQuery must be created via NewGetCurrentPriceQuery constructor",
	)
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetCurrentPriceQuery asks for the price effective at a date. A nil date
// means today.
type GetCurrentPriceQuery struct {
	productCode string
	at          *time.Time

	guard guard.ConstructorGuard
}

func NewGetCurrentPriceQuery(productCode string, at *time.Time) (GetCurrentPriceQuery, error) {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return GetCurrentPriceQuery{}, errs.NewValueIsRequiredError("product code")
	}

	q := GetCurrentPriceQuery{productCode: productCode, guard: guard.NewConstructorGuard()}
	if at != nil {
		v := *at
		q.at = &v
	}
	return q, nil
}

func (q GetCurrentPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentPriceQueryIsNotConstructed)
}

func (q GetCurrentPriceQuery) ProductCode() string {
	return q.productCode
}

func (q GetCurrentPriceQuery) At() *time.Time {
	return q.at
}

type GetProductQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetProductQuery(code string) (GetProductQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("product code")
	}
	return GetProductQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) Code() string {
	return q.code
}
