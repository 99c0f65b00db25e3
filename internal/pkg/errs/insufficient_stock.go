package errs

import (
	"errors"
	"fmt"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports a lot adjustment that would drive stock below zero.
type InsufficientStockError struct {
	LotNumber string
	Available int64
	Requested int64
}

func NewInsufficientStockError(lotNumber string, available, requested int64) *InsufficientStockError {
	return &InsufficientStockError{
		LotNumber: lotNumber,
		Available: available,
		Requested: requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: lot %s has %d, requested %d",
		ErrInsufficientStock, sanitize(e.LotNumber), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
