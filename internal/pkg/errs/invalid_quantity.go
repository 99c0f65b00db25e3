package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// InvalidQuantityError reports a quantity outside the accepted [Min, Max] bounds.
// Value is nil when the quantity was required but not supplied.
type InvalidQuantityError struct {
	ParamName string
	Value     *int64
	Min       int64
	Max       int64
}

func NewInvalidQuantityError(paramName string, value *int64, minValue, maxValue int64) *InvalidQuantityError {
	return &InvalidQuantityError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func (e *InvalidQuantityError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s is missing, expected a value in [%d, %d]",
			ErrInvalidQuantity, e.ParamName, e.Min, e.Max)
	}
	return fmt.Sprintf("%s: %s is %d, expected a value in [%d, %d]",
		ErrInvalidQuantity, e.ParamName, *e.Value, e.Min, e.Max)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}
