package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ruboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIllegalTransitionError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := errs.NewIllegalTransitionError("order", "DRAFT", "CONFIRMED", "order has no items")

		assert.Equal(t, "order", err.Subject)
		assert.Equal(t, "DRAFT", err.From)
		assert.Equal(t, "CONFIRMED", err.To)
		assert.Equal(t, "illegal transition: order DRAFT -> CONFIRMED (reason: order has no items)", err.Error())
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("without reason", func(t *testing.T) {
		err := errs.NewIllegalTransitionError("order", "COMPLETED", "DRAFT", "")
		assert.Equal(t, "illegal transition: order COMPLETED -> DRAFT", err.Error())
	})
}

func TestInvalidQuantityError(t *testing.T) {
	t.Run("out of bounds value", func(t *testing.T) {
		v := int64(12)
		err := errs.NewInvalidQuantityError("confirmedQty", &v, 0, 10)

		assert.Equal(t, "invalid quantity: confirmedQty is 12, expected a value in [0, 10]", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("missing value", func(t *testing.T) {
		err := errs.NewInvalidQuantityError("confirmedQty", nil, 0, 10)
		assert.Equal(t, "invalid quantity: confirmedQty is missing, expected a value in [0, 10]", err.Error())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("L-001", 5, 10)

	assert.Equal(t, "insufficient stock: lot L-001 has 5, requested 10", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	var target *errs.InsufficientStockError
	require.ErrorAs(t, fmt.Errorf("adjust: %w", err), &target)
	assert.Equal(t, int64(5), target.Available)
}

func TestConflictRetryError(t *testing.T) {
	t.Run("NewConflictRetryError", func(t *testing.T) {
		err := errs.NewConflictRetryError("order", "42")
		assert.Equal(t, "concurrent modification, retry: order 42", err.Error())
		require.ErrorIs(t, err, errs.ErrConflictRetry)
	})

	t.Run("NewConflictRetryErrorWithCause", func(t *testing.T) {
		cause := errors.New("lock not obtained")
		err := errs.NewConflictRetryErrorWithCause("order", "42", cause)
		assert.Equal(t, "concurrent modification, retry: order 42 (cause: lock not obtained)", err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestDomainErrorsAreDistinct(t *testing.T) {
	kinds := []error{
		errs.ErrIllegalTransition,
		errs.ErrInvalidQuantity,
		errs.ErrInsufficientStock,
		errs.ErrObjectNotFound,
		errs.ErrConflictRetry,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
