package order_test

import (
	"testing"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v int64) *int64 {
	return &v
}

func newItem(t *testing.T, code string, requested int64, price order.UnitPrice) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), code, "Product "+code, "Moscow", 24, requested, price)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should compute subtotal and cartons", func(t *testing.T) {
		item := newItem(t, "A-100", 50, order.UnitPrice{Base: 1000, Commission: 150})

		require.NoError(t, item.Validate())
		assert.Equal(t, order.Pending, item.Availability())
		assert.Nil(t, item.ConfirmedQty())
		assert.Equal(t, int64(50), item.EffectiveQty())
		assert.Equal(t, order.Amounts{Base: 50000, Commission: 7500, Final: 57500}, item.Subtotal())
		assert.Equal(t, int64(3), item.CartonCount())
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			id       kernel.UUID
			code     string
			pcs      int
			qty      int64
			price    order.UnitPrice
			contains string
		}{
			{"zero id", kernel.UUID{}, "A", 1, 1, order.UnitPrice{}, "UUID must be created"},
			{"blank code", kernel.NewUUID(), "  ", 1, 1, order.UnitPrice{}, "product code"},
			{"zero pcs", kernel.NewUUID(), "A", 0, 1, order.UnitPrice{}, "pcs per carton is invalid"},
			{"zero qty", kernel.NewUUID(), "A", 1, 0, order.UnitPrice{}, "requested quantity is invalid"},
			{"negative base", kernel.NewUUID(), "A", 1, 1, order.UnitPrice{Base: -1}, "base price is invalid"},
			{"negative commission", kernel.NewUUID(), "A", 1, 1, order.UnitPrice{Commission: -1}, "commission is invalid"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				item, err := order.NewItem(tc.id, tc.code, "name", "", tc.pcs, tc.qty, tc.price)

				require.Error(t, err)
				assert.Nil(t, item)
				assert.Contains(t, err.Error(), tc.contains)
			})
		}
	})
}

func TestItem_SetAvailability(t *testing.T) {
	price := order.UnitPrice{Base: 100, Commission: 20}

	t.Run("available confirms the requested quantity", func(t *testing.T) {
		item := newItem(t, "A", 10, price)

		require.NoError(t, item.SetAvailability(order.Available, qty(3), ""))

		require.NotNil(t, item.ConfirmedQty())
		assert.Equal(t, item.RequestedQty(), *item.ConfirmedQty())
		assert.Equal(t, int64(1200), item.Subtotal().Final)
	})

	t.Run("partial within bounds", func(t *testing.T) {
		for _, q := range []int64{0, 4, 10} {
			item := newItem(t, "A", 10, price)

			require.NoError(t, item.SetAvailability(order.Partial, qty(q), " short stock "))

			assert.Equal(t, q, *item.ConfirmedQty())
			assert.Equal(t, q*120, item.Subtotal().Final)
			assert.Equal(t, "short stock", item.AvailabilityNote())
		}
	})

	t.Run("partial out of bounds or missing fails untouched", func(t *testing.T) {
		for _, q := range []*int64{nil, qty(-1), qty(11)} {
			item := newItem(t, "A", 10, price)

			err := item.SetAvailability(order.Partial, q, "")

			require.ErrorIs(t, err, errs.ErrInvalidQuantity)
			var invalid *errs.InvalidQuantityError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, int64(0), invalid.Min)
			assert.Equal(t, int64(10), invalid.Max)
			assert.Equal(t, order.Pending, item.Availability())
			assert.Nil(t, item.ConfirmedQty())
		}
	})

	t.Run("unavailable confirms zero", func(t *testing.T) {
		item := newItem(t, "A", 10, price)

		require.NoError(t, item.SetAvailability(order.Unavailable, nil, "discontinued"))

		assert.Equal(t, int64(0), *item.ConfirmedQty())
		assert.Equal(t, order.Amounts{}, item.Subtotal())
		assert.Equal(t, int64(0), item.CartonCount())
	})

	t.Run("pending clears the confirmed quantity", func(t *testing.T) {
		item := newItem(t, "A", 10, price)
		require.NoError(t, item.SetAvailability(order.Partial, qty(2), ""))

		require.NoError(t, item.SetAvailability(order.Pending, nil, ""))

		assert.Nil(t, item.ConfirmedQty())
		assert.Equal(t, int64(1200), item.Subtotal().Final)
	})

	t.Run("unknown availability is rejected", func(t *testing.T) {
		item := newItem(t, "A", 10, price)
		require.ErrorIs(t, item.SetAvailability(order.UnknownAvailability, nil, ""), errs.ErrValueIsInvalid)
	})
}

func TestRestoreItem(t *testing.T) {
	base := order.ItemState{
		ID:           kernel.NewUUID(),
		LineNumber:   3,
		ProductCode:  "A",
		ProductName:  "Alpha",
		PcsPerCarton: 12,
		RequestedQty: 30,
		Price:        order.UnitPrice{Base: 10, Commission: 1},
	}

	t.Run("restores a partial line", func(t *testing.T) {
		s := base
		s.Availability = order.Partial
		s.ConfirmedQty = qty(13)

		item, err := order.RestoreItem(s)

		require.NoError(t, err)
		assert.Equal(t, 3, item.LineNumber())
		assert.Equal(t, int64(13*11), item.Subtotal().Final)
		assert.Equal(t, int64(2), item.CartonCount())
	})

	t.Run("rejects available with a different quantity", func(t *testing.T) {
		s := base
		s.Availability = order.Available
		s.ConfirmedQty = qty(29)

		_, err := order.RestoreItem(s)
		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("rejects pending with a confirmed quantity", func(t *testing.T) {
		s := base
		s.Availability = order.Pending
		s.ConfirmedQty = qty(1)

		_, err := order.RestoreItem(s)
		require.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})
}

func TestCartonCount(t *testing.T) {
	assert.Equal(t, int64(0), order.CartonCount(0, 10))
	assert.Equal(t, int64(1), order.CartonCount(1, 10))
	assert.Equal(t, int64(1), order.CartonCount(10, 10))
	assert.Equal(t, int64(2), order.CartonCount(11, 10))
	assert.Equal(t, int64(0), order.CartonCount(5, 0))
}
