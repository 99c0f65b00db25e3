package commands_test

import (
	"testing"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func draftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "RU-2026-03-0001", testBuyer, testNow, order.ActorBuyer, testNow)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "KR-001", "Red ginseng candy", "Moscow", 24, 48,
		order.UnitPrice{Base: 1000, Commission: 120})
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	order.RecomputeOrderTotals(o)
	return o
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := draftOrder(t)
	require.NoError(t, o.Transition(order.Confirmed, order.ActorManager, "", testNow))
	return o
}
