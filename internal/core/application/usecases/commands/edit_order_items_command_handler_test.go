package commands_test

import (
	"testing"

	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/ports"
	"ruboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.products.On("Get", ctx, "KR-002").Return(testProduct("KR-002"), nil).Once()
	uow.prices.On("LatestAt", ctx, "KR-002", testNow).Return(testEntry("KR-002", 500, 50), nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()

	cmd, err := commands.NewAddOrderItemCommand(o.ID(), commands.OrderLine{ProductCode: "KR-002", Destination: "Kazan", Qty: 10})
	require.NoError(t, err)

	h := commands.NewAddOrderItemCommandHandler(orderUoWFactory{uow}, ports.NoopOrderLocker{}, testClock)
	itemID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.assertAll(t)

	require.Len(t, o.Items(), 2)
	added := o.Items()[1]
	assert.Equal(t, itemID, added.ID())
	assert.Equal(t, 2, added.LineNumber())
	assert.Equal(t, "Kazan", added.Destination())
	assert.Equal(t, int64(48*1120+10*550), o.Totals().Final)
}

func TestAddOrderItemCommandHandler_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t)
	p, err := product.RestoreProduct("KR-009", "", "Retired", 12, product.Dimensions{}, product.StatusInactive)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.products.On("Get", ctx, "KR-009").Return(p, nil).Once()

	cmd, err := commands.NewAddOrderItemCommand(o.ID(), commands.OrderLine{ProductCode: "KR-009", Qty: 1})
	require.NoError(t, err)

	h := commands.NewAddOrderItemCommandHandler(orderUoWFactory{uow}, ports.NoopOrderLocker{}, testClock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.assertAll(t)
}

func TestAddOrderItemCommandHandler_OnlyInDraft(t *testing.T) {
	ctx := t.Context()
	o := confirmedOrder(t)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.products.On("Get", ctx, "KR-002").Return(testProduct("KR-002"), nil).Once()
	uow.prices.On("LatestAt", ctx, "KR-002", testNow).Return(testEntry("KR-002", 500, 50), nil).Once()

	cmd, err := commands.NewAddOrderItemCommand(o.ID(), commands.OrderLine{ProductCode: "KR-002", Qty: 1})
	require.NoError(t, err)

	h := commands.NewAddOrderItemCommandHandler(orderUoWFactory{uow}, ports.NoopOrderLocker{}, testClock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Len(t, o.Items(), 1)
}

func TestRemoveOrderItemCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.orders.On("Update", ctx, o).Return(nil).Once()

	cmd, err := commands.NewRemoveOrderItemCommand(o.ID(), o.Items()[0].ID())
	require.NoError(t, err)

	h := commands.NewRemoveOrderItemCommandHandler(orderUoWFactory{uow}, ports.NoopOrderLocker{})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertAll(t)

	assert.Empty(t, o.Items())
	assert.Equal(t, int64(0), o.Totals().Final)
}

func TestRemoveOrderItemCommandHandler_UnknownItem(t *testing.T) {
	ctx := t.Context()
	o := draftOrder(t)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewRemoveOrderItemCommand(o.ID(), kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewRemoveOrderItemCommandHandler(orderUoWFactory{uow}, ports.NoopOrderLocker{})
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewAddOrderItemCommand_InvalidLine(t *testing.T) {
	_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), commands.OrderLine{ProductCode: " ", Qty: 0})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
