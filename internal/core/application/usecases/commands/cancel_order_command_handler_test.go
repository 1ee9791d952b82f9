package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ReleasesStockAndEarnings(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, kernel.RoleAdmin)
	lineItems := newLineItems(t, 2)
	aggregate, err := order.NewOrder(kernel.NewUUID(), lineItems)
	require.NoError(t, err)
	require.NoError(t, aggregate.ConfirmPayment())

	stocked := newStockedItem(t, lineItems[0].ItemID(), 10)
	require.NoError(t, stocked.Reserve(2))

	pending, err := earnings.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(), earnings.Breakdown{}, time.Now(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), admin, "customer withdrew")
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	itemsRepo := new(MockInventoryRepository)
	earningsRepo := new(MockEarningsRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("InventoryRepository").Return(itemsRepo).Once(),
		itemsRepo.On("Get", mock.Anything, lineItems[0].ItemID()).Return(stocked, nil).Once(),
		itemsRepo.On("Update", mock.Anything, stocked).Return(nil).Once(),
		uow.On("EarningsRepository").Return(earningsRepo).Once(),
		earningsRepo.On("GetAllByOrder", mock.Anything, aggregate.ID()).
			Return([]*earnings.Record{pending}, nil).Once(),
		earningsRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		ordersRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	require.Equal(t, 0, stocked.Reserved())
	require.Equal(t, earnings.StatusCancelled, pending.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderIsRejected(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, kernel.RoleAdmin)
	writerID := kernel.NewUUID()
	aggregate := newReviewableOrder(t, writerID)
	require.NoError(t, aggregate.Approve())
	require.NoError(t, aggregate.Pack())
	require.NoError(t, aggregate.Ship())
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), admin, "")
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.Shipped, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UnpaidOrderSkipsInventory(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, kernel.RoleAdmin)
	aggregate, err := order.NewOrder(kernel.NewUUID(), newLineItems(t, 1))
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), admin, "")
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	earningsRepo := new(MockEarningsRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("EarningsRepository").Return(earningsRepo).Once(),
		earningsRepo.On("GetAllByOrder", mock.Anything, aggregate.ID()).
			Return([]*earnings.Record{}, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		ordersRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	uow.AssertExpectations(t)
}
