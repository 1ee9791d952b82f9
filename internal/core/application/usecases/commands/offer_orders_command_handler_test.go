package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOfferOrdersCommandHandler_Handle_OffersEveryPaidOrder(t *testing.T) {
	ctx := t.Context()
	first := newPaidOrder(t)
	second := newPaidOrder(t)

	ordersRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	listUow := new(MockUoW)
	writeUow := new(MockUoW)

	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("OrderRepository").Return(ordersRepo).Once()
	ordersRepo.On("GetAllInStatus", mock.Anything, order.Paid).
		Return([]*order.Order{first, second}, nil).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()

	writeUow.On("Begin", ctx).Return(nil).Twice()
	writeUow.On("AuditRepository").Return(auditRepo).Twice()
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
	writeUow.On("OrderRepository").Return(ordersRepo).Twice()
	ordersRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	writeUow.On("Commit", ctx).Return(nil).Twice()
	writeUow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(writeUow).Twice()

	h := commands.NewOfferOrdersCommandHandler(factory, newSystemActor(t), commands.Collaborators{})
	err := h.Handle(ctx, commands.NewOfferOrdersCommand())

	require.NoError(t, err)
	require.Equal(t, order.WriterOffered, first.Status())
	require.Equal(t, order.WriterOffered, second.Status())
	require.NotNil(t, first.OfferedAt())
	listUow.AssertExpectations(t)
	writeUow.AssertExpectations(t)
}

func TestOfferOrdersCommandHandler_Handle_EmptyPoolIsNoOp(t *testing.T) {
	ctx := t.Context()

	ordersRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	mock.InOrder(
		listUow.On("Begin", ctx).Return(nil).Once(),
		listUow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("GetAllInStatus", mock.Anything, order.Paid).
			Return([]*order.Order{}, nil).Once(),
		listUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()

	h := commands.NewOfferOrdersCommandHandler(factory, newSystemActor(t), commands.Collaborators{})
	err := h.Handle(ctx, commands.NewOfferOrdersCommand())

	require.NoError(t, err)
	listUow.AssertExpectations(t)
}
