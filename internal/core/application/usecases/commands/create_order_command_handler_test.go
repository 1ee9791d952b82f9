package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, kernel.RoleAdmin)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), admin, newLineItems(t, 2))
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	ordersRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, kernel.RoleAdmin)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), admin, newLineItems(t, 1))
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_RequiresLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), newActor(t, kernel.RoleAdmin), nil)

	require.ErrorIs(t, err, commands.ErrLineItemsAreRequired)
}
