package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeclineTaskCommandHandler_Handle_RecordsDecline(t *testing.T) {
	ctx := t.Context()
	writer := newActor(t, kernel.RoleWriter)
	aggregate := newOfferedOrder(t)
	cmd, err := commands.NewDeclineTaskCommand(aggregate.ID(), writer, "fully booked this week")
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		ordersRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineTaskCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.WriterOffered, aggregate.Status())
	require.True(t, aggregate.HasDeclined(writer.ID()))
	uow.AssertExpectations(t)
}

func TestDeclineTaskCommandHandler_Handle_ShortReasonIsRejected(t *testing.T) {
	ctx := t.Context()
	writer := newActor(t, kernel.RoleWriter)
	aggregate := newOfferedOrder(t)
	cmd, err := commands.NewDeclineTaskCommand(aggregate.ID(), writer, "meh")
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineTaskCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.False(t, aggregate.HasDeclined(writer.ID()))
	uow.AssertExpectations(t)
}
