package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	writer := newActor(t, kernel.RoleWriter)
	offered := newOfferedOrder(t)
	cmd, err := commands.NewAcceptTaskCommand(offered.ID(), writer)
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, offered.ID()).Return(offered, nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		ordersRepo.On("Update", mock.Anything, offered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptTaskCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Assigned, offered.Status())
	require.True(t, offered.AssignedWriter().IsEqual(writer.ID()))
	ordersRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptTaskCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptTaskCommand(kernel.NewUUID(), newActor(t, kernel.RoleQC))
	require.NoError(t, err)

	h := commands.NewAcceptTaskCommandHandler(new(MockOrderUoWFactory), commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAcceptTaskCommandHandler_Handle_DeclinedWriterIsExcluded(t *testing.T) {
	ctx := t.Context()
	writer := newActor(t, kernel.RoleWriter)
	offered := newOfferedOrder(t)
	require.NoError(t, offered.Decline(writer.ID(), "not my style of poem", time.Now()))
	cmd, err := commands.NewAcceptTaskCommand(offered.ID(), writer)
	require.NoError(t, err)

	ordersRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(ordersRepo).Once(),
		ordersRepo.On("Get", mock.Anything, offered.ID()).Return(offered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptTaskCommandHandler(factory, commands.Collaborators{})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrWriterExcluded)
	require.Equal(t, order.WriterOffered, offered.Status())
	uow.AssertExpectations(t)
}

func TestAcceptTaskCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	h := commands.NewAcceptTaskCommandHandler(new(MockOrderUoWFactory), commands.Collaborators{})

	err := h.Handle(ctx, commands.AcceptTaskCommand{})

	require.ErrorIs(t, err, commands.ErrAcceptTaskCommandIsNotConstructed)
}
