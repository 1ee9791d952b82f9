package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// AcceptTaskCommandHandler processes writer claims on offered orders.
// The optimistic version check in the repository serializes concurrent
// claims: exactly one writer's transaction commits, the rest see
// errs.ErrConflict.
type AcceptTaskCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewAcceptTaskCommandHandler creates a handler for claim operations.
func NewAcceptTaskCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) AcceptTaskCommandHandler {
	return AcceptTaskCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle assigns the order to the claiming writer. Writers who
// previously declined the order are rejected before the write.
func (h AcceptTaskCommandHandler) Handle(ctx context.Context, command AcceptTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("accept task", kernel.RoleWriter); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.Accept(command.Actor().ID()); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.accepted",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{From: from.String(), To: aggregate.Status().String()},
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.collaborators.notifyTaskAssigned(ctx, aggregate.ID(), command.Actor().ID())
	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.accepted", aggregate)
	return nil
}
