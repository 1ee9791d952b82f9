package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeclineTaskCommandHandler appends declines to an offered order's
// history. The status does not change, but the write still goes through
// the version check so a decline cannot clobber a concurrent claim.
type DeclineTaskCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewDeclineTaskCommandHandler creates a handler for decline operations.
func NewDeclineTaskCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) DeclineTaskCommandHandler {
	return DeclineTaskCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle records the decline with its reason in the order's history.
func (h DeclineTaskCommandHandler) Handle(ctx context.Context, command DeclineTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("decline task", kernel.RoleWriter); err != nil {
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

	if err = aggregate.Decline(command.Actor().ID(), command.Reason(), time.Now()); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.declined",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{
			From:   aggregate.Status().String(),
			To:     aggregate.Status().String(),
			Reason: command.Reason(),
		},
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
