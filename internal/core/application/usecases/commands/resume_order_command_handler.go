package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// ResumeOrderCommandHandler restores held orders to where they left off.
type ResumeOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewResumeOrderCommandHandler creates a handler for resume operations.
func NewResumeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle restores the stashed status and writer assignment.
func (h ResumeOrderCommandHandler) Handle(ctx context.Context, command ResumeOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("resume order", kernel.RoleAdmin); err != nil {
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
	if err = aggregate.Resume(); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.resumed",
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

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.resumed", aggregate)
	return nil
}
