package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// HoldOrderCommandHandler pauses orders. Reservations stay in place
// while an order is on hold; only the workflow stops.
type HoldOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewHoldOrderCommandHandler creates a handler for hold operations.
func NewHoldOrderCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle parks the order in OnHold.
func (h HoldOrderCommandHandler) Handle(ctx context.Context, command HoldOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("hold order", kernel.RoleAdmin); err != nil {
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
	if err = aggregate.Hold(); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.held",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{
			From:   from.String(),
			To:     aggregate.Status().String(),
			Reason: command.Reason(),
		},
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.held", aggregate)
	return nil
}
