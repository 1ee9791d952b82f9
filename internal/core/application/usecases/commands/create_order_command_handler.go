package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists new orders in Created status.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle registers the order and records its creation in the audit trail.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require(
		"create order",
		kernel.RoleAdmin, kernel.RoleSystem,
	); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(command.OrderID(), command.LineItems())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.created",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{To: aggregate.Status().String()},
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.created", aggregate)
	return nil
}
