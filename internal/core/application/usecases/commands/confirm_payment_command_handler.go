package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
)

// ConfirmPaymentCommandHandler settles payment and reserves stock in a
// single transaction. The rollback on any reservation failure is what
// makes the reservation all-or-nothing.
type ConfirmPaymentCommandHandler struct {
	uowFactory    StockUoWFactory
	collaborators Collaborators
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(
	uowFactory StockUoWFactory,
	collaborators Collaborators,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle moves the order to Paid and reserves stock per line item.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, command ConfirmPaymentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require(
		"confirm payment",
		kernel.RoleAdmin, kernel.RoleSystem,
	); err != nil {
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
	itemsRepo := uow.InventoryRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.ConfirmPayment(); err != nil {
		return err
	}

	for _, lineItem := range aggregate.LineItems() {
		item, getErr := itemsRepo.Get(ctx, lineItem.ItemID())
		if getErr != nil {
			return getErr
		}
		if reserveErr := item.Reserve(lineItem.Quantity()); reserveErr != nil {
			return reserveErr
		}
		if updateErr := itemsRepo.Update(ctx, item); updateErr != nil {
			return updateErr
		}
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.payment_confirmed",
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

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.payment_confirmed", aggregate)
	return nil
}
