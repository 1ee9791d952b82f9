package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AdvanceFulfillmentCommandHandler walks an approved order through the
// physical chain. Shipping converts the stock reservations made at
// payment into consumption in the same transaction.
type AdvanceFulfillmentCommandHandler struct {
	uowFactory    StockUoWFactory
	collaborators Collaborators
}

// NewAdvanceFulfillmentCommandHandler creates a handler for fulfillment steps.
func NewAdvanceFulfillmentCommandHandler(
	uowFactory StockUoWFactory,
	collaborators Collaborators,
) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle applies the reported step to the order.
func (h AdvanceFulfillmentCommandHandler) Handle(
	ctx context.Context,
	command AdvanceFulfillmentCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("advance fulfillment", kernel.RoleAdmin); err != nil {
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

	switch command.Stage() {
	case StagePacked:
		err = aggregate.Pack()
	case StageShipped:
		err = aggregate.Ship()
	case StageDelivered:
		err = aggregate.Deliver()
	default:
		err = ErrStageIsInvalid
	}
	if err != nil {
		return err
	}

	if command.Stage() == StageShipped {
		if err = h.consumeReservations(ctx, uow, aggregate.LineItems()); err != nil {
			return err
		}
	}

	action := fmt.Sprintf("order.%s", command.Stage())
	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		action,
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

	h.collaborators.publishStatusChange(ctx, command.Actor(), action, aggregate)
	return nil
}

// consumeReservations decrements stock and reserved together for every
// line item when the order ships.
func (h AdvanceFulfillmentCommandHandler) consumeReservations(
	ctx context.Context,
	uow StockUoW,
	lineItems []order.LineItem,
) error {
	itemsRepo := uow.InventoryRepository()
	for _, lineItem := range lineItems {
		item, err := itemsRepo.Get(ctx, lineItem.ItemID())
		if err != nil {
			return err
		}
		if err = item.Consume(lineItem.Quantity()); err != nil {
			return err
		}
		if err = itemsRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
