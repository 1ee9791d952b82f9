package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CancelOrderCommandHandler terminates orders before shipment. The
// cancellation, reservation release, earnings reversal, and audit entry
// commit atomically. Cancelling a shipped order is rejected; that path
// is a refund.
type CancelOrderCommandHandler struct {
	uowFactory    StockUoWFactory
	collaborators Collaborators
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory StockUoWFactory,
	collaborators Collaborators,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle cancels the order and unwinds its side effects.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("cancel order", kernel.RoleAdmin); err != nil {
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
	hadReservation := from.HoldsReservation()

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if hadReservation {
		if err = h.releaseReservations(ctx, uow, aggregate.LineItems()); err != nil {
			return err
		}
	}

	if err = h.cancelUnpaidEarnings(ctx, uow, aggregate.ID()); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.cancelled",
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

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.cancelled", aggregate)
	return nil
}

// releaseReservations returns every line item's reserved quantity to
// the available pool.
func (h CancelOrderCommandHandler) releaseReservations(
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
		if err = item.Release(lineItem.Quantity()); err != nil {
			return err
		}
		if err = itemsRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// cancelUnpaidEarnings voids every Pending or Approved record accrued
// for the order, regardless of writer.
func (h CancelOrderCommandHandler) cancelUnpaidEarnings(
	ctx context.Context,
	uow StockUoW,
	orderID kernel.UUID,
) error {
	earningsRepo := uow.EarningsRepository()

	records, err := earningsRepo.GetAllByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, record := range records {
		switch record.Status() {
		case earnings.StatusPending, earnings.StatusApproved:
			if err = record.Cancel(); err != nil {
				return err
			}
			if err = earningsRepo.Update(ctx, record); err != nil {
				return err
			}
		default:
		}
	}
	return nil
}
