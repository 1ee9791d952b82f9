package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
)

// refundPayload extends the status snapshot with the ledger records a
// refund could not reverse because the payout already left the system.
type refundPayload struct {
	statusChangePayload
	PaidEarningsKept []string `json:"paidEarningsKept,omitempty"`
}

// RefundOrderCommandHandler reverses shipped or delivered orders.
// Stock was consumed at shipment, so nothing returns to inventory;
// the reversal is confined to the order state and the earnings ledger.
type RefundOrderCommandHandler struct {
	uowFactory    StockUoWFactory
	collaborators Collaborators
}

// NewRefundOrderCommandHandler creates a handler for refunds.
func NewRefundOrderCommandHandler(
	uowFactory StockUoWFactory,
	collaborators Collaborators,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle moves the order to Refunded and compensates the ledger.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, command RefundOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("refund order", kernel.RoleAdmin); err != nil {
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
	if err = aggregate.Refund(); err != nil {
		return err
	}

	paidKept, err := h.cancelUnpaidEarnings(ctx, uow, aggregate.ID())
	if err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.refunded",
		audit.TargetOrder,
		aggregate.ID(),
		refundPayload{
			statusChangePayload: statusChangePayload{
				From:   from.String(),
				To:     aggregate.Status().String(),
				Reason: command.Reason(),
			},
			PaidEarningsKept: paidKept,
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

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.refunded", aggregate)
	return nil
}

// cancelUnpaidEarnings voids Pending and Approved records. Records that
// were already Paid are reported back for the audit payload rather than
// mutated.
func (h RefundOrderCommandHandler) cancelUnpaidEarnings(
	ctx context.Context,
	uow StockUoW,
	orderID kernel.UUID,
) ([]string, error) {
	earningsRepo := uow.EarningsRepository()

	records, err := earningsRepo.GetAllByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var paidKept []string
	for _, record := range records {
		switch record.Status() {
		case earnings.StatusPending, earnings.StatusApproved:
			if err = record.Cancel(); err != nil {
				return nil, err
			}
			if err = earningsRepo.Update(ctx, record); err != nil {
				return nil, err
			}
		case earnings.StatusPaid:
			paidKept = append(paidKept, record.ID().String())
		default:
		}
	}
	return paidKept, nil
}
