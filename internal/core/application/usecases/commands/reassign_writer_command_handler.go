package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
)

// ReassignWriterCommandHandler hands an order to a new writer directly,
// bypassing the offer pool. The prior writer lands in the decline
// history and their unpaid earnings for this order are cancelled.
type ReassignWriterCommandHandler struct {
	uowFactory    ReviewUoWFactory
	collaborators Collaborators
}

// NewReassignWriterCommandHandler creates a handler for reassignment.
func NewReassignWriterCommandHandler(
	uowFactory ReviewUoWFactory,
	collaborators Collaborators,
) ReassignWriterCommandHandler {
	return ReassignWriterCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle reassigns the order and compensates the earnings ledger.
func (h ReassignWriterCommandHandler) Handle(ctx context.Context, command ReassignWriterCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("reassign writer", kernel.RoleAdmin); err != nil {
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

	priorWriter := aggregate.AssignedWriter()
	from := aggregate.Status()

	if err = aggregate.Reassign(command.NewWriterID(), command.Reason(), time.Now()); err != nil {
		return err
	}

	if priorWriter != nil {
		if err = h.cancelUnpaidEarnings(ctx, uow, *priorWriter, aggregate.ID()); err != nil {
			return err
		}
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.reassigned",
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

	h.collaborators.notifyTaskAssigned(ctx, aggregate.ID(), command.NewWriterID())
	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.reassigned", aggregate)
	return nil
}

// cancelUnpaidEarnings voids the prior writer's Pending or Approved
// records for the order. Paid records stay untouched.
func (h ReassignWriterCommandHandler) cancelUnpaidEarnings(
	ctx context.Context,
	uow ReviewUoW,
	writerID kernel.UUID,
	orderID kernel.UUID,
) error {
	earningsRepo := uow.EarningsRepository()

	records, err := earningsRepo.GetAllByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, record := range records {
		if !record.WriterID().IsEqual(writerID) {
			continue
		}
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
