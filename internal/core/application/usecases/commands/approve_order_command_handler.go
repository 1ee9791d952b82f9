package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/qc"
	"fulfillment/internal/core/domain/services"
)

// ApproveOrderCommandHandler processes passing QC verdicts. Approval,
// review record, and earnings accrual commit in one transaction.
// Re-approving an already approved order is a no-op success so a
// retried request cannot double-accrue earnings.
type ApproveOrderCommandHandler struct {
	uowFactory    ReviewUoWFactory
	pricer        services.Pricer
	collaborators Collaborators
}

// NewApproveOrderCommandHandler creates a handler for approval verdicts.
func NewApproveOrderCommandHandler(
	uowFactory ReviewUoWFactory,
	pricer services.Pricer,
	collaborators Collaborators,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:    uowFactory,
		pricer:        pricer,
		collaborators: collaborators,
	}
}

// Handle moves the order to QCApproved, records the review, and accrues
// the writer's pay.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, command ApproveOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("approve order", kernel.RoleQC); err != nil {
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

	if aggregate.Status() == order.QCApproved {
		return nil
	}

	// Approve releases the writer from the order, so the payee is
	// captured before the transition.
	writerID := aggregate.AssignedWriter()

	from := aggregate.Status()
	breakdown, err := h.pricer.Price(aggregate)
	if err != nil {
		return err
	}

	if err = aggregate.Approve(); err != nil {
		return err
	}

	review, err := qc.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		*writerID,
		command.Actor().ID(),
		qc.ResultApproved,
		command.Checklist(),
		command.Comments(),
		time.Now(),
	)
	if err != nil {
		return err
	}
	if err = uow.QCRepository().Add(ctx, review); err != nil {
		return err
	}

	if err = h.accrueEarnings(ctx, uow, *writerID, aggregate.ID(), breakdown); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		"order.approved",
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

	h.collaborators.notifyDraftReviewed(ctx, aggregate.ID(), *writerID, true)
	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.approved", aggregate)
	return nil
}

// accrueEarnings adds one ledger record for the writer, unless an
// active record for this writer and order already exists.
func (h ApproveOrderCommandHandler) accrueEarnings(
	ctx context.Context,
	uow ReviewUoW,
	writerID kernel.UUID,
	orderID kernel.UUID,
	breakdown earnings.Breakdown,
) error {
	earningsRepo := uow.EarningsRepository()

	existing, err := earningsRepo.GetAllByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, record := range existing {
		if record.WriterID().IsEqual(writerID) && record.Status() != earnings.StatusCancelled {
			return nil
		}
	}

	record, err := earnings.NewRecord(kernel.NewUUID(), writerID, orderID, breakdown, time.Now())
	if err != nil {
		return err
	}
	return earningsRepo.Add(ctx, record)
}
