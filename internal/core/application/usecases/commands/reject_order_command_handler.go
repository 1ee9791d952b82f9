package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"
)

// RejectOrderCommandHandler processes failing QC verdicts. A rejection
// within the rework limit sends the order back to the writer; past the
// limit the order parks in QCRejected with the escalated flag set and
// waits for an admin.
type RejectOrderCommandHandler struct {
	uowFactory    ReviewUoWFactory
	reworkLimit   int
	collaborators Collaborators
}

// NewRejectOrderCommandHandler creates a handler for rejection verdicts.
// reworkLimit is the number of rework rounds allowed before escalation.
func NewRejectOrderCommandHandler(
	uowFactory ReviewUoWFactory,
	reworkLimit int,
	collaborators Collaborators,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory:    uowFactory,
		reworkLimit:   reworkLimit,
		collaborators: collaborators,
	}
}

// Handle records the verdict and routes the order to rework or escalation.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("reject order", kernel.RoleQC); err != nil {
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

	writerID := aggregate.AssignedWriter()
	from := aggregate.Status()

	escalated, err := aggregate.Reject(h.reworkLimit)
	if err != nil {
		return err
	}

	review, err := qc.NewRecord(
		kernel.NewUUID(),
		aggregate.ID(),
		*writerID,
		command.Actor().ID(),
		command.Result(),
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

	action := "order.rejected"
	if escalated {
		action = "order.escalated"
	}
	if err = recordAudit(
		ctx,
		uow.AuditRepository(),
		command.Actor(),
		action,
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{
			From:   from.String(),
			To:     aggregate.Status().String(),
			Reason: command.Comments(),
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

	h.collaborators.notifyDraftReviewed(ctx, aggregate.ID(), *writerID, false)
	h.collaborators.publishStatusChange(ctx, command.Actor(), action, aggregate)
	return nil
}
