package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// UploadDraftCommandHandler accepts draft submissions from the assigned
// writer and enqueues them for review in the same transaction, so a
// submitted draft can never sit outside the QC pool.
type UploadDraftCommandHandler struct {
	uowFactory    OrderUoWFactory
	collaborators Collaborators
}

// NewUploadDraftCommandHandler creates a handler for draft submissions.
func NewUploadDraftCommandHandler(
	uowFactory OrderUoWFactory,
	collaborators Collaborators,
) UploadDraftCommandHandler {
	return UploadDraftCommandHandler{
		uowFactory:    uowFactory,
		collaborators: collaborators,
	}
}

// Handle stores the draft URL and moves the order through
// DraftSubmitted into QCReview. Only the assigned writer may submit.
func (h UploadDraftCommandHandler) Handle(ctx context.Context, command UploadDraftCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().Require("upload draft", kernel.RoleWriter); err != nil {
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
	if writerID == nil || !writerID.IsEqual(command.Actor().ID()) {
		return errs.NewForbiddenError(command.Actor().Role().String(), "upload draft for an order assigned to another writer")
	}

	from := aggregate.Status()
	if err = aggregate.SubmitDraft(command.FileURL()); err != nil {
		return err
	}

	auditRepo := uow.AuditRepository()
	if err = recordAudit(
		ctx,
		auditRepo,
		command.Actor(),
		"order.draft_submitted",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{From: from.String(), To: aggregate.Status().String()},
	); err != nil {
		return err
	}

	submitted := aggregate.Status()
	if err = aggregate.EnqueueQC(); err != nil {
		return err
	}

	if err = recordAudit(
		ctx,
		auditRepo,
		command.Actor(),
		"order.qc_enqueued",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{From: submitted.String(), To: aggregate.Status().String()},
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.collaborators.publishStatusChange(ctx, command.Actor(), "order.qc_enqueued", aggregate)
	return nil
}
