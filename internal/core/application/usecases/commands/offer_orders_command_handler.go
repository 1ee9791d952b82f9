package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OfferOrdersCommandHandler moves Paid orders into the writer pool.
// Each order commits in its own transaction so one conflicting order
// cannot hold the rest of the batch back.
type OfferOrdersCommandHandler struct {
	uowFactory    OrderUoWFactory
	systemActor   kernel.Actor
	collaborators Collaborators
}

// NewOfferOrdersCommandHandler creates a handler for the offer dispatch
// batch. systemActor identifies the job in the audit trail.
func NewOfferOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	systemActor kernel.Actor,
	collaborators Collaborators,
) OfferOrdersCommandHandler {
	return OfferOrdersCommandHandler{
		uowFactory:    uowFactory,
		systemActor:   systemActor,
		collaborators: collaborators,
	}
}

// Handle offers every Paid order. A version conflict on one order is
// skipped: whoever won the race already moved that order on.
func (h OfferOrdersCommandHandler) Handle(ctx context.Context, command OfferOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	paid, err := uow.OrderRepository().GetAllInStatus(ctx, order.Paid)
	rollbackErr := uow.Rollback(ctx)
	if err != nil {
		return err
	}
	if rollbackErr != nil {
		return rollbackErr
	}

	for _, aggregate := range paid {
		if err = h.offerOne(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				continue
			}
			return err
		}
		h.collaborators.notifyTaskOffered(ctx, aggregate.ID())
		h.collaborators.publishStatusChange(ctx, h.systemActor, "order.offered", aggregate)
	}
	return nil
}

func (h OfferOrdersCommandHandler) offerOne(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	from := aggregate.Status()
	if err := aggregate.Offer(time.Now()); err != nil {
		return err
	}

	if err := recordAudit(
		ctx,
		uow.AuditRepository(),
		h.systemActor,
		"order.offered",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{From: from.String(), To: aggregate.Status().String()},
	); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
