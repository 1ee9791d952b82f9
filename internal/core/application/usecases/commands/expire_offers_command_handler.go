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

// ExpireOffersCommandHandler recycles offers that outlived the TTL.
// The re-offer races against concurrent claims on the version column;
// a claim that committed first wins and the expiry is skipped.
type ExpireOffersCommandHandler struct {
	uowFactory    OrderUoWFactory
	offerTTL      time.Duration
	systemActor   kernel.Actor
	collaborators Collaborators
}

// NewExpireOffersCommandHandler creates a handler for the offer expiry
// batch. offerTTL is how long an offer may sit unclaimed.
func NewExpireOffersCommandHandler(
	uowFactory OrderUoWFactory,
	offerTTL time.Duration,
	systemActor kernel.Actor,
	collaborators Collaborators,
) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory:    uowFactory,
		offerTTL:      offerTTL,
		systemActor:   systemActor,
		collaborators: collaborators,
	}
}

// Handle restamps every stale offer, one transaction per order.
func (h ExpireOffersCommandHandler) Handle(ctx context.Context, command ExpireOffersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().Add(-h.offerTTL)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	stale, err := uow.OrderRepository().GetAllOfferedBefore(ctx, cutoff)
	rollbackErr := uow.Rollback(ctx)
	if err != nil {
		return err
	}
	if rollbackErr != nil {
		return rollbackErr
	}

	for _, aggregate := range stale {
		if err = h.reofferOne(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				continue
			}
			return err
		}
		h.collaborators.notifyTaskOffered(ctx, aggregate.ID())
		h.collaborators.publishStatusChange(ctx, h.systemActor, "order.offer_expired", aggregate)
	}
	return nil
}

func (h ExpireOffersCommandHandler) reofferOne(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.ReOffer(time.Now()); err != nil {
		return err
	}

	if err := recordAudit(
		ctx,
		uow.AuditRepository(),
		h.systemActor,
		"order.offer_expired",
		audit.TargetOrder,
		aggregate.ID(),
		statusChangePayload{
			From: aggregate.Status().String(),
			To:   aggregate.Status().String(),
		},
	); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
