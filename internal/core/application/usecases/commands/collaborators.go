package commands

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Collaborators bundles the side channels a handler talks to after its
// transaction commits. Both are optional: a zero value is valid and
// every dispatch is a no-op then, which keeps handler tests free of
// collaborator mocks.
type Collaborators struct {
	Notifier  ports.Notifier
	Publisher ports.EventPublisher
}

func (c Collaborators) publishStatusChange(
	ctx context.Context,
	actor kernel.Actor,
	action string,
	o *order.Order,
) {
	if c.Publisher == nil {
		return
	}
	c.Publisher.PublishStatusChange(ctx, ports.StatusEvent{
		OrderID:    o.ID(),
		Action:     action,
		Status:     o.Status().String(),
		ActorID:    actor.ID(),
		ActorRole:  actor.Role(),
		OccurredAt: time.Now().UTC(),
	})
}

func (c Collaborators) notifyTaskOffered(ctx context.Context, orderID kernel.UUID) {
	if c.Notifier == nil {
		return
	}
	c.Notifier.TaskOffered(ctx, orderID)
}

func (c Collaborators) notifyTaskAssigned(ctx context.Context, orderID, writerID kernel.UUID) {
	if c.Notifier == nil {
		return
	}
	c.Notifier.TaskAssigned(ctx, orderID, writerID)
}

func (c Collaborators) notifyDraftReviewed(
	ctx context.Context,
	orderID, writerID kernel.UUID,
	approved bool,
) {
	if c.Notifier == nil {
		return
	}
	c.Notifier.DraftReviewed(ctx, orderID, writerID, approved)
}

// recordAudit writes one audit entry inside the handler's open
// transaction. The payload is marshalled to JSON; a nil payload is
// stored as-is.
func recordAudit(
	ctx context.Context,
	repo ports.AuditRepository,
	actor kernel.Actor,
	action string,
	targetKind string,
	targetID kernel.UUID,
	payload any,
) error {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		raw = data
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		actor,
		action,
		targetKind,
		targetID,
		raw,
		time.Now(),
	)
	if err != nil {
		return err
	}

	return repo.Add(ctx, entry)
}

// statusChangePayload is the compact JSON snapshot every transition
// records in its audit entry.
type statusChangePayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}
