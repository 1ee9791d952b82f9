package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusEvent describes one order state change for downstream analytics.
type StatusEvent struct {
	OrderID    kernel.UUID
	Action     string
	Status     string
	ActorID    kernel.UUID
	ActorRole  kernel.Role
	OccurredAt time.Time
}

// EventPublisher emits order state changes to the analytics stream.
// Publishing is best-effort: a failed publish is logged by the
// implementation, never propagated into the business transaction.
type EventPublisher interface {
	PublishStatusChange(ctx context.Context, event StatusEvent)
}
