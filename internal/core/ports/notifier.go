package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier informs writers about tasks that concern them. Delivery is
// best-effort; the business transaction never waits on it.
type Notifier interface {
	// TaskOffered announces a newly offered order to the writer pool.
	TaskOffered(ctx context.Context, orderID kernel.UUID)

	// TaskAssigned tells a writer an order was assigned to them,
	// whether by claiming it or by admin reassignment.
	TaskAssigned(ctx context.Context, orderID, writerID kernel.UUID)

	// DraftReviewed tells the writer the verdict on their draft.
	DraftReviewed(ctx context.Context, orderID, writerID kernel.UUID, approved bool)
}
