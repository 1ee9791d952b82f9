package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs an optimistic concurrency check: the row is only
// written when its stored version still matches the aggregate's version
// at load time. A lost race surfaces as errs.ErrConflict and the caller
// retries or reports it; it is never silently overwritten.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns errs.ErrConflict when the stored version no longer
	// matches, meaning another actor modified the order concurrently.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllOfferedBefore retrieves orders whose offer was published
	// before the cutoff and is still unclaimed. Used by the offer
	// expiry job to re-offer stale tasks.
	GetAllOfferedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
