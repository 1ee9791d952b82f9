package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
)

// EarningsRepository defines the persistence contract for the writer
// earnings ledger. The ledger is append-only: records are added and
// their status updated, never deleted.
type EarningsRepository interface {
	// Add persists a new earnings record.
	Add(ctx context.Context, aggregate *earnings.Record) error

	// Update persists a status change to an existing earnings record.
	Update(ctx context.Context, aggregate *earnings.Record) error

	// Get retrieves an earnings record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*earnings.Record, error)

	// GetAllByOrder retrieves every earnings record accrued for an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*earnings.Record, error)
}
