package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"
)

// QCRepository defines the persistence contract for quality-control
// review records. Records are immutable, so the contract offers no
// update.
type QCRepository interface {
	// Add persists a new review record.
	Add(ctx context.Context, aggregate *qc.Record) error

	// GetAllByOrder retrieves every review ever recorded for an order,
	// oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*qc.Record, error)
}
