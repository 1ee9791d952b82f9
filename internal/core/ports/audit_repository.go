package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// Entries are written in the same transaction as the change they record
// and are never updated or deleted.
type AuditRepository interface {
	// Add persists a new audit entry.
	Add(ctx context.Context, aggregate *audit.Entry) error
}
