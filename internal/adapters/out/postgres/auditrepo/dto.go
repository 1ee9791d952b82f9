// Package auditrepo persists audit trail entries with GORM. The trail is
// append-only; entries are written in the same transaction as the state
// change they describe, so a committed transition always has its entry.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ActorRole  string    `gorm:"not null"`
	Action     string    `gorm:"index;not null"`
	TargetKind string    `gorm:"not null"`
	TargetID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Payload    datatypes.JSON
	CreatedAt  time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ActorID:    entry.ActorID().Bytes(),
		ActorRole:  entry.ActorRole().String(),
		Action:     entry.Action(),
		TargetKind: entry.TargetKind(),
		TargetID:   entry.TargetID().Bytes(),
		Payload:    datatypes.JSON(entry.Payload()),
		CreatedAt:  entry.CreatedAt(),
	}
}
