// Package qcrepo persists quality-control records with GORM. Records are
// append-only: a review is a fact about one draft at one moment and is never
// updated after the fact.
package qcrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RecordDTO represents the database structure for persisting QC records.
// The checklist is split into passed and failed name arrays; the pair is
// enough to rebuild the checklist since item order carries no meaning.
type RecordDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID      `gorm:"type:uuid;index;not null"`
	WriterID     uuid.UUID      `gorm:"type:uuid;index;not null"`
	ReviewerID   uuid.UUID      `gorm:"type:uuid;not null"`
	Result       int            `gorm:"not null"`
	PassedChecks pq.StringArray `gorm:"type:text[]"`
	FailedChecks pq.StringArray `gorm:"type:text[]"`
	Comments     string
	ReviewedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for QC records.
func (RecordDTO) TableName() string {
	return "qc_records"
}

func fromDomain(record *qc.Record) RecordDTO {
	return RecordDTO{
		ID:           record.ID().Bytes(),
		OrderID:      record.OrderID().Bytes(),
		WriterID:     record.WriterID().Bytes(),
		ReviewerID:   record.ReviewerID().Bytes(),
		Result:       int(record.Result()),
		PassedChecks: record.Checklist().Passed(),
		FailedChecks: record.Checklist().Failed(),
		Comments:     record.Comments(),
		ReviewedAt:   record.ReviewedAt(),
	}
}

func toDomain(dto RecordDTO) (*qc.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	writerID, err := kernel.UUIDFromBytes(dto.WriterID[:])
	if err != nil {
		return nil, err
	}
	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return nil, err
	}

	return qc.RestoreRecord(
		id,
		orderID,
		writerID,
		reviewerID,
		qc.Result(dto.Result),
		qc.ChecklistFromNames(dto.PassedChecks, dto.FailedChecks),
		dto.Comments,
		dto.ReviewedAt,
	)
}
