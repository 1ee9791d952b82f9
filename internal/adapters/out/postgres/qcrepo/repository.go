package qcrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"

	"gorm.io/gorm"
)

// GormQCRepository implements QCRepository using GORM. There is no Update:
// review records are immutable once written.
type GormQCRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQCRepository creates a new GORM QC repository.
func NewGormQCRepository(db *gorm.DB, tracker aggregateTracker) *GormQCRepository {
	return &GormQCRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new QC record to the database.
func (r *GormQCRepository) Add(ctx context.Context, record *qc.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllByOrder retrieves the review history for an order, oldest first.
func (r *GormQCRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*qc.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Order("reviewed_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*qc.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		records = append(records, record)
	}

	return records, nil
}
