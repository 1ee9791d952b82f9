package earningsrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEarningsRepository implements EarningsRepository using GORM.
type GormEarningsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEarningsRepository creates a new GORM earnings repository.
func NewGormEarningsRepository(db *gorm.DB, tracker aggregateTracker) *GormEarningsRepository {
	return &GormEarningsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new earnings record to the database.
func (r *GormEarningsRepository) Add(ctx context.Context, record *earnings.Record) error {
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

// Update saves an existing earnings record's status.
func (r *GormEarningsRepository) Update(ctx context.Context, record *earnings.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("earnings record", record.ID().String())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves an earnings record by ID.
func (r *GormEarningsRepository) Get(ctx context.Context, id kernel.UUID) (*earnings.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("earnings record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every earnings record accrued for the given order,
// in accrual order. Used to keep approval idempotent across retries and to
// cancel unpaid records on reassignment or refund.
func (r *GormEarningsRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*earnings.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Order("accrued_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*earnings.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		records = append(records, record)
	}

	return records, nil
}
