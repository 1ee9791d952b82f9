package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Update enforces per-order linearizability: the orders row is written with a
// version-conditional UPDATE, and a missed version surfaces as a conflict
// instead of a silent overwrite.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, conditional on the version the aggregate
// was loaded with. Zero rows affected means another transaction got there
// first and the caller's view is stale; ErrConflict is returned and nothing
// is written. On success the in-memory version is bumped to match the row.
// Line items are immutable and left untouched; the decline history is
// replaced wholesale because it only ever grows.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"version":            aggregate.Version() + 1,
			"status":             dto.Status,
			"assigned_writer_id": dto.AssignedWriterID,
			"draft_url":          dto.DraftURL,
			"rework_count":       dto.ReworkCount,
			"escalated":          dto.Escalated,
			"held_status":        dto.HeldStatus,
			"held_writer_id":     dto.HeldWriterID,
			"offered_at":         dto.OfferedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String(), aggregate.Version())
	}

	if err := r.replaceDeclines(ctx, dto); err != nil {
		return err
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its line items and decline history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Declines", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_declines.id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in the given status, oldest id first.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx, "status = ?", int(status))
}

// GetAllOfferedBefore retrieves offered orders whose offer timestamp is older
// than the cutoff. Used by the offer expiry job to re-enter stale offers into
// the pool.
func (r *GormOrderRepository) GetAllOfferedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	return r.getAll(
		ctx,
		"status = ? AND offered_at < ?",
		int(order.WriterOffered), cutoff,
	)
}

func (r *GormOrderRepository) getAll(
	ctx context.Context,
	condition string,
	args ...any,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Declines", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_declines.id")
		}).
		Order("id").
		Find(&dtos, append([]any{condition}, args...)...).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func (r *GormOrderRepository) replaceDeclines(ctx context.Context, dto OrderDTO) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&DeclineDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Declines) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Declines).Error
}
