package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FetchTasksQueryHandler reads a writer's task list from the database.
// The available view excludes orders the writer has already declined, so a
// declined order never reappears in that writer's pool.
type FetchTasksQueryHandler struct {
	db *gorm.DB
}

// NewFetchTasksQueryHandler creates a handler for writer task list queries.
func NewFetchTasksQueryHandler(db *gorm.DB) FetchTasksQueryHandler {
	return FetchTasksQueryHandler{db: db}
}

// Handle executes the task list query. Assigned tasks are every order the
// writer currently holds; available tasks are offered orders the writer has
// not declined, oldest offer first.
func (h FetchTasksQueryHandler) Handle(
	ctx context.Context,
	query FetchTasksQuery,
) ([]FetchTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)

	switch query.Filter() {
	case FilterAssigned:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				o.id,
				o.status,
				o.offered_at,
				COALESCE(SUM(li.quantity), 0)
			FROM orders o
			LEFT JOIN order_line_items li ON li.order_id = o.id
			WHERE o.assigned_writer_id = ?
			GROUP BY o.id, o.status, o.offered_at
			ORDER BY o.id
		`, query.WriterID().Bytes()).Rows()
	case FilterAvailable:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				o.id,
				o.status,
				o.offered_at,
				COALESCE(SUM(li.quantity), 0)
			FROM orders o
			LEFT JOIN order_line_items li ON li.order_id = o.id
			WHERE o.status = ?
			AND NOT EXISTS (
				SELECT 1
				FROM order_declines d
				WHERE d.order_id = o.id AND d.writer_id = ?
			)
			GROUP BY o.id, o.status, o.offered_at
			ORDER BY o.offered_at
		`, int(order.WriterOffered), query.WriterID().Bytes()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]FetchTasksQueryResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			offeredAt sql.NullTime
			units     int
		)

		if err = rows.Scan(&id, &status, &offeredAt, &units); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		task := FetchTasksQueryResponse{
			ID:     orderID,
			Status: order.Status(status),
			Units:  units,
		}
		if offeredAt.Valid {
			offered := offeredAt.Time
			task.OfferedAt = &offered
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
