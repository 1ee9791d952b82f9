package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingQCTasksQueryHandler reads the shared QC pool from the database.
type GetPendingQCTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingQCTasksQueryHandler creates a handler for QC pool queries.
func NewGetPendingQCTasksQueryHandler(db *gorm.DB) GetPendingQCTasksQueryHandler {
	return GetPendingQCTasksQueryHandler{db: db}
}

// Handle returns every order in QCReview status, oldest first by id.
// Orders in QCReview always carry a writer and a draft URL, enforced by the
// aggregate before persistence.
func (h GetPendingQCTasksQueryHandler) Handle(
	ctx context.Context,
	query GetPendingQCTasksQuery,
) ([]GetPendingQCTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			assigned_writer_id,
			draft_url,
			rework_count
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(order.QCReview)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetPendingQCTasksQueryResponse, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			writerID    uuid.UUID
			draftURL    string
			reworkCount int
		)

		if err = rows.Scan(&id, &writerID, &draftURL, &reworkCount); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		writer, idErr := kernel.UUIDFromBytes(writerID[:])
		if idErr != nil {
			return nil, idErr
		}

		tasks = append(tasks, GetPendingQCTasksQueryResponse{
			ID:          orderID,
			WriterID:    writer,
			DraftURL:    draftURL,
			ReworkCount: reworkCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
