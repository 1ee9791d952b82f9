package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWriterEarningsQueryHandler reads a writer's earnings ledger from the
// database and folds the payout totals on the way out.
type GetWriterEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetWriterEarningsQueryHandler creates a handler for earnings queries.
func NewGetWriterEarningsQueryHandler(db *gorm.DB) GetWriterEarningsQueryHandler {
	return GetWriterEarningsQueryHandler{db: db}
}

// Handle returns the writer's ledger rows in accrual order plus the folded
// TotalEarned and PendingPayout amounts.
func (h GetWriterEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetWriterEarningsQuery,
) (GetWriterEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWriterEarningsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			amount,
			status,
			accrued_at
		FROM earnings_records
		WHERE writer_id = ?
		ORDER BY accrued_at, id
	`, query.WriterID().Bytes()).Rows()
	if err != nil {
		return GetWriterEarningsQueryResponse{}, err
	}
	defer rows.Close()

	records := make([]WriterEarningsRecord, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			amount    int64
			status    int
			accruedAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &amount, &status, &accruedAt); err != nil {
			return GetWriterEarningsQueryResponse{}, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetWriterEarningsQueryResponse{}, idErr
		}
		order, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return GetWriterEarningsQueryResponse{}, idErr
		}
		money, moneyErr := kernel.NewMoney(amount)
		if moneyErr != nil {
			return GetWriterEarningsQueryResponse{}, moneyErr
		}

		records = append(records, WriterEarningsRecord{
			ID:        recordID,
			OrderID:   order,
			Amount:    money,
			Status:    earnings.Status(status),
			AccruedAt: accruedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetWriterEarningsQueryResponse{}, err
	}

	totalEarned, pendingPayout := FoldEarnings(records)

	return GetWriterEarningsQueryResponse{
		WriterID:      query.WriterID(),
		Records:       records,
		TotalEarned:   totalEarned,
		PendingPayout: pendingPayout,
	}, nil
}
