// Package earningsrepo persists writer earnings records with GORM. The
// amount column stores the folded total alongside the breakdown components,
// so ledger queries never recompute pay maths.
package earningsrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting earnings records.
type RecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WriterID  uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    int64     `gorm:"not null"`
	BasePay   int64     `gorm:"not null"`
	Bonus     int64     `gorm:"not null"`
	Penalty   int64     `gorm:"not null"`
	Status    int       `gorm:"index;not null"`
	AccruedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for earnings records.
func (RecordDTO) TableName() string {
	return "earnings_records"
}

func fromDomain(record *earnings.Record) RecordDTO {
	breakdown := record.Breakdown()

	return RecordDTO{
		ID:        record.ID().Bytes(),
		WriterID:  record.WriterID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		Amount:    record.Amount().Cents(),
		BasePay:   breakdown.BasePay.Cents(),
		Bonus:     breakdown.Bonus.Cents(),
		Penalty:   breakdown.Penalty.Cents(),
		Status:    int(record.Status()),
		AccruedAt: record.AccruedAt(),
	}
}

func toDomain(dto RecordDTO) (*earnings.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	writerID, err := kernel.UUIDFromBytes(dto.WriterID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	basePay, err := kernel.NewMoney(dto.BasePay)
	if err != nil {
		return nil, err
	}
	bonus, err := kernel.NewMoney(dto.Bonus)
	if err != nil {
		return nil, err
	}
	penalty, err := kernel.NewMoney(dto.Penalty)
	if err != nil {
		return nil, err
	}

	return earnings.RestoreRecord(
		id,
		writerID,
		orderID,
		amount,
		earnings.Breakdown{BasePay: basePay, Bonus: bonus, Penalty: penalty},
		earnings.Status(dto.Status),
		dto.AccruedAt,
	)
}
