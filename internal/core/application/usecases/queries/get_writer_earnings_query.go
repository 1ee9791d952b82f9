package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWriterEarningsQueryIsNotConstructed = errors.New(
	"GetWriterEarningsQuery must be created via NewGetWriterEarningsQuery constructor",
)

// GetWriterEarningsQuery retrieves a writer's earnings ledger with totals.
// Totals are folded over the records on every read, never cached, so the
// ledger rows are always the single source of truth.
type GetWriterEarningsQuery struct {
	writerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWriterEarningsQuery creates an earnings query for the given writer.
func NewGetWriterEarningsQuery(writerID kernel.UUID) (GetWriterEarningsQuery, error) {
	if err := writerID.Validate(); err != nil {
		return GetWriterEarningsQuery{}, err
	}

	return GetWriterEarningsQuery{
		writerID: writerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWriterEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetWriterEarningsQueryIsNotConstructed)
}

// WriterID returns the writer whose ledger is requested.
func (q GetWriterEarningsQuery) WriterID() kernel.UUID {
	return q.writerID
}

// WriterEarningsRecord is one ledger row in the response.
type WriterEarningsRecord struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Amount    kernel.Money
	Status    earnings.Status
	AccruedAt time.Time
}

// GetWriterEarningsQueryResponse is a writer's ledger plus folded totals.
type GetWriterEarningsQueryResponse struct {
	WriterID      kernel.UUID
	Records       []WriterEarningsRecord
	TotalEarned   kernel.Money
	PendingPayout kernel.Money
}

// FoldEarnings computes the two ledger totals from a set of records.
// TotalEarned counts every record that has not been cancelled; PendingPayout
// counts the subset not yet paid out. Cancelled records contribute to neither.
func FoldEarnings(records []WriterEarningsRecord) (totalEarned, pendingPayout kernel.Money) {
	for _, record := range records {
		switch record.Status {
		case earnings.StatusPending, earnings.StatusApproved:
			totalEarned = totalEarned.Add(record.Amount)
			pendingPayout = pendingPayout.Add(record.Amount)
		case earnings.StatusPaid:
			totalEarned = totalEarned.Add(record.Amount)
		}
	}
	return totalEarned, pendingPayout
}
