package earnings

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

	// ErrRecordAlreadyPaid is returned when cancellation is attempted on
	// earnings that left the system. The caller flags the record for manual
	// recovery instead of mutating it.
	ErrRecordAlreadyPaid = errors.New("earnings record is already paid and cannot be cancelled")
)

// Breakdown itemizes how a writer's pay for one order was computed.
type Breakdown struct {
	BasePay kernel.Money
	Bonus   kernel.Money
	Penalty kernel.Money
}

// Total folds the breakdown into the payable amount. A penalty can never
// push the amount below zero.
func (b Breakdown) Total() kernel.Money {
	return b.BasePay.Add(b.Bonus).Sub(b.Penalty)
}

// Record is a ledger entry accruing pay to a writer for one completed order.
// Records are never deleted; a reversal is expressed as cancellation.
type Record struct {
	id        kernel.UUID
	writerID  kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	breakdown Breakdown
	status    Status
	accruedAt time.Time

	isConstructed bool
}

// NewRecord accrues pending earnings for a writer on an order.
func NewRecord(
	id kernel.UUID,
	writerID kernel.UUID,
	orderID kernel.UUID,
	breakdown Breakdown,
	now time.Time,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := writerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("writerID", err)
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return &Record{
		id:            id,
		writerID:      writerID,
		orderID:       orderID,
		amount:        breakdown.Total(),
		breakdown:     breakdown,
		status:        StatusPending,
		accruedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	writerID kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	breakdown Breakdown,
	status Status,
	accruedAt time.Time,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := writerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("writerID", err)
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		id:            id,
		writerID:      writerID,
		orderID:       orderID,
		amount:        amount,
		breakdown:     breakdown,
		status:        status,
		accruedAt:     accruedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record was created through a factory function.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// WriterID returns the writer the earnings accrue to.
func (r *Record) WriterID() kernel.UUID {
	return r.writerID
}

// OrderID returns the order the earnings were accrued for.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Amount returns the payable amount in cents.
func (r *Record) Amount() kernel.Money {
	return r.amount
}

// Breakdown returns the itemized computation of the amount.
func (r *Record) Breakdown() Breakdown {
	return r.breakdown
}

// Status returns the payout state of the record.
func (r *Record) Status() Status {
	return r.status
}

// AccruedAt returns when the earnings were accrued.
func (r *Record) AccruedAt() time.Time {
	return r.accruedAt
}

// Approve marks pending earnings as approved for the next payout run.
func (r *Record) Approve() error {
	if r.status != StatusPending {
		return errs.NewInvalidTransitionError("approve earnings", r.status.String())
	}
	r.status = StatusApproved
	return nil
}

// MarkPaid records that the earnings were transferred to the writer.
func (r *Record) MarkPaid() error {
	if r.status != StatusApproved {
		return errs.NewInvalidTransitionError("pay earnings", r.status.String())
	}
	r.status = StatusPaid
	return nil
}

// Cancel voids earnings that have not been paid out yet. Paid records
// refuse cancellation with ErrRecordAlreadyPaid.
func (r *Record) Cancel() error {
	switch r.status {
	case StatusPending, StatusApproved:
		r.status = StatusCancelled
		return nil
	case StatusPaid:
		return ErrRecordAlreadyPaid
	default:
		return errs.NewInvalidTransitionError("cancel earnings", r.status.String())
	}
}
