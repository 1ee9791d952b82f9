package earnings

import (
	"fulfillment/internal/pkg/errs"
)

// Status models the payout state of an earnings record.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota

	// StatusPending marks earnings accrued but not yet approved for payout.
	StatusPending

	// StatusApproved marks earnings approved for the next payout run.
	StatusApproved

	// StatusPaid marks earnings already transferred to the writer.
	StatusPaid

	// StatusCancelled marks earnings voided before payout.
	StatusCancelled
)

// Validate checks that the status holds one of the declared values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusPaid:
		return "paid"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(value string) (Status, error) {
	switch value {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "paid":
		return StatusPaid, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidError("status")
	}
}
