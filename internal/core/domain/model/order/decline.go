package order

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	// MinDeclineReasonLength is the shortest accepted decline reason.
	MinDeclineReasonLength = 5

	// MaxDeclineReasonLength bounds the reason so the decline history stays
	// a compact audit record rather than free-form prose.
	MaxDeclineReasonLength = 500
)

// Decline is an append-only record of a writer stepping away from an order,
// either by declining an offer or by being reassigned away. Writers present
// in an order's decline history are excluded from future offers of that order
// unless an admin reassigns them explicitly.
type Decline struct {
	writerID   kernel.UUID
	reason     string
	declinedAt time.Time
}

// NewDecline creates a validated decline entry.
// The reason must be at least MinDeclineReasonLength characters after trimming.
func NewDecline(writerID kernel.UUID, reason string, declinedAt time.Time) (Decline, error) {
	if err := writerID.Validate(); err != nil {
		return Decline{}, err
	}
	reason = strings.TrimSpace(reason)
	if len(reason) < MinDeclineReasonLength || len(reason) > MaxDeclineReasonLength {
		return Decline{}, errs.NewValueIsOutOfRangeError(
			"reason length", len(reason), MinDeclineReasonLength, MaxDeclineReasonLength,
		)
	}
	if declinedAt.IsZero() {
		return Decline{}, errs.NewValueIsRequiredError("declinedAt")
	}
	return Decline{writerID: writerID, reason: reason, declinedAt: declinedAt.UTC()}, nil
}

// WriterID returns the writer who declined or was unassigned.
func (d Decline) WriterID() kernel.UUID {
	return d.writerID
}

// Reason returns the recorded reason.
func (d Decline) Reason() string {
	return d.reason
}

// DeclinedAt returns when the decline was recorded, in UTC.
func (d Decline) DeclinedAt() time.Time {
	return d.declinedAt
}
