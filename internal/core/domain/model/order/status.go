package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the fulfillment workflow: payment, writer assignment, drafting,
// quality control, and shipment.
//
// State transitions:
//
//	Created ──> PaymentPending ──> Paid ──> WriterOffered ──> Assigned ──> InProgress
//	                                            │  ▲              │            │
//	                                    decline ┘  └── expiry     └────┬───────┘
//	                                                                   ▼
//	                                                            DraftSubmitted
//	                                                                   │
//	                                                                   ▼
//	            InProgress <── reject ──  QCReview ── approve ──> QCApproved
//	                        (QCRejected                                │
//	                         when escalated)                           ▼
//	                                                  Packed ──> Shipped ──> Delivered
//	                                                                │            │
//	                                                                └── refund ──┴──> Refunded
//
// Any state before shipment can additionally move to Cancelled or OnHold
// (OnHold is reversible back to the prior state). Delivered, Cancelled, and
// Refunded are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// PaymentPending indicates the customer started but not finished payment.
	PaymentPending

	// Paid indicates payment is confirmed and stock is reserved.
	// Line items are immutable from this point on.
	Paid

	// WriterOffered indicates the order is visible to the writer pool
	// and waiting to be claimed.
	WriterOffered

	// Assigned indicates exactly one writer holds the order.
	Assigned

	// InProgress indicates the assigned writer started working.
	InProgress

	// DraftSubmitted indicates the writer uploaded a draft.
	DraftSubmitted

	// QCReview indicates the draft is in the shared QC pool.
	QCReview

	// QCApproved indicates QC approved the draft; earnings accrue here.
	QCApproved

	// QCRejected indicates the draft was rejected past the rework limit
	// and is waiting for admin attention. Ordinary rejections send the
	// order back to InProgress instead.
	QCRejected

	// Packed indicates the gift has been packed for shipment.
	Packed

	// Shipped indicates the parcel left the warehouse; reserved stock is
	// converted to consumption at this point.
	Shipped

	// Delivered indicates the customer received the parcel. Terminal,
	// except for the refund edge.
	Delivered

	// Cancelled is a terminal state; reservations are released.
	Cancelled

	// OnHold pauses the order; reversible back to the prior state.
	OnHold

	// Refunded is a terminal state reached from Shipped or Delivered.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Created:        "Created",
		PaymentPending: "PaymentPending",
		Paid:           "Paid",
		WriterOffered:  "WriterOffered",
		Assigned:       "Assigned",
		InProgress:     "InProgress",
		DraftSubmitted: "DraftSubmitted",
		QCReview:       "QCReview",
		QCApproved:     "QCApproved",
		QCRejected:     "QCRejected",
		Packed:         "Packed",
		Shipped:        "Shipped",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
		OnHold:         "OnHold",
		Refunded:       "Refunded",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Refunded {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible,
// other than the Delivered -> Refunded refund edge.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// AllowsWriter reports whether the status permits a writer assignment.
// An order's assignedWriterId must be nil in every other status.
func (s Status) AllowsWriter() bool {
	switch s {
	case Assigned, InProgress, DraftSubmitted, QCReview, QCRejected:
		return true
	default:
		return false
	}
}

// HoldsReservation reports whether stock reserved for the order is still
// counted as reserved. Reservations exist from Paid until they are consumed
// at shipment or released by cancellation or refund.
func (s Status) HoldsReservation() bool {
	switch s {
	case Paid, WriterOffered, Assigned, InProgress, DraftSubmitted,
		QCReview, QCApproved, QCRejected, Packed, OnHold:
		return true
	default:
		return false
	}
}

// ConfirmPayment transitions the status to Paid.
// Legal from Created or PaymentPending.
func (s Status) ConfirmPayment() (Status, error) {
	if s != Created && s != PaymentPending {
		return 0, errs.NewInvalidTransitionError("confirmPayment", s.String())
	}
	return Paid, nil
}

// Offer transitions the status to WriterOffered, entering the order into the
// assignment pool. Legal only from Paid.
func (s Status) Offer() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidTransitionError("offer", s.String())
	}
	return WriterOffered, nil
}

// Accept transitions the status to Assigned when a writer claims the offer.
// Legal only from WriterOffered; a claim race between two writers is resolved
// by the storage layer's version check, not here.
func (s Status) Accept() (Status, error) {
	if s != WriterOffered {
		return 0, errs.NewInvalidTransitionError("acceptTask", s.String())
	}
	return Assigned, nil
}

// Decline validates that declining is legal. The order stays WriterOffered:
// declining removes the order from one writer's view, not from the pool.
// Declining an already-assigned order is an invalid transition; the caller
// is expected to request reassignment instead.
func (s Status) Decline() (Status, error) {
	if s != WriterOffered {
		return 0, errs.NewInvalidTransitionError("declineTask", s.String())
	}
	return WriterOffered, nil
}

// BeginWork transitions the status to InProgress.
// Legal from Assigned; submitting a draft triggers this implicitly.
func (s Status) BeginWork() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError("beginWork", s.String())
	}
	return InProgress, nil
}

// SubmitDraft transitions the status to DraftSubmitted.
// Legal from Assigned or InProgress.
func (s Status) SubmitDraft() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewInvalidTransitionError("submitDraft", s.String())
	}
	return DraftSubmitted, nil
}

// EnqueueQC transitions the status to QCReview. This is the automatic edge
// following a draft submission.
func (s Status) EnqueueQC() (Status, error) {
	if s != DraftSubmitted {
		return 0, errs.NewInvalidTransitionError("enqueueQC", s.String())
	}
	return QCReview, nil
}

// Approve transitions the status to QCApproved.
// Legal only from QCReview; the idempotent re-approval no-op is handled by
// the aggregate, which never reaches this method for an approved order.
func (s Status) Approve() (Status, error) {
	if s != QCReview {
		return 0, errs.NewInvalidTransitionError("approveOrder", s.String())
	}
	return QCApproved, nil
}

// Reject returns the rework target state InProgress.
// Legal only from QCReview. Escalation past the rework limit uses Escalate.
func (s Status) Reject() (Status, error) {
	if s != QCReview {
		return 0, errs.NewInvalidTransitionError("rejectOrder", s.String())
	}
	return InProgress, nil
}

// Escalate transitions the status to QCRejected, parking the order for admin
// attention once the rework limit is exhausted. No automatic transition
// leaves QCRejected.
func (s Status) Escalate() (Status, error) {
	if s != QCReview {
		return 0, errs.NewInvalidTransitionError("escalate", s.String())
	}
	return QCRejected, nil
}

// Reassign transitions the status back to Assigned under a new writer.
// Legal from every writer-held state, skipping the WriterOffered pool.
func (s Status) Reassign() (Status, error) {
	if !s.AllowsWriter() {
		return 0, errs.NewInvalidTransitionError("reassignWriter", s.String())
	}
	return Assigned, nil
}

// Pack transitions the status to Packed. Legal only from QCApproved.
func (s Status) Pack() (Status, error) {
	if s != QCApproved {
		return 0, errs.NewInvalidTransitionError("pack", s.String())
	}
	return Packed, nil
}

// Ship transitions the status to Shipped. Legal only from Packed.
// The reservation-to-consumption conversion happens on this edge.
func (s Status) Ship() (Status, error) {
	if s != Packed {
		return 0, errs.NewInvalidTransitionError("ship", s.String())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered. Legal only from Shipped.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError("deliver", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Legal from any pre-shipment, non-terminal state. Once the parcel has
// shipped the only reversal is Refund.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Shipped || s == Unknown {
		return 0, errs.NewInvalidTransitionError("cancelOrder", s.String())
	}
	return Cancelled, nil
}

// Hold transitions the status to OnHold. Legal from any non-terminal state
// except OnHold itself. The aggregate remembers the prior state for Resume.
func (s Status) Hold() (Status, error) {
	if s.IsTerminal() || s == OnHold || s == Unknown {
		return 0, errs.NewInvalidTransitionError("holdOrder", s.String())
	}
	return OnHold, nil
}

// Refund transitions the status to Refunded. Legal from Shipped or Delivered.
func (s Status) Refund() (Status, error) {
	if s != Shipped && s != Delivered {
		return 0, errs.NewInvalidTransitionError("refundOrder", s.String())
	}
	return Refunded, nil
}
