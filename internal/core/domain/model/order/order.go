package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrWriterExcluded is returned when a writer who already declined or was
	// unassigned from an order tries to claim it again. Only an admin
	// reassignment can put the order back in that writer's hands.
	ErrWriterExcluded = errors.New("writer previously declined or was unassigned from this order")

	// ErrLineItemsAreImmutable is returned on any attempt to change line items
	// after payment confirmation reserved stock against them.
	ErrLineItemsAreImmutable = errors.New("line items are immutable once the order is paid")
)

// Order is the central aggregate of the fulfillment engine. It owns the
// lifecycle state, the writer assignment, the decline history, and the
// optimistic-concurrency version.
//
// Order maintains these invariants:
//   - at most one writer holds the order at any instant
//   - a writer is assigned only while the status allows it
//   - the decline history is append-only
//   - line items never change after payment confirmation
//   - every state change goes through a validated Status transition
//
// The version field is the aggregate's optimistic-concurrency token: the
// repository performs a conditional update against it and bumps it on
// success, so two concurrent mutations of the same order cannot both commit.
type Order struct {
	id               kernel.UUID
	version          int
	status           Status
	assignedWriterID *kernel.UUID
	lineItems        []LineItem
	draftURL         string
	declineHistory   []Decline
	reworkCount      int
	escalated        bool
	heldStatus       *Status
	heldWriterID     *kernel.UUID
	offeredAt        *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Created status with the given line items.
// At least one line item is required; quantities were validated by
// NewLineItem.
func NewOrder(id kernel.UUID, lineItems []LineItem) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, errs.NewValueIsRequiredError("lineItems")
	}

	return &Order{
		id:            id,
		version:       1,
		status:        Created,
		lineItems:     append([]LineItem(nil), lineItems...),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// transitions. The repository is the only intended caller; it passes state it
// previously stored, so only structural validation is performed here.
func RestoreOrder(
	id kernel.UUID,
	version int,
	status Status,
	assignedWriterID *kernel.UUID,
	lineItems []LineItem,
	draftURL string,
	declineHistory []Decline,
	reworkCount int,
	escalated bool,
	heldStatus *Status,
	heldWriterID *kernel.UUID,
	offeredAt *time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	if assignedWriterID != nil && !status.AllowsWriter() {
		return nil, errs.NewValueIsInvalidError("assignedWriterId")
	}
	if assignedWriterID == nil && status.AllowsWriter() {
		return nil, errs.NewValueIsRequiredError("assignedWriterId")
	}

	return &Order{
		id:               id,
		version:          version,
		status:           status,
		assignedWriterID: assignedWriterID,
		lineItems:        append([]LineItem(nil), lineItems...),
		draftURL:         draftURL,
		declineHistory:   append([]Decline(nil), declineHistory...),
		reworkCount:      reworkCount,
		escalated:        escalated,
		heldStatus:       heldStatus,
		heldWriterID:     heldWriterID,
		offeredAt:        offeredAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order was created through a factory function and its
// writer assignment is consistent with the current status.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	if o.assignedWriterID != nil && !o.status.AllowsWriter() {
		return errs.NewValueIsInvalidError("assignedWriterId")
	}
	if o.assignedWriterID == nil && o.status.AllowsWriter() {
		return errs.NewValueIsRequiredError("assignedWriterId")
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Version returns the optimistic-concurrency version the aggregate was
// loaded with.
func (o *Order) Version() int {
	return o.version
}

// IncrementVersion records a successful conditional update. Only the
// repository calls this, after the storage layer accepted the write.
func (o *Order) IncrementVersion() {
	o.version++
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedWriter returns the currently assigned writer's ID, or nil.
func (o *Order) AssignedWriter() *kernel.UUID {
	return o.assignedWriterID
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// DraftURL returns the uploaded draft reference, empty if none.
func (o *Order) DraftURL() string {
	return o.draftURL
}

// DeclineHistory returns a copy of the append-only decline history.
func (o *Order) DeclineHistory() []Decline {
	return append([]Decline(nil), o.declineHistory...)
}

// ReworkCount returns how many times QC has rejected the current assignment.
func (o *Order) ReworkCount() int {
	return o.reworkCount
}

// IsEscalated reports whether the order is parked for admin attention after
// exhausting the rework limit.
func (o *Order) IsEscalated() bool {
	return o.escalated
}

// HeldStatus returns the status an OnHold order will resume into, or nil.
func (o *Order) HeldStatus() *Status {
	return o.heldStatus
}

// HeldWriter returns the writer stashed while the order is OnHold, or nil.
func (o *Order) HeldWriter() *kernel.UUID {
	return o.heldWriterID
}

// OfferedAt returns when the current offer was (re)published, or nil.
func (o *Order) OfferedAt() *time.Time {
	return o.offeredAt
}

// HasDeclined reports whether the writer appears in the decline history.
func (o *Order) HasDeclined(writerID kernel.UUID) bool {
	for _, d := range o.declineHistory {
		if d.WriterID().IsEqual(writerID) {
			return true
		}
	}
	return false
}

// ConfirmPayment transitions the order to Paid. Line items become immutable;
// the caller reserves stock against them in the same transaction.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Offer publishes the order to the writer pool and stamps the offer time,
// which anchors the offer TTL.
func (o *Order) Offer(now time.Time) error {
	newStatus, err := o.status.Offer()
	if err != nil {
		return err
	}
	now = now.UTC()
	o.status = newStatus
	o.offeredAt = &now
	return nil
}

// ReOffer restamps an expired offer so it re-enters the pool. Legal only
// while the order is still WriterOffered; a concurrent accept that committed
// first wins via the version check.
func (o *Order) ReOffer(now time.Time) error {
	if o.status != WriterOffered {
		return errs.NewInvalidTransitionError("reoffer", o.status.String())
	}
	now = now.UTC()
	o.offeredAt = &now
	return nil
}

// Accept claims the offer for the given writer. Writers present in the
// decline history are excluded; an admin reassignment is the only override.
func (o *Order) Accept(writerID kernel.UUID) error {
	if err := writerID.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	if o.HasDeclined(writerID) {
		return ErrWriterExcluded
	}
	o.status = newStatus
	o.assignedWriterID = &writerID
	o.offeredAt = nil
	return nil
}

// Decline records the writer's refusal. The order stays WriterOffered and in
// the pool; the writer is excluded from future listings of this order.
func (o *Order) Decline(writerID kernel.UUID, reason string, now time.Time) error {
	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}
	decline, err := NewDecline(writerID, reason, now)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.declineHistory = append(o.declineHistory, decline)
	return nil
}

// BeginWork moves an Assigned order to InProgress.
func (o *Order) BeginWork() error {
	newStatus, err := o.status.BeginWork()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SubmitDraft records the writer's upload and moves the order to
// DraftSubmitted. Submitting from Assigned implies beginning work. A
// non-empty file reference is required.
func (o *Order) SubmitDraft(fileURL string) error {
	if fileURL == "" {
		return errs.NewValueIsRequiredError("fileUrl")
	}
	newStatus, err := o.status.SubmitDraft()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.draftURL = fileURL
	return nil
}

// EnqueueQC moves a submitted draft into the QC pool. This is the automatic
// edge that follows SubmitDraft inside the same transaction.
func (o *Order) EnqueueQC() error {
	newStatus, err := o.status.EnqueueQC()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Approve records the QC approval. The writer assignment is released: the
// caller captures the writer before approving, because earnings accrue to
// that writer in the same transaction.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.assignedWriterID = nil
	return nil
}

// Reject records a QC rejection. Within the rework limit the order returns
// to InProgress for rework; past the limit it escalates to QCRejected and
// waits for admin attention. Returns whether escalation happened.
func (o *Order) Reject(reworkLimit int) (bool, error) {
	if o.reworkCount >= reworkLimit {
		newStatus, err := o.status.Escalate()
		if err != nil {
			return false, err
		}
		o.status = newStatus
		o.reworkCount++
		o.escalated = true
		return true, nil
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return false, err
	}
	o.status = newStatus
	o.reworkCount++
	return false, nil
}

// Reassign moves the order to a new writer directly, skipping the offer
// pool. The prior writer lands in the decline history with the given reason,
// the draft is cleared, and the rework cycle starts over. The caller creates
// the compensating earnings cancellation for the prior writer.
func (o *Order) Reassign(newWriterID kernel.UUID, reason string, now time.Time) error {
	if err := newWriterID.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.Reassign()
	if err != nil {
		return err
	}

	if o.assignedWriterID != nil {
		decline, declineErr := NewDecline(*o.assignedWriterID, reason, now)
		if declineErr != nil {
			return declineErr
		}
		o.declineHistory = append(o.declineHistory, decline)
	}

	o.status = newStatus
	o.assignedWriterID = &newWriterID
	o.draftURL = ""
	o.reworkCount = 0
	o.escalated = false
	return nil
}

// Pack moves an approved order to Packed.
func (o *Order) Pack() error {
	newStatus, err := o.status.Pack()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship moves a packed order to Shipped. The caller converts the stock
// reservation to consumption in the same transaction.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver moves a shipped order to Delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled and drops any writer assignment.
// The caller releases reservations and cancels pending earnings in the same
// transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.assignedWriterID = nil
	o.heldStatus = nil
	o.heldWriterID = nil
	o.offeredAt = nil
	return nil
}

// Hold pauses the order. The current status and writer are stashed so Resume
// can restore them exactly; while OnHold the order carries no writer
// assignment.
func (o *Order) Hold() error {
	newStatus, err := o.status.Hold()
	if err != nil {
		return err
	}
	prior := o.status
	o.heldStatus = &prior
	o.heldWriterID = o.assignedWriterID
	o.assignedWriterID = nil
	o.status = newStatus
	return nil
}

// Resume returns an OnHold order to the exact state it was paused in,
// restoring the stashed writer assignment.
func (o *Order) Resume() error {
	if o.status != OnHold || o.heldStatus == nil {
		return errs.NewInvalidTransitionError("resumeOrder", o.status.String())
	}
	o.status = *o.heldStatus
	o.assignedWriterID = o.heldWriterID
	o.heldStatus = nil
	o.heldWriterID = nil
	return nil
}

// Refund moves a shipped or delivered order to Refunded. The caller reverses
// earnings still pending or approved; paid-out earnings are flagged for
// manual recovery, never silently reversed.
func (o *Order) Refund() error {
	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
