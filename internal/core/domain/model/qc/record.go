package qc

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Result is the verdict a reviewer gives a submitted draft.
type Result int

const (
	// ResultUnknown is the zero value and is never valid.
	ResultUnknown Result = iota

	// ResultApproved means the draft passed review.
	ResultApproved

	// ResultRejected means the draft was returned to the writer for rework.
	ResultRejected

	// ResultChangesRequested means the draft needs specific amendments
	// but is otherwise on track. It flows through the same rework path
	// as a rejection.
	ResultChangesRequested
)

// Validate checks that the result holds one of the declared values.
func (r Result) Validate() error {
	if r <= ResultUnknown || r > ResultChangesRequested {
		return errs.NewValueIsInvalidError("result")
	}
	return nil
}

// RequiresRework reports whether the verdict sends the draft back to
// the writer.
func (r Result) RequiresRework() bool {
	return r == ResultRejected || r == ResultChangesRequested
}

// String returns the persisted representation of the result.
func (r Result) String() string {
	switch r {
	case ResultApproved:
		return "approved"
	case ResultRejected:
		return "rejected"
	case ResultChangesRequested:
		return "changes_requested"
	default:
		return "unknown"
	}
}

// ResultFromString parses the persisted representation of a result.
func ResultFromString(value string) (Result, error) {
	switch value {
	case "approved":
		return ResultApproved, nil
	case "rejected":
		return ResultRejected, nil
	case "changes_requested":
		return ResultChangesRequested, nil
	default:
		return ResultUnknown, errs.NewValueIsInvalidError("result")
	}
}

// ChecklistItem is one named check a reviewer performed on a draft.
type ChecklistItem struct {
	Name   string
	Passed bool
}

// Checklist is the full set of checks performed during one review.
type Checklist []ChecklistItem

// Validate checks that every item carries a name and no name repeats.
func (c Checklist) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for _, item := range c {
		if strings.TrimSpace(item.Name) == "" {
			return errs.NewValueIsRequiredError("checklist item name")
		}
		if _, ok := seen[item.Name]; ok {
			return errs.NewValueIsInvalidError("checklist")
		}
		seen[item.Name] = struct{}{}
	}
	return nil
}

// Passed returns the names of the checks that passed, in checklist order.
func (c Checklist) Passed() []string {
	return c.names(true)
}

// Failed returns the names of the checks that failed, in checklist order.
func (c Checklist) Failed() []string {
	return c.names(false)
}

func (c Checklist) names(passed bool) []string {
	names := make([]string, 0, len(c))
	for _, item := range c {
		if item.Passed == passed {
			names = append(names, item.Name)
		}
	}
	return names
}

// ChecklistFromNames rebuilds a checklist from persisted passed and
// failed name lists.
func ChecklistFromNames(passed, failed []string) Checklist {
	checklist := make(Checklist, 0, len(passed)+len(failed))
	for _, name := range passed {
		checklist = append(checklist, ChecklistItem{Name: name, Passed: true})
	}
	for _, name := range failed {
		checklist = append(checklist, ChecklistItem{Name: name, Passed: false})
	}
	return checklist
}

// Record is an immutable account of one quality review of a draft.
// Records are append-only: a re-review produces a new Record rather
// than amending an old one.
type Record struct {
	id         kernel.UUID
	orderID    kernel.UUID
	writerID   kernel.UUID
	reviewerID kernel.UUID
	result     Result
	checklist  Checklist
	comments   string
	reviewedAt time.Time

	isConstructed bool
}

// NewRecord captures the outcome of one review of the draft that
// writerID produced for orderID. A verdict that sends the draft back
// for rework must carry comments so the writer knows what to fix.
func NewRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	writerID kernel.UUID,
	reviewerID kernel.UUID,
	result Result,
	checklist Checklist,
	comments string,
	now time.Time,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if err := writerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("writerID", err)
	}
	if err := reviewerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("reviewerID", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	if err := checklist.Validate(); err != nil {
		return nil, err
	}
	comments = strings.TrimSpace(comments)
	if result.RequiresRework() && comments == "" {
		return nil, errs.NewValueIsRequiredError("comments")
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		writerID:      writerID,
		reviewerID:    reviewerID,
		result:        result,
		checklist:     checklist,
		comments:      comments,
		reviewedAt:    now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	writerID kernel.UUID,
	reviewerID kernel.UUID,
	result Result,
	checklist Checklist,
	comments string,
	reviewedAt time.Time,
) (*Record, error) {
	record, err := NewRecord(id, orderID, writerID, reviewerID, result, checklist, comments, reviewedAt)
	if err != nil {
		return nil, err
	}
	record.reviewedAt = reviewedAt
	return record, nil
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

// OrderID returns the reviewed order.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// WriterID returns the writer whose draft was reviewed.
func (r *Record) WriterID() kernel.UUID {
	return r.writerID
}

// ReviewerID returns the QC reviewer who produced the verdict.
func (r *Record) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// Result returns the verdict.
func (r *Record) Result() Result {
	return r.result
}

// Checklist returns a copy of the checks performed.
func (r *Record) Checklist() Checklist {
	checklist := make(Checklist, len(r.checklist))
	copy(checklist, r.checklist)
	return checklist
}

// Comments returns the reviewer's free-form notes.
func (r *Record) Comments() string {
	return r.comments
}

// ReviewedAt returns when the review happened.
func (r *Record) ReviewedAt() time.Time {
	return r.reviewedAt
}
