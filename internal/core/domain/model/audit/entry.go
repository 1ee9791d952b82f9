package audit

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Target kinds recorded in the audit trail.
const (
	TargetOrder     = "order"
	TargetInventory = "inventory"
	TargetEarnings  = "earnings"
)

// Entry is one immutable line of the audit trail: who did what to
// which object, with an optional JSON payload of the details.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	actorRole  kernel.Role
	action     string
	targetKind string
	targetID   kernel.UUID
	payload    json.RawMessage
	createdAt  time.Time

	isConstructed bool
}

// NewEntry records an action performed by an actor on a target.
// A nil payload is stored as JSON null.
func NewEntry(
	id kernel.UUID,
	actor kernel.Actor,
	action string,
	targetKind string,
	targetID kernel.UUID,
	payload json.RawMessage,
	now time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(action) == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if strings.TrimSpace(targetKind) == "" {
		return nil, errs.NewValueIsRequiredError("targetKind")
	}
	if err := targetID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("targetID", err)
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return nil, errs.NewValueIsInvalidError("payload")
	}

	return &Entry{
		id:            id,
		actorID:       actor.ID(),
		actorRole:     actor.Role(),
		action:        action,
		targetKind:    targetKind,
		targetID:      targetID,
		payload:       payload,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	actorRole kernel.Role,
	action string,
	targetKind string,
	targetID kernel.UUID,
	payload json.RawMessage,
	createdAt time.Time,
) (*Entry, error) {
	actor, err := kernel.NewActor(actorID, actorRole)
	if err != nil {
		return nil, err
	}
	entry, err := NewEntry(id, actor, action, targetKind, targetID, payload, createdAt)
	if err != nil {
		return nil, err
	}
	entry.createdAt = createdAt
	return entry, nil
}

// Validate ensures the Entry was created through a factory function.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ActorID returns who performed the action.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role the actor held when acting.
func (e *Entry) ActorRole() kernel.Role {
	return e.actorRole
}

// Action returns the recorded action name.
func (e *Entry) Action() string {
	return e.action
}

// TargetKind returns the kind of object acted upon.
func (e *Entry) TargetKind() string {
	return e.targetKind
}

// TargetID returns the identifier of the object acted upon.
func (e *Entry) TargetID() kernel.UUID {
	return e.targetID
}

// Payload returns the JSON details recorded with the action.
func (e *Entry) Payload() json.RawMessage {
	return e.payload
}

// CreatedAt returns when the action happened.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
