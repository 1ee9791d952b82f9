package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignWriterCommandIsNotConstructed = errors.New(
	"ReassignWriterCommand must be created via NewReassignWriterCommand constructor",
)

// DefaultReassignReason is recorded in the decline history when the admin
// gives no reason of their own.
const DefaultReassignReason = "reassigned by admin"

// ReassignWriterCommand moves an order from its current writer to a new
// one. The prior writer's unpaid earnings for the order are cancelled
// as the compensating action.
type ReassignWriterCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       kernel.Actor
	newWriterID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewReassignWriterCommand creates a command to hand an order to a new writer.
// The reason is optional; an empty one falls back to DefaultReassignReason.
func NewReassignWriterCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	newWriterID kernel.UUID,
	reason string,
) (ReassignWriterCommand, error) {
	command := ReassignWriterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setNewWriterID(newWriterID),
		command.setReason(reason),
	); err != nil {
		return ReassignWriterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignWriterCommand) Validate() error {
	return c.guard.Validate(ErrReassignWriterCommandIsNotConstructed)
}

// OrderID returns the reassigned order.
func (c ReassignWriterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin performing the reassignment.
func (c ReassignWriterCommand) Actor() kernel.Actor {
	return c.actor
}

// NewWriterID returns the writer taking over the order.
func (c ReassignWriterCommand) NewWriterID() kernel.UUID {
	return c.newWriterID
}

// Reason returns why the order was reassigned.
func (c ReassignWriterCommand) Reason() string {
	return c.reason
}

func (c *ReassignWriterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReassignWriterCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ReassignWriterCommand) setNewWriterID(newWriterID kernel.UUID) error {
	if err := newWriterID.Validate(); err != nil {
		return err
	}
	c.newWriterID = newWriterID
	return nil
}

func (c *ReassignWriterCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReassignReason
	}
	c.reason = reason
	return nil
}
