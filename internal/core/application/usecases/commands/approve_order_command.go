package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand records a passing QC verdict: the order moves to
// QCApproved, a review record is written, and the writer's earnings
// accrue to the ledger.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     kernel.Actor
	checklist qc.Checklist
	comments  string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command for a reviewer to approve a draft.
func NewApproveOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	checklist qc.Checklist,
	comments string,
) (ApproveOrderCommand, error) {
	command := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		checklist.Validate(),
	); err != nil {
		return ApproveOrderCommand{}, err
	}
	command.checklist = checklist
	command.comments = comments

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the approved order.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the approving reviewer.
func (c ApproveOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Checklist returns the checks the reviewer performed.
func (c ApproveOrderCommand) Checklist() qc.Checklist {
	return c.checklist
}

// Comments returns the reviewer's notes.
func (c ApproveOrderCommand) Comments() string {
	return c.comments
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
