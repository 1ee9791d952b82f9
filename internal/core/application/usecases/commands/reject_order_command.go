package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/qc"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrCommentsAreRequired   = errors.New("comments are required for a rework verdict")
	ErrVerdictMustNeedRework = errors.New("verdict must be a rework verdict")
)

// RejectOrderCommand records a failing QC verdict: the order goes back
// to the writer for rework, or escalates once the rework limit is hit.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     kernel.Actor
	result    qc.Result
	checklist qc.Checklist
	comments  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for a reviewer to send a
// draft back. The result must be a rework verdict and comments are
// mandatory so the writer knows what to fix.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	result qc.Result,
	checklist qc.Checklist,
	comments string,
) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setResult(result),
		command.setComments(comments),
		checklist.Validate(),
	); err != nil {
		return RejectOrderCommand{}, err
	}
	command.checklist = checklist

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the rejected order.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the rejecting reviewer.
func (c RejectOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Result returns the rework verdict.
func (c RejectOrderCommand) Result() qc.Result {
	return c.result
}

// Checklist returns the checks the reviewer performed.
func (c RejectOrderCommand) Checklist() qc.Checklist {
	return c.checklist
}

// Comments returns the reviewer's rework instructions.
func (c RejectOrderCommand) Comments() string {
	return c.comments
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RejectOrderCommand) setResult(result qc.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if !result.RequiresRework() {
		return ErrVerdictMustNeedRework
	}
	c.result = result
	return nil
}

func (c *RejectOrderCommand) setComments(comments string) error {
	if strings.TrimSpace(comments) == "" {
		return ErrCommentsAreRequired
	}
	c.comments = comments
	return nil
}
