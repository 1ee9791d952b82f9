package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeclineTaskCommandIsNotConstructed = errors.New(
	"DeclineTaskCommand must be created via NewDeclineTaskCommand constructor",
)

// DeclineTaskCommand records a writer's refusal of an offered order.
// The order stays offered to everyone else; the declining writer is
// excluded from claiming it later.
type DeclineTaskCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewDeclineTaskCommand creates a command for a writer to decline an
// offered order. The reason length is validated by the order model.
func NewDeclineTaskCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (DeclineTaskCommand, error) {
	command := DeclineTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
	); err != nil {
		return DeclineTaskCommand{}, err
	}
	command.reason = reason

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeclineTaskCommandIsNotConstructed)
}

// OrderID returns the declined order.
func (c DeclineTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the declining writer.
func (c DeclineTaskCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the writer's stated reason.
func (c DeclineTaskCommand) Reason() string {
	return c.reason
}

func (c *DeclineTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeclineTaskCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
