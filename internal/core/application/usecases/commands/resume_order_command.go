package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand takes an order off hold, restoring the exact
// status and writer assignment it had when it was held.
type ResumeOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume a held order.
func NewResumeOrderCommand(orderID kernel.UUID, actor kernel.Actor) (ResumeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResumeOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return ResumeOrderCommand{}, err
	}

	return ResumeOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the resumed order.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin resuming the order.
func (c ResumeOrderCommand) Actor() kernel.Actor {
	return c.actor
}
