package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAcceptTaskCommandIsNotConstructed = errors.New(
	"AcceptTaskCommand must be created via NewAcceptTaskCommand constructor",
)

// AcceptTaskCommand claims an offered order for the calling writer.
// The claim is first-committed-wins: concurrent claims on the same
// order race on the version column and the loser gets a conflict.
type AcceptTaskCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewAcceptTaskCommand creates a command for a writer to claim an order.
func NewAcceptTaskCommand(orderID kernel.UUID, actor kernel.Actor) (AcceptTaskCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptTaskCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return AcceptTaskCommand{}, err
	}

	return AcceptTaskCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTaskCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTaskCommandIsNotConstructed)
}

// OrderID returns the claimed order.
func (c AcceptTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the claiming writer.
func (c AcceptTaskCommand) Actor() kernel.Actor {
	return c.actor
}
