package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrHoldOrderCommandIsNotConstructed = errors.New(
	"HoldOrderCommand must be created via NewHoldOrderCommand constructor",
)

// HoldOrderCommand parks a non-terminal order in OnHold. The prior
// status and writer are stashed on the order so a later resume restores
// them exactly.
type HoldOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewHoldOrderCommand creates a command to put an order on hold.
func NewHoldOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (HoldOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return HoldOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return HoldOrderCommand{}, err
	}

	return HoldOrderCommand{
		orderID: orderID,
		actor:   actor,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldOrderCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
}

// OrderID returns the held order.
func (c HoldOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin holding the order.
func (c HoldOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns why the order was held.
func (c HoldOrderCommand) Reason() string {
	return c.reason
}
