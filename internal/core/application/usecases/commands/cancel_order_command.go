package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand terminates an order before shipment. Stock
// reservations are released and unpaid earnings cancelled in the same
// transaction.
type CancelOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The reason is optional and recorded in the audit trail.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		actor:   actor,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the cancelled order.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin cancelling the order.
func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns why the order was cancelled.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
