package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand moves an order to Paid and reserves stock for
// every line item. Reservation is all-or-nothing: a shortfall on any
// item fails the whole command and leaves no partial reservation.
type ConfirmPaymentCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm an order's payment.
func NewConfirmPaymentCommand(orderID kernel.UUID, actor kernel.Actor) (ConfirmPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment settled.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who reported the payment.
func (c ConfirmPaymentCommand) Actor() kernel.Actor {
	return c.actor
}
