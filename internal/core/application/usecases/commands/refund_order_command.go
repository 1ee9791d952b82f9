package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand reverses a shipped or delivered order. Unpaid
// earnings are cancelled; a payout that already happened is left intact
// and flagged in the audit payload for manual recovery.
type RefundOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund an order.
func NewRefundOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	reason string,
) (RefundOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RefundOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return RefundOrderCommand{}, err
	}

	return RefundOrderCommand{
		orderID: orderID,
		actor:   actor,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the refunded order.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin issuing the refund.
func (c RefundOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns why the order was refunded.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}
