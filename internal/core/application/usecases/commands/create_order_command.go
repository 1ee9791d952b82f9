package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// CreateOrderCommand registers a new customer order in Created status.
// The order enters the lifecycle unpaid; stock is not touched until
// payment is confirmed.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     kernel.Actor
	lineItems []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Line items were validated by order.NewLineItem; at least one is required.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	lineItems []order.LineItem,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who is registering the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// LineItems returns the ordered items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}
	c.lineItems = lineItems
	return nil
}
