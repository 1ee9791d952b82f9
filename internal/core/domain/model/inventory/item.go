package inventory

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is an inventory aggregate tracking a physical stock count and the
// portion of it reserved for paid, not-yet-shipped orders.
//
// Item maintains these invariants:
//   - stock >= 0 and reserved >= 0 at all times
//   - reserved never exceeds stock
//   - available stock is always stock - reserved
//
// Reservation bookkeeping follows the order lifecycle: Reserve on payment
// confirmation, Consume on shipment (stock and reserved both decrease),
// Release on cancellation or refund before shipment (reserved only).
type Item struct {
	id       kernel.UUID
	name     string
	stock    int
	reserved int

	isConstructed bool
}

// NewItem creates an inventory item with an initial physical stock count and
// no reservations.
func NewItem(id kernel.UUID, name string, stock int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}

	return &Item{
		id:            id,
		name:          name,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(id kernel.UUID, name string, stock, reserved int) (*Item, error) {
	item, err := NewItem(id, name, stock)
	if err != nil {
		return nil, err
	}
	if reserved < 0 || reserved > stock {
		return nil, errs.NewValueIsOutOfRangeError("reserved", reserved, 0, stock)
	}
	item.reserved = reserved
	return item, nil
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Stock returns the physical stock count.
func (i *Item) Stock() int {
	return i.stock
}

// Reserved returns the count committed to non-terminal orders.
func (i *Item) Reserved() int {
	return i.reserved
}

// Available returns the stock not yet committed to any order.
func (i *Item) Available() int {
	return i.stock - i.reserved
}

// Reserve commits quantity units of stock to an order.
// Fails with InsufficientStock when fewer than quantity units are available;
// the item is left untouched in that case.
func (i *Item) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if i.Available() < quantity {
		return errs.NewInsufficientStockError(i.id.String(), quantity, i.Available())
	}
	i.reserved += quantity
	return nil
}

// Release returns quantity reserved units to the available pool without
// touching physical stock. Used when an order is cancelled or refunded
// before shipment, or when a partially reserved order rolls back.
func (i *Item) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity > i.reserved {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, i.reserved)
	}
	i.reserved -= quantity
	return nil
}

// Consume converts a reservation into consumption at shipment: both the
// physical stock and the reserved count decrease.
func (i *Item) Consume(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity > i.reserved {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, i.reserved)
	}
	i.stock -= quantity
	i.reserved -= quantity
	return nil
}

// Restock increases the physical stock count.
func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.stock += quantity
	return nil
}
