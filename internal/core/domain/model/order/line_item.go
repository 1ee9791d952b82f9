package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// LineItem is a value object pairing an inventory item with an ordered
// quantity. The sequence of line items on an order becomes immutable once the
// order is Paid, because stock is reserved against it.
type LineItem struct {
	itemID   kernel.UUID
	quantity int
}

// NewLineItem creates a validated line item. Quantity must be positive.
func NewLineItem(itemID kernel.UUID, quantity int) (LineItem, error) {
	if err := itemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{itemID: itemID, quantity: quantity}, nil
}

// ItemID returns the referenced inventory item's identifier.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}
