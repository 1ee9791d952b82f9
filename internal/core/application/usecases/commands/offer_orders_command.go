package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrOfferOrdersCommandIsNotConstructed = errors.New(
	"OfferOrdersCommand must be created via NewOfferOrdersCommand constructor",
)

// OfferOrdersCommand publishes every Paid order to the writer pool.
// This is a parameterless batch command triggered by the dispatch job.
type OfferOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewOfferOrdersCommand creates a command to publish paid orders.
func NewOfferOrdersCommand() OfferOrdersCommand {
	return OfferOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c OfferOrdersCommand) Validate() error {
	return c.guard.Validate(ErrOfferOrdersCommandIsNotConstructed)
}
