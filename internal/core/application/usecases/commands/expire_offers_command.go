package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrExpireOffersCommandIsNotConstructed = errors.New(
	"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
)

// ExpireOffersCommand re-offers orders whose offer sat unclaimed past
// the TTL. This is a parameterless batch command triggered by the
// expiry job.
type ExpireOffersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to recycle stale offers.
func NewExpireOffersCommand() ExpireOffersCommand {
	return ExpireOffersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}
