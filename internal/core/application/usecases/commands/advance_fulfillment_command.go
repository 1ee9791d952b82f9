package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
		"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
	)
	ErrStageIsInvalid = errors.New("stage must be one of packed, shipped, delivered")
)

// Stage is the fulfillment step an admin reports as done.
type Stage string

const (
	StagePacked    Stage = "packed"
	StageShipped   Stage = "shipped"
	StageDelivered Stage = "delivered"
)

// StageFromString parses a fulfillment stage received from transport.
func StageFromString(s string) (Stage, error) {
	stage := Stage(s)
	switch stage {
	case StagePacked, StageShipped, StageDelivered:
		return stage, nil
	default:
		return "", ErrStageIsInvalid
	}
}

// AdvanceFulfillmentCommand moves an approved order one step along the
// physical chain: pack, ship, deliver. Steps are monotonic; skipping or
// repeating one fails as an invalid transition.
type AdvanceFulfillmentCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	stage   Stage

	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentCommand creates a command to report a completed
// fulfillment step.
func NewAdvanceFulfillmentCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	stage Stage,
) (AdvanceFulfillmentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}
	if _, err := StageFromString(string(stage)); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}

	return AdvanceFulfillmentCommand{
		orderID: orderID,
		actor:   actor,
		stage:   stage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}

// OrderID returns the order being fulfilled.
func (c AdvanceFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the admin reporting the step.
func (c AdvanceFulfillmentCommand) Actor() kernel.Actor {
	return c.actor
}

// Stage returns the completed step.
func (c AdvanceFulfillmentCommand) Stage() Stage {
	return c.stage
}
