package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUploadDraftCommandIsNotConstructed = errors.New(
		"UploadDraftCommand must be created via NewUploadDraftCommand constructor",
	)
	ErrFileURLIsRequired = errors.New("file URL is required")
)

// UploadDraftCommand submits a writer's draft for review. Submission
// implies begin-work when the writer had not started yet, and the draft
// is enqueued for QC in the same transaction.
type UploadDraftCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	fileURL string

	guard guard.ConstructorGuard
}

// NewUploadDraftCommand creates a command for a writer to submit a draft.
func NewUploadDraftCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	fileURL string,
) (UploadDraftCommand, error) {
	command := UploadDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setFileURL(fileURL),
	); err != nil {
		return UploadDraftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDraftCommand) Validate() error {
	return c.guard.Validate(ErrUploadDraftCommandIsNotConstructed)
}

// OrderID returns the order the draft belongs to.
func (c UploadDraftCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the submitting writer.
func (c UploadDraftCommand) Actor() kernel.Actor {
	return c.actor
}

// FileURL returns where the draft file was stored.
func (c UploadDraftCommand) FileURL() string {
	return c.fileURL
}

func (c *UploadDraftCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UploadDraftCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UploadDraftCommand) setFileURL(fileURL string) error {
	if strings.TrimSpace(fileURL) == "" {
		return ErrFileURLIsRequired
	}
	c.fileURL = fileURL
	return nil
}
