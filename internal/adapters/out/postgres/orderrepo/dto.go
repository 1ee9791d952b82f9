// Package orderrepo persists order aggregates with GORM. The aggregate spans
// three tables: the orders row itself, its immutable line items, and the
// decline history that keeps declined orders out of a writer's pool.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs optimistic concurrency; every state-affecting
// update is conditional on it.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Version          int        `gorm:"not null"`
	Status           int        `gorm:"index;not null"`
	AssignedWriterID *uuid.UUID `gorm:"type:uuid;index"`
	DraftURL         string
	ReworkCount      int
	Escalated        bool
	HeldStatus       *int
	HeldWriterID     *uuid.UUID `gorm:"type:uuid"`
	OfferedAt        *time.Time `gorm:"index"`

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Declines  []DeclineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one ordered item. Line items are immutable once payment is
// confirmed, so updates never touch this table.
type LineItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// DeclineDTO is one entry of an order's decline history. A writer may appear
// more than once when an order cycles back through the same writer after
// reassignment, so the row carries its own key.
type DeclineDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	WriterID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Reason     string    `gorm:"not null"`
	DeclinedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for decline history entries.
func (DeclineDTO) TableName() string {
	return "order_declines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var writerID *uuid.UUID
	if id := aggregate.AssignedWriter(); id != nil {
		raw := id.Bytes()
		writerID = &raw
	}

	var heldStatus *int
	if s := aggregate.HeldStatus(); s != nil {
		raw := int(*s)
		heldStatus = &raw
	}

	var heldWriterID *uuid.UUID
	if id := aggregate.HeldWriter(); id != nil {
		raw := id.Bytes()
		heldWriterID = &raw
	}

	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			ItemID:   item.ItemID().Bytes(),
			Quantity: item.Quantity(),
		})
	}

	declines := make([]DeclineDTO, 0, len(aggregate.DeclineHistory()))
	for _, decline := range aggregate.DeclineHistory() {
		declines = append(declines, DeclineDTO{
			OrderID:    aggregate.ID().Bytes(),
			WriterID:   decline.WriterID().Bytes(),
			Reason:     decline.Reason(),
			DeclinedAt: decline.DeclinedAt(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Version:          aggregate.Version(),
		Status:           int(aggregate.Status()),
		AssignedWriterID: writerID,
		DraftURL:         aggregate.DraftURL(),
		ReworkCount:      aggregate.ReworkCount(),
		Escalated:        aggregate.IsEscalated(),
		HeldStatus:       heldStatus,
		HeldWriterID:     heldWriterID,
		OfferedAt:        aggregate.OfferedAt(),
		LineItems:        lineItems,
		Declines:         declines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var writerID *kernel.UUID
	if dto.AssignedWriterID != nil {
		wID, writerErr := kernel.UUIDFromBytes((*dto.AssignedWriterID)[:])
		if writerErr != nil {
			return nil, writerErr
		}
		writerID = &wID
	}

	var heldStatus *order.Status
	if dto.HeldStatus != nil {
		s := order.Status(*dto.HeldStatus)
		heldStatus = &s
	}

	var heldWriterID *kernel.UUID
	if dto.HeldWriterID != nil {
		hID, heldErr := kernel.UUIDFromBytes((*dto.HeldWriterID)[:])
		if heldErr != nil {
			return nil, heldErr
		}
		heldWriterID = &hID
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, item := range dto.LineItems {
		itemID, itemErr := kernel.UUIDFromBytes(item.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		lineItem, itemErr := order.NewLineItem(itemID, item.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	declines := make([]order.Decline, 0, len(dto.Declines))
	for _, entry := range dto.Declines {
		declinerID, declineErr := kernel.UUIDFromBytes(entry.WriterID[:])
		if declineErr != nil {
			return nil, declineErr
		}
		decline, declineErr := order.NewDecline(declinerID, entry.Reason, entry.DeclinedAt)
		if declineErr != nil {
			return nil, declineErr
		}
		declines = append(declines, decline)
	}

	return order.RestoreOrder(
		id,
		dto.Version,
		order.Status(dto.Status),
		writerID,
		lineItems,
		dto.DraftURL,
		declines,
		dto.ReworkCount,
		dto.Escalated,
		heldStatus,
		heldWriterID,
		dto.OfferedAt,
	)
}
