// Package inventoryrepo persists inventory items with GORM. Each item is a
// single row carrying total stock and the reserved portion; availability is
// derived, never stored.
package inventoryrepo

import (
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
type ItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null"`
	Stock    int       `gorm:"not null"`
	Reserved int       `gorm:"not null"`
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

func fromDomain(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:       item.ID().Bytes(),
		Name:     item.Name(),
		Stock:    item.Stock(),
		Reserved: item.Reserved(),
	}
}

func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.Name, dto.Stock, dto.Reserved)
}
