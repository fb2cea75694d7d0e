// Package itemrepo provides data transfer objects and mapping functions for
// production order line item persistence.
package itemrepo

import (
	"fabrication/internal/core/domain/model/order"
)

// ItemDTO represents the database structure for persisting line items.
// Each row belongs to exactly one order via order_id.
type ItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductType string
	WidthMm     int
	HeightMm    int
	Quantity    int
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "production_order_items"
}

// fromDomain converts a line item entity to its database representation.
func fromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID(),
		OrderID:     item.OrderID(),
		ProductType: item.ProductType(),
		WidthMm:     item.WidthMm(),
		HeightMm:    item.HeightMm(),
		Quantity:    item.Quantity(),
	}
}

// toDomain converts a database DTO to a line item entity using RestoreItem.
func toDomain(dto ItemDTO) (*order.Item, error) {
	return order.RestoreItem(
		dto.ID,
		dto.OrderID,
		dto.ProductType,
		dto.WidthMm,
		dto.HeightMm,
		dto.Quantity,
	)
}
