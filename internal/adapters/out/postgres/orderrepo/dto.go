// Package orderrepo provides data transfer objects and mapping functions for
// production order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The numeric primary key is assigned by the database; the business identifier
// orderUUID carries a unique index for external lookups.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderUUID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderNumber string
	CustomerID  int64 `gorm:"index"`
	TeamID      int64 `gorm:"index"`
	Status      int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		OrderUUID:   aggregate.OrderUUID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID(),
		TeamID:      aggregate.TeamID(),
		Status:      aggregate.Status().Code(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderUUID, err := kernel.UUIDFromBytes(dto.OrderUUID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		orderUUID,
		dto.OrderNumber,
		dto.CustomerID,
		dto.TeamID,
		order.Status(dto.Status),
	)
}
