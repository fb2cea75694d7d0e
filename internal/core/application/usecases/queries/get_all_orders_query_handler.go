package queries

import (
	"context"

	"fabrication/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order list from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all production orders.
// Results are sorted by order id for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_uuid,
			order_number,
			customer_id,
			team_id,
			status
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var orderUUID uuid.UUID

		err = rows.Scan(
			&orderResp.ID,
			&orderUUID,
			&orderResp.OrderNumber,
			&orderResp.CustomerID,
			&orderResp.TeamID,
			&orderResp.Status,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderUUID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.OrderUUID = id

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
