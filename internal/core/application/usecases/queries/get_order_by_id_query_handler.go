package queries

import (
	"context"
	"database/sql"
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order row from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query for one production order.
// Returns errs.ObjectNotFoundError when no order has the requested id.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var orderResp OrderResponse
	var orderUUID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_uuid,
			order_number,
			customer_id,
			team_id,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&orderResp.ID,
		&orderUUID,
		&orderResp.OrderNumber,
		&orderResp.CustomerID,
		&orderResp.TeamID,
		&orderResp.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(orderUUID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.OrderUUID = id

	return orderResp, nil
}
