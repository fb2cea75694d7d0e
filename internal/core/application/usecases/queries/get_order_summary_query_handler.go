package queries

import (
	"context"
	"database/sql"
	"errors"

	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/core/domain/services"
	"fabrication/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes material requirements for an order.
// The summary is derived on every call from the stored line items and is
// never persisted.
type GetOrderSummaryQueryHandler struct {
	db         *gorm.DB
	calculator services.RequirementsCalculator
}

// NewGetOrderSummaryQueryHandler creates a handler for summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{
		db:         db,
		calculator: services.NewRequirementsCalculator(),
	}
}

// Handle executes the summary query.
// Returns errs.ObjectNotFoundError when the order does not exist. An order
// without items yields a summary with zero totals.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (services.Summary, error) {
	if err := query.Validate(); err != nil {
		return services.Summary{}, err
	}

	var orderID int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM orders WHERE id = ?
	`, query.OrderID()).Row()
	err := row.Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return services.Summary{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return services.Summary{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_type,
			width_mm,
			height_mm,
			quantity
		FROM production_order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return services.Summary{}, err
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var id, itemOrderID int64
		var productType string
		var widthMm, heightMm, quantity int

		err = rows.Scan(
			&id,
			&itemOrderID,
			&productType,
			&widthMm,
			&heightMm,
			&quantity,
		)
		if err != nil {
			return services.Summary{}, err
		}

		item, restoreErr := order.RestoreItem(id, itemOrderID, productType, widthMm, heightMm, quantity)
		if restoreErr != nil {
			return services.Summary{}, restoreErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return services.Summary{}, err
	}

	return h.calculator.BuildSummary(orderID, items)
}
