package ports

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for production order
// aggregates.
type OrderRepository interface {
	// Add persists a new order and returns the stored aggregate carrying
	// the database-assigned id. The order must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// Returns errs.ObjectNotFoundError when no row matches the order id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its numeric identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order, ordered by id.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// ItemRepository defines the persistence contract for production order line
// items. Items only exist as a complete per-order set, so the contract is
// delete-all plus bulk re-add rather than per-item update.
type ItemRepository interface {
	// Add persists a new line item and returns the stored entity carrying
	// the database-assigned id.
	Add(ctx context.Context, item *order.Item) (*order.Item, error)

	// DeleteByOrderID removes every item belonging to the given order.
	// Deleting for an order with no items is not an error.
	DeleteByOrderID(ctx context.Context, orderID int64) error

	// GetAllByOrderID retrieves the items of one order in stored (id) order.
	GetAllByOrderID(ctx context.Context, orderID int64) ([]*order.Item, error)
}
