package queries

import (
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every production order in the system.
// Returns orders across all lifecycle states for planning overviews.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s is in status %d\n", o.OrderNumber, o.Status)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all production orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse represents one production order row on the read side.
type OrderResponse struct {
	ID          int64
	OrderUUID   kernel.UUID
	OrderNumber string
	CustomerID  int64
	TeamID      int64
	Status      int
}
