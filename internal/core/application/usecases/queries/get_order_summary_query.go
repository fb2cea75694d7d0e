package queries

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery computes the material requirements summary of an
// order from its current line items.
//
// Example:
//
//	query, _ := NewGetOrderSummaryQuery(50)
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to summarize order: %w", err)
//	}
//
//	fmt.Printf("Profile needed: %.3f m\n", summary.Requirements.TotalProfileMeters)
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a summary query for the given order.
// Validates that the order id is positive.
func NewGetOrderSummaryQuery(orderID int64) (GetOrderSummaryQuery, error) {
	q := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderSummaryQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrQueryOrderIDIsInvalid
	}

	q.orderID = orderID
	return nil
}
