package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders receive a fresh external UUID and start in InProgress status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("ORD-2026-10", 10, 5)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created carries the database-assigned id
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Creates the order in InProgress status and returns the persisted
// aggregate with its store-assigned id. Uses a transaction to ensure the
// order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderNumber(), cmd.CustomerID(), cmd.TeamID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
