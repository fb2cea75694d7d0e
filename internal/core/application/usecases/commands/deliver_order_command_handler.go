package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler applies the deliver transition to an order.
// The order must currently be ForDelivery; on success it becomes Completed,
// which ends the lifecycle.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for the deliver transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.InvalidStateError when the order is not ForDelivery; in both cases
// nothing is persisted.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Deliver(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
