package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// FinishOrderCommandHandler applies the finish transition to an order.
// The order must currently be InProgress; on success it becomes ForDelivery.
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishOrderCommandHandler creates a handler for the finish transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish command.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.InvalidStateError when the order is not InProgress; in both cases
// nothing is persisted.
func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Finish(); err != nil {
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
