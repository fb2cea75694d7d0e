package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// StartOrderCommandHandler applies the start transition to an order.
// The order must currently be Scheduled; on success it becomes InProgress
// again, this time as the mid-manufacturing state.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for the start transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.InvalidStateError when the order is not Scheduled; in both cases
// nothing is persisted.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Start(); err != nil {
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
