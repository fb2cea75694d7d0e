package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler applies the confirm transition to an order.
// The order must currently be InProgress; on success it becomes Scheduled.
//
// The load-validate-persist sequence runs inside one transaction, so a
// concurrent transition on the same order cannot also succeed from the same
// precondition state.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for the confirm transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirm command.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.InvalidStateError (reporting expected and actual status codes) when
// the order is not InProgress; in both cases nothing is persisted.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Confirm(); err != nil {
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
