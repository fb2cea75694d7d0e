package commands

import (
	"context"

	"fabrication/internal/core/domain/model/order"
)

// ReplaceItemsCommandHandler replaces the line item set of an order in one
// transaction: existing items are removed, then the submitted specs are
// persisted in order, each stamped with the owning order's id.
type ReplaceItemsCommandHandler struct {
	uowFactory UoWFactory
}

// NewReplaceItemsCommandHandler creates a handler for item replacement.
// Requires a UoWFactory exposing both order and item repositories.
func NewReplaceItemsCommandHandler(uowFactory UoWFactory) ReplaceItemsCommandHandler {
	return ReplaceItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replace command. The order itself is not modified,
// only its items. Returns errs.ObjectNotFoundError when the order does not
// exist; any item validation failure aborts the whole replacement.
func (h *ReplaceItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceItemsCommand) ([]*order.Item, error) {
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

	itemRepo := uow.ItemRepository()
	if err = itemRepo.DeleteByOrderID(ctx, aggregate.ID()); err != nil {
		return nil, err
	}

	saved := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		var item *order.Item
		item, err = order.NewItem(aggregate.ID(), spec.ProductType, spec.WidthMm, spec.HeightMm, spec.Quantity)
		if err != nil {
			return nil, err
		}

		var persisted *order.Item
		persisted, err = itemRepo.Add(ctx, item)
		if err != nil {
			return nil, err
		}
		saved = append(saved, persisted)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
