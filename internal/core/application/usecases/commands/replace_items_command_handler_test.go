package commands_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestItem(t *testing.T, id, orderID int64, productType string, widthMm, heightMm, quantity int) *order.Item {
	t.Helper()
	item, err := order.RestoreItem(id, orderID, productType, widthMm, heightMm, quantity)
	require.NoError(t, err)
	return item
}

func TestReplaceItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	specs := []commands.ItemSpec{
		{ProductType: "Window", WidthMm: 1000, HeightMm: 1200, Quantity: 2},
		{ProductType: "Door", WidthMm: 900, HeightMm: 2100, Quantity: 1},
	}
	cmd, _ := commands.NewReplaceItemsCommand(50, specs)

	aggregate := restoreTestOrder(t, 50, order.InProgress)
	windowSaved := restoreTestItem(t, 1, 50, "Window", 1000, 1200, 2)
	doorSaved := restoreTestItem(t, 2, 50, "Door", 900, 2100, 1)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(50)).Return(aggregate, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DeleteByOrderID", mock.Anything, int64(50)).Return(nil).Once(),
		itemRepo.On("Add", mock.Anything, mock.MatchedBy(func(item *order.Item) bool {
			return item.OrderID() == 50 && item.ProductType() == "Window"
		})).Return(windowSaved, nil).Once(),
		itemRepo.On("Add", mock.Anything, mock.MatchedBy(func(item *order.Item) bool {
			return item.OrderID() == 50 && item.ProductType() == "Door"
		})).Return(doorSaved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceItemsCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.Equal(t, int64(1), saved[0].ID())
	require.Equal(t, "Window", saved[0].ProductType())
	require.Equal(t, int64(2), saved[1].ID())
	require.Equal(t, "Door", saved[1].ProductType())
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReplaceItemsCommandHandler_Handle_EmptyClearsItems(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReplaceItemsCommand(50, nil)

	aggregate := restoreTestOrder(t, 50, order.InProgress)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(50)).Return(aggregate, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DeleteByOrderID", mock.Anything, int64(50)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceItemsCommandHandler(factory)
	saved, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, saved)
	itemRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReplaceItemsCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReplaceItemsCommand(99, []commands.ItemSpec{
		{ProductType: "Window", WidthMm: 1000, HeightMm: 1200, Quantity: 2},
	})

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceItemsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ItemRepository")
	uow.AssertExpectations(t)
}

func TestReplaceItemsCommandHandler_Handle_InvalidItemAborts(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReplaceItemsCommand(50, []commands.ItemSpec{
		{ProductType: "Window", WidthMm: 0, HeightMm: 1200, Quantity: 2},
	})

	aggregate := restoreTestOrder(t, 50, order.InProgress)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(50)).Return(aggregate, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DeleteByOrderID", mock.Anything, int64(50)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceItemsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	itemRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
