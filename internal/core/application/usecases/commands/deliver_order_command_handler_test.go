package commands_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeliverOrderCommand(30)

	aggregate := restoreTestOrder(t, 30, order.ForDelivery)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(30)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, got.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeliverOrderCommand(30)

	aggregate := restoreTestOrder(t, 30, order.Completed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(30)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Contains(t, err.Error(), "Expected=3")
	require.Contains(t, err.Error(), "Actual=4")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
