package commands_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/commands"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinishOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinishOrderCommand(20)

	aggregate := restoreTestOrder(t, 20, order.InProgress)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(20)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishOrderCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.ForDelivery, got.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFinishOrderCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinishOrderCommand(20)

	aggregate := restoreTestOrder(t, 20, order.ForDelivery)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(20)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Contains(t, err.Error(), "Expected=1")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
