package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func indexUpdate(id int64, index int) any {
	return mock.MatchedBy(func(cmd commands.UpdateOrderCommand) bool {
		got, err := cmd.Patch().DeliveryOrderIndex.Get()
		return cmd.OrderID() == id && err == nil && got == index
	})
}

func TestNewMoveDeliveryOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ids := []int64{10, 11}
		cmd, err := commands.NewMoveDeliveryOrderCommand(ids, 11, "up")
		require.NoError(t, err)
		assert.Equal(t, services.Up, cmd.Direction())
		assert.Equal(t, int64(11), cmd.OrderID())

		ids[0] = 99
		assert.Equal(t, []int64{10, 11}, cmd.OrderIDs())
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := commands.NewMoveDeliveryOrderCommand(nil, 11, "up")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing order id", func(t *testing.T) {
		_, err := commands.NewMoveDeliveryOrderCommand([]int64{1}, 0, "up")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := commands.NewMoveDeliveryOrderCommand([]int64{1}, 1, "sideways")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoveDeliveryOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	updater := new(MockOrderUpdater)
	mock.InOrder(
		updater.On("Handle", ctx, indexUpdate(10, 1)).Return(nil, nil).Once(),
		updater.On("Handle", ctx, indexUpdate(12, 2)).Return(nil, nil).Once(),
		updater.On("Handle", ctx, indexUpdate(11, 3)).Return(nil, nil).Once(),
	)

	cmd, err := commands.NewMoveDeliveryOrderCommand([]int64{10, 11, 12}, 12, "up")
	require.NoError(t, err)

	h := commands.NewMoveDeliveryOrderCommandHandler(updater, nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, []int64{10, 12, 11}, result.OrderIDs)
	updater.AssertExpectations(t)
}

func TestMoveDeliveryOrderCommandHandler_Handle_Boundary(t *testing.T) {
	updater := new(MockOrderUpdater)
	h := commands.NewMoveDeliveryOrderCommandHandler(updater, nil)

	cmd, err := commands.NewMoveDeliveryOrderCommand([]int64{10, 11, 12}, 10, "up")
	require.NoError(t, err)

	result, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.False(t, result.Moved)
	assert.Equal(t, []int64{10, 11, 12}, result.OrderIDs)
	updater.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestMoveDeliveryOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	updater := new(MockOrderUpdater)
	h := commands.NewMoveDeliveryOrderCommandHandler(updater, nil)

	cmd, err := commands.NewMoveDeliveryOrderCommand([]int64{10, 11}, 99, "down")
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	updater.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestMoveDeliveryOrderCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	updater := new(MockOrderUpdater)
	cause := errs.NewObjectNotFoundError("order", int64(11))
	mock.InOrder(
		updater.On("Handle", ctx, indexUpdate(11, 1)).Return(nil, nil).Once(),
		updater.On("Handle", ctx, indexUpdate(10, 2)).Return(nil, cause).Once(),
	)

	cmd, err := commands.NewMoveDeliveryOrderCommand([]int64{10, 11, 12}, 10, "down")
	require.NoError(t, err)

	h := commands.NewMoveDeliveryOrderCommandHandler(updater, nil)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrQueuePartiallyPersisted)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	var persistErr *commands.QueuePersistError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, 1, persistErr.Persisted)
	assert.Equal(t, 3, persistErr.Total)
	updater.AssertExpectations(t)
	updater.AssertNumberOfCalls(t, "Handle", 2)
}
