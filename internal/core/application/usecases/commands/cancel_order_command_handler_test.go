package commands_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cancelFixture struct {
	registry      *memory.OrderRegistry
	inventory     *MockInventoryService
	notifications *MockNotificationService
	handler       *commands.CancelOrderCommandHandler
}

func newCancelFixture() *cancelFixture {
	f := &cancelFixture{
		registry:      memory.NewOrderRegistry(),
		inventory:     new(MockInventoryService),
		notifications: new(MockNotificationService),
	}
	f.handler = commands.NewCancelOrderCommandHandler(f.registry, f.inventory, f.notifications, testLogger())
	return f
}

// registerOrder adds an order in the given status to the fixture's registry.
func (f *cancelFixture) registerOrder(t *testing.T, product string, quantity int, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		product,
		quantity,
		decimal.NewFromInt(10),
		"",
		"",
		decimal.NewFromInt(12),
		time.Now().UTC(),
	)
	require.NoError(t, err)

	switch status {
	case order.Paid:
		require.NoError(t, o.MarkPaid())
	case order.PendingApproval:
		require.NoError(t, o.MarkPendingApproval())
	case order.Cancelled:
		require.NoError(t, o.Cancel())
	}

	require.NoError(t, f.registry.Add(context.Background(), o))
	return o
}

func cancelCommand(t *testing.T, o *order.Order) commands.CancelOrderCommand {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)
	return cmd
}

func TestCancelOrderCommandHandler_UnknownOrder(t *testing.T) {
	f := newCancelFixture()
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	err = f.handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrOrderNotFound)
	f.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	f.notifications.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_PaidOrderReturnsStock(t *testing.T) {
	ctx := context.Background()
	f := newCancelFixture()
	o := f.registerOrder(t, "Product", 3, order.Paid)
	f.inventory.On("IncreaseStock", mock.Anything, "Product", 3).Return(nil).Once()
	f.notifications.On("SendCancellation", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	err := f.handler.Handle(ctx, cancelCommand(t, o))

	require.NoError(t, err)
	f.inventory.AssertExpectations(t)
	f.notifications.AssertNumberOfCalls(t, "SendCancellation", 1)

	stored, err := f.registry.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, stored.Status())
}

func TestCancelOrderCommandHandler_PendingApprovalReleasesNothing(t *testing.T) {
	f := newCancelFixture()
	o := f.registerOrder(t, "Product", 3, order.PendingApproval)
	f.notifications.On("SendCancellation", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	err := f.handler.Handle(context.Background(), cancelCommand(t, o))

	require.NoError(t, err)
	stored, err := f.registry.Get(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, stored.Status())
	// Stock was never permanently reduced on the approval path.
	f.inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_RepeatCancelIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newCancelFixture()
	o := f.registerOrder(t, "Product", 3, order.Paid)
	f.inventory.On("IncreaseStock", mock.Anything, "Product", 3).Return(nil).Once()
	f.notifications.On("SendCancellation", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	require.NoError(t, f.handler.Handle(ctx, cancelCommand(t, o)))
	require.NoError(t, f.handler.Handle(ctx, cancelCommand(t, o)))

	// Stock returned and notification sent exactly once despite the repeat.
	f.inventory.AssertNumberOfCalls(t, "IncreaseStock", 1)
	f.notifications.AssertNumberOfCalls(t, "SendCancellation", 1)
}

func TestCancelOrderCommandHandler_StockReturnFailureAbortsCancellation(t *testing.T) {
	ctx := context.Background()
	f := newCancelFixture()
	o := f.registerOrder(t, "Product", 3, order.Paid)
	f.inventory.On("IncreaseStock", mock.Anything, "Product", 3).
		Return(errs.NewValueIsInvalidError("inventory unavailable")).Once()

	err := f.handler.Handle(ctx, cancelCommand(t, o))

	require.Error(t, err)
	stored, getErr := f.registry.Get(ctx, o.ID())
	require.NoError(t, getErr)
	assert.Equal(t, order.Paid, stored.Status())
	f.notifications.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_InvalidCommand(t *testing.T) {
	f := newCancelFixture()

	err := f.handler.Handle(context.Background(), commands.CancelOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
