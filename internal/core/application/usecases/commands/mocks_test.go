package commands_test

import (
	"context"
	"io"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) CheckStock(ctx context.Context, product string, quantity int) (bool, error) {
	args := m.Called(ctx, product, quantity)
	return args.Bool(0), args.Error(1)
}
func (m *MockInventoryService) ReserveStock(ctx context.Context, product string, quantity int) (bool, error) {
	args := m.Called(ctx, product, quantity)
	return args.Bool(0), args.Error(1)
}
func (m *MockInventoryService) ReduceStock(ctx context.Context, product string, quantity int) error {
	args := m.Called(ctx, product, quantity)
	return args.Error(0)
}
func (m *MockInventoryService) IncreaseStock(ctx context.Context, product string, quantity int) error {
	args := m.Called(ctx, product, quantity)
	return args.Error(0)
}

type MockPaymentService struct{ mock.Mock }

func (m *MockPaymentService) NeedsManualApproval(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentService) ProcessPayment(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

type MockDiscountService struct{ mock.Mock }

func (m *MockDiscountService) ValidateCode(ctx context.Context, code string) (decimal.Decimal, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) SendPaidConfirmation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockNotificationService) SendPendingApproval(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockNotificationService) SendCancellation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockOrderRegistry struct{ mock.Mock }

func (m *MockOrderRegistry) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRegistry) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRegistry) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRegistry) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRegistry) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
