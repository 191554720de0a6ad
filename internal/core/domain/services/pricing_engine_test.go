package services_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountService struct{ mock.Mock }

func (m *MockDiscountService) ValidateCode(ctx context.Context, code string) (decimal.Decimal, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got)
}

func TestPricingEngine_Compute(t *testing.T) {
	ctx := context.Background()

	t.Run("should apply only the surcharge to a plain order", func(t *testing.T) {
		engine := services.NewPricingEngine(new(MockDiscountService))

		total, err := engine.Compute(ctx, 2, decimal.NewFromInt(50), "")

		require.NoError(t, err)
		requireDecimalEqual(t, "120.00", total)
	})

	t.Run("should apply the bulk discount above ten units", func(t *testing.T) {
		engine := services.NewPricingEngine(new(MockDiscountService))

		total, err := engine.Compute(ctx, 15, decimal.NewFromInt(100), "")

		require.NoError(t, err)
		requireDecimalEqual(t, "1620.00", total) // 15*100*0.9*1.2
	})

	t.Run("should not apply the bulk discount at exactly ten units", func(t *testing.T) {
		engine := services.NewPricingEngine(new(MockDiscountService))

		total, err := engine.Compute(ctx, 10, decimal.NewFromInt(100), "")

		require.NoError(t, err)
		requireDecimalEqual(t, "1200.00", total)
	})

	t.Run("should subtract a flat promo amount before the surcharge", func(t *testing.T) {
		discounts := new(MockDiscountService)
		discounts.On("ValidateCode", ctx, "PROMO").Return(decimal.NewFromInt(20), nil).Once()
		engine := services.NewPricingEngine(discounts)

		total, err := engine.Compute(ctx, 1, decimal.NewFromInt(100), "PROMO")

		require.NoError(t, err)
		requireDecimalEqual(t, "96.00", total) // (100-20)*1.2
		discounts.AssertExpectations(t)
	})

	t.Run("bulk discount wins over a supplied promo code", func(t *testing.T) {
		discounts := new(MockDiscountService)
		engine := services.NewPricingEngine(discounts)

		total, err := engine.Compute(ctx, 15, decimal.NewFromInt(100), "PROMO")

		require.NoError(t, err)
		requireDecimalEqual(t, "1620.00", total)
		discounts.AssertNotCalled(t, "ValidateCode", mock.Anything, mock.Anything)
	})

	t.Run("unknown code yields zero discount and no error", func(t *testing.T) {
		discounts := new(MockDiscountService)
		discounts.On("ValidateCode", ctx, "BOGUS").Return(decimal.Zero, nil).Once()
		engine := services.NewPricingEngine(discounts)

		total, err := engine.Compute(ctx, 2, decimal.NewFromInt(50), "BOGUS")

		require.NoError(t, err)
		requireDecimalEqual(t, "120.00", total)
	})

	t.Run("promo discount floors the subtotal at zero", func(t *testing.T) {
		discounts := new(MockDiscountService)
		discounts.On("ValidateCode", ctx, "HUGE").Return(decimal.NewFromInt(500), nil).Once()
		engine := services.NewPricingEngine(discounts)

		total, err := engine.Compute(ctx, 1, decimal.NewFromInt(100), "HUGE")

		require.NoError(t, err)
		requireDecimalEqual(t, "0", total)
	})

	t.Run("should propagate discount collaborator failures", func(t *testing.T) {
		discounts := new(MockDiscountService)
		discounts.On("ValidateCode", ctx, "PROMO").
			Return(decimal.Decimal{}, errors.New("discount service unavailable")).Once()
		engine := services.NewPricingEngine(discounts)

		_, err := engine.Compute(ctx, 1, decimal.NewFromInt(100), "PROMO")

		require.Error(t, err)
	})

	t.Run("fractional unit prices stay exact", func(t *testing.T) {
		engine := services.NewPricingEngine(new(MockDiscountService))

		total, err := engine.Compute(ctx, 3, decimal.RequireFromString("19.99"), "")

		require.NoError(t, err)
		requireDecimalEqual(t, "71.964", total) // 59.97 * 1.2, no intermediate rounding
	})
}
