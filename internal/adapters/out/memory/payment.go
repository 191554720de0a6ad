package memory

import (
	"context"

	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// PaymentService is a reference payment adapter: orders whose total price
// reaches the configured threshold require manual approval, everything else
// charges successfully.
type PaymentService struct {
	approvalThreshold decimal.Decimal
}

// NewPaymentService creates a payment adapter. Orders with a total price
// greater than or equal to approvalThreshold are routed to manual approval;
// a zero threshold disables approval routing entirely.
func NewPaymentService(approvalThreshold decimal.Decimal) *PaymentService {
	return &PaymentService{approvalThreshold: approvalThreshold}
}

// NeedsManualApproval reports whether the order total reaches the threshold.
func (p *PaymentService) NeedsManualApproval(_ context.Context, o *order.Order) (bool, error) {
	if p.approvalThreshold.IsZero() {
		return false, nil
	}
	return o.TotalPrice().GreaterThanOrEqual(p.approvalThreshold), nil
}

// ProcessPayment always charges successfully.
func (p *PaymentService) ProcessPayment(_ context.Context, _ *order.Order) (bool, error) {
	return true, nil
}
