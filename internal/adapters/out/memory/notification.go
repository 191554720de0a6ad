package memory

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
)

// NotificationService logs notifications instead of delivering them.
// It stands in for a real delivery channel in the composition root.
type NotificationService struct {
	logger *slog.Logger
}

// NewNotificationService creates a logging notification adapter.
func NewNotificationService(logger *slog.Logger) *NotificationService {
	return &NotificationService{logger: logger.With("component", "notification")}
}

// SendPaidConfirmation logs a payment confirmation notification.
func (n *NotificationService) SendPaidConfirmation(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "order paid",
		"order_id", o.ID().String(), "product", o.Product(), "total", o.TotalPrice().String())
	return nil
}

// SendPendingApproval logs a pending-approval notification.
func (n *NotificationService) SendPendingApproval(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "order pending approval",
		"order_id", o.ID().String(), "product", o.Product(), "total", o.TotalPrice().String())
	return nil
}

// SendCancellation logs a cancellation notification.
func (n *NotificationService) SendCancellation(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "order cancelled",
		"order_id", o.ID().String(), "product", o.Product())
	return nil
}
