package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/keymutex"
)

// CancelOrderCommandHandler transitions a registered order into the terminal
// Cancelled state.
//
// Rules:
//   - an unknown id fails with OrderNotFoundError (from the registry)
//   - cancelling an already cancelled order is an idempotent no-op and sends
//     no notification
//   - a Paid order returns its quantity to stock (IncreaseStock), undoing the
//     earlier permanent deduction; a PendingApproval or New order releases
//     nothing, since its inventory was never permanently reduced
//   - SendCancellation is invoked exactly once per effective cancellation
//
// Cancellations of the same order are mutually exclusive through a per-order
// lock; unrelated orders are not blocked.
type CancelOrderCommandHandler struct {
	registry      ports.OrderRegistry
	inventory     ports.InventoryService
	notifications ports.NotificationService
	orderLocks    *keymutex.KeyedMutex
	logger        *slog.Logger
}

// NewCancelOrderCommandHandler creates the cancellation handler.
// The handler owns its per-order lock set; construct it once and share the
// instance between concurrent callers.
func NewCancelOrderCommandHandler(
	registry ports.OrderRegistry,
	inventory ports.InventoryService,
	notifications ports.NotificationService,
	logger *slog.Logger,
) *CancelOrderCommandHandler {
	return &CancelOrderCommandHandler{
		registry:      registry,
		inventory:     inventory,
		notifications: notifications,
		orderLocks:    keymutex.NewKeyedMutex(),
		logger:        logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := cmd.OrderID().String()

	h.orderLocks.Lock(key)
	o, cancelled, err := h.cancelLocked(ctx, cmd)
	h.orderLocks.Unlock(key)
	if err != nil || !cancelled {
		return err
	}

	if notifyErr := h.notifications.SendCancellation(ctx, o); notifyErr != nil {
		h.logger.WarnContext(ctx, "cancellation notification failed",
			"order_id", o.ID().String(), "error", notifyErr)
	}
	return nil
}

// cancelLocked performs the lookup/transition/inventory steps under the
// per-order lock. The returned bool reports whether a cancellation actually
// happened (false for the idempotent re-cancel case).
func (h *CancelOrderCommandHandler) cancelLocked(ctx context.Context, cmd CancelOrderCommand) (*order.Order, bool, error) {
	o, err := h.registry.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, false, err
	}

	if o.Status() == order.Cancelled {
		return o, false, nil
	}

	// Only a Paid order has had inventory permanently reduced.
	if o.Status() == order.Paid {
		if err = h.inventory.IncreaseStock(ctx, o.Product(), o.Quantity()); err != nil {
			return nil, false, err
		}
	}

	if err = o.Cancel(); err != nil {
		return nil, false, err
	}

	if err = h.registry.Update(ctx, o); err != nil {
		return nil, false, err
	}

	return o, true, nil
}
