package commands

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/keymutex"
)

// CreateOrderCommandHandler runs the order-creation pipeline:
//
//	prohibited check -> quota check -> stock check/reserve -> quota record
//	-> build order (price via PricingEngine) -> payment/approval decision
//	-> inventory commit or release -> registry append -> notification
//
// The validation-through-registration sequence runs inside a per-product
// critical section so concurrent creations cannot violate the quota or stock
// constraints; the notification is dispatched after the lock is released.
// On any failure after a successful reservation, the reservation is released
// before the error propagates and the order is never registered.
type CreateOrderCommandHandler struct {
	registry      ports.OrderRegistry
	quota         *services.DailyQuotaTracker
	pricing       *services.PricingEngine
	inventory     ports.InventoryService
	payments      ports.PaymentService
	notifications ports.NotificationService
	prohibited    map[string]struct{}
	productLocks  *keymutex.KeyedMutex
	logger        *slog.Logger
}

// NewCreateOrderCommandHandler creates the order-creation handler.
// prohibitedProducts is the injected configuration of products that must be
// rejected outright. The handler owns its per-product lock set; construct it
// once and share the instance between concurrent callers.
func NewCreateOrderCommandHandler(
	registry ports.OrderRegistry,
	quota *services.DailyQuotaTracker,
	pricing *services.PricingEngine,
	inventory ports.InventoryService,
	payments ports.PaymentService,
	notifications ports.NotificationService,
	prohibitedProducts []string,
	logger *slog.Logger,
) *CreateOrderCommandHandler {
	prohibited := make(map[string]struct{}, len(prohibitedProducts))
	for _, product := range prohibitedProducts {
		prohibited[product] = struct{}{}
	}

	return &CreateOrderCommandHandler{
		registry:      registry,
		quota:         quota,
		pricing:       pricing,
		inventory:     inventory,
		payments:      payments,
		notifications: notifications,
		prohibited:    prohibited,
		productLocks:  keymutex.NewKeyedMutex(),
		logger:        logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order-creation command and returns the accepted order
// in its final state (Paid or PendingApproval). On failure no order is
// registered and any inventory reservation taken is released.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.productLocks.Lock(cmd.Product())
	o, err := h.createLocked(ctx, cmd)
	h.productLocks.Unlock(cmd.Product())
	if err != nil {
		return nil, err
	}

	h.notifyCreated(ctx, o)
	return o, nil
}

func (h *CreateOrderCommandHandler) createLocked(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	product, quantity := cmd.Product(), cmd.Quantity()

	if _, banned := h.prohibited[product]; banned {
		return nil, errs.NewProhibitedProductError(product)
	}

	if h.quota.WouldExceed(product, quantity) {
		return nil, errs.NewQuotaExceededError(product, quantity, h.quota.Used(product), h.quota.Limit())
	}

	available, err := h.inventory.CheckStock(ctx, product, quantity)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errs.NewInsufficientStockError(product, quantity)
	}

	reserved, err := h.inventory.ReserveStock(ctx, product, quantity)
	if err != nil {
		return nil, err
	}
	if !reserved {
		// Reservation race lost; nothing was held, nothing to release.
		return nil, errs.NewInsufficientStockError(product, quantity)
	}

	// Quota counts every created order from here on, regardless of the
	// payment outcome. Cancellation does not decrement it either.
	h.quota.Record(product, quantity)

	o, err := h.buildOrder(ctx, cmd)
	if err != nil {
		h.releaseReservation(ctx, product, quantity)
		return nil, err
	}

	if err = h.decide(ctx, o); err != nil {
		h.releaseReservation(ctx, product, quantity)
		return nil, err
	}

	if err = h.registry.Add(ctx, o); err != nil {
		h.releaseReservation(ctx, product, quantity)
		return nil, err
	}

	return o, nil
}

func (h *CreateOrderCommandHandler) buildOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	totalPrice, err := h.pricing.Compute(ctx, cmd.Quantity(), cmd.UnitPrice(), cmd.DiscountCode())
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		cmd.Product(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.Category(),
		cmd.DiscountCode(),
		totalPrice,
		time.Now().UTC(),
	)
}

// decide runs the payment/approval branch and moves the order to its final
// creation state. On the approval path the stock stays reserved and
// ProcessPayment is never invoked; on the paid path the reservation is
// converted into a permanent deduction.
func (h *CreateOrderCommandHandler) decide(ctx context.Context, o *order.Order) error {
	needsApproval, err := h.payments.NeedsManualApproval(ctx, o)
	if err != nil {
		return err
	}

	if needsApproval {
		return o.MarkPendingApproval()
	}

	paid, err := h.payments.ProcessPayment(ctx, o)
	if err != nil {
		return err
	}
	if !paid {
		return errs.NewPaymentFailedError(o.ID().String())
	}

	if err = o.MarkPaid(); err != nil {
		return err
	}

	return h.inventory.ReduceStock(ctx, o.Product(), o.Quantity())
}

func (h *CreateOrderCommandHandler) releaseReservation(ctx context.Context, product string, quantity int) {
	if err := h.inventory.IncreaseStock(ctx, product, quantity); err != nil {
		h.logger.ErrorContext(ctx, "failed to release inventory reservation",
			"product", product, "quantity", quantity, "error", err)
	}
}

func (h *CreateOrderCommandHandler) notifyCreated(ctx context.Context, o *order.Order) {
	var err error
	switch o.Status() {
	case order.PendingApproval:
		err = h.notifications.SendPendingApproval(ctx, o)
	case order.Paid:
		err = h.notifications.SendPaidConfirmation(ctx, o)
	}

	if err != nil {
		h.logger.WarnContext(ctx, "order notification failed",
			"order_id", o.ID().String(), "status", o.Status().String(), "error", err)
	}
}
