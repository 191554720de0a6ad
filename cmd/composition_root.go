package cmd

import (
	"log/slog"
	"strconv"
	"strings"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/jobs"

	"github.com/shopspring/decimal"
)

// CompositionRoot wires the order workflow: one shared registry, one quota
// tracker and one set of collaborator adapters feed the command and query
// handlers. Handlers carry per-key lock state, so the root builds each of
// them exactly once.
type CompositionRoot struct {
	quotaTracker *services.DailyQuotaTracker

	createOrderHandler       *commands.CreateOrderCommandHandler
	cancelOrderHandler       *commands.CancelOrderCommandHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewCompositionRoot builds the application object graph from the config.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	registry := memory.NewOrderRegistry()
	quotaTracker := services.NewDailyQuotaTracker(
		parseIntOr(config.DailyQuotaLimit, services.DefaultDailyQuotaLimit),
	)

	inventory := memory.NewInventory(parseQuantityTable(config.InitialStock))
	payments := memory.NewPaymentService(parseDecimalOr(config.ApprovalThreshold, decimal.Zero))
	discounts := memory.NewDiscountService(parseAmountTable(config.DiscountCodes))
	notifications := memory.NewNotificationService(logger)

	pricing := services.NewPricingEngine(discounts)

	return CompositionRoot{
		quotaTracker: quotaTracker,
		createOrderHandler: commands.NewCreateOrderCommandHandler(
			registry,
			quotaTracker,
			pricing,
			inventory,
			payments,
			notifications,
			parseList(config.ProhibitedProducts),
			logger,
		),
		cancelOrderHandler: commands.NewCancelOrderCommandHandler(
			registry,
			inventory,
			notifications,
			logger,
		),
		getOrdersHandler:         queries.NewGetOrdersQueryHandler(registry),
		getOrdersByStatusHandler: queries.NewGetOrdersByStatusQueryHandler(registry),
	}
}

// CreateOrderCommandHandler returns the shared order-creation handler.
func (c *CompositionRoot) CreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	return c.createOrderHandler
}

// CancelOrderCommandHandler returns the shared cancellation handler.
func (c *CompositionRoot) CancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	return c.cancelOrderHandler
}

// GetOrdersQueryHandler returns the registry snapshot query handler.
func (c *CompositionRoot) GetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return c.getOrdersHandler
}

// GetOrdersByStatusQueryHandler returns the filtered snapshot query handler.
func (c *CompositionRoot) GetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return c.getOrdersByStatusHandler
}

// CreateJobManager creates the background job manager over the shared
// quota tracker.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.quotaTracker, logger)
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func parseDecimalOr(s string, fallback decimal.Decimal) decimal.Decimal {
	if s == "" {
		return fallback
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return v
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseAmountTable(s string) map[string]decimal.Decimal {
	table := make(map[string]decimal.Decimal)
	for _, item := range parseList(s) {
		key, value, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		table[strings.TrimSpace(key)] = amount
	}
	return table
}

func parseQuantityTable(s string) map[string]int {
	table := make(map[string]int)
	for _, item := range parseList(s) {
		key, value, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		table[strings.TrimSpace(key)] = quantity
	}
	return table
}
