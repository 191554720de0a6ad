package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the workflow taxonomy. Callers classify failures with
// errors.Is against these values; the formatted messages additionally carry
// the keywords ("prohibited", "exceed") that external callers pattern-match on.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrProhibitedProduct = errors.New("product is prohibited")
	ErrQuotaExceeded     = errors.New("daily quota exceeded")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrOrderNotFound     = errors.New("order not found")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required parameter was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a parameter was present but failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ProhibitedProductError indicates an order was rejected because the product
// appears on the configured prohibited-product list.
type ProhibitedProductError struct {
	Product string
}

// NewProhibitedProductError creates a ProhibitedProductError for the given product.
func NewProhibitedProductError(product string) *ProhibitedProductError {
	return &ProhibitedProductError{Product: product}
}

func (e *ProhibitedProductError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProhibitedProduct, sanitize(e.Product))
}

func (e *ProhibitedProductError) Unwrap() error {
	return ErrProhibitedProduct
}

// QuotaExceededError indicates an order would push the cumulative quantity for
// a product past its per-UTC-day limit.
type QuotaExceededError struct {
	Product   string
	Requested int
	Used      int
	Limit     int
}

// NewQuotaExceededError creates a QuotaExceededError describing the rejected request.
func NewQuotaExceededError(product string, requested, used, limit int) *QuotaExceededError {
	return &QuotaExceededError{Product: product, Requested: requested, Used: used, Limit: limit}
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: %s: %d requested, %d of %d already used today",
		ErrQuotaExceeded, sanitize(e.Product), e.Requested, e.Used, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

// InsufficientStockError indicates the inventory collaborator could not cover
// or reserve the requested quantity.
type InsufficientStockError struct {
	Product  string
	Quantity int
}

// NewInsufficientStockError creates an InsufficientStockError for the given request.
func NewInsufficientStockError(product string, quantity int) *InsufficientStockError {
	return &InsufficientStockError{Product: product, Quantity: quantity}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s (need %d)", ErrInsufficientStock, sanitize(e.Product), e.Quantity)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// PaymentFailedError indicates the payment collaborator declined the charge.
// The order is discarded and never registered.
type PaymentFailedError struct {
	OrderID string
}

// NewPaymentFailedError creates a PaymentFailedError for the given order id.
func NewPaymentFailedError(orderID string) *PaymentFailedError {
	return &PaymentFailedError{OrderID: orderID}
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrPaymentFailed, sanitize(e.OrderID))
}

func (e *PaymentFailedError) Unwrap() error {
	return ErrPaymentFailed
}

// OrderNotFoundError indicates an order id is unknown to the registry.
type OrderNotFoundError struct {
	OrderID string
}

// NewOrderNotFoundError creates an OrderNotFoundError for the given order id.
func NewOrderNotFoundError(orderID string) *OrderNotFoundError {
	return &OrderNotFoundError{OrderID: orderID}
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderNotFound, sanitize(e.OrderID))
}

func (e *OrderNotFoundError) Unwrap() error {
	return ErrOrderNotFound
}
