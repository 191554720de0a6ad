// Package errs provides standardized error types for the order workflow.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Two groups of errors are defined:
//
//   - Generic validation errors used by constructors
//     (ValueIsRequiredError, ValueIsInvalidError)
//   - The workflow taxonomy raised by order operations
//     (ProhibitedProductError, QuotaExceededError, InsufficientStockError,
//     PaymentFailedError, OrderNotFoundError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrQuotaExceeded)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification works
//
// Downstream callers may also classify by message substring: the prohibited
// and quota errors are guaranteed to contain the lower-case keywords
// "prohibited" and "exceed" respectively.
package errs
