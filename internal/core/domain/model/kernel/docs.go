// Package kernel provides core domain primitives for the order workflow.
//
// It currently contains UUID, an immutable value object for entity identity
// that wraps github.com/google/uuid with domain validation. Identifiers are
// assigned once at order creation, never reused, and never mutated.
package kernel
