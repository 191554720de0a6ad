// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order carries immutable creation-time data (product, quantity, unit
// price, category, discount code, total price, creation timestamp) plus a
// mutable Status. Status transitions are one-directional into Cancelled,
// which is terminal. The total price is computed exactly once at creation
// and never recomputed.
package order
