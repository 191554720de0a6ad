package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	New ──┬──> Paid ────────────┐
//	      ├──> PendingApproval ─┼──> Cancelled
//	      └─────────────────────┘
//
// Cancelled is terminal; no transition leaves it. Only a Paid order has ever
// had inventory permanently reduced.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the transient initial status assigned at construction, before
	// the payment/approval decision. Registered orders are never New.
	New

	// Paid indicates the charge succeeded and the inventory reservation was
	// converted into a permanent deduction.
	Paid

	// PendingApproval indicates the payment collaborator deferred charging
	// pending human sign-off. Inventory stays reserved, never reduced.
	PendingApproval

	// Cancelled is the terminal status. A Paid order returns its quantity to
	// stock on cancellation; a PendingApproval or New order does not.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		New:             "New",
		Paid:            "Paid",
		PendingApproval: "PendingApproval",
		Cancelled:       "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:             "New",
		Paid:            "Paid",
		PendingApproval: "PendingApproval",
		Cancelled:       "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid. Only New orders can be paid.
func (s Status) Pay() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return Paid, nil
}

// HoldForApproval transitions the status to PendingApproval.
// Only New orders can be placed on hold.
func (s Status) HoldForApproval() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to hold for approval", s.String()),
		)
	}

	return PendingApproval, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from New, Paid and PendingApproval. Cancelled itself is rejected:
// idempotent re-cancellation is a workflow decision, not a state transition.
func (s Status) Cancel() (Status, error) {
	if s != New && s != Paid && s != PendingApproval {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
