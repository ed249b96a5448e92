package order

import (
	"fmt"
	"strings"

	"restobot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a closed
// state machine so orders follow the kitchen workflow and never skip or
// reverse steps.
//
// State transitions for the status-update operation:
//
//	Pending ──┬──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	          └──────────────────^
//	Modified ─┬──> Confirmed
//	          └──> Preparing
//
// Pending and Modified are entry-equivalent: both mean "not yet confirmed or
// started". Delivered and Cancelled are terminal. Cancellation is a separate
// operation permitted from Pending, Modified and Confirmed; modification is
// permitted from Pending and Modified only.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Confirmed means the restaurant has accepted the order.
	Confirmed

	// Preparing means the kitchen has started working on the order.
	Preparing

	// Ready means the order awaits delivery.
	Ready

	// Delivered is a terminal status: the order reached the customer.
	Delivered

	// Cancelled is a terminal status: the order was withdrawn before
	// preparation finished.
	Cancelled

	// Modified means the order's line items were replaced after placement.
	// Like Pending, it precedes confirmation.
	Modified
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Modified:  "Modified",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Modified:  "Modified",
	}
}

// transitions is the closed table consulted by the status-update operation.
// A status absent from the table (or mapped to an empty set) has no outgoing
// transitions.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Preparing},
		Modified:  {Confirmed, Preparing},
		Confirmed: {Preparing},
		Preparing: {Ready},
		Ready:     {Delivered},
	}
}

// StatusFromString parses a status name case-insensitively, e.g. for the
// new_status argument of the update tool. Returns an error naming the value
// when it matches no known status.
func StatusFromString(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, needle) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("'%s' is not a known status", s))
}

// Validate checks if the Status value is valid. Unknown (0) and any value
// outside the enumeration are invalid. Use this when reconstructing a status
// from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. This method implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedNext returns the statuses reachable from s in one status update,
// in table order. The result is empty for terminal and invalid statuses.
func (s Status) AllowedNext() []Status {
	next := transitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// AllowedNextNames returns AllowedNext as display strings for error
// reporting.
func (s Status) AllowedNextNames() []string {
	next := s.AllowedNext()
	names := make([]string, len(next))
	for i, status := range next {
		names[i] = status.String()
	}
	return names
}

// CanTransitionTo reports whether the status-update operation may move an
// order from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// CanModify reports whether an order in this status may have its line items
// replaced. Only orders that have not been confirmed or started qualify.
func (s Status) CanModify() bool {
	return s == Pending || s == Modified
}

// CanCancel reports whether an order in this status may be cancelled.
// Cancellation is allowed up to and including Confirmed; once the kitchen
// starts preparing, the order can no longer be withdrawn.
func (s Status) CanCancel() bool {
	return s == Pending || s == Modified || s == Confirmed
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
