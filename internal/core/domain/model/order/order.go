package order

import (
	"errors"
	"strings"
	"time"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrStatusUnchanged is returned by TransitionTo when the requested
	// status equals the current one. It is an idempotency notice, not a
	// transition violation: no mutation occurs and updated_at is untouched.
	ErrStatusUnchanged = errors.New("order is already in the requested status")
)

// Order is the aggregate root of the ordering domain. It manages the order
// lifecycle from placement through preparation to delivery or cancellation.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Must hold at least one line item
//   - Total always equals the sum of quantity × price_at_order over the
//     current line items
//   - Status transitions follow the closed lifecycle table
//   - updated_at is stamped on every successful mutation
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods. Orders are never physically deleted; terminal
// statuses retire them.
type Order struct {
	id           kernel.UUID
	customerName string
	items        []Item
	total        kernel.Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a freshly placed order in Pending status. The customer
// name is trimmed and must be non-empty, and at least one valid line item is
// required. The total is computed from the line items; created_at and
// updated_at are both set to now in UTC.
func NewOrder(id kernel.UUID, customerName string, items []Item, now time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.createdAt = now.UTC()
	order.updatedAt = order.createdAt
	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and the stored timestamps and total, but still
// validates every component so corrupt rows surface as errors instead of
// invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.total = total
	order.status = status
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when aggregates cross a persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the current line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total. It always equals the sum of the line
// totals of the current items.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp (UTC, set once).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TotalQuantity returns the summed quantity across all line items. The
// delivery estimator derives preparation time from it.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// ReplaceItems swaps the order's line items wholesale, recomputes the total
// and moves the order to Modified status. It is permitted only while the
// order has not been confirmed or started (Pending or Modified); otherwise
// an InvalidTransitionError is returned and the order is left untouched.
func (o *Order) ReplaceItems(items []Item, now time.Time) error {
	if !o.status.CanModify() {
		return errs.NewInvalidTransitionError(
			o.status.String(), Modified.String(), o.status.AllowedNextNames())
	}

	previous := o.items
	if err := o.setItems(items); err != nil {
		o.items = previous
		return err
	}

	o.status = Modified
	o.updatedAt = now.UTC()
	return nil
}

// Cancel withdraws the order. Cancellation is permitted from Pending,
// Modified and Confirmed; any other status yields an InvalidTransitionError.
// Cancelled is terminal.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.CanCancel() {
		return errs.NewInvalidTransitionError(
			o.status.String(), Cancelled.String(), o.status.AllowedNextNames())
	}

	o.status = Cancelled
	o.updatedAt = now.UTC()
	return nil
}

// TransitionTo applies a status update according to the lifecycle table.
//
// Requesting the current status returns ErrStatusUnchanged without mutating
// the order. Requesting a status not reachable from the current one returns
// an InvalidTransitionError carrying the statuses actually allowed next.
// On success the status is applied and updated_at is stamped with now (UTC).
func (o *Order) TransitionTo(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == o.status {
		return ErrStatusUnchanged
	}

	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(
			o.status.String(), target.String(), o.status.AllowedNextNames())
	}

	o.status = target
	o.updatedAt = now.UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = trimmed
	return nil
}

// setItems validates and installs the line items and recomputes the total,
// keeping the total invariant in one place.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	var total kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.LineTotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
