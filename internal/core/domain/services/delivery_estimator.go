package services

import (
	"errors"
	"fmt"
	"time"

	"restobot/internal/core/domain/model/order"
)

// Estimation constants, in minutes. Preparation scales with the number of
// items; the delivery leg is a flat constant.
const (
	basePrepMinutes         = 5.0
	perItemPrepMinutes      = 2.0
	deliveryMinutes         = 15.0
	minRemainingPrepMinutes = 5.0
)

// ErrOrderNotEstimable is returned when an order is in a terminal status:
// there is nothing left to deliver, so the estimator refuses to produce a
// number instead of returning a misleading one.
var ErrOrderNotEstimable = errors.New("order has no remaining delivery time")

// NotEstimableError carries the terminal status that made the estimate
// impossible. Unwraps to ErrOrderNotEstimable.
type NotEstimableError struct {
	Status string
}

func (e *NotEstimableError) Error() string {
	return fmt.Sprintf("status is '%s': %s", e.Status, ErrOrderNotEstimable)
}

func (e *NotEstimableError) Unwrap() error {
	return ErrOrderNotEstimable
}

// Estimate is the result of a delivery-time estimation: the predicted
// completion instant and the whole-minute count it was derived from.
type Estimate struct {
	ReadyBy time.Time
	Minutes int
}

// DeliveryEstimator derives a time-to-delivery estimate from an order's
// status, item count and last-update time. It is a pure domain service:
// nothing is persisted and the clock is injected so tests can pin "now".
//
// The heuristic:
//   - baseline preparation = 5 min + 2 min per ordered unit
//   - delivery leg = flat 15 min
//   - Pending/Modified/Confirmed: full preparation + delivery
//   - Preparing: if less than half the baseline preparation has elapsed
//     since the last update, half the baseline remains; otherwise the
//     remainder is baseline − elapsed, floored at 5 min
//   - Ready: delivery leg only
//   - Delivered/Cancelled: refused with ErrOrderNotEstimable
type DeliveryEstimator struct {
	now func() time.Time
}

// NewDeliveryEstimator creates an estimator with the given clock. A nil
// clock defaults to time.Now.
func NewDeliveryEstimator(now func() time.Time) DeliveryEstimator {
	if now == nil {
		now = time.Now
	}
	return DeliveryEstimator{now: now}
}

// Estimate computes the remaining minutes until delivery for an order with
// the given status, total item quantity and last-update timestamp.
//
// A zero updatedAt (the representation of a garbled stored timestamp) is
// tolerated: the full baseline estimate is used instead of failing.
func (e DeliveryEstimator) Estimate(status order.Status, totalQuantity int, updatedAt time.Time) (Estimate, error) {
	if err := status.Validate(); err != nil {
		return Estimate{}, err
	}
	if status.IsTerminal() {
		return Estimate{}, &NotEstimableError{Status: status.String()}
	}

	now := e.now().UTC()
	prep := basePrepMinutes + perItemPrepMinutes*float64(totalQuantity)

	total := prep + deliveryMinutes
	switch status {
	case order.Preparing:
		if !updatedAt.IsZero() {
			elapsed := now.Sub(updatedAt).Minutes()
			remaining := prep / 2
			if elapsed >= prep/2 {
				remaining = max(minRemainingPrepMinutes, prep-elapsed)
			}
			total = remaining + deliveryMinutes
		}
	case order.Ready:
		total = deliveryMinutes
	}

	return Estimate{
		ReadyBy: now.Add(time.Duration(total * float64(time.Minute))),
		Minutes: int(total),
	}, nil
}
