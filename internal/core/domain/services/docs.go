// Package services contains domain services of the order lifecycle engine:
// logic that operates on aggregates but does not belong to any single one.
//
// DeliveryEstimator predicts how long an order still needs until delivery
// from its status, item count and last-update time. It is deterministic for
// an injected clock and never touches persistence.
package services
