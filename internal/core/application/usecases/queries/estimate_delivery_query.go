package queries

import (
	"errors"
	"time"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/guard"
)

var ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
	"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
)

// EstimateDeliveryQuery retrieves a delivery-time estimate for one order.
// The estimate is advisory and recomputed on every request; nothing is
// stored.
//
// Example:
//
//	query, err := NewEstimateDeliveryQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewEstimateDeliveryQueryHandler(db, estimator)
//	estimate, err := handler.Handle(ctx, query)
type EstimateDeliveryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryQuery creates a query for the given order's estimate.
func NewEstimateDeliveryQuery(orderID kernel.UUID) (EstimateDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return EstimateDeliveryQuery{}, err
	}

	return EstimateDeliveryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrEstimateDeliveryQueryIsNotConstructed if validation fails.
func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

// OrderID returns the order whose estimate is requested.
func (q EstimateDeliveryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// EstimateDeliveryQueryResponse carries the computed estimate: the order's
// current status, the remaining whole minutes and the predicted completion
// instant.
type EstimateDeliveryQueryResponse struct {
	OrderID kernel.UUID
	Status  string
	Minutes int
	ReadyBy time.Time
}
