package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/domain/services"
	"restobot/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstimateDeliveryQueryHandler reads an order's status, item count and
// last-update time and runs the delivery estimator over them.
type EstimateDeliveryQueryHandler struct {
	db        *gorm.DB
	estimator services.DeliveryEstimator
}

// NewEstimateDeliveryQueryHandler creates a handler for delivery estimates.
// Requires a GORM database connection and a configured estimator.
func NewEstimateDeliveryQueryHandler(
	db *gorm.DB, estimator services.DeliveryEstimator,
) EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{db: db, estimator: estimator}
}

// Handle executes the estimate query. An unknown order yields an
// ObjectNotFoundError; a terminal order surfaces the estimator's
// ErrOrderNotEstimable. An unreadable updated_at falls back to the full
// baseline estimate instead of failing.
func (h EstimateDeliveryQueryHandler) Handle(
	ctx context.Context,
	query EstimateDeliveryQuery,
) (EstimateDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	var status int
	var updatedAt sql.NullTime
	var totalQuantity int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.updated_at,
			(SELECT COALESCE(SUM(quantity), 0) FROM order_items WHERE order_id = o.id)
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&status, &updatedAt, &totalQuantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EstimateDeliveryQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return EstimateDeliveryQueryResponse{}, errs.NewStorageError("read order for estimate", err)
	}

	var lastUpdate time.Time
	if updatedAt.Valid {
		lastUpdate = updatedAt.Time.UTC()
	}

	estimate, err := h.estimator.Estimate(order.Status(status), totalQuantity, lastUpdate)
	if err != nil {
		return EstimateDeliveryQueryResponse{}, err
	}

	return EstimateDeliveryQueryResponse{
		OrderID: query.OrderID(),
		Status:  order.Status(status).String(),
		Minutes: estimate.Minutes,
		ReadyBy: estimate.ReadyBy,
	}, nil
}
