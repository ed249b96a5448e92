package queries

import (
	"context"
	"time"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves a customer's orders from the
// database, newest first, with their line items. Item names come from the
// menu table; the prices are the ones frozen when the order was placed.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query. A customer with no orders yields an
// empty slice, not an error.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, orderIDs, err := h.orders(ctx, query.CustomerName())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := h.items(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID.String()]
	}

	return orders, nil
}

func (h GetOrderHistoryQueryHandler) orders(
	ctx context.Context, customerName string,
) ([]OrderHistoryResponse, []uuid.UUID, error) {
	orders := make([]OrderHistoryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_name, total, status, created_at, updated_at
		FROM orders
		WHERE LOWER(customer_name) = LOWER(?)
		ORDER BY created_at DESC
	`, customerName).Rows()
	if err != nil {
		return nil, nil, errs.NewStorageError("list customer orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderHistoryResponse
		var id uuid.UUID
		var total decimal.Decimal
		var status int
		var createdAt, updatedAt time.Time

		err = rows.Scan(&id, &resp.CustomerName, &total, &status, &createdAt, &updatedAt)
		if err != nil {
			return nil, nil, errs.NewStorageError("scan customer order", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, nil, moneyErr
		}

		resp.ID = orderID
		resp.Total = money
		resp.Status = order.Status(status).String()
		resp.CreatedAt = createdAt.UTC()
		resp.UpdatedAt = updatedAt.UTC()
		orders = append(orders, resp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, errs.NewStorageError("list customer orders", err)
	}

	return orders, orderIDs, nil
}

func (h GetOrderHistoryQueryHandler) items(
	ctx context.Context, orderIDs []uuid.UUID,
) (map[string][]OrderItemResponse, error) {
	itemsByOrder := make(map[string][]OrderItemResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT oi.order_id, oi.menu_item_id, COALESCE(m.name, oi.menu_item_id), oi.quantity, oi.price_at_order
		FROM order_items oi
		LEFT JOIN menu m ON m.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Quantity, &price)
		if err != nil {
			return nil, errs.NewStorageError("scan order item", err)
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		item.PriceAtOrder = money
		item.LineTotal = money.MulQuantity(item.Quantity)
		itemsByOrder[orderID.String()] = append(itemsByOrder[orderID.String()], item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list order items", err)
	}

	return itemsByOrder, nil
}
