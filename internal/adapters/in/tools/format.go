package tools

import (
	"fmt"
	"strings"
	"time"

	"restobot/internal/core/application/usecases/queries"
	"restobot/internal/core/domain/model/order"
)

const timestampLayout = time.RFC3339

// orderView is the flattened shape both aggregates and history rows render
// from, so every tool prints orders identically.
type orderView struct {
	id           string
	customerName string
	lines        []lineView
	total        string
	status       string
	placedAt     time.Time
	updatedAt    time.Time
}

type lineView struct {
	menuItemID string
	name       string
	quantity   int
	lineTotal  string
}

func viewOfAggregate(aggregate *order.Order) orderView {
	lines := make([]lineView, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		lines = append(lines, lineView{
			menuItemID: item.MenuItemID(),
			name:       item.Name(),
			quantity:   item.Quantity(),
			lineTotal:  item.LineTotal().String(),
		})
	}

	return orderView{
		id:           aggregate.ID().String(),
		customerName: aggregate.CustomerName(),
		lines:        lines,
		total:        aggregate.Total().String(),
		status:       aggregate.Status().String(),
		placedAt:     aggregate.CreatedAt(),
		updatedAt:    aggregate.UpdatedAt(),
	}
}

func viewOfHistory(response queries.OrderHistoryResponse) orderView {
	lines := make([]lineView, 0, len(response.Items))
	for _, item := range response.Items {
		lines = append(lines, lineView{
			menuItemID: item.MenuItemID,
			name:       item.Name,
			quantity:   item.Quantity,
			lineTotal:  item.LineTotal.String(),
		})
	}

	return orderView{
		id:           response.ID.String(),
		customerName: response.CustomerName,
		lines:        lines,
		total:        response.Total.String(),
		status:       response.Status,
		placedAt:     response.CreatedAt,
		updatedAt:    response.UpdatedAt,
	}
}

// formatOrder renders one order as the customer-facing summary block.
func formatOrder(view orderView) string {
	lines := make([]string, 0, len(view.lines))
	for _, line := range view.lines {
		lines = append(lines, fmt.Sprintf("- %s (ID: %s) (x%d): $%s",
			line.name, line.menuItemID, line.quantity, line.lineTotal))
	}

	return fmt.Sprintf(`
Order ID: %s
Customer: %s
Items:
%s
Total: $%s
Status: %s
Placed: %s
Last Updated: %s
`,
		view.id,
		view.customerName,
		strings.Join(lines, "\n"),
		view.total,
		view.status,
		view.placedAt.UTC().Format(timestampLayout),
		view.updatedAt.UTC().Format(timestampLayout),
	)
}

// formatMenuItem renders one menu item for the browse tool.
func formatMenuItem(item queries.MenuItemResponse) string {
	return fmt.Sprintf(`
ID: %s
Name: %s
Category: %s
Price: $%s
Description: %s
`,
		item.ID, item.Name, item.Category, item.Price, item.Description)
}
