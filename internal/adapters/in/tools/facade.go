// Package tools exposes the ordering operations as a flat, agent-facing tool
// surface. Every tool takes JSON arguments and returns one human-readable
// string: success and business-rule refusals alike are narrative text the
// calling assistant can relay verbatim, while infrastructure failures
// propagate as errors.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"restobot/internal/core/application/usecases/commands"
	"restobot/internal/core/application/usecases/queries"
	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/domain/services"
	"restobot/internal/pkg/errs"
)

// Tool names as invoked by the agent.
const (
	ToolBrowseMenu           = "browse_menu"
	ToolPlaceOrder           = "place_order"
	ToolModifyOrder          = "modify_order"
	ToolCancelOrder          = "cancel_order"
	ToolViewOrderHistory     = "view_order_history"
	ToolEstimateDeliveryTime = "estimate_delivery_time"
	ToolUpdateOrderStatus    = "update_order_status"
)

// Tool describes one invocable operation of the facade.
type Tool struct {
	Name        string
	Description string
}

// Facade routes named tool invocations to the command and query handlers.
type Facade struct {
	placeOrder   commands.PlaceOrderCommandHandler
	modifyOrder  commands.ModifyOrderCommandHandler
	cancelOrder  commands.CancelOrderCommandHandler
	updateStatus commands.UpdateOrderStatusCommandHandler
	browseMenu   queries.BrowseMenuQueryHandler
	orderHistory queries.GetOrderHistoryQueryHandler
	estimate     queries.EstimateDeliveryQueryHandler
}

// NewFacade creates the tool facade over the given handlers.
func NewFacade(
	placeOrder commands.PlaceOrderCommandHandler,
	modifyOrder commands.ModifyOrderCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	updateStatus commands.UpdateOrderStatusCommandHandler,
	browseMenu queries.BrowseMenuQueryHandler,
	orderHistory queries.GetOrderHistoryQueryHandler,
	estimate queries.EstimateDeliveryQueryHandler,
) *Facade {
	return &Facade{
		placeOrder:   placeOrder,
		modifyOrder:  modifyOrder,
		cancelOrder:  cancelOrder,
		updateStatus: updateStatus,
		browseMenu:   browseMenu,
		orderHistory: orderHistory,
		estimate:     estimate,
	}
}

// Tools lists every operation the facade can invoke.
func (f *Facade) Tools() []Tool {
	return []Tool{
		{ToolBrowseMenu, "List menu categories, or the items of one category with their IDs and prices."},
		{ToolPlaceOrder, "Place a new order with selected menu item IDs and quantities."},
		{ToolModifyOrder, "Replace the items of a Pending or Modified order."},
		{ToolCancelOrder, "Cancel a Pending, Modified or Confirmed order."},
		{ToolViewOrderHistory, "View all orders placed by a customer, newest first."},
		{ToolEstimateDeliveryTime, "Estimate the remaining time until an order is delivered."},
		{ToolUpdateOrderStatus, "Advance an order to Confirmed, Preparing, Ready or Delivered."},
	}
}

// Invoke runs the named tool with the given JSON arguments and returns its
// narrative result. An unknown tool name or undecodable arguments yield an
// error; business-rule refusals come back as the result text.
func (f *Facade) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	switch name {
	case ToolBrowseMenu:
		return f.invokeBrowseMenu(ctx, args)
	case ToolPlaceOrder:
		return f.invokePlaceOrder(ctx, args)
	case ToolModifyOrder:
		return f.invokeModifyOrder(ctx, args)
	case ToolCancelOrder:
		return f.invokeCancelOrder(ctx, args)
	case ToolViewOrderHistory:
		return f.invokeViewOrderHistory(ctx, args)
	case ToolEstimateDeliveryTime:
		return f.invokeEstimateDeliveryTime(ctx, args)
	case ToolUpdateOrderStatus:
		return f.invokeUpdateOrderStatus(ctx, args)
	default:
		return "", errs.NewObjectNotFoundError("tool", name)
	}
}

type itemArg struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type browseMenuArgs struct {
	Category string `json:"category"`
}

type placeOrderArgs struct {
	CustomerName string    `json:"customer_name"`
	Items        []itemArg `json:"items"`
}

type modifyOrderArgs struct {
	OrderID string    `json:"order_id"`
	Items   []itemArg `json:"items"`
}

type orderIDArgs struct {
	OrderID string `json:"order_id"`
}

type viewOrderHistoryArgs struct {
	CustomerName string `json:"customer_name"`
}

type updateOrderStatusArgs struct {
	OrderID   string `json:"order_id"`
	NewStatus string `json:"new_status"`
}

func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tool arguments", err)
	}
	return nil
}

// buildSelections converts the raw item arguments into validated selections,
// or the narrative refusal to hand back.
func buildSelections(items []itemArg) ([]commands.ItemSelection, string) {
	if len(items) == 0 {
		return nil, "Error: No valid items provided in the order."
	}

	selections := make([]commands.ItemSelection, 0, len(items))
	for _, item := range items {
		if item.ItemID == "" {
			return nil, fmt.Sprintf(
				"Error: Invalid item_id provided: %s. It must be a string.", item.ItemID)
		}
		if item.Quantity < 1 {
			return nil, fmt.Sprintf(
				"Error: Invalid quantity for item ID %s. Quantity must be a positive integer. Got: %d",
				item.ItemID, item.Quantity)
		}

		selection, err := commands.NewItemSelection(item.ItemID, item.Quantity)
		if err != nil {
			return nil, "Error: " + err.Error()
		}
		selections = append(selections, selection)
	}

	return selections, ""
}

func (f *Facade) invokeBrowseMenu(ctx context.Context, raw json.RawMessage) (string, error) {
	var args browseMenuArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	response, err := f.browseMenu.Handle(ctx, queries.NewBrowseMenuQuery(args.Category))
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(args.Category) == "" {
		if len(response.Categories) == 0 {
			return "The menu is currently empty.", nil
		}
		return "Here are our menu categories: \n- " +
			strings.Join(response.Categories, "\n- ") +
			"\nWhich category would you like to see?", nil
	}

	if len(response.Items) == 0 {
		catString := "No categories available"
		if len(response.Categories) > 0 {
			catString = strings.Join(response.Categories, ", ")
		}
		return fmt.Sprintf("No items found for category '%s'. Perhaps try one of these: %s.",
			args.Category, catString), nil
	}

	formatted := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		formatted = append(formatted, formatMenuItem(item))
	}
	return fmt.Sprintf("Items in category '%s':\n", args.Category) +
		strings.Join(formatted, "\n---\n"), nil
}

func (f *Facade) invokePlaceOrder(ctx context.Context, raw json.RawMessage) (string, error) {
	var args placeOrderArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	if strings.TrimSpace(args.CustomerName) == "" {
		return "Error: Customer name must be a non-empty string.", nil
	}

	selections, refusal := buildSelections(args.Items)
	if refusal != "" {
		return refusal, nil
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), args.CustomerName, selections)
	if err != nil {
		return "", err
	}

	placed, err := f.placeOrder.Handle(ctx, cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) && notFound.ParamName == "menu item" {
			return fmt.Sprintf(
				"Error: Item ID %v not found in menu. Please browse the menu for available items.",
				notFound.ID), nil
		}
		return "", err
	}

	return "Order placed successfully!\n" + formatOrder(viewOfAggregate(placed)), nil
}

func (f *Facade) invokeModifyOrder(ctx context.Context, raw json.RawMessage) (string, error) {
	var args modifyOrderArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	orderID, err := kernel.UUIDFromString(args.OrderID)
	if err != nil {
		return fmt.Sprintf(
			"Error: Invalid order ID format: %s. Please provide a valid order ID.", args.OrderID), nil
	}

	selections, refusal := buildSelections(args.Items)
	if refusal != "" {
		return refusal, nil
	}

	cmd, err := commands.NewModifyOrderCommand(orderID, selections)
	if err != nil {
		return "", err
	}

	modified, err := f.modifyOrder.Handle(ctx, cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			if notFound.ParamName == "menu item" {
				return fmt.Sprintf("Error: New item ID %v not found in menu.", notFound.ID), nil
			}
			return fmt.Sprintf("Error: Order ID %s not found.", args.OrderID), nil
		}

		var transition *errs.InvalidTransitionError
		if errors.As(err, &transition) {
			return fmt.Sprintf(
				"Error: Cannot modify order. Order status is '%s'. Only Pending or Modified orders can be changed.",
				transition.From), nil
		}
		return "", err
	}

	return fmt.Sprintf("Order %s modified successfully!\n", args.OrderID) +
		formatOrder(viewOfAggregate(modified)), nil
}

func (f *Facade) invokeCancelOrder(ctx context.Context, raw json.RawMessage) (string, error) {
	var args orderIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	orderID, err := kernel.UUIDFromString(args.OrderID)
	if err != nil {
		return fmt.Sprintf(
			"Error: Invalid order ID format: %s. Please provide a valid order ID.", args.OrderID), nil
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return "", err
	}

	cancelled, err := f.cancelOrder.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Sprintf("Error: Order ID %s not found.", args.OrderID), nil
		}

		var transition *errs.InvalidTransitionError
		if errors.As(err, &transition) {
			return fmt.Sprintf(
				"Error: Cannot cancel order. Order status is '%s'. Only Pending, Modified, or Confirmed orders can be cancelled.",
				transition.From), nil
		}
		return "", err
	}

	return fmt.Sprintf("Order %s cancelled successfully.\n", args.OrderID) +
		formatOrder(viewOfAggregate(cancelled)), nil
}

func (f *Facade) invokeViewOrderHistory(ctx context.Context, raw json.RawMessage) (string, error) {
	var args viewOrderHistoryArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	if strings.TrimSpace(args.CustomerName) == "" {
		return "Error: Customer name must be a non-empty string.", nil
	}

	query, err := queries.NewGetOrderHistoryQuery(args.CustomerName)
	if err != nil {
		return "", err
	}

	orders, err := f.orderHistory.Handle(ctx, query)
	if err != nil {
		return "", err
	}

	if len(orders) == 0 {
		return fmt.Sprintf("No orders found for customer '%s'.",
			strings.TrimSpace(args.CustomerName)), nil
	}

	formatted := make([]string, 0, len(orders))
	for _, historic := range orders {
		formatted = append(formatted, formatOrder(viewOfHistory(historic)))
	}
	return strings.Join(formatted, "\n---\n"), nil
}

func (f *Facade) invokeEstimateDeliveryTime(ctx context.Context, raw json.RawMessage) (string, error) {
	var args orderIDArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	orderID, err := kernel.UUIDFromString(args.OrderID)
	if err != nil {
		return fmt.Sprintf(
			"Error: Invalid order ID format: %s. Please provide a valid order ID.", args.OrderID), nil
	}

	query, err := queries.NewEstimateDeliveryQuery(orderID)
	if err != nil {
		return "", err
	}

	estimate, err := f.estimate.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Sprintf("Error: Order ID %s not found.", args.OrderID), nil
		}

		var notEstimable *services.NotEstimableError
		if errors.As(err, &notEstimable) {
			return fmt.Sprintf("Cannot estimate delivery for order %s. Its status is '%s'.",
				args.OrderID, notEstimable.Status), nil
		}
		return "", err
	}

	return fmt.Sprintf(
		"Estimated delivery for order %s (%s): Around %s UTC (approx. %d minutes from now).",
		args.OrderID,
		estimate.Status,
		estimate.ReadyBy.UTC().Format("2006-01-02 15:04:05"),
		estimate.Minutes,
	), nil
}

func (f *Facade) invokeUpdateOrderStatus(ctx context.Context, raw json.RawMessage) (string, error) {
	var args updateOrderStatusArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	orderID, err := kernel.UUIDFromString(args.OrderID)
	if err != nil {
		return fmt.Sprintf("Error: Invalid order ID format: %s.", args.OrderID), nil
	}

	invalidStatus := fmt.Sprintf(
		"Error: Invalid new status '%s'. Must be one of: Confirmed, Preparing, Ready, Delivered.",
		args.NewStatus)

	target, err := order.StatusFromString(args.NewStatus)
	if err != nil {
		return invalidStatus, nil
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return invalidStatus, nil
		}
		return "", err
	}

	updated, err := f.updateStatus.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, order.ErrStatusUnchanged) {
			return fmt.Sprintf("Order %s is already in '%s' status.",
				args.OrderID, target.String()), nil
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Sprintf("Error: Order ID %s not found.", args.OrderID), nil
		}

		var transition *errs.InvalidTransitionError
		if errors.As(err, &transition) {
			allowed := "None (terminal status)"
			if len(transition.Allowed) > 0 {
				allowed = strings.Join(transition.Allowed, ", ")
			}
			return fmt.Sprintf(
				"Error: Cannot change order status from '%s' to '%s'. Allowed next statuses for '%s': %s.",
				transition.From, transition.To, transition.From, allowed), nil
		}
		return "", err
	}

	return fmt.Sprintf("Order %s status updated to '%s'.\n", args.OrderID, target.String()) +
		formatOrder(viewOfAggregate(updated)), nil
}
