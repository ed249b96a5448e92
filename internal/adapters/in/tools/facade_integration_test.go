package tools_test

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"restobot/internal/adapters/in/tools"
	"restobot/internal/adapters/out/postgres"
	"restobot/internal/adapters/out/postgres/menurepo"
	"restobot/internal/core/application/usecases/commands"
	"restobot/internal/core/application/usecases/queries"
	"restobot/internal/core/domain/services"
	"restobot/internal/core/ports"
	"restobot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// uowFactory narrows ports.UnitOfWorkFactory to the factory interface the
// command handlers expect.
type uowFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.OrderUoW {
	return f.inner.Create()
}

var orderIDPattern = regexp.MustCompile(`Order ID: ([0-9a-f-]{36})`)

type FacadeIntegrationTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	facade    *tools.Facade
}

func (suite *FacadeIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.Require().NoError(menurepo.NewGormMenuCatalog(db).Seed(ctx))

	factory := uowFactory{inner: postgres.NewGormUnitOfWorkFactory(db)}
	catalog := menurepo.NewGormMenuCatalog(db)

	suite.facade = tools.NewFacade(
		commands.NewPlaceOrderCommandHandler(factory, catalog, nil),
		commands.NewModifyOrderCommandHandler(factory, catalog, nil),
		commands.NewCancelOrderCommandHandler(factory, nil),
		commands.NewUpdateOrderStatusCommandHandler(factory, nil),
		queries.NewBrowseMenuQueryHandler(db),
		queries.NewGetOrderHistoryQueryHandler(db),
		queries.NewEstimateDeliveryQueryHandler(db, services.NewDeliveryEstimator(nil)),
	)
}

func (suite *FacadeIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *FacadeIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM order_items").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM orders").Error)
}

func (suite *FacadeIntegrationTestSuite) invoke(tool string, args any) string {
	raw, err := json.Marshal(args)
	suite.Require().NoError(err)

	result, err := suite.facade.Invoke(context.Background(), tool, raw)
	suite.Require().NoError(err)
	return result
}

type itemArg struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// placeOrder places an order through the facade and returns its generated id.
func (suite *FacadeIntegrationTestSuite) placeOrder(customer string, items []itemArg) string {
	result := suite.invoke("place_order", map[string]any{
		"customer_name": customer,
		"items":         items,
	})
	suite.Require().Contains(result, "Order placed successfully!")

	match := orderIDPattern.FindStringSubmatch(result)
	suite.Require().Len(match, 2, "result should carry the order id: %s", result)
	return match[1]
}

func (suite *FacadeIntegrationTestSuite) TestToolsListsAllOperations() {
	suite.Len(suite.facade.Tools(), 7)
}

func (suite *FacadeIntegrationTestSuite) TestUnknownToolFails() {
	_, err := suite.facade.Invoke(context.Background(), "teleport_pizza", nil)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FacadeIntegrationTestSuite) TestBrowseMenuListsCategories() {
	result := suite.invoke("browse_menu", map[string]any{})

	suite.Equal(
		"Here are our menu categories: \n- Beverage\n- Dessert\n- Main\n- Rolls\n- Salad\n- Side"+
			"\nWhich category would you like to see?",
		result,
	)
}

func (suite *FacadeIntegrationTestSuite) TestBrowseMenuListsCategoryItems() {
	result := suite.invoke("browse_menu", map[string]any{"category": "Main"})

	suite.Contains(result, "Items in category 'Main':")
	suite.Contains(result, "Name: Beef Burger")
	suite.Contains(result, "Price: $10.50")
	suite.Contains(result, "Name: Vegetable Biryani")
}

func (suite *FacadeIntegrationTestSuite) TestBrowseMenuUnknownCategorySuggests() {
	result := suite.invoke("browse_menu", map[string]any{"category": "Sushi"})

	suite.Equal(
		"No items found for category 'Sushi'. "+
			"Perhaps try one of these: Beverage, Dessert, Main, Rolls, Salad, Side.",
		result,
	)
}

func (suite *FacadeIntegrationTestSuite) TestPlaceOrder() {
	result := suite.invoke("place_order", map[string]any{
		"customer_name": "Alice",
		"items": []itemArg{
			{ItemID: "1", Quantity: 2},
			{ItemID: "15", Quantity: 1},
		},
	})

	suite.Contains(result, "Order placed successfully!")
	suite.Contains(result, "Customer: Alice")
	suite.Contains(result, "- Margherita Pizza (ID: 1) (x2): $25.98")
	suite.Contains(result, "- Coke (ID: 15) (x1): $1.50")
	suite.Contains(result, "Total: $27.48")
	suite.Contains(result, "Status: Pending")
}

func (suite *FacadeIntegrationTestSuite) TestPlaceOrderRefusals() {
	suite.Run("BlankCustomerName", func() {
		result := suite.invoke("place_order", map[string]any{
			"customer_name": "   ",
			"items":         []itemArg{{ItemID: "1", Quantity: 1}},
		})
		suite.Equal("Error: Customer name must be a non-empty string.", result)
	})

	suite.Run("NoItems", func() {
		result := suite.invoke("place_order", map[string]any{
			"customer_name": "Alice",
			"items":         []itemArg{},
		})
		suite.Equal("Error: No valid items provided in the order.", result)
	})

	suite.Run("NonPositiveQuantity", func() {
		result := suite.invoke("place_order", map[string]any{
			"customer_name": "Alice",
			"items":         []itemArg{{ItemID: "1", Quantity: 0}},
		})
		suite.Equal(
			"Error: Invalid quantity for item ID 1. Quantity must be a positive integer. Got: 0",
			result,
		)
	})

	suite.Run("UnknownMenuItem", func() {
		result := suite.invoke("place_order", map[string]any{
			"customer_name": "Alice",
			"items":         []itemArg{{ItemID: "999", Quantity: 1}},
		})
		suite.Equal(
			"Error: Item ID 999 not found in menu. Please browse the menu for available items.",
			result,
		)
	})
}

func (suite *FacadeIntegrationTestSuite) TestModifyOrder() {
	orderID := suite.placeOrder("Bob", []itemArg{{ItemID: "1", Quantity: 1}})

	result := suite.invoke("modify_order", map[string]any{
		"order_id": orderID,
		"items":    []itemArg{{ItemID: "13", Quantity: 3}},
	})

	suite.Contains(result, fmt.Sprintf("Order %s modified successfully!", orderID))
	suite.Contains(result, "- Beef Burger (ID: 13) (x3): $31.50")
	suite.Contains(result, "Total: $31.50")
	suite.Contains(result, "Status: Modified")
}

func (suite *FacadeIntegrationTestSuite) TestModifyOrderRefusals() {
	suite.Run("OrderAlreadyPreparing", func() {
		orderID := suite.placeOrder("Bob", []itemArg{{ItemID: "1", Quantity: 1}})
		suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Preparing",
		})

		result := suite.invoke("modify_order", map[string]any{
			"order_id": orderID,
			"items":    []itemArg{{ItemID: "13", Quantity: 1}},
		})
		suite.Equal(
			"Error: Cannot modify order. Order status is 'Preparing'. "+
				"Only Pending or Modified orders can be changed.",
			result,
		)
	})

	suite.Run("UnknownNewItem", func() {
		orderID := suite.placeOrder("Bob", []itemArg{{ItemID: "1", Quantity: 1}})

		result := suite.invoke("modify_order", map[string]any{
			"order_id": orderID,
			"items":    []itemArg{{ItemID: "999", Quantity: 1}},
		})
		suite.Equal("Error: New item ID 999 not found in menu.", result)
	})

	suite.Run("OrderNotFound", func() {
		missing := "1e8cb22a-5be3-4ef1-9df6-1f5b8e0d2a41"
		result := suite.invoke("modify_order", map[string]any{
			"order_id": missing,
			"items":    []itemArg{{ItemID: "1", Quantity: 1}},
		})
		suite.Equal(fmt.Sprintf("Error: Order ID %s not found.", missing), result)
	})
}

func (suite *FacadeIntegrationTestSuite) TestCancelOrder() {
	orderID := suite.placeOrder("Carol", []itemArg{{ItemID: "2", Quantity: 1}})

	result := suite.invoke("cancel_order", map[string]any{"order_id": orderID})

	suite.Contains(result, fmt.Sprintf("Order %s cancelled successfully.", orderID))
	suite.Contains(result, "Status: Cancelled")
}

func (suite *FacadeIntegrationTestSuite) TestCancelOrderRefusals() {
	suite.Run("InvalidOrderID", func() {
		result := suite.invoke("cancel_order", map[string]any{"order_id": "not-a-uuid"})
		suite.Equal(
			"Error: Invalid order ID format: not-a-uuid. Please provide a valid order ID.",
			result,
		)
	})

	suite.Run("OrderNotFound", func() {
		missing := "6a0f0f2a-38b7-4f76-9f35-2f6dd2e0c9b7"
		result := suite.invoke("cancel_order", map[string]any{"order_id": missing})
		suite.Equal(fmt.Sprintf("Error: Order ID %s not found.", missing), result)
	})

	suite.Run("OrderAlreadyPreparing", func() {
		orderID := suite.placeOrder("Carol", []itemArg{{ItemID: "2", Quantity: 1}})
		suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Preparing",
		})

		result := suite.invoke("cancel_order", map[string]any{"order_id": orderID})
		suite.Equal(
			"Error: Cannot cancel order. Order status is 'Preparing'. "+
				"Only Pending, Modified, or Confirmed orders can be cancelled.",
			result,
		)
	})
}

func (suite *FacadeIntegrationTestSuite) TestViewOrderHistory() {
	first := suite.placeOrder("Dave", []itemArg{{ItemID: "1", Quantity: 1}})
	second := suite.placeOrder("Dave", []itemArg{{ItemID: "4", Quantity: 2}})

	result := suite.invoke("view_order_history", map[string]any{"customer_name": "dave"})

	suite.Contains(result, first)
	suite.Contains(result, second)
	suite.Contains(result, "- Tiramisu (ID: 4) (x2): $13.98")
	suite.Contains(result, "\n---\n")
}

func (suite *FacadeIntegrationTestSuite) TestViewOrderHistoryEmpty() {
	result := suite.invoke("view_order_history", map[string]any{"customer_name": "Nobody"})
	suite.Equal("No orders found for customer 'Nobody'.", result)
}

func (suite *FacadeIntegrationTestSuite) TestEstimateDeliveryTime() {
	// 3 units pending: 5 base + 2x3 preparation + 15 delivery = 26 minutes.
	orderID := suite.placeOrder("Erin", []itemArg{
		{ItemID: "1", Quantity: 2},
		{ItemID: "15", Quantity: 1},
	})

	result := suite.invoke("estimate_delivery_time", map[string]any{"order_id": orderID})

	suite.Contains(result, fmt.Sprintf("Estimated delivery for order %s (Pending): Around ", orderID))
	suite.Contains(result, "(approx. 26 minutes from now).")
}

func (suite *FacadeIntegrationTestSuite) TestEstimateDeliveryTimeRefusals() {
	suite.Run("CancelledOrder", func() {
		orderID := suite.placeOrder("Erin", []itemArg{{ItemID: "1", Quantity: 1}})
		suite.invoke("cancel_order", map[string]any{"order_id": orderID})

		result := suite.invoke("estimate_delivery_time", map[string]any{"order_id": orderID})
		suite.Equal(
			fmt.Sprintf("Cannot estimate delivery for order %s. Its status is 'Cancelled'.", orderID),
			result,
		)
	})

	suite.Run("OrderNotFound", func() {
		missing := "36e2c0d3-44cf-40fa-8f47-66e8d52adaa5"
		result := suite.invoke("estimate_delivery_time", map[string]any{"order_id": missing})
		suite.Equal(fmt.Sprintf("Error: Order ID %s not found.", missing), result)
	})
}

func (suite *FacadeIntegrationTestSuite) TestUpdateOrderStatus() {
	orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})

	result := suite.invoke("update_order_status", map[string]any{
		"order_id": orderID, "new_status": "Confirmed",
	})

	suite.Contains(result, fmt.Sprintf("Order %s status updated to 'Confirmed'.", orderID))
	suite.Contains(result, "Status: Confirmed")
}

func (suite *FacadeIntegrationTestSuite) TestUpdateOrderStatusRefusals() {
	suite.Run("StatusUnchanged", func() {
		orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})
		suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Confirmed",
		})

		result := suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Confirmed",
		})
		suite.Equal(fmt.Sprintf("Order %s is already in 'Confirmed' status.", orderID), result)
	})

	suite.Run("SkippingPreparation", func() {
		orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})
		suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Confirmed",
		})

		result := suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Ready",
		})
		suite.Equal(
			"Error: Cannot change order status from 'Confirmed' to 'Ready'. "+
				"Allowed next statuses for 'Confirmed': Preparing.",
			result,
		)
	})

	suite.Run("TerminalStatus", func() {
		orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})
		for _, status := range []string{"Preparing", "Ready", "Delivered"} {
			suite.invoke("update_order_status", map[string]any{
				"order_id": orderID, "new_status": status,
			})
		}

		result := suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Confirmed",
		})
		suite.Equal(
			"Error: Cannot change order status from 'Delivered' to 'Confirmed'. "+
				"Allowed next statuses for 'Delivered': None (terminal status).",
			result,
		)
	})

	suite.Run("StatusNotSettableDirectly", func() {
		orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})

		result := suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Pending",
		})
		suite.Equal(
			"Error: Invalid new status 'Pending'. "+
				"Must be one of: Confirmed, Preparing, Ready, Delivered.",
			result,
		)
	})

	suite.Run("UnknownStatus", func() {
		orderID := suite.placeOrder("Frank", []itemArg{{ItemID: "1", Quantity: 1}})

		result := suite.invoke("update_order_status", map[string]any{
			"order_id": orderID, "new_status": "Teleported",
		})
		suite.Equal(
			"Error: Invalid new status 'Teleported'. "+
				"Must be one of: Confirmed, Preparing, Ready, Delivered.",
			result,
		)
	})

	suite.Run("InvalidOrderID", func() {
		result := suite.invoke("update_order_status", map[string]any{
			"order_id": "garbage", "new_status": "Confirmed",
		})
		suite.Equal("Error: Invalid order ID format: garbage.", result)
	})
}

func TestFacadeIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FacadeIntegrationTestSuite))
}
