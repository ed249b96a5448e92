package queries

import (
	"context"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BrowseMenuQueryHandler reads the menu from the database. Without a
// category it lists the distinct categories; with one it lists that
// category's items at their current prices.
type BrowseMenuQueryHandler struct {
	db *gorm.DB
}

// NewBrowseMenuQueryHandler creates a handler for menu browsing.
// Requires a GORM database connection for query execution.
func NewBrowseMenuQueryHandler(db *gorm.DB) BrowseMenuQueryHandler {
	return BrowseMenuQueryHandler{db: db}
}

// Handle executes the browse query. Category matching is case-insensitive.
// An unknown category is not an error: the response carries an empty item
// list together with the available categories.
func (h BrowseMenuQueryHandler) Handle(
	ctx context.Context,
	query BrowseMenuQuery,
) (BrowseMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return BrowseMenuQueryResponse{}, err
	}

	if !query.HasCategory() {
		categories, err := h.categories(ctx)
		if err != nil {
			return BrowseMenuQueryResponse{}, err
		}
		return BrowseMenuQueryResponse{Categories: categories}, nil
	}

	items, err := h.itemsInCategory(ctx, query.Category())
	if err != nil {
		return BrowseMenuQueryResponse{}, err
	}

	if len(items) == 0 {
		categories, err := h.categories(ctx)
		if err != nil {
			return BrowseMenuQueryResponse{}, err
		}
		return BrowseMenuQueryResponse{Categories: categories, Items: items}, nil
	}

	return BrowseMenuQueryResponse{Items: items}, nil
}

func (h BrowseMenuQueryHandler) categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM menu
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list menu categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, errs.NewStorageError("scan menu category", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list menu categories", err)
	}

	return categories, nil
}

func (h BrowseMenuQueryHandler) itemsInCategory(ctx context.Context, category string) ([]MenuItemResponse, error) {
	items := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, category, price, description
		FROM menu
		WHERE LOWER(category) = LOWER(?)
		ORDER BY name
	`, category).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list menu items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item MenuItemResponse
		var price decimal.Decimal

		if err = rows.Scan(&item.ID, &item.Name, &item.Category, &price, &item.Description); err != nil {
			return nil, errs.NewStorageError("scan menu item", err)
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		item.Price = money
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list menu items", err)
	}

	return items, nil
}
