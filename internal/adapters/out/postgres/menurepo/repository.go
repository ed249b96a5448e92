package menurepo

import (
	"context"
	"errors"

	"restobot/internal/core/domain/model/menu"
	"restobot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuCatalog implements MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

// NewGormMenuCatalog creates a new GORM menu catalog.
func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// Lookup retrieves a menu item by its identifier.
func (c *GormMenuCatalog) Lookup(ctx context.Context, itemID string) (menu.Item, error) {
	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menu item", itemID)
		}
		return menu.Item{}, errs.NewStorageError("lookup menu item", err)
	}

	return toDomain(dto)
}

// Categories returns the distinct menu categories in alphabetical order.
func (c *GormMenuCatalog) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := c.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errs.NewStorageError("list menu categories", err)
	}

	return categories, nil
}

// ItemsInCategory returns all items of the given category, matched
// case-insensitively. An unknown category yields an empty slice.
func (c *GormMenuCatalog) ItemsInCategory(ctx context.Context, category string) ([]menu.Item, error) {
	var dtos []MenuItemDTO
	err := c.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", category).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list menu items", err)
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Seed fills the menu table with the default catalog when it is empty.
// Idempotent: an already populated menu is left untouched.
func (c *GormMenuCatalog) Seed(ctx context.Context) error {
	var count int64
	if err := c.db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&count).Error; err != nil {
		return errs.NewStorageError("count menu items", err)
	}
	if count > 0 {
		return nil
	}

	dtos := make([]MenuItemDTO, 0)
	for _, item := range menu.DefaultCatalog() {
		dtos = append(dtos, fromDomain(item))
	}

	if err := c.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageError("seed menu", err)
	}

	return nil
}
