package orderrepo

import (
	"context"
	"errors"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The line items are
// replaced wholesale so the stored rows always mirror the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("CustomerName", "Total", "Status", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
		return errs.NewStorageError("replace order items", err)
	}
	if err := db.Create(&dto.Items).Error; err != nil {
		return errs.NewStorageError("replace order items", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID and locks its row until the
// surrounding transaction ends, serializing concurrent mutations of the
// same order.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	if err := r.loadItems(ctx, &dto); err != nil {
		return nil, err
	}

	names, err := r.menuNames(ctx, []OrderDTO{dto})
	if err != nil {
		return nil, err
	}

	return toDomain(dto, names)
}

// GetByCustomer retrieves all orders placed under the given customer name,
// matched case-insensitively, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerName string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("LOWER(customer_name) = LOWER(?)", customerName).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("get orders by customer", err)
	}

	for i := range dtos {
		if err = r.loadItems(ctx, &dtos[i]); err != nil {
			return nil, err
		}
	}

	names, err := r.menuNames(ctx, dtos)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto, names)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadItems(ctx context.Context, dto *OrderDTO) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("id").
		Find(&dto.Items).Error
	if err != nil {
		return errs.NewStorageError("load order items", err)
	}
	return nil
}

// menuNames resolves the display names of every menu item referenced by the
// given orders in one query.
func (r *GormOrderRepository) menuNames(ctx context.Context, dtos []OrderDTO) (map[string]string, error) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, dto := range dtos {
		for _, item := range dto.Items {
			if !seen[item.MenuItemID] {
				seen[item.MenuItemID] = true
				ids = append(ids, item.MenuItemID)
			}
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT id, name FROM menu WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, errs.NewStorageError("resolve menu item names", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(ids))
	for rows.Next() {
		var id, name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, errs.NewStorageError("resolve menu item names", err)
		}
		names[id] = name
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("resolve menu item names", err)
	}

	return names, nil
}
