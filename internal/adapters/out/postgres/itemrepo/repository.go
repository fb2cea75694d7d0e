package itemrepo

import (
	"context"

	"fabrication/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM line item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add saves a new line item and returns it rehydrated with the
// database-assigned id.
func (r *GormItemRepository) Add(ctx context.Context, item *order.Item) (*order.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByOrderID removes every line item belonging to the given order.
// Deleting for an order without items is not an error.
func (r *GormItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&ItemDTO{}).Error
}

// GetAllByOrderID retrieves the line items of an order sorted by id.
func (r *GormItemRepository) GetAllByOrderID(ctx context.Context, orderID int64) ([]*order.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
