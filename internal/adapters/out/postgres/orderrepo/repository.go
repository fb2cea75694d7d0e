package orderrepo

import (
	"context"
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

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

// Add saves a new order and returns the aggregate rehydrated with the
// database-assigned id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.OrderUUID(), persisted)
	return persisted, nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.OrderUUID(), aggregate)
	return nil
}

// Get retrieves an order by its numeric id.
//
// The row is locked with FOR UPDATE. Transition handlers read, check, and
// write the status inside one transaction; the lock serializes concurrent
// transitions on the same order so the second one re-reads the committed
// status and fails its precondition instead of overwriting the first.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order sorted by id.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
