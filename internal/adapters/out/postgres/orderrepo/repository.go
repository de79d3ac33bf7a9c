package orderrepo

import (
	"context"
	"errors"

	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and records the store-assigned identity on the
// aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Explicit column list so fields changed to their zero value still persist.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select(
			"PresetID",
			"PrimaryOutsideConnections",
			"SecondaryOutsideConnections",
			"InsideConnections",
			"Vlans",
			"DHCP",
			"SiteSecondaryEmail",
			"SitePhoneNumber",
			"SiteContactName",
			"AdditionalInformation",
			"Quantity",
			"PriorityLevel",
			"Status",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its identity.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByEmail retrieves the order history for a site primary contact,
// newest first.
func (r *GormOrderRepository) GetAllByEmail(ctx context.Context, email string) ([]*order.Order, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("placed_at DESC").
		Find(&dtos, "site_primary_email = ?", email).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByStatus retrieves all orders whose mirrored status matches.
func (r *GormOrderRepository) GetAllByStatus(
	ctx context.Context,
	status tracking.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
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
