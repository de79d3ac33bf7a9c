package trackingrepo

import (
	"context"
	"errors"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/tracking"
	"routerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracking record and records the store-assigned identity on
// the aggregate. The unique indexes on the order id and reference number make
// a second record for the same order fail here.
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracking) error {
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

// Update saves an existing tracking record to the database.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TrackingDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "CanModify", "CanCancel", "UpdatedAt").
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

// GetByReference retrieves a tracking record by its public reference number.
func (r *GormTrackingRepository) GetByReference(
	ctx context.Context,
	reference kernel.ReferenceNumber,
) (*tracking.Tracking, error) {
	if err := reference.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	err := r.db.WithContext(ctx).First(&dto, "reference_number = ?", reference.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", reference.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the tracking record shadowing the given order.
func (r *GormTrackingRepository) GetByOrderID(
	ctx context.Context,
	orderID uint64,
) (*tracking.Tracking, error) {
	if orderID == 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto TrackingDTO
	err := r.db.WithContext(ctx).First(&dto, "router_order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
