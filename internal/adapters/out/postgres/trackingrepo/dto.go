// Package trackingrepo provides data transfer objects and mapping functions
// for tracking record persistence.
package trackingrepo

import (
	"time"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/tracking"
)

// TrackingDTO represents the database structure for persisting tracking
// records. Both keys carry unique indexes: one order can have at most one
// tracking record, and one reference number resolves to at most one record.
type TrackingDTO struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	RouterOrderID   uint64 `gorm:"uniqueIndex"`
	ReferenceNumber string `gorm:"type:varchar(11);uniqueIndex"`
	Status          string `gorm:"type:varchar(20)"`
	CanModify       bool
	CanCancel       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for tracking records.
func (TrackingDTO) TableName() string {
	return "order_trackings"
}

// fromDomain converts a tracking aggregate to its database representation.
func fromDomain(aggregate *tracking.Tracking) TrackingDTO {
	return TrackingDTO{
		ID:              aggregate.ID(),
		RouterOrderID:   aggregate.OrderID(),
		ReferenceNumber: aggregate.Reference().String(),
		Status:          aggregate.Status().String(),
		CanModify:       aggregate.CanModify(),
		CanCancel:       aggregate.CanCancel(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to a tracking aggregate using
// RestoreTracking, which re-checks the permission invariant.
func toDomain(dto TrackingDTO) (*tracking.Tracking, error) {
	reference, err := kernel.ReferenceNumberFromString(dto.ReferenceNumber)
	if err != nil {
		return nil, err
	}

	status, err := tracking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreTracking(
		dto.ID,
		dto.RouterOrderID,
		reference,
		status,
		dto.CanModify,
		dto.CanCancel,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
