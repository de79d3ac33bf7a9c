// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"routerorders/internal/core/domain/model/kernel"
	"routerorders/internal/core/domain/model/order"
	"routerorders/internal/core/domain/model/tracking"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is store-assigned; the reference number carries a unique
// index so two orders can never share a public reference.
type OrderDTO struct {
	ID                          uint64 `gorm:"primaryKey;autoIncrement"`
	ReferenceNumber             string `gorm:"type:varchar(11);uniqueIndex"`
	CustomerID                  uint64 `gorm:"index"`
	RouterID                    uint64
	PresetID                    *uint64
	PrimaryOutsideConnections   string
	SecondaryOutsideConnections string
	InsideConnections           string
	Vlans                       string `gorm:"type:varchar(16)"`
	DHCP                        bool   `gorm:"column:dhcp"`
	SiteName                    string `gorm:"type:varchar(100)"`
	SiteAddress                 string `gorm:"type:varchar(200)"`
	SitePostcode                string `gorm:"type:varchar(20)"`
	SitePrimaryEmail            string `gorm:"type:varchar(100);index"`
	SiteSecondaryEmail          string `gorm:"type:varchar(100)"`
	SitePhoneNumber             string `gorm:"type:varchar(20)"`
	SiteContactName             string `gorm:"type:varchar(100)"`
	Quantity                    int
	PriorityLevel               string `gorm:"type:varchar(20)"`
	AdditionalInformation       string `gorm:"type:varchar(500)"`
	PlacedAt                    time.Time
	Status                      string `gorm:"type:varchar(20);index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "router_orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	site := details.Site

	return OrderDTO{
		ID:                          aggregate.ID(),
		ReferenceNumber:             aggregate.Reference().String(),
		CustomerID:                  details.CustomerID,
		RouterID:                    details.RouterID,
		PresetID:                    details.PresetID,
		PrimaryOutsideConnections:   details.PrimaryOutsideConnections,
		SecondaryOutsideConnections: details.SecondaryOutsideConnections,
		InsideConnections:           details.InsideConnections,
		Vlans:                       details.Vlans.String(),
		DHCP:                        details.DHCP,
		SiteName:                    site.Name(),
		SiteAddress:                 site.Address(),
		SitePostcode:                site.Postcode(),
		SitePrimaryEmail:            site.PrimaryEmail(),
		SiteSecondaryEmail:          site.SecondaryEmail(),
		SitePhoneNumber:             site.PhoneNumber(),
		SiteContactName:             site.ContactName(),
		Quantity:                    details.Quantity,
		PriorityLevel:               details.PriorityLevel,
		AdditionalInformation:       details.AdditionalInformation,
		PlacedAt:                    aggregate.PlacedAt(),
		Status:                      aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	reference, err := kernel.ReferenceNumberFromString(dto.ReferenceNumber)
	if err != nil {
		return nil, err
	}

	status, err := tracking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	vlans, err := order.ParseVlanType(dto.Vlans)
	if err != nil {
		return nil, err
	}

	site, err := order.NewSite(
		dto.SiteName,
		dto.SiteAddress,
		dto.SitePostcode,
		dto.SitePrimaryEmail,
		dto.SiteSecondaryEmail,
		dto.SitePhoneNumber,
		dto.SiteContactName,
	)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerID:                  dto.CustomerID,
		RouterID:                    dto.RouterID,
		PresetID:                    dto.PresetID,
		PrimaryOutsideConnections:   dto.PrimaryOutsideConnections,
		SecondaryOutsideConnections: dto.SecondaryOutsideConnections,
		InsideConnections:           dto.InsideConnections,
		Vlans:                       vlans,
		DHCP:                        dto.DHCP,
		Site:                        site,
		Quantity:                    dto.Quantity,
		PriorityLevel:               dto.PriorityLevel,
		AdditionalInformation:       dto.AdditionalInformation,
	}

	return order.RestoreOrder(dto.ID, reference, details, dto.PlacedAt, status)
}
