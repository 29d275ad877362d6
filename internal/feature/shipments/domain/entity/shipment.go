// Package entity defines the domain models for the shipments feature.
package entity

import (
	"time"

	identityentity "parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/optional"
)

// Shipment is a planned consignment. Measurements and cost are free text.
type Shipment struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index"`
	ShipmentName   string  `gorm:"size:255;not null"`
	Origin         *string `gorm:"size:255"`
	Destination    *string `gorm:"size:255"`
	Weight         *string `gorm:"size:50"`
	Dimensions     *string `gorm:"size:100"`
	ShippingMethod *string `gorm:"size:100"`
	EstimatedCost  *string `gorm:"size:50"`
	Notes          *string `gorm:"type:text"`
	Status         *string `gorm:"size:50"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// 所有者の削除に連動して消える
	User *identityentity.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ShipmentPatch lists the fields an update may touch. Unset fields are left alone.
type ShipmentPatch struct {
	ShipmentName   optional.Value[string]
	Origin         optional.Value[string]
	Destination    optional.Value[string]
	Weight         optional.Value[string]
	Dimensions     optional.Value[string]
	ShippingMethod optional.Value[string]
	EstimatedCost  optional.Value[string]
	Notes          optional.Value[string]
	Status         optional.Value[string]
}
