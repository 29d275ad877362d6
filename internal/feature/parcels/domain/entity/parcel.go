// Package entity defines the domain models for the parcels feature.
package entity

import (
	"time"

	identityentity "parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/optional"
)

// Parcel is a tracked package owned by exactly one user. The status fields
// are carrier-reported and may also be written by the owner.
type Parcel struct {
	ID                uint       `gorm:"primaryKey"`
	UserID            uint       `gorm:"not null;index"`
	TrackingNumber    string     `gorm:"size:255;not null"`
	ParcelName        *string    `gorm:"size:255"`
	Destination       *string    `gorm:"size:255"`
	DateSent          *time.Time
	Note              *string    `gorm:"type:text"`
	Status            *string    `gorm:"size:50"`
	StatusDescription *string    `gorm:"type:text"`
	StatusDate        *time.Time
	Location          *string    `gorm:"size:255"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// 所有者の削除に連動して消える
	User *identityentity.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ParcelPatch lists the columns an update may touch. Unset fields are left alone.
type ParcelPatch struct {
	TrackingNumber    optional.Value[string]
	ParcelName        optional.Value[string]
	Destination       optional.Value[string]
	DateSent          optional.Value[time.Time]
	Note              optional.Value[string]
	Status            optional.Value[string]
	StatusDescription optional.Value[string]
	StatusDate        optional.Value[time.Time]
	Location          optional.Value[string]
}
