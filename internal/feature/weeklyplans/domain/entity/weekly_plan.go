// Package entity defines the domain models for the weeklyplans feature.
package entity

import (
	"time"

	identityentity "parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/optional"
)

// WeeklyPlan groups tasks for the week starting at WeekStartDate.
type WeeklyPlan struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	WeekStartDate time.Time `gorm:"not null"`
	Title         string    `gorm:"size:255;not null"`
	Description   *string   `gorm:"type:text"`
	Tasks         *string   `gorm:"type:text"`
	Completed     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// 所有者の削除に連動して消える
	User *identityentity.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (WeeklyPlan) TableName() string { return "weekly_plans" }

// WeeklyPlanPatch lists the fields an update may touch.
type WeeklyPlanPatch struct {
	WeekStartDate optional.Value[time.Time]
	Title         optional.Value[string]
	Description   optional.Value[string]
	Tasks         optional.Value[string]
	Completed     optional.Value[bool]
}
