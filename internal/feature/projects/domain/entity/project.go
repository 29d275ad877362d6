// Package entity defines the domain models for the projects feature.
package entity

import (
	"time"

	identityentity "parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/optional"
)

// Status はプロジェクトの進行状態です。
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

// Priority はプロジェクトの優先度です。
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Project is a user-owned unit of work with a status, priority and optional schedule.
type Project struct {
	ID            uint     `gorm:"primaryKey"`
	UserID        uint     `gorm:"not null;index"`
	ProjectName   string   `gorm:"size:255;not null"`
	Description   *string  `gorm:"type:text"`
	Status        Status   `gorm:"size:20;not null;default:planning"`
	Priority      Priority `gorm:"size:20;not null;default:medium"`
	StartDate     *time.Time
	DueDate       *time.Time
	CompletedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// 所有者の削除に連動して消える
	User *identityentity.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ProjectPatch is a partial update. Status and Priority are never null.
type ProjectPatch struct {
	ProjectName   optional.Value[string]
	Description   optional.Value[string]
	Status        optional.Value[Status]
	Priority      optional.Value[Priority]
	StartDate     optional.Value[time.Time]
	DueDate       optional.Value[time.Time]
	CompletedDate optional.Value[time.Time]
}
