// Package dto defines data transfer objects for the weekly plans HTTP API.
package dto

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// CreateWeeklyPlanRequest は週間計画作成リクエストを表します。
type CreateWeeklyPlanRequest struct {
	WeekStartDate string  `json:"weekStartDate" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	Tasks         *string `json:"tasks"`
	Completed     *bool   `json:"completed"`
}

// UpdateWeeklyPlanRequest は部分更新リクエストです。
type UpdateWeeklyPlanRequest struct {
	WeekStartDate optional.Value[string] `json:"weekStartDate"`
	Title         optional.Value[string] `json:"title"`
	Description   optional.Value[string] `json:"description"`
	Tasks         optional.Value[string] `json:"tasks"`
	Completed     optional.Value[bool]   `json:"completed"`
}

// WeeklyPlanResponse represents a weekly plan in API responses.
type WeeklyPlanResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	WeekStartDate time.Time `json:"weekStartDate"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Tasks         *string   `json:"tasks"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
