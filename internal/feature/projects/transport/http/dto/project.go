// Package dto defines data transfer objects for the projects HTTP API.
package dto

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// CreateProjectRequest はプロジェクト作成リクエストを表します。name は必須です。
type CreateProjectRequest struct {
	ProjectName   string  `json:"projectName" binding:"required"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	Priority      *string `json:"priority"`
	StartDate     *string `json:"startDate"`
	DueDate       *string `json:"dueDate"`
	CompletedDate *string `json:"completedDate"`
}

// UpdateProjectRequest は部分更新リクエストです。キーが省略された項目は変更しません。
type UpdateProjectRequest struct {
	ProjectName   optional.Value[string] `json:"projectName"`
	Description   optional.Value[string] `json:"description"`
	Status        optional.Value[string] `json:"status"`
	Priority      optional.Value[string] `json:"priority"`
	StartDate     optional.Value[string] `json:"startDate"`
	DueDate       optional.Value[string] `json:"dueDate"`
	CompletedDate optional.Value[string] `json:"completedDate"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"userId"`
	ProjectName   string     `json:"projectName"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	StartDate     *time.Time `json:"startDate"`
	DueDate       *time.Time `json:"dueDate"`
	CompletedDate *time.Time `json:"completedDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
