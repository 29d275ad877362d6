// Package dto defines data transfer objects for the identity HTTP API.
package dto

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// SessionRequest is the profile reported by the external login.
type SessionRequest struct {
	OpenID       string                 `json:"openId" binding:"required"`
	Name         optional.Value[string] `json:"name"`
	Email        optional.Value[string] `json:"email"`
	LoginMethod  optional.Value[string] `json:"loginMethod"`
	Role         optional.Value[string] `json:"role"`
	LastSignedIn optional.Value[string] `json:"lastSignedIn"`
}

// UserResponse は GET /me のレスポンスです。未設定の項目は null で返します。
type UserResponse struct {
	ID           uint      `json:"id"`
	OpenID       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}
