// Package dto defines data transfer objects for the shipments HTTP API.
package dto

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// CreateShipmentRequest は発送計画作成リクエストを表します。
type CreateShipmentRequest struct {
	ShipmentName   string  `json:"shipmentName" binding:"required"`
	Origin         *string `json:"origin"`
	Destination    *string `json:"destination"`
	Weight         *string `json:"weight"`
	Dimensions     *string `json:"dimensions"`
	ShippingMethod *string `json:"shippingMethod"`
	EstimatedCost  *string `json:"estimatedCost"`
	Notes          *string `json:"notes"`
}

// UpdateShipmentRequest は部分更新リクエストです。null を送ると値を消去します。
type UpdateShipmentRequest struct {
	ShipmentName   optional.Value[string] `json:"shipmentName"`
	Origin         optional.Value[string] `json:"origin"`
	Destination    optional.Value[string] `json:"destination"`
	Weight         optional.Value[string] `json:"weight"`
	Dimensions     optional.Value[string] `json:"dimensions"`
	ShippingMethod optional.Value[string] `json:"shippingMethod"`
	EstimatedCost  optional.Value[string] `json:"estimatedCost"`
	Notes          optional.Value[string] `json:"notes"`
	Status         optional.Value[string] `json:"status"`
}

// ShipmentResponse represents a shipment in API responses.
type ShipmentResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	ShipmentName   string    `json:"shipmentName"`
	Origin         *string   `json:"origin"`
	Destination    *string   `json:"destination"`
	Weight         *string   `json:"weight"`
	Dimensions     *string   `json:"dimensions"`
	ShippingMethod *string   `json:"shippingMethod"`
	EstimatedCost  *string   `json:"estimatedCost"`
	Notes          *string   `json:"notes"`
	Status         *string   `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
