// Package dto defines data transfer objects for the parcels HTTP API.
package dto

import (
	"time"

	"parcel_backend/internal/shared/optional"
)

// CreateParcelRequest is the body of POST /parcels.
type CreateParcelRequest struct {
	TrackingNumber    string  `json:"trackingNumber" binding:"required"`
	ParcelName        *string `json:"parcelName"`
	Destination       *string `json:"destination"`
	DateSent          *string `json:"dateSent"`
	Note              *string `json:"note"`
	Status            *string `json:"status"`
	StatusDescription *string `json:"statusDescription"`
	StatusDate        *string `json:"statusDate"`
	Location          *string `json:"location"`
}

// UpdateParcelRequest is the body of PATCH /parcels/:id. Absent keys are not written.
type UpdateParcelRequest struct {
	TrackingNumber    optional.Value[string] `json:"trackingNumber"`
	ParcelName        optional.Value[string] `json:"parcelName"`
	Destination       optional.Value[string] `json:"destination"`
	DateSent          optional.Value[string] `json:"dateSent"`
	Note              optional.Value[string] `json:"note"`
	Status            optional.Value[string] `json:"status"`
	StatusDescription optional.Value[string] `json:"statusDescription"`
	StatusDate        optional.Value[string] `json:"statusDate"`
	Location          optional.Value[string] `json:"location"`
}

// ParcelResponse is one item of GET /parcels. Category is derived, not stored.
type ParcelResponse struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"userId"`
	TrackingNumber    string     `json:"trackingNumber"`
	ParcelName        *string    `json:"parcelName"`
	Destination       *string    `json:"destination"`
	DateSent          *time.Time `json:"dateSent"`
	Note              *string    `json:"note"`
	Status            *string    `json:"status"`
	StatusDescription *string    `json:"statusDescription"`
	StatusDate        *time.Time `json:"statusDate"`
	Location          *string    `json:"location"`
	Category          string     `json:"category"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// SummaryResponse is the body of GET /parcels/summary.
type SummaryResponse struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Customs   int `json:"customs"`
	InTransit int `json:"inTransit"`
	Unknown   int `json:"unknown"`
}
