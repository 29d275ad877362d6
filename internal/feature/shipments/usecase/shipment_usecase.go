// Package usecase implements the business logic for the shipments feature.
package usecase

import (
	"context"
	"strings"

	"parcel_backend/internal/feature/shipments/domain/entity"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/optional"
)

// DefaultStatus is stored when a shipment is created.
const DefaultStatus = "draft"

// ShipmentRepository abstracts owner-scoped shipment persistence.
type ShipmentRepository interface {
	List(ctx context.Context, ownerID uint) ([]entity.Shipment, error)
	Create(ctx context.Context, ownerID uint, s *entity.Shipment) error
	Update(ctx context.Context, id, ownerID uint, patch entity.ShipmentPatch) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// CreateShipmentInput carries a new shipment. Only the name is required.
type CreateShipmentInput struct {
	ShipmentName   string
	Origin         *string
	Destination    *string
	Weight         *string
	Dimensions     *string
	ShippingMethod *string
	EstimatedCost  *string
	Notes          *string
}

// UpdateShipmentInput carries a partial update. Only set fields are written.
type UpdateShipmentInput struct {
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

// ShipmentUsecase provides business logic for shipment operations.
type ShipmentUsecase struct {
	repo ShipmentRepository
}

// NewShipmentUsecase creates a new ShipmentUsecase with the given repository.
func NewShipmentUsecase(r ShipmentRepository) *ShipmentUsecase {
	return &ShipmentUsecase{repo: r}
}

// List returns the caller's shipments in creation order.
func (u *ShipmentUsecase) List(ctx context.Context, ownerID uint) ([]entity.Shipment, error) {
	return u.repo.List(ctx, ownerID)
}

// Create stores a new shipment in the draft state.
func (u *ShipmentUsecase) Create(ctx context.Context, ownerID uint, in CreateShipmentInput) error {
	if strings.TrimSpace(in.ShipmentName) == "" {
		return apperr.Validation("shipmentName is required")
	}
	st := DefaultStatus
	s := &entity.Shipment{
		ShipmentName:   in.ShipmentName,
		Origin:         in.Origin,
		Destination:    in.Destination,
		Weight:         in.Weight,
		Dimensions:     in.Dimensions,
		ShippingMethod: in.ShippingMethod,
		EstimatedCost:  in.EstimatedCost,
		Notes:          in.Notes,
		Status:         &st,
	}
	return u.repo.Create(ctx, ownerID, s)
}

// Update applies the supplied fields to the shipment id owned by ownerID.
// The name may change but never to null or blank.
func (u *ShipmentUsecase) Update(ctx context.Context, id, ownerID uint, in UpdateShipmentInput) error {
	if in.ShipmentName.IsNull() {
		return apperr.Validation("shipmentName cannot be null")
	}
	if v, ok := in.ShipmentName.Get(); ok && strings.TrimSpace(v) == "" {
		return apperr.Validation("shipmentName cannot be empty")
	}
	return u.repo.Update(ctx, id, ownerID, entity.ShipmentPatch{
		ShipmentName:   in.ShipmentName,
		Origin:         in.Origin,
		Destination:    in.Destination,
		Weight:         in.Weight,
		Dimensions:     in.Dimensions,
		ShippingMethod: in.ShippingMethod,
		EstimatedCost:  in.EstimatedCost,
		Notes:          in.Notes,
		Status:         in.Status,
	})
}

// Delete removes the shipment id if ownerID owns it.
func (u *ShipmentUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}
