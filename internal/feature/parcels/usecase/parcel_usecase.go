// Package usecase implements the business logic for the parcels feature.
package usecase

import (
	"context"
	"strings"

	"parcel_backend/internal/feature/parcels/domain/entity"
	"parcel_backend/internal/feature/parcels/domain/status"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/dateparse"
	"parcel_backend/internal/shared/optional"
)

// DefaultStatusDescription is stored when a parcel is created without one.
const DefaultStatusDescription = "Pending"

// ParcelRepository abstracts owner-scoped parcel persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ParcelRepository interface {
	List(ctx context.Context, ownerID uint) ([]entity.Parcel, error)
	Create(ctx context.Context, ownerID uint, p *entity.Parcel) error
	Update(ctx context.Context, id, ownerID uint, patch entity.ParcelPatch) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// CreateParcelInput carries a new parcel. Dates are ISO-like strings.
type CreateParcelInput struct {
	TrackingNumber    string
	ParcelName        *string
	Destination       *string
	DateSent          *string
	Note              *string
	Status            *string
	StatusDescription *string
	StatusDate        *string
	Location          *string
}

// UpdateParcelInput carries a partial update. Only set fields are written.
type UpdateParcelInput struct {
	TrackingNumber    optional.Value[string]
	ParcelName        optional.Value[string]
	Destination       optional.Value[string]
	DateSent          optional.Value[string]
	Note              optional.Value[string]
	Status            optional.Value[string]
	StatusDescription optional.Value[string]
	StatusDate        optional.Value[string]
	Location          optional.Value[string]
}

// ParcelUsecase provides business logic for parcel operations.
type ParcelUsecase struct {
	repo ParcelRepository
}

// NewParcelUsecase creates a new ParcelUsecase with the given repository.
func NewParcelUsecase(r ParcelRepository) *ParcelUsecase {
	return &ParcelUsecase{repo: r}
}

// List returns the caller's parcels in creation order.
func (u *ParcelUsecase) List(ctx context.Context, ownerID uint) ([]entity.Parcel, error) {
	return u.repo.List(ctx, ownerID)
}

// Summary counts the caller's parcels per delivery category.
func (u *ParcelUsecase) Summary(ctx context.Context, ownerID uint) (status.Summary, error) {
	parcels, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return status.Summary{}, err
	}
	return status.Summarize(parcels), nil
}

// Create validates in and stores a new parcel for ownerID.
func (u *ParcelUsecase) Create(ctx context.Context, ownerID uint, in CreateParcelInput) error {
	if strings.TrimSpace(in.TrackingNumber) == "" {
		return apperr.Validation("trackingNumber is required")
	}
	dateSent, err := dateparse.ParsePtr(in.DateSent)
	if err != nil {
		return apperr.Validation("dateSent: %v", err)
	}
	statusDate, err := dateparse.ParsePtr(in.StatusDate)
	if err != nil {
		return apperr.Validation("statusDate: %v", err)
	}

	description := in.StatusDescription
	if description == nil {
		d := DefaultStatusDescription
		description = &d
	}

	p := &entity.Parcel{
		TrackingNumber:    in.TrackingNumber,
		ParcelName:        in.ParcelName,
		Destination:       in.Destination,
		DateSent:          dateSent,
		Note:              in.Note,
		Status:            in.Status,
		StatusDescription: description,
		StatusDate:        statusDate,
		Location:          in.Location,
	}
	return u.repo.Create(ctx, ownerID, p)
}

// Update applies the supplied fields to the parcel id owned by ownerID.
func (u *ParcelUsecase) Update(ctx context.Context, id, ownerID uint, in UpdateParcelInput) error {
	if in.TrackingNumber.IsNull() {
		return apperr.Validation("trackingNumber cannot be null")
	}
	if v, ok := in.TrackingNumber.Get(); ok && strings.TrimSpace(v) == "" {
		return apperr.Validation("trackingNumber cannot be empty")
	}
	dateSent, err := optional.Map(in.DateSent, dateparse.Parse)
	if err != nil {
		return apperr.Validation("dateSent: %v", err)
	}
	statusDate, err := optional.Map(in.StatusDate, dateparse.Parse)
	if err != nil {
		return apperr.Validation("statusDate: %v", err)
	}

	patch := entity.ParcelPatch{
		TrackingNumber:    in.TrackingNumber,
		ParcelName:        in.ParcelName,
		Destination:       in.Destination,
		DateSent:          dateSent,
		Note:              in.Note,
		Status:            in.Status,
		StatusDescription: in.StatusDescription,
		StatusDate:        statusDate,
		Location:          in.Location,
	}
	return u.repo.Update(ctx, id, ownerID, patch)
}

// Delete removes the parcel id if ownerID owns it.
func (u *ParcelUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}
