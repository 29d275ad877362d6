// Package usecase implements the business logic for the weeklyplans feature.
package usecase

import (
	"context"
	"strings"

	"parcel_backend/internal/feature/weeklyplans/domain/entity"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/dateparse"
	"parcel_backend/internal/shared/optional"
)

// WeeklyPlanRepository lists plans ordered by week start.
type WeeklyPlanRepository interface {
	List(ctx context.Context, ownerID uint) ([]entity.WeeklyPlan, error)
	Create(ctx context.Context, ownerID uint, p *entity.WeeklyPlan) error
	Update(ctx context.Context, id, ownerID uint, patch entity.WeeklyPlanPatch) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// CreateWeeklyPlanInput carries a new plan. WeekStartDate is an ISO-like date.
type CreateWeeklyPlanInput struct {
	WeekStartDate string
	Title         string
	Description   *string
	Tasks         *string
	Completed     *bool
}

// UpdateWeeklyPlanInput carries a partial update. Only set fields are written.
type UpdateWeeklyPlanInput struct {
	WeekStartDate optional.Value[string]
	Title         optional.Value[string]
	Description   optional.Value[string]
	Tasks         optional.Value[string]
	Completed     optional.Value[bool]
}

// WeeklyPlanUsecase provides business logic for weekly plans.
type WeeklyPlanUsecase struct {
	repo WeeklyPlanRepository
}

// NewWeeklyPlanUsecase creates a new WeeklyPlanUsecase with the given repository.
func NewWeeklyPlanUsecase(r WeeklyPlanRepository) *WeeklyPlanUsecase {
	return &WeeklyPlanUsecase{repo: r}
}

// List returns the caller's plans ordered by week start.
func (u *WeeklyPlanUsecase) List(ctx context.Context, ownerID uint) ([]entity.WeeklyPlan, error) {
	return u.repo.List(ctx, ownerID)
}

// Create stores a new, not yet completed plan for ownerID.
func (u *WeeklyPlanUsecase) Create(ctx context.Context, ownerID uint, in CreateWeeklyPlanInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Validation("title is required")
	}
	if strings.TrimSpace(in.WeekStartDate) == "" {
		return apperr.Validation("weekStartDate is required")
	}
	start, err := dateparse.Parse(in.WeekStartDate)
	if err != nil {
		return apperr.Validation("weekStartDate: %v", err)
	}

	p := &entity.WeeklyPlan{
		WeekStartDate: start,
		Title:         in.Title,
		Description:   in.Description,
		Tasks:         in.Tasks,
	}
	if in.Completed != nil {
		p.Completed = *in.Completed
	}
	return u.repo.Create(ctx, ownerID, p)
}

// Update applies the supplied fields to the plan id owned by ownerID.
func (u *WeeklyPlanUsecase) Update(ctx context.Context, id, ownerID uint, in UpdateWeeklyPlanInput) error {
	if in.Title.IsNull() {
		return apperr.Validation("title cannot be null")
	}
	if v, ok := in.Title.Get(); ok && strings.TrimSpace(v) == "" {
		return apperr.Validation("title cannot be empty")
	}
	if in.WeekStartDate.IsNull() {
		return apperr.Validation("weekStartDate cannot be null")
	}
	if in.Completed.IsNull() {
		return apperr.Validation("completed cannot be null")
	}
	start, err := optional.Map(in.WeekStartDate, dateparse.Parse)
	if err != nil {
		return apperr.Validation("weekStartDate: %v", err)
	}

	return u.repo.Update(ctx, id, ownerID, entity.WeeklyPlanPatch{
		WeekStartDate: start,
		Title:         in.Title,
		Description:   in.Description,
		Tasks:         in.Tasks,
		Completed:     in.Completed,
	})
}

// Delete removes the plan id if ownerID owns it.
func (u *WeeklyPlanUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}
