// Package usecase implements the business logic for the projects feature.
package usecase

import (
	"context"
	"strings"
	"time"

	"parcel_backend/internal/feature/projects/domain/entity"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/dateparse"
	"parcel_backend/internal/shared/optional"
)

// ProjectRepository abstracts owner-scoped project persistence.
type ProjectRepository interface {
	List(ctx context.Context, ownerID uint) ([]entity.Project, error)
	Create(ctx context.Context, ownerID uint, p *entity.Project) error
	Update(ctx context.Context, id, ownerID uint, patch entity.ProjectPatch) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// CreateProjectInput carries a new project. Status and priority fall back to
// planning and medium; dates are ISO-like strings.
type CreateProjectInput struct {
	ProjectName   string
	Description   *string
	Status        *string
	Priority      *string
	StartDate     *string
	DueDate       *string
	CompletedDate *string
}

// UpdateProjectInput carries a partial update. Only set fields are written.
type UpdateProjectInput struct {
	ProjectName   optional.Value[string]
	Description   optional.Value[string]
	Status        optional.Value[string]
	Priority      optional.Value[string]
	StartDate     optional.Value[string]
	DueDate       optional.Value[string]
	CompletedDate optional.Value[string]
}

// ProjectUsecase provides business logic for project operations.
type ProjectUsecase struct {
	repo ProjectRepository
}

// NewProjectUsecase creates a new ProjectUsecase with the given repository.
func NewProjectUsecase(r ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: r}
}

// List returns the caller's projects in creation order.
func (u *ProjectUsecase) List(ctx context.Context, ownerID uint) ([]entity.Project, error) {
	return u.repo.List(ctx, ownerID)
}

// Create stores a new project. Status defaults to planning and priority to medium.
func (u *ProjectUsecase) Create(ctx context.Context, ownerID uint, in CreateProjectInput) error {
	if strings.TrimSpace(in.ProjectName) == "" {
		return apperr.Validation("projectName is required")
	}
	st := entity.StatusPlanning
	if in.Status != nil {
		var err error
		if st, err = parseStatus(*in.Status); err != nil {
			return err
		}
	}
	pr := entity.PriorityMedium
	if in.Priority != nil {
		var err error
		if pr, err = parsePriority(*in.Priority); err != nil {
			return err
		}
	}
	dates, err := parseDates(in.StartDate, in.DueDate, in.CompletedDate)
	if err != nil {
		return err
	}

	return u.repo.Create(ctx, ownerID, &entity.Project{
		ProjectName:   in.ProjectName,
		Description:   in.Description,
		Status:        st,
		Priority:      pr,
		StartDate:     dates[0],
		DueDate:       dates[1],
		CompletedDate: dates[2],
	})
}

// Update validates the supplied fields and applies them to the project id owned by ownerID.
func (u *ProjectUsecase) Update(ctx context.Context, id, ownerID uint, in UpdateProjectInput) error {
	if in.ProjectName.IsNull() {
		return apperr.Validation("projectName cannot be null")
	}
	if v, ok := in.ProjectName.Get(); ok && strings.TrimSpace(v) == "" {
		return apperr.Validation("projectName cannot be empty")
	}
	if in.Status.IsNull() {
		return apperr.Validation("status cannot be null")
	}
	if in.Priority.IsNull() {
		return apperr.Validation("priority cannot be null")
	}
	st, err := optional.Map(in.Status, parseStatus)
	if err != nil {
		return err
	}
	pr, err := optional.Map(in.Priority, parsePriority)
	if err != nil {
		return err
	}
	start, err := optional.Map(in.StartDate, dateparse.Parse)
	if err != nil {
		return apperr.Validation("startDate: %v", err)
	}
	due, err := optional.Map(in.DueDate, dateparse.Parse)
	if err != nil {
		return apperr.Validation("dueDate: %v", err)
	}
	completed, err := optional.Map(in.CompletedDate, dateparse.Parse)
	if err != nil {
		return apperr.Validation("completedDate: %v", err)
	}

	return u.repo.Update(ctx, id, ownerID, entity.ProjectPatch{
		ProjectName:   in.ProjectName,
		Description:   in.Description,
		Status:        st,
		Priority:      pr,
		StartDate:     start,
		DueDate:       due,
		CompletedDate: completed,
	})
}

// Delete removes the project id if ownerID owns it.
func (u *ProjectUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}

func parseStatus(s string) (entity.Status, error) {
	st := entity.Status(s)
	if !st.Valid() {
		return "", apperr.Validation("status: unknown value %q", s)
	}
	return st, nil
}

func parsePriority(s string) (entity.Priority, error) {
	p := entity.Priority(s)
	if !p.Valid() {
		return "", apperr.Validation("priority: unknown value %q", s)
	}
	return p, nil
}

// parseDates parses start, due and completed in that order.
func parseDates(start, due, completed *string) ([3]*time.Time, error) {
	var out [3]*time.Time
	names := [3]string{"startDate", "dueDate", "completedDate"}
	for i, s := range [3]*string{start, due, completed} {
		t, err := dateparse.ParsePtr(s)
		if err != nil {
			return out, apperr.Validation("%s: %v", names[i], err)
		}
		out[i] = t
	}
	return out, nil
}
