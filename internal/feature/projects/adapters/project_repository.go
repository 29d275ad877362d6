package adapters

import (
	"context"

	"gorm.io/gorm"

	"parcel_backend/internal/feature/projects/domain/entity"
	"parcel_backend/internal/feature/projects/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/ownedstore"
)

type projectRepository struct {
	store *ownedstore.Store[entity.Project]
}

var _ usecase.ProjectRepository = (*projectRepository)(nil)

// NewProjectRepository serves from src; the store degrades while src has no handle.
func NewProjectRepository(src infradb.Source) *projectRepository {
	return &projectRepository{store: ownedstore.New[entity.Project](src, "project", ownedstore.OrderCreated)}
}

func (r *projectRepository) List(ctx context.Context, ownerID uint) ([]entity.Project, error) {
	return r.store.List(ctx, ownerID)
}

func (r *projectRepository) Create(ctx context.Context, ownerID uint, p *entity.Project) error {
	p.ID = 0
	p.UserID = ownerID
	return r.store.Create(ctx, p)
}

func (r *projectRepository) Update(ctx context.Context, id, ownerID uint, p entity.ProjectPatch) error {
	c := ownedstore.Changes{}
	ownedstore.Put(c, "project_name", p.ProjectName)
	ownedstore.Put(c, "description", p.Description)
	ownedstore.Put(c, "status", p.Status)
	ownedstore.Put(c, "priority", p.Priority)
	ownedstore.Put(c, "start_date", p.StartDate)
	ownedstore.Put(c, "due_date", p.DueDate)
	ownedstore.Put(c, "completed_date", p.CompletedDate)
	return r.store.Update(ctx, id, ownerID, c)
}

func (r *projectRepository) Delete(ctx context.Context, id, ownerID uint) error {
	return r.store.Delete(ctx, id, ownerID)
}

func (r *projectRepository) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	return r.store.PurgeOwner(ctx, tx, ownerID)
}
