package adapters

import (
	"context"

	"gorm.io/gorm"

	"parcel_backend/internal/feature/weeklyplans/domain/entity"
	"parcel_backend/internal/feature/weeklyplans/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/ownedstore"
)

type weeklyPlanRepository struct {
	store *ownedstore.Store[entity.WeeklyPlan]
}

var _ usecase.WeeklyPlanRepository = (*weeklyPlanRepository)(nil)

// NewWeeklyPlanRepository lists plans by week start rather than creation time.
func NewWeeklyPlanRepository(src infradb.Source) *weeklyPlanRepository {
	return &weeklyPlanRepository{store: ownedstore.New[entity.WeeklyPlan](src, "weekly plan", ownedstore.OrderWeekStart)}
}

func (r *weeklyPlanRepository) List(ctx context.Context, ownerID uint) ([]entity.WeeklyPlan, error) {
	return r.store.List(ctx, ownerID)
}

func (r *weeklyPlanRepository) Create(ctx context.Context, ownerID uint, p *entity.WeeklyPlan) error {
	p.ID = 0
	p.UserID = ownerID
	return r.store.Create(ctx, p)
}

func (r *weeklyPlanRepository) Update(ctx context.Context, id, ownerID uint, p entity.WeeklyPlanPatch) error {
	c := ownedstore.Changes{}
	ownedstore.Put(c, "week_start_date", p.WeekStartDate)
	ownedstore.Put(c, "title", p.Title)
	ownedstore.Put(c, "description", p.Description)
	ownedstore.Put(c, "tasks", p.Tasks)
	ownedstore.Put(c, "completed", p.Completed)
	return r.store.Update(ctx, id, ownerID, c)
}

func (r *weeklyPlanRepository) Delete(ctx context.Context, id, ownerID uint) error {
	return r.store.Delete(ctx, id, ownerID)
}

func (r *weeklyPlanRepository) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	return r.store.PurgeOwner(ctx, tx, ownerID)
}
