// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	identityadapters "parcel_backend/internal/feature/identity/adapters"
	identityentity "parcel_backend/internal/feature/identity/domain/entity"
	identityusecase "parcel_backend/internal/feature/identity/usecase"
	parceladapters "parcel_backend/internal/feature/parcels/adapters"
	parcelentity "parcel_backend/internal/feature/parcels/domain/entity"
	projectadapters "parcel_backend/internal/feature/projects/adapters"
	projectentity "parcel_backend/internal/feature/projects/domain/entity"
	shipmentadapters "parcel_backend/internal/feature/shipments/adapters"
	shipmententity "parcel_backend/internal/feature/shipments/domain/entity"
	weeklyplanadapters "parcel_backend/internal/feature/weeklyplans/adapters"
	weeklyplanentity "parcel_backend/internal/feature/weeklyplans/domain/entity"
	"parcel_backend/internal/platform/cache"
	infradb "parcel_backend/internal/platform/db"
)

// Models lists every gorm model for AutoMigrate.
func Models() []any {
	return []any{
		&identityentity.User{},
		&parcelentity.Parcel{},
		&shipmententity.Shipment{},
		&projectentity.Project{},
		&weeklyplanentity.WeeklyPlan{},
	}
}

// Repositories holds the storage layer. Owned record kinds are wrapped in the
// Redis list cache; a nil rdb makes the wrappers pass through.
type Repositories struct {
	Parcels     *cache.CachingOwnedRepository[parcelentity.Parcel, parcelentity.ParcelPatch]
	Shipments   *cache.CachingOwnedRepository[shipmententity.Shipment, shipmententity.ShipmentPatch]
	Projects    *cache.CachingOwnedRepository[projectentity.Project, projectentity.ProjectPatch]
	WeeklyPlans *cache.CachingOwnedRepository[weeklyplanentity.WeeklyPlan, weeklyplanentity.WeeklyPlanPatch]
	Users       identityusecase.UserRepository
}

// NewRepositories builds every repository over src. While src has no handle
// the repositories run degraded.
func NewRepositories(src infradb.Source, rdb *redis.Client, ttl time.Duration) *Repositories {
	r := &Repositories{
		Parcels: cache.NewCachingOwnedRepository[parcelentity.Parcel, parcelentity.ParcelPatch](
			rdb, ttl, parceladapters.NewParcelRepository(src), "parcels"),
		Shipments: cache.NewCachingOwnedRepository[shipmententity.Shipment, shipmententity.ShipmentPatch](
			rdb, ttl, shipmentadapters.NewShipmentRepository(src), "shipments"),
		Projects: cache.NewCachingOwnedRepository[projectentity.Project, projectentity.ProjectPatch](
			rdb, ttl, projectadapters.NewProjectRepository(src), "projects"),
		WeeklyPlans: cache.NewCachingOwnedRepository[weeklyplanentity.WeeklyPlan, weeklyplanentity.WeeklyPlanPatch](
			rdb, ttl, weeklyplanadapters.NewWeeklyPlanRepository(src), "weekly_plans"),
	}
	// 所有データを先に削除し、最後にユーザー行を削除する
	r.Users = identityadapters.NewUserRepository(src, r.Parcels, r.Shipments, r.Projects, r.WeeklyPlans)
	return r
}
