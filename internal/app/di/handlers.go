package di

import (
	"context"

	"parcel_backend/internal/app/router"
	"parcel_backend/internal/config"
	identityhandler "parcel_backend/internal/feature/identity/transport/handler"
	identityusecase "parcel_backend/internal/feature/identity/usecase"
	parcelhandler "parcel_backend/internal/feature/parcels/transport/handler"
	parcelusecase "parcel_backend/internal/feature/parcels/usecase"
	projecthandler "parcel_backend/internal/feature/projects/transport/handler"
	projectusecase "parcel_backend/internal/feature/projects/usecase"
	shipmenthandler "parcel_backend/internal/feature/shipments/transport/handler"
	shipmentusecase "parcel_backend/internal/feature/shipments/usecase"
	weeklyplanhandler "parcel_backend/internal/feature/weeklyplans/transport/handler"
	weeklyplanusecase "parcel_backend/internal/feature/weeklyplans/usecase"
	infradb "parcel_backend/internal/platform/db"
	platformhandler "parcel_backend/internal/platform/http/handler"
	jwtmw "parcel_backend/internal/platform/jwt"
)

// NewHandlers wires usecases and handlers on top of repos.
func NewHandlers(cfg config.AuthConfig, src infradb.Source, repos *Repositories) router.Handlers {
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	return router.Handlers{
		Health:      platformhandler.NewHealthHandler(storagePinger{src: src}),
		Identity:    identityhandler.NewIdentityHandler(identityusecase.NewIdentityUsecase(repos.Users, tokens, cfg.OwnerOpenID)),
		Parcels:     parcelhandler.NewParcelHandler(parcelusecase.NewParcelUsecase(repos.Parcels)),
		Shipments:   shipmenthandler.NewShipmentHandler(shipmentusecase.NewShipmentUsecase(repos.Shipments)),
		Projects:    projecthandler.NewProjectHandler(projectusecase.NewProjectUsecase(repos.Projects)),
		WeeklyPlans: weeklyplanhandler.NewWeeklyPlanHandler(weeklyplanusecase.NewWeeklyPlanUsecase(repos.WeeklyPlans)),
	}
}

// storagePinger adapts a Source to the health check. A Handle that is still
// reconnecting reports degraded, and the ping itself may bring it up.
type storagePinger struct {
	src infradb.Source
}

func (p storagePinger) PingContext(ctx context.Context) error {
	return infradb.Ping(ctx, p.src)
}
