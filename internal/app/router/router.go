// Package router はHTTPルーティングを定義します。
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	identityhandler "parcel_backend/internal/feature/identity/transport/handler"
	parcelhandler "parcel_backend/internal/feature/parcels/transport/handler"
	projecthandler "parcel_backend/internal/feature/projects/transport/handler"
	shipmenthandler "parcel_backend/internal/feature/shipments/transport/handler"
	weeklyplanhandler "parcel_backend/internal/feature/weeklyplans/transport/handler"
	platformhandler "parcel_backend/internal/platform/http/handler"
	"parcel_backend/internal/platform/http/middleware"
	jwtmw "parcel_backend/internal/platform/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Health      *platformhandler.HealthHandler
	Identity    *identityhandler.IdentityHandler
	Parcels     *parcelhandler.ParcelHandler
	Shipments   *shipmenthandler.ShipmentHandler
	Projects    *projecthandler.ProjectHandler
	WeeklyPlans *weeklyplanhandler.WeeklyPlanHandler
}

// Options carries the secrets the middleware checks.
type Options struct {
	JWTSecret    string
	ServiceToken string
	Logger       *slog.Logger

	// SessionLimiter throttles /auth/session; nil means unlimited.
	SessionLimiter middleware.Limiter
	// CORSOrigins enables CORS for the listed origins. Empty disables it.
	CORSOrigins []string
}

// ownedRoutes is the handler set shared by every owned record kind.
type ownedRoutes interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// NewRouter はミドルウェアとルートを登録した gin.Engine を返します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(logger), middleware.AccessLog())
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	// ログイン基盤からのセッション発行（サービストークン必須）
	session := []gin.HandlerFunc{middleware.ServiceToken(opts.ServiceToken)}
	if opts.SessionLimiter != nil {
		session = append([]gin.HandlerFunc{middleware.RateLimit(opts.SessionLimiter)}, session...)
	}
	r.POST("/auth/session", append(session, h.Identity.Session)...)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/me", h.Identity.Me)
		auth.DELETE("/me", h.Identity.DeleteMe)

		auth.GET("/parcels/summary", h.Parcels.Summary)
		mountOwned(auth, "/parcels", h.Parcels)
		mountOwned(auth, "/shipments", h.Shipments)
		mountOwned(auth, "/projects", h.Projects)
		mountOwned(auth, "/weekly-plans", h.WeeklyPlans)
	}

	return r
}

func mountOwned(g *gin.RouterGroup, path string, h ownedRoutes) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PATCH(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderXRequestID},
		ExposeHeaders: []string{middleware.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	}
}
