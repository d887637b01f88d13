package bootstrap

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
	httpapi "github.com/GoSim-25-26J-441/trackers-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/auth"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/compensation"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/donations"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/prompts"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/properties"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/recipes"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/skills"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/sleep"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/travel"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
	AllowHeader bool

	// DB is only used by the health check; nil reports "disabled".
	DB       *sql.DB
	Mediator *mediator.Mediator
	Tenants  auth.TenantRegistry
	Verifier auth.Verifier
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(dep.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", auth.HeaderTenantID, middleware.HeaderRequestID},
			ExposeHeaders:    []string{middleware.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.RequestID(dep.Logger))
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware())
		r.GET("/metrics", dep.Metrics.Handler())
	}

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger).RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(auth.TenantMiddleware(auth.MiddlewareOptions{
		Verifier:    dep.Verifier,
		Registry:    dep.Tenants,
		AllowHeader: dep.AllowHeader,
	}))
	api.Use(middleware.NewRateLimiter(dep.RateRPS, dep.RateBurst).Middleware())

	m := dep.Mediator
	recipes.Register(api.Group("/recipes"), m)
	anniversaries.Register(api.Group("/anniversaries"), m)
	donations.Register(api.Group("/donations"), m)
	sleep.Register(api.Group("/sleep-records"), m)
	travel.Register(api.Group("/destinations"), m)
	prompts.Register(api.Group("/prompts"), m)
	properties.Register(api.Group("/properties"), api.Group("/leases"), m)
	skills.Register(api.Group("/skills"), api.Group("/courses"), m)
	compensation.Register(api.Group("/compensations"), m)

	return r
}
