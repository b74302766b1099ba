package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/stackdeck-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/api/http/routes"
	authhttp "github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/middleware"
	authservice "github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/service"
	projectsdomain "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
	projectshttp "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	ProjectsDir    string
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty means the peer address
	// is the client IP.
	TrustedProxies []string

	Projects  projectsdomain.ProjectRepository
	Files     projectsdomain.FileStore
	Lifecycle projectshttp.Lifecycle
	Auth      *authservice.AuthService

	LoginRate  float64
	LoginBurst int

	Logger *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, forwarded headers ignored", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	r.Use(middleware.RequestIDMiddleware(logger))
	r.Use(middleware.MetricsMiddleware())
	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.ProjectsDir)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterAPI(r, routes.APIDeps{
		Auth:     authhttp.New(dep.Auth, dep.LoginRate, dep.LoginBurst, logger),
		Projects: projectshttp.New(dep.Projects, dep.Files, dep.Lifecycle, logger),
		Guard:    authmw.RequireAuth(dep.Auth),
	})

	return r
}
