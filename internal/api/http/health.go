package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Projects  string    `json:"projects,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	projectsDir string
}

// NewHealthHandler reports liveness. When projectsDir is set the response
// also says whether that directory is reachable.
func NewHealthHandler(serviceName, version, projectsDir string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		projectsDir: projectsDir,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	projectsStatus := "disabled"
	if h.projectsDir != "" {
		if info, err := os.Stat(h.projectsDir); err != nil || !info.IsDir() {
			projectsStatus = "down"
		} else {
			projectsStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Projects:  projectsStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
