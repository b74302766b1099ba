package routes

import (
	"github.com/gin-gonic/gin"

	authhttp "github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/http"
	projectshttp "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/http"
)

type APIDeps struct {
	Auth     *authhttp.Handler
	Projects *projectshttp.Handler
	Guard    gin.HandlerFunc
}

// RegisterAPI mounts /auth and the guarded /projects group.
func RegisterAPI(r gin.IRouter, dep APIDeps) {
	dep.Auth.Register(r.Group("/auth"), dep.Guard)

	projectsGroup := r.Group("/projects")
	projectsGroup.Use(dep.Guard)
	dep.Projects.Register(projectsGroup)
}
