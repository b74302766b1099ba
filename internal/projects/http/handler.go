package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

// Lifecycle is the container side the handlers drive.
type Lifecycle interface {
	Statuses(ctx context.Context, projects []domain.ProjectInfo) ([]string, error)
	Status(ctx context.Context, project domain.ProjectInfo) (string, error)
	Start(ctx context.Context, project domain.ProjectInfo) error
	Stop(ctx context.Context, project domain.ProjectInfo) error
	Restart(ctx context.Context, project domain.ProjectInfo) error
	Update(ctx context.Context, project domain.ProjectInfo) error
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	projects  domain.ProjectRepository
	files     domain.FileStore
	lifecycle Lifecycle
	logger    *zap.Logger
}

func New(projects domain.ProjectRepository, files domain.FileStore, lifecycle Lifecycle, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		projects:  projects,
		files:     files,
		lifecycle: lifecycle,
		logger:    logger.Named("projects"),
	}
}
