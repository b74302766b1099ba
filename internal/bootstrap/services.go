package bootstrap

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/config"
	authservice "github.com/GoSim-25-26J-441/stackdeck-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/compose"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/cronjob"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/executor"
	containerservice "github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/service"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/repository"
)

const ServiceName = "stackdeck-backend"

// Services is the wired object graph shared by the server and the CLI.
type Services struct {
	Projects   *repository.ProjectRepository
	Files      *repository.FileStore
	Controller *compose.Controller
	Lifecycle  *containerservice.LifecycleService
	Auth       *authservice.AuthService
	Status     *cronjob.Scheduler
}

// BuildServices creates the projects directory if needed and wires every
// service from cfg.
func BuildServices(cfg *config.Config, exec executor.Executor, logger *zap.Logger) (*Services, error) {
	if err := os.MkdirAll(cfg.Projects.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("create projects dir: %w", err)
	}

	if exec == nil {
		exec = executor.NewOSExecutor()
	}
	ctrl, err := compose.NewController(exec, cfg.Compose.Command, cfg.Compose.Timeout, logger)
	if err != nil {
		return nil, err
	}

	policy := containerservice.PolicyLenient
	if cfg.Compose.StrictLifecycle {
		policy = containerservice.PolicyStrict
	}

	projects := repository.NewProjectRepository(cfg.Projects.BasePath, cfg.Projects.ManifestName)

	return &Services{
		Projects:   projects,
		Files:      repository.NewFileStore(cfg.Projects.ManifestName),
		Controller: ctrl,
		Lifecycle:  containerservice.NewLifecycleService(ctrl, policy, logger),
		Auth:       authservice.NewAuthService(cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Status:     cronjob.NewScheduler(projects, ctrl, cfg.Compose.StatusSchedule, cfg.Compose.Timeout, logger),
	}, nil
}

// RouterDeps returns the router dependencies for these services.
func (s *Services) RouterDeps(cfg *config.Config, logger *zap.Logger) RouterDeps {
	return RouterDeps{
		ServiceName:    ServiceName,
		Version:        cfg.App.Version,
		ProjectsDir:    s.Projects.BasePath(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		Projects:       s.Projects,
		Files:          s.Files,
		Lifecycle:      s.Lifecycle,
		Auth:           s.Auth,
		LoginRate:      cfg.Auth.LoginRate,
		LoginBurst:     cfg.Auth.LoginBurst,
		Logger:         logger,
	}
}
