package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/domain"
	projectdomain "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

// Policy decides whether start/stop check the current state first.
type Policy int

const (
	// PolicyLenient passes start and stop straight to the CLI; repeating
	// either is a no-op there.
	PolicyLenient Policy = iota
	// PolicyStrict rejects starting a running stack and stopping a stopped one.
	PolicyStrict
)

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lenient"
}

// Controller is the set of compose operations the service drives.
type Controller interface {
	AreOnline(ctx context.Context, projects []projectdomain.ProjectInfo) ([]bool, error)
	IsOnline(ctx context.Context, project projectdomain.ProjectInfo) (bool, error)
	Stop(ctx context.Context, project projectdomain.ProjectInfo) error
	Start(ctx context.Context, project projectdomain.ProjectInfo) error
	Pull(ctx context.Context, project projectdomain.ProjectInfo) error
	Update(ctx context.Context, project projectdomain.ProjectInfo) error
}

// LifecycleService applies the configured policy on top of the controller.
type LifecycleService struct {
	ctrl   Controller
	policy Policy
	logger *zap.Logger
}

func NewLifecycleService(ctrl Controller, policy Policy, logger *zap.Logger) *LifecycleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleService{
		ctrl:   ctrl,
		policy: policy,
		logger: logger.Named("lifecycle"),
	}
}

func (s *LifecycleService) Policy() Policy {
	return s.policy
}

// Statuses returns "running" or "stopped" per project, in input order.
func (s *LifecycleService) Statuses(ctx context.Context, projects []projectdomain.ProjectInfo) ([]string, error) {
	online, err := s.ctrl.AreOnline(ctx, projects)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(online))
	for i, up := range online {
		out[i] = projectdomain.StatusString(up)
	}
	return out, nil
}

func (s *LifecycleService) Status(ctx context.Context, project projectdomain.ProjectInfo) (string, error) {
	online, err := s.ctrl.IsOnline(ctx, project)
	if err != nil {
		return "", err
	}
	return projectdomain.StatusString(online), nil
}

func (s *LifecycleService) Start(ctx context.Context, project projectdomain.ProjectInfo) error {
	if s.policy == PolicyStrict {
		online, err := s.ctrl.IsOnline(ctx, project)
		if err != nil {
			return err
		}
		if online {
			return &domain.StateError{Kind: domain.ErrAlreadyRunning, Project: project.Name}
		}
	}

	if err := s.ctrl.Start(ctx, project); err != nil {
		return err
	}
	s.logger.Info("project started", zap.String("project", project.Name))
	return nil
}

func (s *LifecycleService) Stop(ctx context.Context, project projectdomain.ProjectInfo) error {
	if s.policy == PolicyStrict {
		online, err := s.ctrl.IsOnline(ctx, project)
		if err != nil {
			return err
		}
		if !online {
			return &domain.StateError{Kind: domain.ErrAlreadyStopped, Project: project.Name}
		}
	}

	if err := s.ctrl.Stop(ctx, project); err != nil {
		return err
	}
	s.logger.Info("project stopped", zap.String("project", project.Name))
	return nil
}

// Restart pulls fresh images and then starts the stack. Start is skipped when
// the pull fails.
func (s *LifecycleService) Restart(ctx context.Context, project projectdomain.ProjectInfo) error {
	if err := s.ctrl.Pull(ctx, project); err != nil {
		return err
	}
	if err := s.ctrl.Start(ctx, project); err != nil {
		return err
	}
	s.logger.Info("project restarted", zap.String("project", project.Name))
	return nil
}

// Update applies manifest changes to a running stack.
func (s *LifecycleService) Update(ctx context.Context, project projectdomain.ProjectInfo) error {
	online, err := s.ctrl.IsOnline(ctx, project)
	if err != nil {
		return err
	}
	if !online {
		return &domain.StateError{Kind: domain.ErrNotRunning, Project: project.Name}
	}

	if err := s.ctrl.Update(ctx, project); err != nil {
		return err
	}
	s.logger.Info("project updated", zap.String("project", project.Name))
	return nil
}
