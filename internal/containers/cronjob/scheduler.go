package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/metrics"
	projectdomain "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

type ProjectLister interface {
	List() ([]projectdomain.ProjectInfo, error)
}

type StatusReader interface {
	AreOnline(ctx context.Context, projects []projectdomain.ProjectInfo) ([]bool, error)
}

// Snapshot is the result of one status check.
type Snapshot struct {
	Total   int
	Running int
	Online  []string
}

// Scheduler periodically records how many projects exist and how many are
// running. The schedule uses the six field cron format (with seconds) or a
// descriptor such as "@every 1m".
type Scheduler struct {
	projects ProjectLister
	status   StatusReader
	schedule string
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics

	cron *cron.Cron
}

func NewScheduler(projects ProjectLister, status StatusReader, schedule string, timeout time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		projects: projects,
		status:   status,
		schedule: schedule,
		timeout:  timeout,
		logger:   logger.Named("status-cron"),
		metrics:  metrics.New(),
	}
}

// Start registers the status job. An empty schedule disables it.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info("status reporter disabled")
		return nil
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(s.schedule, s.tick); err != nil {
		return fmt.Errorf("invalid status schedule %q: %w", s.schedule, err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("status reporter started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce performs a single status check and updates the gauges.
func (s *Scheduler) RunOnce(ctx context.Context) (Snapshot, error) {
	projects, err := s.projects.List()
	if err != nil {
		return Snapshot{}, err
	}

	online, err := s.status.AreOnline(ctx, projects)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Total: len(projects), Online: []string{}}
	for i, up := range online {
		if up {
			snap.Running++
			snap.Online = append(snap.Online, projects[i].Name)
		}
	}

	s.metrics.ProjectsTotal.Set(float64(snap.Total))
	s.metrics.ProjectsRunning.Set(float64(snap.Running))
	return snap, nil
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snap, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("status check failed", zap.Error(err))
		return
	}
	s.logger.Info("status check",
		zap.Int("projects", snap.Total),
		zap.Int("running", snap.Running),
		zap.Strings("online", snap.Online),
	)
}
