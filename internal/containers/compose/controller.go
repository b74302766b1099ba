// Package compose drives project stacks through the docker compose CLI.
package compose

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/domain"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/containers/executor"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/metrics"
	projectdomain "github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

const (
	DefaultCommand = "docker compose"
	DefaultTimeout = 5 * time.Minute
)

// Controller maps lifecycle verbs onto compose CLI invocations. It keeps no
// state between calls; every status query runs the CLI again.
type Controller struct {
	exec     executor.Executor
	bin      string
	baseArgs []string
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewController parses command (for example "docker compose" or
// "podman compose") into the program and its leading arguments.
func NewController(exec executor.Executor, command string, timeout time.Duration, logger *zap.Logger) (*Controller, error) {
	if command == "" {
		command = DefaultCommand
	}
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse compose command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("compose command is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		exec:     exec,
		bin:      words[0],
		baseArgs: words[1:],
		timeout:  timeout,
		logger:   logger.Named("compose"),
		metrics:  metrics.New(),
	}, nil
}

// AreOnline reports, in input order, whether each project has a running
// stack. A single "ls -q" call answers for all of them.
func (c *Controller) AreOnline(ctx context.Context, projects []projectdomain.ProjectInfo) ([]bool, error) {
	res, err := c.run(ctx, "ls", "", "ls", "-q")
	if err != nil {
		return nil, err
	}

	active := make(map[string]struct{})
	for _, line := range strings.Split(res.Stdout, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			active[NormalizeProjectName(name)] = struct{}{}
		}
	}

	online := make([]bool, len(projects))
	for i, p := range projects {
		_, online[i] = active[NormalizeProjectName(p.Name)]
	}
	return online, nil
}

func (c *Controller) IsOnline(ctx context.Context, project projectdomain.ProjectInfo) (bool, error) {
	online, err := c.AreOnline(ctx, []projectdomain.ProjectInfo{project})
	if err != nil {
		return false, err
	}
	return online[0], nil
}

func (c *Controller) Stop(ctx context.Context, project projectdomain.ProjectInfo) error {
	_, err := c.run(ctx, "down", project.Dir, "down")
	return err
}

func (c *Controller) Start(ctx context.Context, project projectdomain.ProjectInfo) error {
	_, err := c.run(ctx, "up", project.Dir, "up", "-d")
	return err
}

func (c *Controller) Pull(ctx context.Context, project projectdomain.ProjectInfo) error {
	_, err := c.run(ctx, "pull", project.Dir, "pull")
	return err
}

// Update recreates changed services and removes ones no longer declared.
func (c *Controller) Update(ctx context.Context, project projectdomain.ProjectInfo) error {
	_, err := c.run(ctx, "update", project.Dir, "up", "-d", "--remove-orphans")
	return err
}

func (c *Controller) run(ctx context.Context, verb, dir string, args ...string) (executor.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := executor.Command{
		Name: c.bin,
		Args: append(append([]string(nil), c.baseArgs...), args...),
		Dir:  dir,
	}
	line := shellquote.Join(append([]string{cmd.Name}, cmd.Args...)...)

	start := time.Now()
	res, err := c.exec.Run(ctx, cmd)
	elapsed := time.Since(start)
	c.metrics.ComposeCommandDuration.WithLabelValues(verb).Observe(elapsed.Seconds())

	switch {
	case err != nil:
		result := "failed"
		if errors.Is(err, context.DeadlineExceeded) {
			result = "timeout"
		}
		c.metrics.ComposeCommandsTotal.WithLabelValues(verb, result).Inc()
		c.logger.Error("compose command failed",
			zap.String("command", line),
			zap.String("dir", dir),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return res, &domain.ExecError{Command: line, Output: res.Combined, Err: err}

	case res.ExitCode != 0:
		c.metrics.ComposeCommandsTotal.WithLabelValues(verb, "failed").Inc()
		c.logger.Error("compose command exited non-zero",
			zap.String("command", line),
			zap.String("dir", dir),
			zap.Int("exit_code", res.ExitCode),
			zap.String("output", strings.TrimSpace(res.Combined)),
		)
		return res, &domain.ExecError{
			Command: line,
			Output:  res.Combined,
			Err:     fmt.Errorf("exit status %d", res.ExitCode),
		}
	}

	c.metrics.ComposeCommandsTotal.WithLabelValues(verb, "ok").Inc()
	c.logger.Debug("compose command finished",
		zap.String("command", line),
		zap.String("dir", dir),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}

var invalidNameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// NormalizeProjectName applies the rules compose uses to derive a stack name
// from a directory name.
func NormalizeProjectName(name string) string {
	name = invalidNameChars.ReplaceAllString(strings.ToLower(name), "")
	return strings.TrimLeft(name, "_-")
}
