package executor

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSExecutor_Run(t *testing.T) {
	requireShell(t)
	e := NewOSExecutor()

	t.Run("captures output", func(t *testing.T) {
		res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo out; echo err 1>&2"}})
		require.NoError(t, err)
		assert.Equal(t, 0, res.ExitCode)
		assert.Equal(t, "out\n", res.Stdout)
		assert.Equal(t, "err\n", res.Stderr)
		assert.Contains(t, res.Combined, "out\n")
		assert.Contains(t, res.Combined, "err\n")
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo nope 1>&2; exit 3"}})
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "nope\n", res.Combined)
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		res, err := e.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd -P"}, Dir: dir})
		require.NoError(t, err)
		assert.Contains(t, res.Stdout, filepath.Base(dir))
	})

	t.Run("spawn failure", func(t *testing.T) {
		res, err := e.Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
		require.Error(t, err)
		assert.Equal(t, -1, res.ExitCode)
	})

	t.Run("timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := e.Run(ctx, Command{Name: "sh", Args: []string{"-c", "exec sleep 5"}})
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestMockExecutor(t *testing.T) {
	m := NewMockExecutor()
	m.AddResponse("docker compose ls", "web\n", 0)
	m.AddResponse("docker compose", "", 1)
	m.AddError("podman", errors.New("not installed"))

	res, err := m.Run(context.Background(), Command{Name: "docker", Args: []string{"compose", "ls", "-q"}})
	require.NoError(t, err)
	assert.Equal(t, "web\n", res.Stdout)

	res, err = m.Run(context.Background(), Command{Name: "docker", Args: []string{"compose", "down"}, Dir: "/p"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)

	_, err = m.Run(context.Background(), Command{Name: "podman", Args: []string{"compose", "up"}})
	assert.EqualError(t, err, "not installed")

	last, ok := m.LastCommand()
	require.True(t, ok)
	assert.Equal(t, "podman", last.Name)
	assert.Equal(t, []string{"docker compose ls -q", "docker compose down", "podman compose up"}, m.Lines())
	assert.Equal(t, "/p", m.Commands[1].Dir)

	m.Reset()
	assert.Empty(t, m.Commands)
}
