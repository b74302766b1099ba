package sandbox

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "plain file", input: "compose.yml", ok: true},
		{name: "dotfile", input: ".env", ok: true},
		{name: "dots inside", input: "a..b", ok: true},
		{name: "empty", input: ""},
		{name: "current dir", input: "."},
		{name: "parent dir", input: ".."},
		{name: "nested", input: "sub/text.txt"},
		{name: "traversal", input: "../project2/compose.yml"},
		{name: "absolute", input: "/etc/passwd"},
		{name: "backslash", input: `..\secret`},
		{name: "nul byte", input: "a\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveName(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPath))

			var pathErr *InvalidPathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, tt.input, pathErr.Name)
		})
	}
}

func TestJoin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compose.yml"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	t.Run("direct child", func(t *testing.T) {
		got, err := Join(dir, "compose.yml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "compose.yml"), got)
	})

	t.Run("missing file is still joinable", func(t *testing.T) {
		got, err := Join(dir, "new.txt")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "new.txt"), got)
	})

	t.Run("rejects nested name", func(t *testing.T) {
		_, err := Join(dir, "sub/text.txt")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := Join(dir, "..")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("symlink into subdirectory", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "text.txt"), []byte("y"), 0o644))
		require.NoError(t, os.Symlink("sub/text.txt", filepath.Join(dir, "link")))
		_, err := Join(dir, "link")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("symlink escaping the directory stays inside", func(t *testing.T) {
		require.NoError(t, os.Symlink("/etc/passwd", filepath.Join(dir, "escape")))
		got, err := Join(dir, "escape")
		if err == nil {
			rel, relErr := filepath.Rel(dir, got)
			require.NoError(t, relErr)
			assert.NotContains(t, rel, "..")
		} else {
			assert.ErrorIs(t, err, ErrInvalidPath)
		}
	})
}
