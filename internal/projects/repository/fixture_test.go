package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newFixture lays out:
//
//	project1/compose.yml, project1/.env, project1/sub/text.txt
//	project2/
//	project3/compose.yml
//	notes.txt
func newFixture(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	write := func(rel, content string) {
		p := filepath.Join(base, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	write("project1/compose.yml", "compose.yml")
	write("project1/.env", ".env")
	write("project1/sub/text.txt", "text")
	require.NoError(t, os.Mkdir(filepath.Join(base, "project2"), 0o755))
	write("project3/compose.yml", "services: {}")
	write("notes.txt", "not a project")

	return base
}
