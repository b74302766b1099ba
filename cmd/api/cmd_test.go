package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Setenv("APP_VERSION", "2.3.4")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "stackdeck-backend 2.3.4\n", out.String())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["status"])
	assert.True(t, names["version"])
}

func TestLoadRuntime_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_ADMIN_PASSWORD", "pw")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, _, err := loadRuntime()
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}
