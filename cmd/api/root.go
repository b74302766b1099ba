package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/stackdeck-backend/config"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "stackdeck",
	Short: "Manage docker compose projects over HTTP",
	Long: `stackdeck serves an authenticated API for a directory of compose projects.

Each subdirectory of PROJECTS_DIR is a project holding a compose.yml and an
optional .env file. The API edits those files and starts, stops, pulls and
updates the stacks through the docker compose CLI.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(serveCmd, statusCmd, versionCmd)
}

// loadRuntime reads configuration and builds the logger every command uses.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
