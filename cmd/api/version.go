package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/bootstrap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		version := os.Getenv("APP_VERSION")
		if version == "" {
			version = "1.0.0"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bootstrap.ServiceName, version)
	},
}
