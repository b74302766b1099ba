package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/logging"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print every project with its running state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logging.Sync(logger) }()

		svcs, err := bootstrap.BuildServices(cfg, nil, logger)
		if err != nil {
			return err
		}

		projects, err := svcs.Projects.List()
		if err != nil {
			return err
		}
		statuses, err := svcs.Lifecycle.Statuses(cmd.Context(), projects)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PROJECT\tSTATUS")
		for i, p := range projects {
			fmt.Fprintf(w, "%s\t%s\n", p.Name, statuses[i])
		}
		return w.Flush()
	},
}
