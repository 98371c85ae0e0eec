package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Completion statistics",
	}
	cmd.AddCommand(newStatsShowCmd(app))
	cmd.AddCommand(newStatsResetCmd(app))
	return cmd
}

func newStatsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show completed-leaf count and minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			count, minutes := tr.Statistics()
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"completed_leaf_count":   count,
				"completed_leaf_minutes": minutes,
			}})
		},
	}
}

func newStatsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zero the counters and clear the counted-id set",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := tr.ResetStatistics(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"reset": true}})
		},
	}
}
