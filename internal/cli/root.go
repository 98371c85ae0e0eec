package cli

import (
	"fmt"
	"os"
	"strings"

	"taskplane/internal/format"
	"taskplane/internal/store"
	"taskplane/internal/tracker"
	"taskplane/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskplane",
		Short:        "Local task tracker on an urgency/importance plane",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskplane

  # Scriptable commands
  taskplane tasks list
  taskplane tasks add --title "Write report" --minutes 60 --x 0.5 --y 0.8

  # Direct task lookup (shortcut for: taskplane tasks show <task-id>)
  taskplane task-abc123de
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKPLANE_DIR", ""), "Path to the data dir (default: ~/.taskplane)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newSettingsCmd(app))
	cmd.AddCommand(newGraphCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	tr, err := openTracker(cmd, app)
	if err != nil {
		return err
	}
	return tui.Run(tr)
}

// openTracker resolves the data dir and opens the tracker. Degraded loads
// (a corrupt document replaced by defaults in memory) are reported as
// warnings, not failures, so the user can still reach their data.
func openTracker(cmd *cobra.Command, app *App) (*tracker.Tracker, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
		app.Dir = dir
	}

	tr, res, err := tracker.Open(store.Store{Dir: dir})
	if err != nil {
		return nil, err
	}
	if res.TasksErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (starting with an empty task list; the file is untouched)\n", res.TasksErr)
	}
	if res.SettingsErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using default settings; the file is untouched)\n", res.SettingsErr)
	}
	return tr, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
