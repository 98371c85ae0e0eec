package cli

import (
	"strings"

	"taskplane/internal/mutate"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the whole task forest",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"tasks": tr.Forest}})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var (
		title   string
		minutes int
		x, y    float64
		tags    string
		parent  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task (a subtask when --parent is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var parentID *string
			if p := strings.TrimSpace(parent); p != "" {
				parentID = &p
			}
			task, err := tr.CreateTask(parentID, title, minutes, x, y, tags)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().IntVar(&minutes, "minutes", 30, "Estimated minutes (>= 0)")
	cmd.Flags().Float64Var(&x, "x", 0, "Importance, -1..1 (clamped)")
	cmd.Flags().Float64Var(&y, "y", 0, "Urgency, -1..1 (clamped)")
	cmd.Flags().StringVar(&tags, "tags", "", "Tags, e.g. \"exam math\" (each gets a '#')")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task id (omit for a root task)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task and its subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, ok := tr.FindTask(strings.TrimSpace(args[0]))
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "task", ID: args[0]})
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Complete an active task; delete a completed one (with its subtree)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) != 1 {
				return cmd.Help()
			}

			res, err := tr.ToggleCompletion(strings.TrimSpace(args[0]))
			if err != nil {
				return writeErr(cmd, err)
			}
			switch res.Outcome {
			case mutate.OutcomeDeleted:
				// Print the removed subtree so a scripted delete is never
				// silently unrecoverable (the in-memory undo slot does not
				// survive this process).
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"state":   "deleted",
					"deleted": res.Task,
				}})
			default:
				return writeOut(cmd, app, map[string]any{"data": map[string]any{
					"state": "completed",
					"task":  res.Task,
				}})
			}
		},
	}
}
