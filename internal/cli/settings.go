package cli

import (
	"fmt"

	"taskplane/internal/store"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Settings commands",
	}
	cmd.AddCommand(newSettingsShowCmd(app))
	cmd.AddCommand(newSettingsFontSizeCmd(app))
	cmd.AddCommand(newSettingsStartupCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the settings document",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": tr.Settings})
		},
	}
}

func newSettingsFontSizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "font-size <small|medium|large>",
		Short: "Set the font size preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := store.ParseFontSize(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := tr.SetFontSize(v); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"font_size": v}})
		},
	}
}

func newSettingsStartupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "startup <on|off>",
		Short: "Toggle the launch-at-startup preference flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return writeErr(cmd, fmt.Errorf("expected on|off, got %q", args[0]))
			}

			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := tr.SetStartupEnabled(enabled); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"startup_enabled": enabled}})
		},
	}
}
