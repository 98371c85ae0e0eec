package cli

import (
	"fmt"

	"taskplane/internal/model"
	"taskplane/internal/tui"

	"github.com/spf13/cobra"
)

func newGraphCmd(app *App) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the urgency/importance plane",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := openTracker(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			points := model.Flatten(tr.Forest)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPlane(points, width, height))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 61, "Plot width in columns (odd keeps the axes centered)")
	cmd.Flags().IntVar(&height, "height", 21, "Plot height in rows (odd keeps the axes centered)")

	return cmd
}
