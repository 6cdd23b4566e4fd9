package cli

import (
	"fmt"

	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var f timelineFlags

	cmd := &cobra.Command{
		Use:   "view [FILE]",
		Short: "Show the timeline, KPIs and status breakdown of a milestone table",
		Example: "  milestones view plan.xlsx --sheet Unit#1\n" +
			"  milestones view plan.csv --status delayed,overdue --future\n" +
			"  milestones view --dataset 3f2a9c01 --granularity quarterly",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(cmd, args)
			if err != nil {
				return err
			}
			resp, err := app.Timeline.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(resp))
			return nil
		},
	}

	addTimelineFlags(cmd, &f, app.Defaults)
	return cmd
}
