package cli

import (
	"fmt"

	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/spf13/cobra"
)

func newSheetsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets FILE",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.Timeline.Inspect(cmd.Context(), contract.Source{Path: args[0]})
			if err != nil {
				return err
			}
			if len(info.Sheets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("CSV files have a single table and no sheets."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSheets(info.Sheets, ""))
			return nil
		},
	}
}
