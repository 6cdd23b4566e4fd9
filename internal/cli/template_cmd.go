package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a starter milestone table (.xlsx or .csv)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimPrefix(filepath.Ext(out), "."))
			if format != "csv" && format != "xlsx" {
				return fmt.Errorf("template output must end in .xlsx or .csv, got %q", out)
			}
			if err := writeFileAtomic(out, func(w io.Writer) error {
				return app.Exports.Template(cmd.Context(), format, w)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote template to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "milestones_template.xlsx", "Output file (.xlsx or .csv)")
	return cmd
}
