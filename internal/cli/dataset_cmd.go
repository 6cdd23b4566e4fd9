package cli

import (
	"fmt"

	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/spf13/cobra"
)

func newDatasetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dataset",
		Aliases: []string{"ds"},
		Short:   "Manage stored datasets",
	}

	cmd.AddCommand(
		newDatasetImportCmd(app),
		newDatasetListCmd(app),
		newDatasetShowCmd(app),
		newDatasetMapCmd(app),
		newDatasetDeleteCmd(app),
	)

	return cmd
}

func newDatasetImportCmd(app *App) *cobra.Command {
	var sheet, name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store a milestone table so it can be viewed without the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.Datasets.Import(cmd.Context(), args[0], sheet, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d rows [%s]\n",
				formatter.Bold(ds.Name), ds.RowCount, ds.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to import (default: first sheet)")
	cmd.Flags().StringVar(&name, "name", "", "Dataset name (default: file name and sheet)")
	return cmd
}

func newDatasetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored datasets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.Datasets.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDatasetList(ds))
			return nil
		},
	}
}

func newDatasetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a dataset's columns and saved mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.Datasets.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDataset(ds))
			return nil
		},
	}
}

func newDatasetMapCmd(app *App) *cobra.Command {
	var f sourceFlags
	var reset bool

	cmd := &cobra.Command{
		Use:   "map ID",
		Short: "Save or reset the column mapping stored with a dataset",
		Example: "  milestones dataset map 3f2a9c01 --contractual-col Baseline --group-col Discipline\n" +
			"  milestones dataset map 3f2a9c01 --group-col \"(none)\"\n" +
			"  milestones dataset map 3f2a9c01 --reset",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := f.mapping()
			empty := m == (domain.ColumnMapping{})
			if reset {
				if !empty {
					return fmt.Errorf("--reset cannot be combined with column flags")
				}
				if err := app.Datasets.ResetMapping(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Mapping reset; defaults apply.")
				return nil
			}
			if empty {
				return fmt.Errorf("nothing to save: pass at least one of --name-col, --contractual-col, --actual-col, --group-col")
			}

			ds, err := app.Datasets.SaveMapping(ctx, args[0], m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved mapping for dataset %s\n", formatter.Bold(ds.DisplayID()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMapping(*ds.Mapping))
			return nil
		},
	}

	f.registerMapping(cmd.Flags())
	cmd.Flags().BoolVar(&reset, "reset", false, "Forget the saved mapping")
	return cmd
}

func newDatasetDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a stored dataset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.Datasets.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Datasets.Delete(cmd.Context(), ds.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s (%s)\n", ds.Name, ds.DisplayID())
			return nil
		},
	}
}
