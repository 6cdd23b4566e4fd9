package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newColumnsCmd(app *App) *cobra.Command {
	var f sourceFlags
	var interactive, save bool

	cmd := &cobra.Command{
		Use:   "columns [FILE]",
		Short: "Show headers and the resolved column mapping; optionally correct and save it",
		Example: "  milestones columns plan.xlsx --sheet Unit#1\n" +
			"  milestones columns --dataset 3f2a9c01 --interactive --save\n" +
			"  milestones columns --dataset 3f2a9c01 --group-col Discipline --save",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if save && f.dataset == "" {
				return fmt.Errorf("--save needs --dataset; mappings are stored with datasets")
			}
			if interactive && !app.interactive() {
				return fmt.Errorf("--interactive needs a terminal on stdin")
			}

			ctx := cmd.Context()
			info, err := app.Timeline.Inspect(ctx, f.source(args))
			if err != nil {
				return err
			}
			mapping := importer.MergeMapping(info.Mapping, f.mapping())

			if interactive {
				if err := mappingForm(info.Headers, info.GroupCandidates, &mapping).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return fmt.Errorf("mapping unchanged: form cancelled")
					}
					return err
				}
			}
			info.Mapping = mapping

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSourceInfo(info))

			problems := importer.ValidateMapping(info.Headers, mapping)
			for _, p := range problems {
				fmt.Fprintln(out, formatter.Warning(p.Error()))
			}

			if !save {
				return nil
			}
			toSave := mapping
			if toSave.GroupColumn == "" {
				toSave.GroupColumn = importer.NoGroupColumn
			}
			ds, err := app.Datasets.SaveMapping(ctx, f.dataset, toSave)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSaved mapping for dataset %s\n", formatter.Bold(ds.DisplayID()))
			return nil
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Correct the mapping in a form (needs a terminal)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the mapping with the dataset given by --dataset")
	return cmd
}
