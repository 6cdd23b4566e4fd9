package cli

import (
	"github.com/alexanderramin/milestones/internal/config"
	"github.com/alexanderramin/milestones/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline service.TimelineService
	Datasets service.DatasetService
	Exports  service.ExportService

	// Defaults seed the shared view flags.
	Defaults config.Defaults

	// IsInteractive reports whether stdin is a terminal. Nil means it never is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "milestones" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "milestones",
		Short: "Milestone timeline viewer for contractual vs actual schedules",
		Long: "Reads a milestone table (CSV or Excel), classifies every milestone as\n" +
			"on-time, early, delayed or pending, and projects it onto a month axis\n" +
			"anchored at Notice to Proceed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newViewCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
		newColumnsCmd(app),
		newSheetsCmd(app),
		newTemplateCmd(app),
		newDatasetCmd(app),
	)

	return root
}
