package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/milestones/internal/cli"
	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/config"
	"github.com/alexanderramin/milestones/internal/db"
	"github.com/alexanderramin/milestones/internal/repository"
	"github.com/alexanderramin/milestones/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, p := range cfg.Validate() {
		fmt.Fprintln(os.Stderr, formatter.Warning("config: "+p))
	}

	// Plain output when piped or redirected.
	if !isTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	observer, closeLog, err := openObserver(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	datasetRepo := repository.NewSQLiteDatasetRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Timeline: service.NewTimelineService(datasetRepo, observer),
		Datasets: service.NewDatasetService(datasetRepo, uow, observer),
		Exports:  service.NewExportService(observer),
		Defaults: cfg.Defaults,
	}

	// Forms and browse need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// openObserver returns the use-case logger selected by the log_file
// setting: nothing, "stderr", or a file opened for append.
func openObserver(target string) (service.UseCaseObserver, func(), error) {
	switch target {
	case "":
		return service.NoopUseCaseObserver{}, func() {}, nil
	case "stderr":
		return service.NewLogUseCaseObserver(os.Stderr), func() {}, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return service.NewLogUseCaseObserver(f), func() { f.Close() }, nil
}
