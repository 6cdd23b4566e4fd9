package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var f timelineFlags
	var format, out string

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export the filtered milestones as CSV, XLSX or a PDF report",
		Example: "  milestones export plan.xlsx --out filtered.xlsx\n" +
			"  milestones export plan.csv --status delayed --format csv --out -",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ef, err := exportFormat(format, out)
			if err != nil {
				return err
			}
			req, err := f.request(cmd, args)
			if err != nil {
				return err
			}
			resp, err := a.Timeline.Build(cmd.Context(), req)
			if err != nil {
				return err
			}

			if out == "-" {
				return a.Exports.Export(cmd.Context(), resp, ef, cmd.OutOrStdout())
			}
			if err := writeFileAtomic(out, func(w io.Writer) error {
				return a.Exports.Export(cmd.Context(), resp, ef, w)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d milestones to %s\n", len(resp.Milestones), out)
			return nil
		},
	}

	addTimelineFlags(cmd, &f, a.Defaults)
	cmd.Flags().StringVar(&format, "format", "", "csv, xlsx or pdf (default: from the --out extension)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, or - for stdout")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// exportFormat picks the explicit --format, else the output file extension.
func exportFormat(format, out string) (contract.ExportFormat, error) {
	if format != "" {
		return contract.ParseExportFormat(format)
	}
	if out == "-" {
		return "", fmt.Errorf("--format is required when writing to stdout")
	}
	ext := strings.TrimPrefix(filepath.Ext(out), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer the export format from %q; pass --format", out)
	}
	return contract.ParseExportFormat(ext)
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place, so a failed export leaves no partial file.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
