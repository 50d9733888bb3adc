package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/premium/importer"
	"Airlift/internal/calc/report"
	"Airlift/internal/scenario"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the historical default scenario as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return scenario.Encode(cmd.OutOrStdout(), airlift.DefaultInput())
		},
	}
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		out string
		in  report.Input
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report with the breakdown and charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.load()
			if err != nil {
				return err
			}
			in.Scenario = sc

			var buf bytes.Buffer
			if err := report.Render(&buf, in, time.Now()); err != nil {
				return err
			}
			return writeOutput(cmd, out, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "airlift-report.pdf", "Output PDF path")
	cmd.Flags().StringVar(&in.Title, "title", "", "Report title")
	cmd.Flags().StringVar(&in.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&in.Author, "author", "", "Author name")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free text added under the charts")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the scenario and its results to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.load()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := importer.WriteWorkbook(&buf, sc); err != nil {
				return err
			}
			return writeOutput(cmd, out, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "airlift.xlsx", "Output workbook path")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
