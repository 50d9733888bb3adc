// Package cmd provides the airlift command line tool.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/logging"
	"Airlift/internal/scenario"
)

type rootOptions struct {
	scenario string
	debug    bool
	logger   *slog.Logger
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "airlift",
		Short: "Estimate whether an airlift fleet meets daily supply requirements",
		Long: `airlift compares daily supply requirements with the theoretical daily
capacity of a transport fleet and reports the shortage or surplus.

Without --scenario the historical Stalingrad figures are used. Run
'airlift defaults > scenario.yaml' to get an editable starting point.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.debug {
				level = "debug"
			}
			opts.logger = logging.NewText(cmd.ErrOrStderr(), level)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.scenario, "scenario", "s", "", "Scenario file (.yaml, .json or .xlsx)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newCalcCmd(opts),
		newTotalCmd(opts),
		newDefaultsCmd(),
		newReportCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) load() (airlift.Input, error) {
	in, err := scenario.Load(o.scenario)
	if err != nil {
		return airlift.Input{}, err
	}
	o.log().Debug("scenario loaded", "path", o.scenario,
		"requirements", len(in.Requirements), "aircraft", len(in.Fleet))
	return in, nil
}

func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		o.logger = logging.NewText(os.Stderr, "warn")
	}
	return o.logger
}
