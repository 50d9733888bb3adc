package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/format"
)

func newCalcCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate airlift requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.load()
			if err != nil {
				return err
			}
			res := airlift.Calculate(in)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderResult(res, newStyles(cmd.OutOrStdout())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the full result as JSON")
	return cmd
}

func newTotalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the total daily requirement",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total daily requirement: %s tons\n", format.Tons(airlift.Total(in.Requirements)))
			return nil
		},
	}
}
