package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openamr/amr/internal/domain/sir"
)

func newInterpretCommand(cliCtx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interpret VALUE...",
		Short: "Interpret susceptibility test values on the S/I/R scale",
		Example: `  amr interpret S susceptible resistant
  amr interpret --json R I S`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interpreter := sir.NewInterpreter(cliCtx.Logger)
			outcome, err := interpreter.Interpret(args)
			if err != nil {
				return err
			}

			if cliCtx.JSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"values":          outcome.Values,
					"uninterpretable": outcome.Uninterpretable,
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tVALUE")
			for i, raw := range args {
				v := outcome.Values[i].String()
				if v == "" {
					v = "-"
				}
				fmt.Fprintf(w, "%s\t%s\n", raw, v)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(outcome.Uninterpretable) > 0 {
				fmt.Fprintf(os.Stderr, "uninterpretable: %d input(s)\n", len(outcome.Uninterpretable))
			}
			return nil
		},
	}
}

func newMICCommand(cliCtx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mic VALUE...",
		Short: "Parse minimum inhibitory concentration values",
		Example: `  amr mic "<=0.5" "2" ">32"
  amr mic --json "0,125"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type result struct {
				Input            string  `json:"input"`
				Valid            bool    `json:"valid"`
				Normalized       string  `json:"normalized,omitempty"`
				Operator         string  `json:"operator,omitempty"`
				Value            float64 `json:"value,omitempty"`
				OnDilutionSeries bool    `json:"on_dilution_series,omitempty"`
			}

			results := make([]result, len(args))
			for i, raw := range args {
				results[i] = result{Input: raw}
				mic, ok := sir.ParseMIC(raw)
				if !ok {
					continue
				}
				results[i].Valid = true
				results[i].Normalized = mic.String()
				results[i].Operator = string(mic.Op)
				results[i].Value = mic.Value
				results[i].OnDilutionSeries = mic.OnDilutionSeries()
			}

			if cliCtx.JSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tNORMALIZED\tDILUTION SERIES")
			for _, r := range results {
				if !r.Valid {
					fmt.Fprintf(w, "%s\t-\t-\n", r.Input)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%t\n", r.Input, r.Normalized, r.OnDilutionSeries)
			}
			return w.Flush()
		},
	}
}
