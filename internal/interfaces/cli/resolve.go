package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appresolve "github.com/openamr/amr/internal/application/resolve"
	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
)

// newBuiltinService wires a resolution service over the built-in dataset.
func newBuiltinService(log logging.Logger) (appresolve.Service, error) {
	table := taxonomy.SeedTable()
	resolver, err := domresolve.NewResolver(table, taxonomy.DefaultSiteCodes(), log)
	if err != nil {
		return nil, err
	}
	return appresolve.NewService(resolver, table, nil, nil, log), nil
}

func newResolveCommand(cliCtx *CLIContext) *cobra.Command {
	var (
		coagulase    bool
		coagulaseAll bool
		lancefield   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Resolve microorganism names to taxonomic codes",
		Example: `  amr resolve "S. aureus" "E. coli" MRSA
  amr resolve --coagulase "S. epidermidis"
  amr resolve --lancefield "S. pyogenes"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newBuiltinService(cliCtx.Logger)
			if err != nil {
				return err
			}

			opts := domresolve.Options{Lancefield: lancefield}
			switch {
			case coagulaseAll:
				opts.Coagulase = domresolve.CoagulaseGroupAll
			case coagulase:
				opts.Coagulase = domresolve.CoagulaseGroupNegative
			}

			result, err := svc.Resolve(context.Background(), &appresolve.ResolveInput{
				Names:   args,
				Options: opts,
			})
			if err != nil {
				return err
			}

			if cliCtx.JSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INPUT\tCODE")
			for i, name := range args {
				code := string(result.Codes[i])
				if code == "" {
					code = "-"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, code)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(result.Unresolved) > 0 {
				fmt.Fprintf(os.Stderr, "unresolved: %d of %d input(s)\n", len(result.Unresolved), len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&coagulase, "coagulase", false, "group coagulase-negative staphylococci under STACNS")
	cmd.Flags().BoolVar(&coagulaseAll, "coagulase-all", false, "group all staphylococci by coagulase production")
	cmd.Flags().BoolVar(&lancefield, "lancefield", false, "group streptococci by Lancefield antigen")

	return cmd
}

func newLookupCommand(cliCtx *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup CODE",
		Short: "Show the taxonomy record behind a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newBuiltinService(cliCtx.Logger)
			if err != nil {
				return err
			}
			org, err := svc.Lookup(context.Background(), args[0])
			if err != nil {
				return err
			}
			if cliCtx.JSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(org)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Code:\t%s\n", org.Code)
			fmt.Fprintf(w, "Fullname:\t%s\n", org.Fullname)
			fmt.Fprintf(w, "Kingdom:\t%s\n", org.Kingdom)
			if org.Family != "" {
				fmt.Fprintf(w, "Family:\t%s\n", org.Family)
			}
			fmt.Fprintf(w, "Genus:\t%s\n", org.Genus)
			if org.Species != "" {
				fmt.Fprintf(w, "Species:\t%s\n", org.Species)
			}
			if org.Gram != "" {
				fmt.Fprintf(w, "Gram:\t%s\n", org.Gram)
			}
			if org.Authors != "" {
				fmt.Fprintf(w, "Reference:\t%s, %d\n", org.Authors, org.Year)
			}
			return w.Flush()
		},
	}
}
