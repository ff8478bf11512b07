package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/database/postgres"
)

func newMigrateCommand(cliCtx *CLIContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the taxonomy database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				migrator, err := postgres.NewMigrator(cliCtx.Config.Database, cliCtx.Logger)
				if err != nil {
					return err
				}
				defer migrator.Close()
				return migrator.Up()
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				migrator, err := postgres.NewMigrator(cliCtx.Config.Database, cliCtx.Logger)
				if err != nil {
					return err
				}
				defer migrator.Close()
				return migrator.Down()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				migrator, err := postgres.NewMigrator(cliCtx.Config.Database, cliCtx.Logger)
				if err != nil {
					return err
				}
				defer migrator.Close()
				version, dirty, err := migrator.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Populate the database with the built-in taxonomy dataset",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				conn, err := postgres.NewConnection(ctx, cliCtx.Config.Database, cliCtx.Logger)
				if err != nil {
					return err
				}
				defer conn.Close()

				repo := postgres.NewTaxonomyRepository(conn, cliCtx.Logger)
				if err := repo.Seed(ctx, taxonomy.Seed(), taxonomy.DefaultSiteCodes()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "taxonomy dataset seeded")
				return nil
			},
		},
	)

	return cmd
}
