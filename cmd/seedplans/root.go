package main

import (
	"context"
	"fmt"
	"io"

	"mlmsite-api/config"
	"mlmsite-api/database"
	"mlmsite-api/internal/domain/plans"
	"mlmsite-api/internal/infra/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:           "seedplans",
		Short:         "Upsert the compiled-in plan catalog into the database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := plans.DefaultCatalog()
			if dryRun {
				return printCatalog(cmd.OutOrStdout(), catalog)
			}

			config.LoadEnv()
			logging.Setup(config.LOG_LEVEL, config.LOG_FORMAT)
			database.InitDB(config.DB_URL)

			store := plans.NewGormStore(database.DB)
			return runSeed(cmd.Context(), cmd.OutOrStdout(), store, catalog)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the catalog and list titles without touching the database")
	return cmd
}

func printCatalog(w io.Writer, catalog plans.Catalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}
	for i, title := range catalog.Titles() {
		fmt.Fprintf(w, "%2d  %s\n", i+1, title)
	}
	fmt.Fprintf(w, "%d plans, locale %s\n", len(catalog), plans.SeedLocale)
	return nil
}

func runSeed(ctx context.Context, w io.Writer, store plans.Store, catalog plans.Catalog) error {
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := plans.NewSeeder(store, plans.WithLogger(logrus.StandardLogger())).
		Seed(ctx, catalog, plans.SeedLocale)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Seeded %d plans: %d created, %d updated, %d errors\n",
		res.Total, len(res.Created), len(res.Updated), len(res.Errors))
	for _, msg := range res.Messages() {
		fmt.Fprintf(w, "  error: %s\n", msg)
	}
	return nil
}
