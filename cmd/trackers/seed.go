package main

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/seed"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
)

var (
	seedFile   string
	seedDryRun bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load YAML fixtures",
	Long:  "Validates every fixture with the API rules, then bulk loads each tenant in its own transaction.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (required)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "validate only")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	fixtures, err := seed.ParseFile(seedFile)
	if err != nil {
		return err
	}
	if err := fixtures.Prepare(civil.DateOf(time.Now())); err != nil {
		return fmt.Errorf("%s: %w", seedFile, err)
	}
	if seedDryRun {
		logger.Info("fixtures valid", "file", seedFile, "tenants", len(fixtures.Tenants))
		return nil
	}

	pool, err := bootstrap.OpenPool(cmd.Context(), bootstrap.PoolOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		return err
	}
	defer pool.Close()

	st, err := seed.NewLoader(pool, logger).Load(cmd.Context(), fixtures)
	if err != nil {
		return err
	}
	for table, n := range st.Rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", table, n)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tenant(s)\n", st.Tenants)
	return nil
}
