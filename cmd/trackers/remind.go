package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/reminders"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenants"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Publish due anniversary reminders once and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		client := newRedis(cfg)
		defer client.Close()

		job := reminders.NewJob(tenants.NewRepo(db), bootstrap.NewMediator(db, logger, nil), reminders.NewPublisher(client), logger)
		res, err := job.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tenants=%d due=%d published=%d failed=%d\n", res.Tenants, res.Due, res.Published, res.Failed)
		return nil
	},
}
