package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/trackers-backend/config"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/auth"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/reminders"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenants"
)

var (
	serveReminders bool
	serveMigrate   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveReminders, "reminders", false, "also run the reminder scheduler")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "apply the schema before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if serveMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}

	verifier, err := buildVerifier(ctx, cfg, logger)
	if err != nil {
		return err
	}

	met := metrics.New()
	m := bootstrap.NewMediator(db, logger, met)
	tenantRepo := tenants.NewRepo(db)

	if serveReminders {
		client := newRedis(cfg)
		defer client.Close()

		job := reminders.NewJob(tenantRepo, m, reminders.NewPublisher(client), logger)
		sched := reminders.NewScheduler(job, cfg.Reminders.Cron, logger)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateRPS:     cfg.RateLimit.RPS,
		RateBurst:   cfg.RateLimit.Burst,
		AllowHeader: cfg.Auth.AllowHeaderTenant,
		DB:          db,
		Mediator:    m,
		Tenants:     tenantRepo,
		Verifier:    verifier,
		Metrics:     met,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// buildVerifier accepts our own HS256 tokens and, when configured, Firebase ID tokens.
func buildVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (auth.Verifier, error) {
	var vs []auth.Verifier
	if cfg.Auth.JWTSecret != "" {
		vs = append(vs, auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL))
	}
	if cfg.Auth.FirebaseCredentials != "" {
		client, err := auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentials)
		if err != nil {
			return nil, err
		}
		vs = append(vs, auth.NewFirebaseVerifier(client))
	}

	v := auth.Chain(vs...)
	if v == nil {
		logger.Warn("no token verifier configured, bearer tokens will be rejected")
	}
	return v, nil
}
