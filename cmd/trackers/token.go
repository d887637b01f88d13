package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/auth"
)

var (
	tokenTenant string
	tokenEmail  string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed bearer token for a tenant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		if cfg.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}
		if strings.TrimSpace(tokenTenant) == "" {
			return fmt.Errorf("--tenant is required")
		}

		ttl := cfg.Auth.JWTTTL
		if tokenTTL > 0 {
			ttl = tokenTTL
		}
		token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, ttl).Generate(tokenTenant, tokenEmail)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenTenant, "tenant", "", "tenant id")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to JWT_TTL)")
}
