package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/omsorgsplus/booking-api/internal/api/middleware"
	"github.com/omsorgsplus/booking-api/internal/pkg/config"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin token for creating staff profiles",
	Long:  `Sign an HS256 admin token with ADMIN_JWT_SECRET. Use it as "Authorization: Bearer <token>" on POST /api/staff.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime (0 for no expiry)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.AdminJWTSecret == "" {
		return errors.New("ADMIN_JWT_SECRET is not set; staff creation is public")
	}

	signed, err := middleware.SignToken(cfg.AdminJWTSecret, tokenSubject, middleware.RoleAdmin, tokenTTL, time.Now())
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
