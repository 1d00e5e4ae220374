// Package main is the entry point for the OmsorgsPlus booking API.
//
// @title                       OmsorgsPlus Booking API
// @version                     1.0
// @description                 Staff directory, bookings and contact form for OmsorgsPlus.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin token: "Bearer <jwt>"
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omsorgsplus/booking-api/internal/pkg/config"
	"github.com/omsorgsplus/booking-api/pkg/logger"
)

const serviceName = "omsorgsplus-api"

var rootCmd = &cobra.Command{
	Use:           "omsorgsplus",
	Short:         "OmsorgsPlus booking API",
	Long:          "Serves the OmsorgsPlus staff directory, booking and contact endpoints together with the static frontend.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and initialises the process logger. Commands
// fetch the logger with logger.Get afterwards.
func setup(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	return cfg, nil
}
