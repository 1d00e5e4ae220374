package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/omsorgsplus/booking-api/internal/app"
	"github.com/omsorgsplus/booking-api/pkg/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the API and static frontend server. Stops gracefully on SIGINT or SIGTERM.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	log := logger.Get()
	if servePort > 0 {
		cfg.Port = strconv.Itoa(servePort)
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return a.Run(ctx)
}
