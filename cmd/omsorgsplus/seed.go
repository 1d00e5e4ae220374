package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
	"github.com/omsorgsplus/booking-api/internal/core/service"
	mongodb "github.com/omsorgsplus/booking-api/internal/infrastructure/db/mongo"
	"github.com/omsorgsplus/booking-api/pkg/logger"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert staff profiles from a JSON file",
	Long: `Read a JSON array of {"name", "role", "experience"} objects and create each
profile with the same validation as POST /api/staff. Stops at the first invalid entry.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "staff.json", "Path to the JSON array of staff profiles")
	rootCmd.AddCommand(seedCmd)
}

type seedEntry struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience any    `json:"experience"`
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	log := logger.Get()

	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Verify:   true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	svc := service.NewStaffService(mongodb.NewStaffRepository(db), log)

	n, err := seedStaff(ctx, f, svc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %d staff profiles\n", n)
	return nil
}

// seedStaff creates every entry in r and returns how many were stored.
func seedStaff(ctx context.Context, r io.Reader, svc ports.StaffService) (int, error) {
	var entries []seedEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	for i, e := range entries {
		experience, err := domain.ExperienceFromJSON(e.Experience)
		if err != nil {
			return i, fmt.Errorf("entry %d (%q): %w", i, e.Name, err)
		}
		if _, err := svc.CreateStaff(ctx, ports.CreateStaffInput{
			Name:       e.Name,
			Role:       e.Role,
			Experience: experience,
		}); err != nil {
			return i, fmt.Errorf("entry %d (%q): %w", i, e.Name, err)
		}
	}
	return len(entries), nil
}
