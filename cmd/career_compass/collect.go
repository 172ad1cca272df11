package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/collector"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/store"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect a fresh market trend snapshot",
	Long:  "Query public popularity signals (GitHub repository counts, Stack Overflow tag activity) for the tracked technologies and write a normalized trend snapshot to a file or the database.",
	RunE:  runCollect,
}

var (
	collectOutputFile   string
	collectPreviousFile string
	collectTimeout      time.Duration
)

func init() {
	collectCmd.Flags().StringVarP(&collectOutputFile, "out", "o", "", "Path to write the snapshot JSON (required unless DATABASE_URL is set)")
	collectCmd.Flags().StringVar(&collectPreviousFile, "previous", "", "Previous snapshot to compute growth rates against")
	collectCmd.Flags().DurationVar(&collectTimeout, "timeout", 0, "Per-request timeout for source queries")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if collectOutputFile == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("no destination: provide --out or set DATABASE_URL")
	}

	ctx := context.Background()
	c := collector.New(&collector.Options{Timeout: collectTimeout})

	records, err := c.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	// Growth rates need a baseline. Prefer an explicit previous snapshot,
	// fall back to whatever the database currently holds.
	if collectPreviousFile != "" {
		previous, err := collector.ReadSnapshot(collectPreviousFile)
		if err != nil {
			return fmt.Errorf("failed to read previous snapshot: %w", err)
		}
		records = collector.ApplyGrowthRates(records, previous)
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		if collectPreviousFile == "" {
			if previous, err := st.GetTrends(ctx); err == nil && len(previous) > 0 {
				records = collector.ApplyGrowthRates(records, previous)
			}
		}

		if err := st.ReplaceTrends(ctx, records); err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Stored %d trend records\n", len(records))
	}

	if collectOutputFile != "" {
		if err := collector.WriteSnapshot(collectOutputFile, records); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Snapshot written to %s (%d records)\n", collectOutputFile, len(records))
	}

	return nil
}
