// Package cmd implements the wealthwise CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"wealthwise/internal/cli"
	"wealthwise/internal/config"
	"wealthwise/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagNoSave  bool
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "wealthwise",
	Short: "Personal financial health tracker",
	Long:  "Track debt, credit utilization, payments, and goals, and see your composite financial health score.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ = config.Load()
	cli.SetCurrencySymbol(cfg.General.CurrencySymbol)

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", config.DataDir(cfg), "Directory holding the records database")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "Keep this run in memory, do not write the database")
}

func dbPath() string {
	return filepath.Join(flagDataDir, "records.db")
}

// loadRecords opens the snapshot database and builds a store from it.
// A fresh database is seeded with the starter dataset so every command
// has something to show on first run.
func loadRecords() (*store.Store, *store.Snapshot, error) {
	sn, err := store.OpenSnapshot(dbPath())
	if err != nil {
		return nil, nil, err
	}

	seed, ok, err := sn.Load()
	if err != nil {
		_ = sn.Close()
		return nil, nil, fmt.Errorf("loading records: %w", err)
	}
	if !ok {
		seed = store.DefaultSeed()
	}

	s := store.New(seed)

	if !ok && !flagNoSave {
		if err := sn.Save(s); err != nil {
			_ = sn.Close()
			return nil, nil, fmt.Errorf("seeding records: %w", err)
		}
	}

	return s, sn, nil
}

// saveRecords persists the store unless --no-save is set. The snapshot
// stays open; callers close it via defer.
func saveRecords(s *store.Store, sn *store.Snapshot) error {
	if flagNoSave {
		return nil
	}
	if err := sn.Save(s); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	return nil
}
