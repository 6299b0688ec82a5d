// Root command for the habits CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafikhouda/habits-manager/internal/memory"
	"github.com/rafikhouda/habits-manager/internal/paths"
	"github.com/rafikhouda/habits-manager/pkg/sqlite"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Loaded configuration values, set by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configBackend string
	configLocale  string
)

// store is the attached Store instance, initialized on startup.
var store types.Store

var rootCmd = &cobra.Command{
	Use:     "habits",
	Short:   "Habits is a local-first habit tracker",
	Version: version,
	Long: `Habits tracks recurring habits (daily, weekly, or monthly), marks
them complete per calendar day, accumulates points, and exports or
imports the full state as a single backup file. All data stays in a
local data directory.`,
	PersistentPreRunE:  initStore,
	PersistentPostRunE: closeStore,
	SilenceUsage:       true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.habits-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// initStore loads config and attaches the storage backend.
func initStore(cmd *cobra.Command, args []string) error {
	// Version needs no storage.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configBackend = cfg.GetString(cfgKeyBackend)
	configDataDir = cfg.GetString(cfgKeyDataDir)
	configLocale = cfg.GetString(cfgKeyLocale)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	switch configBackend {
	case types.BackendMemory:
		store = memory.NewStore()
	default:
		store = sqlite.NewBackend()
	}

	if err := store.Attach(types.Config{Backend: configBackend, DataDir: dataDir}); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	return nil
}

// closeStore detaches the store and releases resources.
func closeStore(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Detach()
	}
	return nil
}
