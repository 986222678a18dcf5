// ABOUTME: Root Cobra command and global state for the blogdeck CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and store initialization.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogdeck/internal/api"
	"blogdeck/internal/config"
	"blogdeck/internal/diag"
	"blogdeck/internal/storage"
)

var globalConfig *config.Config
var globalClient *api.Client
var globalSavedStore *storage.SavedStore

var rootCmd = &cobra.Command{
	Use:   "blogdeck",
	Short: "Terminal reader for paginated blogs",
	Long: `
██████╗ ██╗      ██████╗  ██████╗ ██████╗ ███████╗ ██████╗██╗  ██╗
██╔══██╗██║     ██╔═══██╗██╔════╝ ██╔══██╗██╔════╝██╔════╝██║ ██╔╝
██████╔╝██║     ██║   ██║██║  ███╗██║  ██║█████╗  ██║     █████╔╝
██╔══██╗██║     ██║   ██║██║   ██║██║  ██║██╔══╝  ██║     ██╔═██╗
██████╔╝███████╗╚██████╔╝╚██████╔╝██████╔╝███████╗╚██████╗██║  ██╗
╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝

Infinite-scroll blog browsing, live search, and a local reading list,
all from the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "setup" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		logPath, err := cfg.GetLogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
		if err := diag.Setup(logPath); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		if !cfg.HasServer() {
			return fmt.Errorf("no blog server configured - run 'blogdeck setup' first")
		}
		globalClient = api.NewClient(cfg.Server.BaseURL, cfg.GetSearchPath())

		savedDir, err := config.SavedPostsDir()
		if err != nil {
			return fmt.Errorf("failed to resolve saved posts dir: %w", err)
		}
		savedStore, err := storage.NewSavedStore(savedDir)
		if err != nil {
			return fmt.Errorf("failed to open saved posts store: %w", err)
		}
		globalSavedStore = savedStore

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalSavedStore != nil {
			_ = globalSavedStore.Close()
			globalSavedStore = nil
		}
		return nil
	},
}
