// ABOUTME: Cobra command for interactive blog server setup.
// ABOUTME: Launches a bubbletea TUI wizard to collect and validate the server URL.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blogdeck/internal/config"
	"blogdeck/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Point blogdeck at a blog server",
	Long:  "Interactive wizard to configure the blog base URL and search path.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(
		cfg.Server.BaseURL,
		cfg.Server.SearchPath,
		tui.ValidateServer,
	)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup cancelled.")
		return nil
	}

	baseURL, searchPath := final.Result()
	cfg.Server.BaseURL = baseURL
	cfg.Server.SearchPath = searchPath

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		fmt.Println("Config saved successfully.")
	} else {
		fmt.Printf("Config saved to %s\n", configPath)
	}
	return nil
}
