// ABOUTME: Cobra command launching the interactive blog browser TUI.
// ABOUTME: Wires the API client and saved-post store into the browse model.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blogdeck/internal/models"
	"blogdeck/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the blog interactively",
	Long: `Open the interactive browser: infinite scroll through the latest
posts, live search as you type, and tag filtering. Posts can be saved
to the local reading list or opened in the system browser.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	model := tui.NewBrowseModel(
		globalClient,
		globalConfig.GetCardMinWidth(),
		globalConfig.GetTriggerMargin(),
		tui.WithURLResolver(globalClient.ResolveURL),
		tui.WithSaver(func(post models.Post) error {
			_, err := globalSavedStore.Save(post)
			return err
		}),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
