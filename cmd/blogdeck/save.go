// ABOUTME: CLI commands for the local reading list.
// ABOUTME: Provides save and saved subcommands over the markdown store.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <index>",
	Short: "Save a post to the reading list",
	Long: `Save one post from a listing or search page to the local reading
list. The index is the post's 1-based position on the page printed by
'blogdeck feed' or 'blogdeck search'.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var savedCmd = &cobra.Command{
	Use:   "saved [query]",
	Short: "List saved posts",
	Long:  "Print the local reading list, optionally filtered by a query.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSaved,
}

var (
	savePage  int
	saveQuery string
)

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(savedCmd)

	saveCmd.Flags().IntVar(&savePage, "page", 1, "Page the post appears on")
	saveCmd.Flags().StringVar(&saveQuery, "query", "", "Search query the post was found with")
}

func runSave(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index must be a number: %w", err)
	}

	post, err := selectPost(cmd, strings.TrimSpace(saveQuery), savePage, index)
	if err != nil {
		return err
	}

	saved, err := globalSavedStore.Save(*post)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	fmt.Printf("Saved %q (ID: %s)\n", post.DisplayTitle(), saved.ID.String()[:8])
	return nil
}

func runSaved(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	posts, err := globalSavedStore.List(query)
	if err != nil {
		return fmt.Errorf("failed to list saved posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Println("No saved posts.")
		return nil
	}

	for _, saved := range posts {
		fmt.Printf("---\n%s", saved.Post.DisplayTitle())
		if saved.Post.Author != "" {
			fmt.Printf(" — %s", saved.Post.DisplayAuthor())
		}
		fmt.Printf(" (saved %s)\n", saved.SavedAt.Format("2006-01-02 15:04"))
		if tags := saved.Post.TagList(); len(tags) > 0 {
			fmt.Printf("#%s\n", strings.Join(tags, " #"))
		}
		if saved.Post.URL != "" {
			fmt.Println(saved.Post.URL)
		}
	}
	return nil
}
