// ABOUTME: CLI commands for non-interactive blog reading.
// ABOUTME: Provides feed and search subcommands printing pages of posts.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blogdeck/internal/api"
	"blogdeck/internal/models"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print a page of the latest posts",
	Long:  "Fetch one page of the blog listing and print it to stdout.",
	RunE:  runFeed,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search blog posts",
	Long:  "Search posts by text or tag name and print one page of results.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	feedPage   int
	searchPage int
)

func init() {
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(searchCmd)

	feedCmd.Flags().IntVar(&feedPage, "page", 1, "Page number to fetch")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number to fetch")
}

func runFeed(cmd *cobra.Command, args []string) error {
	result, err := globalClient.ListPosts(cmd.Context(), feedPage)
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}
	printPage(result)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}

	result, err := globalClient.SearchPosts(cmd.Context(), query, searchPage)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.TotalResults == 1 {
		fmt.Println("1 result")
	} else {
		fmt.Printf("%d results\n", result.TotalResults)
	}
	printPage(result)
	return nil
}

func printPage(result *api.PageResult) {
	if len(result.Posts) == 0 {
		fmt.Println("No posts found.")
		return
	}

	for i := range result.Posts {
		post := &result.Posts[i]
		fmt.Printf("---\n%s", post.DisplayTitle())
		if post.Author != "" {
			fmt.Printf(" — %s", post.DisplayAuthor())
		}
		if post.PubDate != "" {
			fmt.Printf(" [%s]", post.PubDate)
		}
		fmt.Println()
		if tags := post.TagList(); len(tags) > 0 {
			fmt.Printf("#%s\n", strings.Join(tags, " #"))
		}
		if excerpt := post.Excerpt(200); excerpt != "" {
			fmt.Println(excerpt)
		}
		if post.URL != "" {
			fmt.Println(globalClient.ResolveURL(post.URL))
		}
	}
	if result.HasNext {
		fmt.Printf("---\nMore posts on page %d.\n", result.Page+1)
	}
}

// selectPost fetches a page and picks one post by its 1-based position.
func selectPost(cmd *cobra.Command, query string, page, index int) (*models.Post, error) {
	var result *api.PageResult
	var err error
	if query != "" {
		result, err = globalClient.SearchPosts(cmd.Context(), query, page)
	} else {
		result, err = globalClient.ListPosts(cmd.Context(), page)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	if index < 1 || index > len(result.Posts) {
		return nil, fmt.Errorf("index %d out of range: page has %d posts", index, len(result.Posts))
	}
	return &result.Posts[index-1], nil
}
