// ABOUTME: HTTP validation for a configured blog server.
// ABOUTME: Confirms the paginated listing endpoint answers like the blog app.
package tui

import (
	"context"
	"fmt"

	"blogdeck/internal/api"
)

// ValidateServer checks the server by fetching the first listing page.
// The context allows cancellation when the user quits during validation.
func ValidateServer(ctx context.Context, baseURL, searchPath string) error {
	client := api.NewClient(baseURL, searchPath)
	result, err := client.ListPosts(ctx, 1)
	if err != nil {
		return fmt.Errorf("server check failed: %w", err)
	}
	if len(result.Posts) == 0 && result.HasNext {
		return fmt.Errorf("server returned an empty first page but claims more")
	}
	return nil
}
