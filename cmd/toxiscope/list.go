package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/umputun/toxiscope/pkg/config"
	"github.com/umputun/toxiscope/pkg/domain"
)

// ListFeedsCommand lists suggested feeds
type ListFeedsCommand struct {
	Limit int  `long:"limit" default:"20" description:"maximum number of feeds to list"`
	JSON  bool `long:"json" description:"output as JSON"`

	CommonOpts
}

// Execute runs the list-feeds command
func (c *ListFeedsCommand) Execute(_ []string) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	a, err := makeAnalyzer(ctx, cfg, c.Login)
	if err != nil {
		return err
	}

	feeds, err := a.ListFeeds(ctx, c.Limit)
	if err != nil {
		return fmt.Errorf("fetch feeds: %w", err)
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(feeds)
	}

	fmt.Println(formatFeedTable(feeds))
	return nil
}

// formatFeedTable renders feeds as an aligned text table
func formatFeedTable(feeds []domain.Feed) string {
	if len(feeds) == 0 {
		return "No feeds found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-30s %-25s %-10s\n", "Name", "Creator", "Likes"))
	sb.WriteString(strings.Repeat("-", 65) + "\n")

	for _, feed := range feeds {
		sb.WriteString(fmt.Sprintf("%-30s %-25s %-10d\n",
			truncate(feed.Name, 30), truncate(feed.CreatorHandle, 25), feed.LikeCount))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// truncate shortens s to max characters, marking the cut with ".."
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-2] + ".."
}
