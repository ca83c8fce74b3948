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

// AnalyzeCommand analyzes feeds for toxicity
type AnalyzeCommand struct {
	NumFeeds int    `long:"num-feeds" description:"number of feeds to analyze (default from config, 5)"`
	MaxPosts int    `long:"max-posts" description:"maximum posts per feed (default from config, 100)"`
	FeedURI  string `long:"feed-uri" description:"analyze a specific feed by AT URI"`
	JSON     bool   `long:"json" description:"output as JSON"`

	CommonOpts
}

// analysisJSON adds the derived toxicity rate to the JSON output
type analysisJSON struct {
	domain.FeedAnalysisResult
	ToxicityRate float64 `json:"toxicity_rate"`
}

// Execute runs the analyze command
func (c *AnalyzeCommand) Execute(_ []string) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	numFeeds := c.NumFeeds
	if numFeeds <= 0 {
		numFeeds = cfg.Analysis.NumFeeds
	}
	maxPosts := c.MaxPosts
	if maxPosts <= 0 {
		maxPosts = cfg.Analysis.MaxPosts
	}

	ctx := context.Background()
	a, err := makeAnalyzer(ctx, cfg, c.Login)
	if err != nil {
		return err
	}

	results, err := a.AnalyzeFeeds(ctx, numFeeds, maxPosts, c.FeedURI)
	if err != nil {
		return fmt.Errorf("analyze feeds: %w", err)
	}

	if c.JSON {
		out := make([]analysisJSON, len(results))
		for i, r := range results {
			out[i] = analysisJSON{FeedAnalysisResult: r, ToxicityRate: r.ToxicityRate()}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(formatAnalysisTable(results))
	return nil
}

// formatAnalysisTable renders analysis results as an aligned text table
func formatAnalysisTable(results []domain.FeedAnalysisResult) string {
	if len(results) == 0 {
		return "No results."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-30s %-8s %-8s %-8s %-10s\n", "Feed", "Posts", "Toxic", "Rate", "Avg Score"))
	sb.WriteString(strings.Repeat("-", 70) + "\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-30s %-8d %-8d %6.1f%% %9.3f\n",
			truncate(r.Feed.Name, 30), r.PostsAnalyzed, r.ToxicCount, r.ToxicityRate(), r.AvgToxicityScore))
	}
	return strings.TrimRight(sb.String(), "\n")
}
