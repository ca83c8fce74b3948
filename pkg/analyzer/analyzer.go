package analyzer

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/toxiscope/pkg/domain"
)

//go:generate moq -out mocks/feed_client.go -pkg mocks -skip-ensure -fmt goimports . FeedClient
//go:generate moq -out mocks/scorer.go -pkg mocks -skip-ensure -fmt goimports . Scorer

// FeedClient provides access to feeds and their posts
type FeedClient interface {
	GetSuggestedFeeds(ctx context.Context, limit int) ([]domain.Feed, error)
	GetFeedPostsAll(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error)
	Login(ctx context.Context, handle, appPassword string) error
}

// Scorer scores batches of texts for toxicity
type Scorer interface {
	ScoreTexts(ctx context.Context, texts []string) ([]domain.ToxicityResult, error)
}

// Analyzer orchestrates feed discovery and toxicity analysis.
// Feeds are analyzed with up to workers concurrent fetch+score pipelines,
// each feed's analysis is independent. Result order always follows the
// order feeds were listed.
type Analyzer struct {
	feeds   FeedClient
	scorer  Scorer
	workers int
}

// New creates an analyzer. workers below 1 means sequential analysis.
func New(feeds FeedClient, scorer Scorer, workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{feeds: feeds, scorer: scorer, workers: workers}
}

// Login establishes an authenticated session for feed access
func (a *Analyzer) Login(ctx context.Context, handle, appPassword string) error {
	return a.feeds.Login(ctx, handle, appPassword)
}

// ListFeeds returns up to limit suggested feeds
func (a *Analyzer) ListFeeds(ctx context.Context, limit int) ([]domain.Feed, error) {
	return a.feeds.GetSuggestedFeeds(ctx, limit)
}

// AnalyzeFeed fetches up to maxPosts posts from a feed and scores them
// in a single batch. A feed with no posts yields a zeroed result without
// calling the scorer.
func (a *Analyzer) AnalyzeFeed(ctx context.Context, feed domain.Feed, maxPosts int) (domain.FeedAnalysisResult, error) {
	posts, err := a.feeds.GetFeedPostsAll(ctx, feed.URI, maxPosts)
	if err != nil {
		return domain.FeedAnalysisResult{}, fmt.Errorf("fetch posts for %q: %w", feed.URI, err)
	}

	if len(posts) == 0 {
		return domain.FeedAnalysisResult{Feed: feed, ToxicPosts: []domain.PostWithToxicity{}}, nil
	}

	texts := make([]string, len(posts))
	for i, post := range posts {
		texts[i] = post.Text
	}

	results, err := a.scorer.ScoreTexts(ctx, texts)
	if err != nil {
		return domain.FeedAnalysisResult{}, fmt.Errorf("score posts for %q: %w", feed.URI, err)
	}
	if len(results) != len(posts) {
		return domain.FeedAnalysisResult{}, fmt.Errorf("scorer returned %d results for %d posts", len(results), len(posts))
	}

	toxicPosts := []domain.PostWithToxicity{}
	totalScore := 0.0
	toxicCount := 0

	for i, result := range results {
		totalScore += result.Score
		if result.Toxic() {
			toxicCount++
			toxicPosts = append(toxicPosts, domain.PostWithToxicity{Post: posts[i], Toxicity: result})
		}
	}

	avgScore := 0.0
	if len(results) > 0 {
		avgScore = totalScore / float64(len(results))
	}

	return domain.FeedAnalysisResult{
		Feed:             feed,
		PostsAnalyzed:    len(posts),
		ToxicCount:       toxicCount,
		AvgToxicityScore: avgScore,
		ToxicPosts:       toxicPosts,
	}, nil
}

// AnalyzeFeeds analyzes multiple feeds. With feedURI set only that feed
// is analyzed, wrapped in a synthetic "Custom Feed", and numFeeds is
// ignored. Otherwise suggested feeds are listed and analyzed, a failed
// feed is logged and skipped so one bad feed doesn't abort the batch.
func (a *Analyzer) AnalyzeFeeds(ctx context.Context, numFeeds, maxPosts int, feedURI string) ([]domain.FeedAnalysisResult, error) {
	var feeds []domain.Feed
	if feedURI != "" {
		feeds = []domain.Feed{domain.CustomFeed(feedURI)}
	} else {
		listed, err := a.ListFeeds(ctx, numFeeds)
		if err != nil {
			return nil, fmt.Errorf("list feeds: %w", err)
		}
		feeds = listed
	}

	results := make([]domain.FeedAnalysisResult, 0, len(feeds))
	for _, outcome := range a.analyzeAll(ctx, feeds, maxPosts) {
		if outcome.Err != nil {
			if feedURI != "" {
				// a single explicitly requested feed has nothing to skip to
				return nil, outcome.Err
			}
			log.Printf("[WARN] skipping feed %q: %v", outcome.Feed.Name, outcome.Err)
			continue
		}
		results = append(results, outcome.Result)
	}
	return results, nil
}

// analyzeAll runs per-feed analysis with the configured worker limit,
// returning one outcome per feed in input order
func (a *Analyzer) analyzeAll(ctx context.Context, feeds []domain.Feed, maxPosts int) []domain.FeedOutcome {
	outcomes := make([]domain.FeedOutcome, len(feeds))

	g := errgroup.Group{}
	g.SetLimit(a.workers)

	for i, feed := range feeds {
		g.Go(func() error {
			result, err := a.AnalyzeFeed(ctx, feed, maxPosts)
			outcomes[i] = domain.FeedOutcome{Feed: feed, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers record failures in outcomes, never return errors

	return outcomes
}
