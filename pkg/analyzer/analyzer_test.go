package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/toxiscope/pkg/analyzer/mocks"
	"github.com/umputun/toxiscope/pkg/domain"
)

func makePosts(count int) []domain.Post {
	posts := make([]domain.Post, count)
	for i := range posts {
		posts[i] = domain.Post{
			URI:          fmt.Sprintf("at://post/%d", i),
			Text:         fmt.Sprintf("post number %d", i),
			AuthorHandle: "author.bsky.social",
		}
	}
	return posts
}

func TestAnalyzer_AnalyzeFeed(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			return makePosts(3), nil
		},
	}
	scorer := &mocks.ScorerMock{
		ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
			return []domain.ToxicityResult{
				{Score: 0.9, Label: 1},
				{Score: 0.1, Label: 0},
				{Score: 0.8, Label: 1},
			}, nil
		},
	}

	a := New(feedClient, scorer, 1)
	feed := domain.Feed{URI: "at://feed/1", Name: "Test Feed"}
	result, err := a.AnalyzeFeed(context.Background(), feed, 100)
	require.NoError(t, err)

	assert.Equal(t, feed, result.Feed)
	assert.Equal(t, 3, result.PostsAnalyzed)
	assert.Equal(t, 2, result.ToxicCount)
	assert.InDelta(t, 0.6, result.AvgToxicityScore, 0.0001)
	assert.InDelta(t, 100.0*2/3, result.ToxicityRate(), 0.0001)

	// toxic posts in original scoring order, first and third
	require.Len(t, result.ToxicPosts, result.ToxicCount)
	assert.Equal(t, "at://post/0", result.ToxicPosts[0].Post.URI)
	assert.InDelta(t, 0.9, result.ToxicPosts[0].Toxicity.Score, 0.0001)
	assert.Equal(t, "at://post/2", result.ToxicPosts[1].Post.URI)
	assert.InDelta(t, 0.8, result.ToxicPosts[1].Toxicity.Score, 0.0001)

	// scorer got the post texts in order
	require.Len(t, scorer.ScoreTextsCalls(), 1)
	assert.Equal(t, []string{"post number 0", "post number 1", "post number 2"}, scorer.ScoreTextsCalls()[0].Texts)

	require.Len(t, feedClient.GetFeedPostsAllCalls(), 1)
	assert.Equal(t, 100, feedClient.GetFeedPostsAllCalls()[0].MaxPosts)
}

func TestAnalyzer_AnalyzeFeed_NoPosts(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			return []domain.Post{}, nil
		},
	}
	scorer := &mocks.ScorerMock{
		ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
			return nil, errors.New("should not be called")
		},
	}

	a := New(feedClient, scorer, 1)
	result, err := a.AnalyzeFeed(context.Background(), domain.Feed{URI: "at://feed/empty"}, 100)
	require.NoError(t, err)

	assert.Zero(t, result.PostsAnalyzed)
	assert.Zero(t, result.ToxicCount)
	assert.Zero(t, result.AvgToxicityScore)
	assert.Zero(t, result.ToxicityRate())
	assert.Empty(t, result.ToxicPosts)
	assert.Empty(t, scorer.ScoreTextsCalls(), "empty feed must not trigger scoring")
}

func TestAnalyzer_AnalyzeFeed_Errors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		feedClient := &mocks.FeedClientMock{
			GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
				return nil, errors.New("rate limited")
			},
		}
		a := New(feedClient, &mocks.ScorerMock{}, 1)
		_, err := a.AnalyzeFeed(context.Background(), domain.Feed{URI: "at://feed/1"}, 100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch posts")
	})

	t.Run("scorer failure", func(t *testing.T) {
		feedClient := &mocks.FeedClientMock{
			GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
				return makePosts(2), nil
			},
		}
		scorer := &mocks.ScorerMock{
			ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
				return nil, errors.New("service down")
			},
		}
		a := New(feedClient, scorer, 1)
		_, err := a.AnalyzeFeed(context.Background(), domain.Feed{URI: "at://feed/1"}, 100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "score posts")
	})

	t.Run("result count mismatch", func(t *testing.T) {
		feedClient := &mocks.FeedClientMock{
			GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
				return makePosts(2), nil
			},
		}
		scorer := &mocks.ScorerMock{
			ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
				return []domain.ToxicityResult{{Score: 0.5}}, nil
			},
		}
		a := New(feedClient, scorer, 1)
		_, err := a.AnalyzeFeed(context.Background(), domain.Feed{URI: "at://feed/1"}, 100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 results for 2 posts")
	})
}

func TestAnalyzer_AnalyzeFeeds_SpecificURI(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			assert.Equal(t, "at://x", feedURI)
			return makePosts(1), nil
		},
		GetSuggestedFeedsFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) {
			return nil, errors.New("should not list feeds for a specific URI")
		},
	}
	scorer := &mocks.ScorerMock{
		ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
			return []domain.ToxicityResult{{Score: 0.2, Label: 0}}, nil
		},
	}

	a := New(feedClient, scorer, 1)
	results, err := a.AnalyzeFeeds(context.Background(), 10, 50, "at://x")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "at://x", results[0].Feed.URI)
	assert.Equal(t, "Custom Feed", results[0].Feed.Name)
	assert.Empty(t, feedClient.GetSuggestedFeedsCalls())
}

func TestAnalyzer_AnalyzeFeeds_SpecificURI_Failure(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			return nil, errors.New("not found")
		},
	}

	a := New(feedClient, &mocks.ScorerMock{}, 1)
	_, err := a.AnalyzeFeeds(context.Background(), 10, 50, "at://x")
	require.Error(t, err, "a single requested feed has nothing to skip to")
}

func TestAnalyzer_AnalyzeFeeds_SkipsFailedFeed(t *testing.T) {
	suggested := []domain.Feed{
		{URI: "at://feed/1", Name: "First"},
		{URI: "at://feed/2", Name: "Second"},
		{URI: "at://feed/3", Name: "Third"},
	}
	feedClient := &mocks.FeedClientMock{
		GetSuggestedFeedsFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) {
			assert.Equal(t, 3, limit)
			return suggested, nil
		},
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			if feedURI == "at://feed/2" {
				return nil, errors.New("boom")
			}
			return makePosts(2), nil
		},
	}
	scorer := &mocks.ScorerMock{
		ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
			return []domain.ToxicityResult{{Score: 0.3, Label: 0}, {Score: 0.7, Label: 1}}, nil
		},
	}

	a := New(feedClient, scorer, 1)
	results, err := a.AnalyzeFeeds(context.Background(), 3, 100, "")
	require.NoError(t, err, "one bad feed must not abort the batch")

	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Feed.Name)
	assert.Equal(t, "Third", results[1].Feed.Name)
}

func TestAnalyzer_AnalyzeFeeds_ListFailure(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetSuggestedFeedsFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) {
			return nil, errors.New("api down")
		},
	}

	a := New(feedClient, &mocks.ScorerMock{}, 1)
	_, err := a.AnalyzeFeeds(context.Background(), 5, 100, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list feeds")
}

func TestAnalyzer_AnalyzeFeeds_ConcurrentKeepsOrder(t *testing.T) {
	feeds := make([]domain.Feed, 10)
	for i := range feeds {
		feeds[i] = domain.Feed{URI: fmt.Sprintf("at://feed/%d", i), Name: fmt.Sprintf("Feed %d", i)}
	}

	feedClient := &mocks.FeedClientMock{
		GetSuggestedFeedsFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) {
			return feeds, nil
		},
		GetFeedPostsAllFunc: func(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
			return makePosts(1), nil
		},
	}
	scorer := &mocks.ScorerMock{
		ScoreTextsFunc: func(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
			return []domain.ToxicityResult{{Score: 0.5, Label: 1}}, nil
		},
	}

	a := New(feedClient, scorer, 4)
	results, err := a.AnalyzeFeeds(context.Background(), 10, 10, "")
	require.NoError(t, err)

	require.Len(t, results, len(feeds))
	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("Feed %d", i), result.Feed.Name, "result order follows listing order")
		assert.Equal(t, result.ToxicCount, len(result.ToxicPosts))
		assert.LessOrEqual(t, result.ToxicCount, result.PostsAnalyzed)
	}
}

func TestAnalyzer_ListFeeds(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		GetSuggestedFeedsFunc: func(ctx context.Context, limit int) ([]domain.Feed, error) {
			return []domain.Feed{{URI: "at://feed/1", Name: "One"}}, nil
		},
	}

	a := New(feedClient, &mocks.ScorerMock{}, 1)
	feeds, err := a.ListFeeds(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "One", feeds[0].Name)
	require.Len(t, feedClient.GetSuggestedFeedsCalls(), 1)
	assert.Equal(t, 20, feedClient.GetSuggestedFeedsCalls()[0].Limit)
}

func TestAnalyzer_Login(t *testing.T) {
	feedClient := &mocks.FeedClientMock{
		LoginFunc: func(ctx context.Context, handle, appPassword string) error {
			return nil
		},
	}

	a := New(feedClient, &mocks.ScorerMock{}, 1)
	require.NoError(t, a.Login(context.Background(), "alice.bsky.social", "pass"))
	require.Len(t, feedClient.LoginCalls(), 1)
	assert.Equal(t, "alice.bsky.social", feedClient.LoginCalls()[0].Handle)
}
