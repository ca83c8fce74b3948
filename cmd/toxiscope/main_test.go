package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/toxiscope/pkg/domain"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))
	assert.Equal(t, strings.Repeat("x", 30), truncate(strings.Repeat("x", 30), 30))
	assert.Equal(t, strings.Repeat("x", 28)+"..", truncate(strings.Repeat("x", 31), 30))
}

func TestFormatFeedTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No feeds found.", formatFeedTable(nil))
	})

	t.Run("feeds", func(t *testing.T) {
		feeds := []domain.Feed{
			{Name: "Cat Pictures", CreatorHandle: "alice.bsky.social", LikeCount: 42},
			{Name: strings.Repeat("Long Name ", 5), CreatorHandle: "bob.bsky.social", LikeCount: 7},
		}
		out := formatFeedTable(feeds)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 4) // header, separator, two rows

		assert.Contains(t, lines[0], "Name")
		assert.Contains(t, lines[0], "Creator")
		assert.Contains(t, lines[2], "Cat Pictures")
		assert.Contains(t, lines[2], "42")
		assert.Contains(t, lines[3], "..", "long name truncated")
	})
}

func TestFormatAnalysisTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No results.", formatAnalysisTable(nil))
	})

	t.Run("results", func(t *testing.T) {
		results := []domain.FeedAnalysisResult{
			{
				Feed:             domain.Feed{Name: "Test Feed"},
				PostsAnalyzed:    100,
				ToxicCount:       25,
				AvgToxicityScore: 0.321,
			},
		}
		out := formatAnalysisTable(results)
		assert.Contains(t, out, "Test Feed")
		assert.Contains(t, out, "25.0%")
		assert.Contains(t, out, "0.321")
	})
}

// writeTestConfig writes a config pointing both clients at the given servers
func writeTestConfig(t *testing.T, blueskyURL, toxicityURL string) string {
	t.Helper()
	content := fmt.Sprintf(`
bluesky:
  public_api: %q
  auth_api: %q
toxicity:
  endpoint: %q
`, blueskyURL, blueskyURL, toxicityURL)

	path := filepath.Join(t.TempDir(), "toxiscope.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestListFeedsCommand_Execute(t *testing.T) {
	bsky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/xrpc/app.bsky.feed.getSuggestedFeeds", r.URL.Path)
		fmt.Fprint(w, `{"feeds": [{"uri": "at://feed/1", "displayName": "One"}]}`)
	}))
	defer bsky.Close()

	cmd := ListFeedsCommand{Limit: 5}
	cmd.SetCommon(CommonOpts{Config: writeTestConfig(t, bsky.URL, "http://127.0.0.1:1")})
	require.NoError(t, cmd.Execute(nil))
}

func TestListFeedsCommand_Execute_FetchError(t *testing.T) {
	bsky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bsky.Close()

	cmd := ListFeedsCommand{Limit: 5}
	cmd.SetCommon(CommonOpts{Config: writeTestConfig(t, bsky.URL, "http://127.0.0.1:1")})
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch feeds")
}

func TestAnalyzeCommand_Execute(t *testing.T) {
	bsky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/xrpc/app.bsky.feed.getSuggestedFeeds":
			fmt.Fprint(w, `{"feeds": [{"uri": "at://feed/1", "displayName": "One"}]}`)
		case "/xrpc/app.bsky.feed.getFeed":
			fmt.Fprint(w, `{"feed": [
				{"post": {"uri": "at://post/1", "record": {"text": "hello"}}},
				{"post": {"uri": "at://post/2", "record": {"text": "awful"}}}
			]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer bsky.Close()

	scorer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/score", r.URL.Path)
		fmt.Fprint(w, `{"results": [{"score": 0.1, "label": 0}, {"score": 0.9, "label": 1}]}`)
	}))
	defer scorer.Close()

	cmd := AnalyzeCommand{NumFeeds: 1, MaxPosts: 10, JSON: true}
	cmd.SetCommon(CommonOpts{Config: writeTestConfig(t, bsky.URL, scorer.URL)})
	require.NoError(t, cmd.Execute(nil))
}

func TestAnalyzeCommand_Execute_FeedURIFailure(t *testing.T) {
	bsky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bsky.Close()

	cmd := AnalyzeCommand{FeedURI: "at://x"}
	cmd.SetCommon(CommonOpts{Config: writeTestConfig(t, bsky.URL, "http://127.0.0.1:1")})
	err := cmd.Execute(nil)
	require.Error(t, err, "single feed failure propagates")
}

func TestListFeedsCommand_LoginMissingCredentials(t *testing.T) {
	t.Setenv("BSKY_USERNAME", "")
	t.Setenv("BSKY_APP_PASSWORD", "")

	cmd := ListFeedsCommand{Limit: 5}
	cmd.SetCommon(CommonOpts{
		Config: writeTestConfig(t, "http://127.0.0.1:1", "http://127.0.0.1:1"),
		Login:  true,
	})
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")
}

func TestSetupLog(t *testing.T) {
	// smoke test both modes
	setupLog(false)
	setupLog(true, "secret")
}
