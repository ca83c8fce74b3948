package bluesky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/toxiscope/pkg/config"
	"github.com/umputun/toxiscope/pkg/domain"
)

// maxPageSize is the API's hard limit for a single getFeed page
const maxPageSize = 100

// ErrMissingCredentials indicates login was requested without a handle or app password
var ErrMissingCredentials = errors.New("bluesky credentials not configured")

// ErrAuthFailed indicates the API rejected the provided credentials
var ErrAuthFailed = errors.New("bluesky authentication failed")

// Client talks to the Bluesky XRPC API. It starts against the public
// endpoint and switches to the authenticated one after a successful Login.
type Client struct {
	httpClient *http.Client
	cfg        config.BlueskyConfig
	baseURL    string
	accessJWT  string
}

// New creates a client against the public API endpoint
func New(cfg config.BlueskyConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		cfg:     cfg,
		baseURL: cfg.PublicAPI,
	}
}

// feedView is a single feed descriptor in the getSuggestedFeeds response
type feedView struct {
	URI         string `json:"uri"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Creator     *struct {
		Handle string `json:"handle"`
	} `json:"creator"`
	LikeCount int `json:"likeCount"`
}

// feedItem is a single entry in the getFeed response
type feedItem struct {
	Post struct {
		URI    string `json:"uri"`
		Author *struct {
			Handle string `json:"handle"`
		} `json:"author"`
		Record struct {
			Text      string `json:"text"`
			CreatedAt string `json:"createdAt"`
		} `json:"record"`
	} `json:"post"`
}

// GetSuggestedFeeds fetches up to limit suggested feeds.
// Missing optional fields default to empty values.
func (c *Client) GetSuggestedFeeds(ctx context.Context, limit int) ([]domain.Feed, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}}

	var resp struct {
		Feeds []feedView `json:"feeds"`
	}
	if err := c.get(ctx, "app.bsky.feed.getSuggestedFeeds", params, &resp); err != nil {
		return nil, fmt.Errorf("get suggested feeds: %w", err)
	}

	feeds := make([]domain.Feed, 0, len(resp.Feeds))
	for _, fv := range resp.Feeds {
		feed := domain.Feed{
			URI:         fv.URI,
			Name:        fv.DisplayName,
			Description: fv.Description,
			LikeCount:   fv.LikeCount,
		}
		if fv.Creator != nil {
			feed.CreatorHandle = fv.Creator.Handle
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

// GetFeedPosts fetches a single page of posts from a feed. The limit is
// clamped to the API maximum of 100 and the cursor is sent only when set.
// Returns the posts and the next-page cursor, empty when the feed is exhausted.
func (c *Client) GetFeedPosts(ctx context.Context, feedURI string, limit int, cursor string) ([]domain.Post, string, error) {
	if limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{"feed": {feedURI}, "limit": {strconv.Itoa(limit)}}
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var resp struct {
		Feed   []feedItem `json:"feed"`
		Cursor string     `json:"cursor"`
	}
	if err := c.get(ctx, "app.bsky.feed.getFeed", params, &resp); err != nil {
		return nil, "", fmt.Errorf("get feed posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(resp.Feed))
	for _, item := range resp.Feed {
		if item.Post.Record.Text == "" {
			continue // reposted media and the like, nothing to score
		}

		post := domain.Post{
			URI:  item.Post.URI,
			Text: item.Post.Record.Text,
		}
		if item.Post.Author != nil {
			post.AuthorHandle = item.Post.Author.Handle
		}
		// best-effort timestamp parse, malformed values are treated as absent
		if ts, err := time.Parse(time.RFC3339, item.Post.Record.CreatedAt); err == nil {
			post.CreatedAt = &ts
		}
		posts = append(posts, post)
	}

	return posts, resp.Cursor, nil
}

// GetFeedPostsAll fetches up to maxPosts posts from a feed, following
// pagination cursors. Stops on an empty page or a missing cursor so a
// misbehaving backend can't keep it looping.
func (c *Client) GetFeedPostsAll(ctx context.Context, feedURI string, maxPosts int) ([]domain.Post, error) {
	var all []domain.Post
	cursor := ""

	for len(all) < maxPosts {
		batchSize := maxPosts - len(all)
		if batchSize > maxPageSize {
			batchSize = maxPageSize
		}

		posts, next, err := c.GetFeedPosts(ctx, feedURI, batchSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, posts...)

		if next == "" || len(posts) == 0 {
			break
		}
		cursor = next
	}

	if len(all) > maxPosts {
		all = all[:maxPosts]
	}
	return all, nil
}

// Login establishes an authenticated session. Credentials are taken from
// the arguments first, then from the configuration (env-sourced). On
// success subsequent requests go to the authenticated endpoint with the
// session token attached.
func (c *Client) Login(ctx context.Context, handle, appPassword string) error {
	if handle == "" {
		handle = c.cfg.Handle
	}
	if appPassword == "" {
		appPassword = c.cfg.AppPassword
	}
	if handle == "" || appPassword == "" {
		return fmt.Errorf("%w: set BSKY_USERNAME and BSKY_APP_PASSWORD", ErrMissingCredentials)
	}

	body, err := json.Marshal(map[string]string{"identifier": handle, "password": appPassword})
	if err != nil {
		return fmt.Errorf("marshal login request: %w", err)
	}

	reqURL := c.cfg.AuthAPI + "/xrpc/com.atproto.server.createSession"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login: unexpected status code: %d", resp.StatusCode)
	}

	var session struct {
		AccessJWT string `json:"accessJwt"`
		Handle    string `json:"handle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}

	c.baseURL = c.cfg.AuthAPI
	c.accessJWT = session.AccessJWT
	return nil
}

// get issues an XRPC query and decodes the JSON response into out
func (c *Client) get(ctx context.Context, method string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + "/xrpc/" + method
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.accessJWT != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessJWT)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%s: unexpected status code: %d", method, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}
