package toxicity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/umputun/toxiscope/pkg/config"
	"github.com/umputun/toxiscope/pkg/domain"
)

// Client scores text batches against the toxicity service
type Client struct {
	httpClient   *http.Client
	healthClient *http.Client
	baseURL      string
	threshold    float64
}

// New creates a client for the given scoring service configuration
func New(cfg config.ToxicityConfig) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		healthClient: &http.Client{Timeout: cfg.HealthTimeout},
		baseURL:      cfg.Endpoint,
		threshold:    cfg.Threshold,
	}
}

// scoreRequest is the /score request payload
type scoreRequest struct {
	Texts     []string `json:"texts"`
	Threshold float64  `json:"threshold"`
}

// scoreResponse is the /score response payload, one result per input text
type scoreResponse struct {
	Results []struct {
		Score float64 `json:"score"`
		Label int     `json:"label"`
	} `json:"results"`
}

// ScoreTexts scores a batch of texts in a single request, returning one
// result per text in input order. Empty input returns an empty slice
// without calling the service.
func (c *Client) ScoreTexts(ctx context.Context, texts []string) ([]domain.ToxicityResult, error) {
	if len(texts) == 0 {
		return []domain.ToxicityResult{}, nil
	}

	body, err := json.Marshal(scoreRequest{Texts: texts, Threshold: c.threshold})
	if err != nil {
		return nil, fmt.Errorf("marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("score request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score: unexpected status code: %d", resp.StatusCode)
	}

	var scored scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&scored); err != nil {
		return nil, fmt.Errorf("decode score response: %w", err)
	}
	if len(scored.Results) != len(texts) {
		return nil, fmt.Errorf("score: got %d results for %d texts", len(scored.Results), len(texts))
	}

	results := make([]domain.ToxicityResult, len(scored.Results))
	for i, r := range scored.Results {
		results[i] = domain.ToxicityResult{Score: r.Score, Label: r.Label}
	}
	return results, nil
}

// HealthCheck probes the service health endpoint. Any transport failure
// or non-200 status means unavailable, never an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return false
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
