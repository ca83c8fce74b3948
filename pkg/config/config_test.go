package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOXICITY_API_URL", "")
	t.Setenv("BSKY_USERNAME", "")
	t.Setenv("BSKY_APP_PASSWORD", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https://public.api.bsky.app", cfg.Bluesky.PublicAPI)
	assert.Equal(t, "https://bsky.social", cfg.Bluesky.AuthAPI)
	assert.Equal(t, "http://localhost:8000", cfg.Toxicity.Endpoint)
	assert.InDelta(t, 0.5, cfg.Toxicity.Threshold, 0.0001)
	assert.Equal(t, 5*time.Second, cfg.Toxicity.HealthTimeout)
	assert.Equal(t, 5, cfg.Analysis.NumFeeds)
	assert.Equal(t, 100, cfg.Analysis.MaxPosts)
	assert.Equal(t, 1, cfg.Analysis.Workers)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Listen)
}

func TestLoad_FromFile(t *testing.T) {
	content := `
server:
  listen: ":9090"
  timeout: 10s
bluesky:
  public_api: "https://example.com"
  timeout: 15s
toxicity:
  endpoint: "http://scorer:9000"
  threshold: 0.7
analysis:
  num_feeds: 3
  max_posts: 50
  workers: 4
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https://example.com", cfg.Bluesky.PublicAPI)
	assert.Equal(t, "http://scorer:9000", cfg.Toxicity.Endpoint)
	assert.InDelta(t, 0.7, cfg.Toxicity.Threshold, 0.0001)
	assert.Equal(t, 3, cfg.Analysis.NumFeeds)
	assert.Equal(t, 50, cfg.Analysis.MaxPosts)
	assert.Equal(t, 4, cfg.Analysis.Workers)

	// defaults still applied for omitted values
	assert.Equal(t, "https://bsky.social", cfg.Bluesky.AuthAPI)
	assert.Equal(t, 30*time.Second, cfg.Toxicity.Timeout)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_SCORER_URL", "http://from-env:8000")

	content := `
toxicity:
  endpoint: "${TEST_SCORER_URL}"
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Toxicity.Endpoint)
}

func TestLoad_EnvCredentials(t *testing.T) {
	t.Setenv("BSKY_USERNAME", "alice.bsky.social")
	t.Setenv("BSKY_APP_PASSWORD", "xxxx-yyyy")
	t.Setenv("TOXICITY_API_URL", "http://env-scorer:8000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "alice.bsky.social", cfg.Bluesky.Handle)
	assert.Equal(t, "xxxx-yyyy", cfg.Bluesky.AppPassword)
	assert.Equal(t, "http://env-scorer:8000", cfg.Toxicity.Endpoint)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "threshold out of range",
			content: `
toxicity:
  threshold: 1.5
`,
			errMsg: "toxicity.threshold must be between 0 and 1",
		},
		{
			name: "negative workers",
			content: `
analysis:
  workers: -2
`,
			errMsg: "analysis.workers must be at least 1",
		},
		{
			name: "negative max posts",
			content: `
analysis:
  max_posts: -1
`,
			errMsg: "analysis.max_posts must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.Server.Listen = ""
	err = VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen is required")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
