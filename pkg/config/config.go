package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Dashboard server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:toxiscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Run history database configuration"`

	Bluesky  BlueskyConfig  `yaml:"bluesky" json:"bluesky" jsonschema:"description=Bluesky API configuration"`
	Toxicity ToxicityConfig `yaml:"toxicity" json:"toxicity" jsonschema:"description=Toxicity scoring service configuration"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" jsonschema:"description=Analysis defaults"`
}

// BlueskyConfig holds Bluesky API settings. Handle and AppPassword are
// only needed for authenticated feed access and normally come from the
// BSKY_USERNAME and BSKY_APP_PASSWORD environment variables.
type BlueskyConfig struct {
	PublicAPI   string        `yaml:"public_api" json:"public_api" jsonschema:"default=https://public.api.bsky.app,description=Public (unauthenticated) API endpoint"`
	AuthAPI     string        `yaml:"auth_api" json:"auth_api" jsonschema:"default=https://bsky.social,description=Authenticated API endpoint used after login"`
	Handle      string        `yaml:"handle" json:"handle" jsonschema:"description=Account handle (can use environment variable)"`
	AppPassword string        `yaml:"app_password" json:"app_password" jsonschema:"description=App password (can use environment variable)"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ToxicityConfig holds toxicity scoring service settings
type ToxicityConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=http://localhost:8000,description=Toxicity scoring service base URL"`
	Threshold     float64       `yaml:"threshold" json:"threshold" jsonschema:"default=0.5,minimum=0,maximum=1,description=Classification threshold sent with each scoring request"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Scoring request timeout"`
	HealthTimeout time.Duration `yaml:"health_timeout" json:"health_timeout" jsonschema:"default=5s,description=Health probe timeout"`
}

// AnalysisConfig holds analysis defaults
type AnalysisConfig struct {
	NumFeeds int `yaml:"num_feeds" json:"num_feeds" jsonschema:"default=5,minimum=1,description=Number of suggested feeds to analyze"`
	MaxPosts int `yaml:"max_posts" json:"max_posts" jsonschema:"default=100,minimum=1,description=Maximum posts to analyze per feed"`
	Workers  int `yaml:"workers" json:"workers" jsonschema:"default=1,minimum=1,description=Concurrent feed analyses (1 = sequential)"`
}

// Load reads configuration from a YAML file. A missing file is not an
// error, the result is defaults plus environment overrides, matching
// the env-only setup the tool supports out of the box.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		switch {
		case err != nil && !os.IsNotExist(err):
			return nil, fmt.Errorf("read config file: %w", err)
		case err == nil:
			// expand environment variables
			expanded := os.ExpandEnv(string(data))
			if uErr := yaml.Unmarshal([]byte(expanded), &cfg); uErr != nil {
				return nil, fmt.Errorf("parse config: %w", uErr)
			}
		}
	}

	cfg.setDefaults()
	cfg.applyEnv()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero-valued fields with defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:toxiscope.db?cache=shared&mode=rwc"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Bluesky.PublicAPI == "" {
		c.Bluesky.PublicAPI = "https://public.api.bsky.app"
	}
	if c.Bluesky.AuthAPI == "" {
		c.Bluesky.AuthAPI = "https://bsky.social"
	}
	if c.Bluesky.Timeout == 0 {
		c.Bluesky.Timeout = 30 * time.Second
	}

	if c.Toxicity.Endpoint == "" {
		c.Toxicity.Endpoint = os.Getenv("TOXICITY_API_URL")
	}
	if c.Toxicity.Endpoint == "" {
		c.Toxicity.Endpoint = "http://localhost:8000"
	}
	if c.Toxicity.Threshold == 0 {
		c.Toxicity.Threshold = 0.5
	}
	if c.Toxicity.Timeout == 0 {
		c.Toxicity.Timeout = 30 * time.Second
	}
	if c.Toxicity.HealthTimeout == 0 {
		c.Toxicity.HealthTimeout = 5 * time.Second
	}

	if c.Analysis.NumFeeds == 0 {
		c.Analysis.NumFeeds = 5
	}
	if c.Analysis.MaxPosts == 0 {
		c.Analysis.MaxPosts = 100
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = 1
	}
}

// applyEnv applies environment overrides for credentials not set in the file
func (c *Config) applyEnv() {
	if c.Bluesky.Handle == "" {
		c.Bluesky.Handle = os.Getenv("BSKY_USERNAME")
	}
	if c.Bluesky.AppPassword == "" {
		c.Bluesky.AppPassword = os.Getenv("BSKY_APP_PASSWORD")
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Toxicity.Threshold < 0 || cfg.Toxicity.Threshold > 1 {
		return fmt.Errorf("toxicity.threshold must be between 0 and 1")
	}
	if cfg.Analysis.NumFeeds < 1 {
		return fmt.Errorf("analysis.num_feeds must be at least 1")
	}
	if cfg.Analysis.MaxPosts < 1 {
		return fmt.Errorf("analysis.max_posts must be at least 1")
	}
	if cfg.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1")
	}
	return nil
}
