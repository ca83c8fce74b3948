package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/umputun/toxiscope/pkg/analyzer"
	"github.com/umputun/toxiscope/pkg/bluesky"
	"github.com/umputun/toxiscope/pkg/config"
	"github.com/umputun/toxiscope/pkg/repository"
	"github.com/umputun/toxiscope/pkg/toxicity"
	"github.com/umputun/toxiscope/server"
)

// ServerCommand runs the web dashboard
type ServerCommand struct {
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	CommonOpts
}

// Execute runs the server command
func (c *ServerCommand) Execute(_ []string) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Listen != "" {
		cfg.Server.Listen = c.Listen
	}

	log.Printf("[INFO] starting toxiscope server, version %s", c.Revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	a, err := makeAnalyzer(ctx, cfg, c.Login)
	if err != nil {
		return err
	}

	repo, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer repo.Close()

	srv, err := server.New(server.Config{
		Listen:   cfg.Server.Listen,
		Timeout:  cfg.Server.Timeout,
		Version:  c.Revision,
		Debug:    c.Debug,
		NumFeeds: cfg.Analysis.NumFeeds,
		MaxPosts: cfg.Analysis.MaxPosts,
	}, a, repo, toxicity.New(cfg.Toxicity))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	log.Print("[INFO] shutdown complete")
	return nil
}

// interface conformance guards
var (
	_ server.Analyzer      = (*analyzer.Analyzer)(nil)
	_ server.RunStore      = (*repository.Repository)(nil)
	_ server.HealthChecker = (*toxicity.Client)(nil)
	_ analyzer.FeedClient  = (*bluesky.Client)(nil)
	_ analyzer.Scorer      = (*toxicity.Client)(nil)
)
