package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/toxiscope/pkg/domain"
	"github.com/umputun/toxiscope/pkg/repository"
)

//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/run_store.go -pkg mocks -skip-ensure -fmt goimports . RunStore
//go:generate moq -out mocks/health_checker.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker

//go:embed templates/*.html
var templatesFS embed.FS

// Analyzer runs feed toxicity analysis
type Analyzer interface {
	ListFeeds(ctx context.Context, limit int) ([]domain.Feed, error)
	AnalyzeFeeds(ctx context.Context, numFeeds, maxPosts int, feedURI string) ([]domain.FeedAnalysisResult, error)
}

// RunStore persists and retrieves analysis run history
type RunStore interface {
	SaveRun(ctx context.Context, results []domain.FeedAnalysisResult) (int64, error)
	ListRuns(ctx context.Context, limit int) ([]repository.Run, error)
	GetRunResults(ctx context.Context, runID int64) ([]repository.RunResult, error)
}

// HealthChecker probes the toxicity scoring service
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// Config holds server configuration
type Config struct {
	Listen   string
	Timeout  time.Duration
	Version  string
	Debug    bool
	NumFeeds int // default feed count for dashboard-triggered analysis
	MaxPosts int // default posts per feed
}

// Server renders the toxicity dashboard and serves the JSON API
type Server struct {
	config    Config
	analyzer  Analyzer
	store     RunStore
	health    HealthChecker
	templates *template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, analyzer Analyzer, store RunStore, health HealthChecker) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"score": func(v float64) string { return fmt.Sprintf("%.3f", v) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		config:    cfg,
		analyzer:  analyzer,
		store:     store,
		health:    health,
		templates: tmpl,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("toxiscope", "umputun", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /feeds", s.feedsHandler)
		r.HandleFunc("POST /analyze", s.analyzeHandler)
		r.HandleFunc("GET /runs", s.runsHandler)
		r.HandleFunc("GET /runs/{id}", s.runResultsHandler)
	})

	s.router.HandleFunc("GET /{$}", s.dashboardHandler)
	s.router.HandleFunc("POST /analyze", s.dashboardAnalyzeHandler)
}
