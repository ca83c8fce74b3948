package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/toxiscope/pkg/domain"
	"github.com/umputun/toxiscope/pkg/repository"
)

// dashboardData is what the dashboard template renders
type dashboardData struct {
	Version     string
	Healthy     bool
	Feeds       []domain.Feed
	FeedsErr    string
	Runs        []repository.Run
	Results     []domain.FeedAnalysisResult
	Summary     *analysisSummary
	AnalysisErr string
	NumFeeds    int
	MaxPosts    int
}

// analysisSummary holds the overall metrics shown above per-feed results
type analysisSummary struct {
	Feeds      int
	TotalPosts int
	TotalToxic int
	Rate       float64
}

func summarize(results []domain.FeedAnalysisResult) *analysisSummary {
	s := &analysisSummary{Feeds: len(results)}
	for _, r := range results {
		s.TotalPosts += r.PostsAnalyzed
		s.TotalToxic += r.ToxicCount
	}
	if s.TotalPosts > 0 {
		s.Rate = float64(s.TotalToxic) / float64(s.TotalPosts) * 100
	}
	return s
}

// dashboardHandler renders the main dashboard page
func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(r)
	s.renderDashboard(w, data)
}

// dashboardAnalyzeHandler runs an analysis from the dashboard form and
// renders the results inline
func (s *Server) dashboardAnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	numFeeds := formInt(r, "num_feeds", s.config.NumFeeds)
	maxPosts := formInt(r, "max_posts", s.config.MaxPosts)
	feedURI := r.FormValue("feed_uri")

	data := s.baseData(r)
	data.NumFeeds, data.MaxPosts = numFeeds, maxPosts

	results, err := s.analyzer.AnalyzeFeeds(r.Context(), numFeeds, maxPosts, feedURI)
	if err != nil {
		log.Printf("[ERROR] dashboard analysis failed: %v", err)
		data.AnalysisErr = err.Error()
		s.renderDashboard(w, data)
		return
	}

	if _, err := s.store.SaveRun(r.Context(), results); err != nil {
		log.Printf("[WARN] failed to save run: %v", err)
	}

	data.Results = results
	data.Summary = summarize(results)
	if runs, err := s.store.ListRuns(r.Context(), 10); err == nil {
		data.Runs = runs // refresh after save
	}
	s.renderDashboard(w, data)
}

// baseData collects the data every dashboard render needs
func (s *Server) baseData(r *http.Request) dashboardData {
	data := dashboardData{
		Version:  s.config.Version,
		Healthy:  s.health.HealthCheck(r.Context()),
		NumFeeds: s.config.NumFeeds,
		MaxPosts: s.config.MaxPosts,
	}

	feeds, err := s.analyzer.ListFeeds(r.Context(), 20)
	if err != nil {
		log.Printf("[WARN] failed to list feeds for dashboard: %v", err)
		data.FeedsErr = err.Error()
	} else {
		data.Feeds = feeds
	}

	runs, err := s.store.ListRuns(r.Context(), 10)
	if err != nil {
		log.Printf("[WARN] failed to list runs for dashboard: %v", err)
	} else {
		data.Runs = runs
	}
	return data
}

func (s *Server) renderDashboard(w http.ResponseWriter, data dashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		log.Printf("[ERROR] failed to render dashboard: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// formInt reads a positive int form value with a default
func formInt(r *http.Request, name string, def int) int {
	if v := r.FormValue(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
