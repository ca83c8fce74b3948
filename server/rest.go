package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// statusHandler returns server status and toxicity service availability
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	toxicity := "unavailable"
	if s.health.HealthCheck(r.Context()) {
		toxicity = "ok"
	}

	status := map[string]interface{}{
		"status":       "ok",
		"version":      s.config.Version,
		"toxicity_api": toxicity,
		"time":         time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// feedsHandler returns suggested feeds
func (s *Server) feedsHandler(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)

	feeds, err := s.analyzer.ListFeeds(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// analyzeRequest is the POST /api/v1/analyze payload
type analyzeRequest struct {
	NumFeeds int    `json:"num_feeds"`
	MaxPosts int    `json:"max_posts"`
	FeedURI  string `json:"feed_uri"`
}

// analyzeHandler runs an analysis and stores it in the run history
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.NumFeeds <= 0 {
		req.NumFeeds = s.config.NumFeeds
	}
	if req.MaxPosts <= 0 {
		req.MaxPosts = s.config.MaxPosts
	}

	results, err := s.analyzer.AnalyzeFeeds(r.Context(), req.NumFeeds, req.MaxPosts, req.FeedURI)
	if err != nil {
		log.Printf("[ERROR] analysis failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	runID, err := s.store.SaveRun(r.Context(), results)
	if err != nil {
		// analysis succeeded, history is best-effort
		log.Printf("[WARN] failed to save run: %v", err)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"run_id": runID, "results": results})
}

// runsHandler returns recent analysis runs
func (s *Server) runsHandler(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)

	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list runs: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, runs)
}

// runResultsHandler returns per-feed results of a single run
func (s *Server) runResultsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid run ID"), http.StatusBadRequest)
		return
	}

	results, err := s.store.GetRunResults(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get run results: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, results)
}

// intQuery reads a positive int query parameter with a default
func intQuery(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
