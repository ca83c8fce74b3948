package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/toxiscope/pkg/domain"
)

// Run is a stored analysis run with aggregate totals
type Run struct {
	ID            int64     `db:"id" json:"id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	FeedsAnalyzed int       `db:"feeds_analyzed" json:"feeds_analyzed"`
	TotalPosts    int       `db:"total_posts" json:"total_posts"`
	TotalToxic    int       `db:"total_toxic" json:"total_toxic"`
}

// OverallRate returns the toxicity rate across all feeds of the run
func (r Run) OverallRate() float64 {
	if r.TotalPosts == 0 {
		return 0
	}
	return float64(r.TotalToxic) / float64(r.TotalPosts) * 100
}

// RunResult is a stored per-feed result within a run
type RunResult struct {
	ID               int64   `db:"id" json:"id"`
	RunID            int64   `db:"run_id" json:"run_id"`
	Position         int     `db:"position" json:"position"`
	FeedURI          string  `db:"feed_uri" json:"feed_uri"`
	FeedName         string  `db:"feed_name" json:"feed_name"`
	CreatorHandle    string  `db:"creator_handle" json:"creator_handle"`
	PostsAnalyzed    int     `db:"posts_analyzed" json:"posts_analyzed"`
	ToxicCount       int     `db:"toxic_count" json:"toxic_count"`
	AvgToxicityScore float64 `db:"avg_toxicity_score" json:"avg_toxicity_score"`
	ToxicityRate     float64 `db:"toxicity_rate" json:"toxicity_rate"`
}

// SaveRun persists an analysis run and its per-feed results in one
// transaction, retrying on SQLite busy errors
func (r *Repository) SaveRun(ctx context.Context, results []domain.FeedAnalysisResult) (int64, error) {
	var runID int64

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		totalPosts, totalToxic := 0, 0
		for _, result := range results {
			totalPosts += result.PostsAnalyzed
			totalToxic += result.ToxicCount
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO runs (feeds_analyzed, total_posts, total_toxic) VALUES (?, ?, ?)`,
			len(results), totalPosts, totalToxic)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("insert run: %w", err)}
		}

		runID, err = res.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get run id: %w", err)}
		}

		for i, result := range results {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO run_results (run_id, position, feed_uri, feed_name, creator_handle,
				 posts_analyzed, toxic_count, avg_toxicity_score, toxicity_rate)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				runID, i, result.Feed.URI, result.Feed.Name, result.Feed.CreatorHandle,
				result.PostsAnalyzed, result.ToxicCount, result.AvgToxicityScore, result.ToxicityRate())
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert run result: %w", err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit run: %w", err)}
		}
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	runs := []Run{}
	err := r.db.SelectContext(ctx, &runs,
		`SELECT id, created_at, feeds_analyzed, total_posts, total_toxic
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRunResults returns per-feed results of a run in analysis order
func (r *Repository) GetRunResults(ctx context.Context, runID int64) ([]RunResult, error) {
	results := []RunResult{}
	err := r.db.SelectContext(ctx, &results,
		`SELECT id, run_id, position, feed_uri, feed_name, creator_handle,
		        posts_analyzed, toxic_count, avg_toxicity_score, toxicity_rate
		 FROM run_results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("get run results: %w", err)
	}
	return results, nil
}
