package domain

// ToxicityResult is the score for a single text returned by the scoring service.
// Label 1 marks the text as toxic. SentimentScore is part of the scoring
// contract but the current service never populates it, kept for compatibility.
type ToxicityResult struct {
	Score          float64 `json:"score"`
	Label          int     `json:"label"`
	SentimentScore float64 `json:"sentiment_score,omitempty"`
}

// Toxic reports if the result classifies the text as toxic
func (r ToxicityResult) Toxic() bool { return r.Label == 1 }

// PostWithToxicity pairs a post with its toxicity score,
// produced only for posts classified toxic
type PostWithToxicity struct {
	Post     Post           `json:"post"`
	Toxicity ToxicityResult `json:"toxicity"`
}

// FeedAnalysisResult aggregates toxicity stats for a single feed.
// ToxicPosts keeps the order posts were scored in.
type FeedAnalysisResult struct {
	Feed              Feed               `json:"feed"`
	PostsAnalyzed     int                `json:"posts_analyzed"`
	ToxicCount        int                `json:"toxic_count"`
	AvgToxicityScore  float64            `json:"avg_toxicity_score"`
	AvgSentimentScore float64            `json:"avg_sentiment_score,omitempty"`
	ToxicPosts        []PostWithToxicity `json:"toxic_posts"`
}

// ToxicityRate returns the percentage of analyzed posts classified toxic,
// 0 when nothing was analyzed
func (r FeedAnalysisResult) ToxicityRate() float64 {
	if r.PostsAnalyzed == 0 {
		return 0
	}
	return float64(r.ToxicCount) / float64(r.PostsAnalyzed) * 100
}

// FeedOutcome is the per-feed result of a multi-feed analysis,
// either a result or the error that failed the feed
type FeedOutcome struct {
	Feed   Feed
	Result FeedAnalysisResult
	Err    error
}
