package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedAnalysisResult_ToxicityRate(t *testing.T) {
	tests := []struct {
		name     string
		analyzed int
		toxic    int
		want     float64
	}{
		{"no posts", 0, 0, 0},
		{"no toxic", 10, 0, 0},
		{"half toxic", 10, 5, 50},
		{"all toxic", 4, 4, 100},
		{"third toxic", 3, 1, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FeedAnalysisResult{PostsAnalyzed: tt.analyzed, ToxicCount: tt.toxic}
			assert.InDelta(t, tt.want, r.ToxicityRate(), 0.0001)
			assert.GreaterOrEqual(t, r.ToxicityRate(), 0.0)
			assert.LessOrEqual(t, r.ToxicityRate(), 100.0)
		})
	}
}

func TestToxicityResult_Toxic(t *testing.T) {
	assert.True(t, ToxicityResult{Score: 0.9, Label: 1}.Toxic())
	assert.False(t, ToxicityResult{Score: 0.9, Label: 0}.Toxic())
	assert.False(t, ToxicityResult{Label: 2}.Toxic())
}

func TestCustomFeed(t *testing.T) {
	feed := CustomFeed("at://did:plc:abc/app.bsky.feed.generator/test")
	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.generator/test", feed.URI)
	assert.Equal(t, "Custom Feed", feed.Name)
	assert.Empty(t, feed.Description)
	assert.Zero(t, feed.LikeCount)
}
