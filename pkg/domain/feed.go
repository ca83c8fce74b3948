package domain

import "time"

// Feed represents a curated Bluesky feed generator
type Feed struct {
	URI           string `json:"uri"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CreatorHandle string `json:"creator_handle"`
	LikeCount     int    `json:"like_count"`
}

// CustomFeed makes a synthetic feed for a caller-supplied URI,
// used when analyzing a specific feed instead of suggested ones
func CustomFeed(uri string) Feed {
	return Feed{URI: uri, Name: "Custom Feed"}
}

// Post represents a single post from a feed timeline.
// CreatedAt is nil when the API omits the timestamp or it fails to parse.
type Post struct {
	URI          string     `json:"uri"`
	Text         string     `json:"text"`
	AuthorHandle string     `json:"author_handle"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
