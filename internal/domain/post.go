package domain

import (
	"strings"
	"time"
)

// PostType enumerates the content formats a community post can carry.
type PostType string

const (
	PostTypeText      PostType = "TEXT"
	PostTypeVideo     PostType = "VIDEO"
	PostTypePDF       PostType = "PDF"
	PostTypeSlides    PostType = "SLIDES"
	PostTypeVoiceNote PostType = "VOICE_NOTE"
)

// Post is a community post as supplied by the post-storage subsystem.
// It is a read-only input to the generation pipeline; this package never
// mutates or persists it.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Type         PostType  `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorName   string    `json:"author_name"`
	Categories   []string  `json:"categories"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
}

// Engagement is the combined like and comment count, used to rank posts
// when building prompt context.
func (p *Post) Engagement() int {
	return p.LikeCount + p.CommentCount
}

// Excerpt returns at most max runes of the post content, with a trailing
// ellipsis when the content was truncated.
func (p *Post) Excerpt(max int) string {
	runes := []rune(p.Content)
	if len(runes) <= max {
		return p.Content
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
