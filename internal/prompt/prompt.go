// Package prompt renders generation instructions for the external model.
// Templates are fixed strings with {placeholder} markers; Render is plain
// substitution with no control flow. Each generation strategy keeps its own
// template pair but they all share this one mechanism.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Justin0504/Easylearningsniper/internal/analysis"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

// Render replaces every occurrence of each {name} placeholder with its
// value. Unknown placeholders are left untouched.
func Render(template string, substitutions map[string]string) string {
	out := template
	for name, value := range substitutions {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// maxExcerptPosts bounds how many posts feed a single prompt.
const maxExcerptPosts = 10

// PostExcerpts builds the compact context block for the basic strategy:
// one line per post, title plus a short excerpt, at most maxExcerptPosts
// posts.
func PostExcerpts(posts []domain.Post) string {
	if len(posts) > maxExcerptPosts {
		posts = posts[:maxExcerptPosts]
	}
	lines := make([]string, len(posts))
	for i, post := range posts {
		lines[i] = fmt.Sprintf("%s: %s", post.Title, post.Excerpt(100))
	}
	return strings.Join(lines, "\n")
}

// PostAnalysisBlock builds the detailed context block for the enhanced
// strategy: per-post topics, concepts, difficulty, summary, and engagement.
func PostAnalysisBlock(posts []domain.Post, analyses []domain.TopicAnalysis) string {
	sections := make([]string, len(posts))
	for i, post := range posts {
		a := analyses[i]
		sections[i] = fmt.Sprintf(`
POST: %s
Author: %s
Category: %s
Difficulty: %s
Key Topics: %s
Main Concepts: %s
Summary: %s
Content: %s
Engagement: %d interactions
---`,
			post.Title,
			authorOrUnknown(post.AuthorName),
			a.Category,
			a.Difficulty,
			strings.Join(a.MainTopics, ", "),
			strings.Join(a.KnowledgePoints, ", "),
			analysis.Summarize(post.Content),
			post.Excerpt(500),
			post.Engagement(),
		)
	}
	return strings.Join(sections, "\n")
}

// TopicSummaryBlock builds the context block for the simplified strategy:
// numbered topics with their extracted keyword and knowledge-point sets.
func TopicSummaryBlock(posts []domain.Post, analyses []domain.TopicAnalysis) string {
	sections := make([]string, len(posts))
	for i, post := range posts {
		a := analyses[i]
		sections[i] = fmt.Sprintf(`
Topic %d: %s
Main Topics: %s
Knowledge Points: %s
Difficulty: %s
Category: %s
---`,
			i+1,
			post.Title,
			strings.Join(a.MainTopics, ", "),
			strings.Join(a.KnowledgePoints, ", "),
			a.Difficulty,
			a.Category,
		)
	}
	return strings.Join(sections, "\n")
}

func authorOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
