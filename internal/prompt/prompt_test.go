package prompt

import (
	"strings"
	"testing"

	"github.com/Justin0504/Easylearningsniper/internal/analysis"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

func TestRender(t *testing.T) {
	t.Parallel()

	got := Render("make {count} items about {topic}; yes, {count}", map[string]string{
		"count": "3",
		"topic": "go",
	})
	want := "make 3 items about go; yes, 3"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	// Unknown placeholders survive untouched.
	if got := Render("{missing} stays", nil); got != "{missing} stays" {
		t.Errorf("expected unknown placeholder preserved, got %q", got)
	}
}

func TestRenderQuizTemplate(t *testing.T) {
	t.Parallel()

	got := Render(BasicQuizTemplate, map[string]string{
		"count":      "3",
		"difficulty": "mixed",
		"posts":      "Intro to Transformers: attention is all you need...",
	})

	if strings.Contains(got, "{count}") || strings.Contains(got, "{difficulty}") ||
		strings.Contains(got, "{posts}") {
		t.Errorf("unsubstituted placeholder in rendered prompt:\n%s", got)
	}
	if !strings.Contains(got, "Generate 3 mixed quiz questions") {
		t.Errorf("expected substituted header, got:\n%s", got)
	}
	// The JSON shape example is part of the template, not a placeholder.
	if !strings.Contains(got, `"correctAnswer":0`) {
		t.Errorf("expected JSON shape example preserved, got:\n%s", got)
	}
}

func TestPostExcerpts(t *testing.T) {
	t.Parallel()

	posts := make([]domain.Post, 12)
	for i := range posts {
		posts[i] = domain.Post{Title: "Post", Content: "body"}
	}
	got := PostExcerpts(posts)
	if n := strings.Count(got, "\n") + 1; n != 10 {
		t.Errorf("expected 10 excerpt lines, got %d", n)
	}
}

func TestContextBlocks(t *testing.T) {
	t.Parallel()

	posts := []domain.Post{{
		ID:           "p1",
		Title:        "Intro to Transformers",
		Content:      "The transformer architecture relies on attention mechanism and deep learning.",
		AuthorName:   "Ada",
		LikeCount:    2,
		CommentCount: 1,
	}}
	analyses := analysis.AnalyzePosts(posts)

	enhanced := PostAnalysisBlock(posts, analyses)
	for _, fragment := range []string{"POST: Intro to Transformers", "Author: Ada", "Engagement: 3 interactions"} {
		if !strings.Contains(enhanced, fragment) {
			t.Errorf("enhanced block missing %q:\n%s", fragment, enhanced)
		}
	}

	simplified := TopicSummaryBlock(posts, analyses)
	for _, fragment := range []string{"Topic 1: Intro to Transformers", "Knowledge Points:", "Category:"} {
		if !strings.Contains(simplified, fragment) {
			t.Errorf("simplified block missing %q:\n%s", fragment, simplified)
		}
	}
}
