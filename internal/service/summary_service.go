package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Justin0504/Easylearningsniper/internal/analysis"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/generation"
	"github.com/Justin0504/Easylearningsniper/internal/prompt"
)

// PostCategories are the editorial labels CategorizePost may return.
var PostCategories = []string{
	"AI Course",
	"Essay",
	"Technical Document",
	"Discussion",
	"Resource",
	"News",
}

// categoryKeywords maps each editorial category to the cue words the
// keyword fallback looks for, checked in PostCategories order.
var categoryKeywords = map[string][]string{
	"AI Course":          {"course", "tutorial", "lesson", "learn", "training"},
	"Essay":              {"essay", "opinion", "thoughts", "reflection", "perspective"},
	"Technical Document": {"documentation", "guide", "reference", "manual", "spec"},
	"Discussion":         {"question", "help", "discuss", "what do you think", "anyone"},
	"Resource":           {"resource", "link", "tool", "repository", "dataset"},
	"News":               {"news", "announcement", "release", "launched", "update"},
}

// defaultPostCategory labels posts no cue word matches.
const defaultPostCategory = "Discussion"

// SummaryService classifies posts and produces daily community summaries.
// Like the learning service, it treats a nil text generator as the
// offline configuration and degrades to deterministic fallbacks.
type SummaryService struct {
	textGen generation.TextGenerator
	logger  *slog.Logger
}

// NewSummaryService creates a SummaryService. The text generator may be
// nil when no model credential is configured.
func NewSummaryService(textGen generation.TextGenerator, logger *slog.Logger) (*SummaryService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{
		textGen: textGen,
		logger:  logger.With(slog.String("component", "summary_service")),
	}, nil
}

// CategorizePost assigns one of PostCategories to a post. The model's
// answer is accepted only when it names a known category exactly;
// anything else falls through to keyword matching.
func (s *SummaryService) CategorizePost(ctx context.Context, post domain.Post) string {
	if s.textGen != nil {
		p := prompt.Render(prompt.CategorizeTemplate, map[string]string{
			"title":   post.Title,
			"content": post.Excerpt(200),
		})
		label, err := s.textGen.GenerateText(ctx, p)
		if err == nil {
			label = strings.TrimSpace(label)
			for _, category := range PostCategories {
				if label == category {
					return category
				}
			}
			s.logger.WarnContext(ctx, "model returned unknown category, using keyword fallback",
				"label", label)
		} else {
			s.logger.WarnContext(ctx, "categorization call failed, using keyword fallback",
				"error", err)
		}
	}
	return categorizeByKeywords(post)
}

func categorizeByKeywords(post domain.Post) string {
	text := strings.ToLower(post.Title + " " + post.Content)
	for _, category := range PostCategories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				return category
			}
		}
	}
	return defaultPostCategory
}

// DailySummary renders a textual summary of the day's posts. Offline or
// on model failure it falls back to an extractive digest built from post
// titles and their analyzed topics.
func (s *SummaryService) DailySummary(ctx context.Context, posts []domain.Post) string {
	if len(posts) == 0 {
		return "No posts today. Check back tomorrow for community highlights!"
	}

	if s.textGen != nil {
		p := prompt.Render(prompt.DailySummaryTemplate, map[string]string{
			"posts": prompt.PostExcerpts(posts),
		})
		summary, err := s.textGen.GenerateText(ctx, p)
		if err == nil && strings.TrimSpace(summary) != "" {
			return strings.TrimSpace(summary)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "daily summary generation failed, using extractive fallback",
				"error", err)
		}
	}
	return extractiveSummary(posts)
}

// extractiveSummary lists each post with its analyzed main topics.
func extractiveSummary(posts []domain.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today the community shared %d post(s):\n", len(posts))
	for _, post := range posts {
		a := analysis.AnalyzePost(post.Title, post.Content)
		if len(a.MainTopics) > 0 {
			fmt.Fprintf(&b, "- %s (topics: %s)\n", post.Title, strings.Join(a.MainTopics, ", "))
		} else {
			fmt.Fprintf(&b, "- %s\n", post.Title)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
