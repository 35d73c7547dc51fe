// Package analysis derives topic structure from free text: main topics,
// knowledge points, an inferred difficulty, and a category bucket. All
// functions are pure; the keyword tables live in the taxonomy package.
package analysis

import (
	"strings"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/taxonomy"
)

const (
	maxMainTopics      = 5
	maxKnowledgePoints = 8

	// minSummarySentence filters fragments out of extractive summaries.
	minSummarySentence = 20
)

// AnalyzePost extracts a TopicAnalysis from a post's title and content.
func AnalyzePost(title, content string) domain.TopicAnalysis {
	topics := extractMainTopics(title, content)
	points := extractKnowledgePoints(title, content)
	return domain.TopicAnalysis{
		MainTopics:      topics,
		KnowledgePoints: points,
		Difficulty:      InferDifficulty(topics, points),
		Category:        Categorize(topics),
	}
}

// AnalyzePosts analyzes each post in order.
func AnalyzePosts(posts []domain.Post) []domain.TopicAnalysis {
	analyses := make([]domain.TopicAnalysis, len(posts))
	for i, post := range posts {
		analyses[i] = AnalyzePost(post.Title, post.Content)
	}
	return analyses
}

// AnalyzeDefinition projects a catalog entry onto the same TopicAnalysis
// shape the post analyzer produces, so the prompt builder can treat both
// sources uniformly. Difficulty and category come straight from the
// catalog; keyword and knowledge-point sets are capped like post analyses.
func AnalyzeDefinition(def *domain.TopicDefinition) domain.TopicAnalysis {
	return domain.TopicAnalysis{
		MainTopics:      capped(def.Keywords, maxMainTopics),
		KnowledgePoints: capped(def.KnowledgePoints, maxKnowledgePoints),
		Difficulty:      def.Difficulty,
		Category:        def.Category,
	}
}

// extractMainTopics matches taxonomy keywords as case-insensitive
// substrings of title+content. Results keep taxonomy order and are capped
// at maxMainTopics; this is deliberately not relevance-ranked.
func extractMainTopics(title, content string) []string {
	text := strings.ToLower(title + " " + content)

	var topics []string
	seen := make(map[string]bool)
	for _, keyword := range taxonomy.TopicKeywords {
		if seen[keyword] || !strings.Contains(text, keyword) {
			continue
		}
		seen[keyword] = true
		topics = append(topics, keyword)
		if len(topics) == maxMainTopics {
			break
		}
	}
	return topics
}

// extractKnowledgePoints runs the concept patterns over the raw
// (non-lowercased) text and keeps the last whitespace-delimited token of
// each match, lower-cased, deduplicated, capped at maxKnowledgePoints.
func extractKnowledgePoints(title, content string) []string {
	text := title + " " + content

	var points []string
	seen := make(map[string]bool)
	for _, pattern := range taxonomy.ConceptPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			fields := strings.Fields(match)
			if len(fields) == 0 {
				continue
			}
			point := strings.ToLower(fields[len(fields)-1])
			if seen[point] {
				continue
			}
			seen[point] = true
			points = append(points, point)
			if len(points) == maxKnowledgePoints {
				return points
			}
		}
	}
	return points
}

// InferDifficulty scores the merged topics and knowledge points against
// the difficulty vocabularies. The thresholds are asymmetric on purpose:
// beginner needs a clear majority above three hits, while two advanced
// hits already classify as advanced.
func InferDifficulty(topics, knowledgePoints []string) domain.AnalysisDifficulty {
	merged := strings.ToLower(strings.Join(topics, " ") + " " + strings.Join(knowledgePoints, " "))

	advancedCount := countContained(merged, taxonomy.AdvancedTopics) +
		countContained(merged, taxonomy.AdvancedConcepts)
	beginnerCount := countContained(merged, taxonomy.BeginnerTopics)

	if beginnerCount > advancedCount && beginnerCount > 3 {
		return domain.AnalysisBeginner
	}
	if advancedCount > 1 {
		return domain.AnalysisAdvanced
	}
	return domain.AnalysisIntermediate
}

// Categorize assigns the first category bucket containing any of the main
// topics, in bucket priority order.
func Categorize(topics []string) string {
	for _, bucket := range taxonomy.CategoryBuckets {
		for _, topic := range topics {
			for _, candidate := range bucket.Topics {
				if topic == candidate {
					return bucket.Name
				}
			}
		}
	}
	return taxonomy.DefaultCategory
}

// Summarize produces a short extractive summary: the first two sentences
// longer than minSummarySentence characters.
func Summarize(content string) string {
	var sentences []string
	for _, s := range strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		s = strings.TrimSpace(s)
		if len(s) > minSummarySentence {
			sentences = append(sentences, s)
		}
		if len(sentences) == 2 {
			break
		}
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}

func countContained(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

func capped(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	return values[:max]
}
