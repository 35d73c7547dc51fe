package generation

import (
	"context"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

// Generator produces structured learning content from a rendered prompt.
// Errors are returned, never swallowed: the caller owns the fallback
// decision.
type Generator interface {
	// GenerateFlashcards asks the external model for a JSON array of
	// flashcards. Every returned card is schema-valid.
	GenerateFlashcards(ctx context.Context, prompt string) ([]domain.Flashcard, error)

	// GenerateQuiz asks the external model for a JSON array of quiz
	// questions. Every returned question satisfies the four-option
	// invariant.
	GenerateQuiz(ctx context.Context, prompt string) ([]domain.QuizQuestion, error)
}

// TextGenerator produces free-form text, used for post categorization and
// daily summaries rather than structured card output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
