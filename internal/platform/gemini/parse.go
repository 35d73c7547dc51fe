package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/generation"
)

// ParseFlashcards decodes a model response into validated flashcards.
// The model is prompted for a bare JSON array but frequently wraps it in
// a markdown code fence, so the fence is stripped before decoding. Every
// card is validated and cards arriving without an ID get one assigned.
func ParseFlashcards(text string) ([]domain.Flashcard, error) {
	cleaned := stripCodeFence(text)

	var cards []domain.Flashcard
	if err := json.Unmarshal([]byte(cleaned), &cards); err != nil {
		return nil, fmt.Errorf("%w: failed to parse flashcard JSON: %v",
			generation.ErrInvalidResponse, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: response contained no flashcards",
			generation.ErrInvalidResponse)
	}

	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = uuid.New().String()
		}
		if err := cards[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %v",
				generation.ErrInvalidResponse, i, err)
		}
	}
	return cards, nil
}

// ParseQuiz decodes a model response into validated quiz questions.
func ParseQuiz(text string) ([]domain.QuizQuestion, error) {
	cleaned := stripCodeFence(text)

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: failed to parse quiz JSON: %v",
			generation.ErrInvalidResponse, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: response contained no quiz questions",
			generation.ErrInvalidResponse)
	}

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
		if err := questions[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: quiz question %d: %v",
				generation.ErrInvalidResponse, i, err)
		}
	}
	return questions, nil
}

// stripCodeFence removes a surrounding ```json (or bare ```) fence, if
// present, and trims whitespace.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
