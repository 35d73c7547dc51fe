package domain

import (
	"errors"
	"strings"
)

// Validation errors for generated learning content.
var (
	// ErrFlashcardQuestionEmpty is returned when a flashcard has no question.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardAnswerEmpty is returned when a flashcard has no answer.
	ErrFlashcardAnswerEmpty = errors.New("flashcard answer cannot be empty")

	// ErrQuizQuestionEmpty is returned when a quiz question has no question text.
	ErrQuizQuestionEmpty = errors.New("quiz question text cannot be empty")

	// ErrQuizOptionCount is returned when a quiz question does not have
	// exactly four options.
	ErrQuizOptionCount = errors.New("quiz question must have exactly four options")

	// ErrQuizAnswerIndex is returned when a quiz question's correct-answer
	// index falls outside its options.
	ErrQuizAnswerIndex = errors.New("quiz correct answer index out of range")
)

// QuizOptionCount is the fixed number of options every quiz question carries.
const QuizOptionCount = 4

// CardDifficulty is the difficulty label attached to generated items.
type CardDifficulty string

const (
	CardDifficultyEasy   CardDifficulty = "Easy"
	CardDifficultyMedium CardDifficulty = "Medium"
	CardDifficultyHard   CardDifficulty = "Hard"
)

// QuizDifficulty is the caller-requested difficulty for quiz generation.
// DifficultyMixed asks for a spread rather than a single level.
type QuizDifficulty string

const (
	DifficultyEasy   QuizDifficulty = "easy"
	DifficultyMedium QuizDifficulty = "medium"
	DifficultyHard   QuizDifficulty = "hard"
	DifficultyMixed  QuizDifficulty = "mixed"
)

// Matches reports whether a card at the given difficulty satisfies the
// requested quiz difficulty. Mixed matches everything.
func (d QuizDifficulty) Matches(card CardDifficulty) bool {
	if d == DifficultyMixed {
		return true
	}
	return string(d) == strings.ToLower(string(card))
}

// Flashcard is a question/answer pair with category, difficulty, and
// source attribution. PostID is set only for cards derived from a
// specific community post.
type Flashcard struct {
	ID         string         `json:"id"`
	Question   string         `json:"question"`
	Answer     string         `json:"answer"`
	Category   string         `json:"category"`
	Difficulty CardDifficulty `json:"difficulty"`
	Source     string         `json:"source"`
	PostID     string         `json:"postId,omitempty"`
}

// Validate checks the flashcard carries the required fields.
func (f *Flashcard) Validate() error {
	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}
	if f.Answer == "" {
		return ErrFlashcardAnswerEmpty
	}
	return nil
}

// QuizQuestion is a four-option multiple-choice item with explanation and
// source attribution.
//
// Invariant: len(Options) == QuizOptionCount and
// 0 <= CorrectAnswer < len(Options).
type QuizQuestion struct {
	ID            string         `json:"id"`
	Question      string         `json:"question"`
	Options       []string       `json:"options"`
	CorrectAnswer int            `json:"correctAnswer"`
	Explanation   string         `json:"explanation"`
	Category      string         `json:"category"`
	Difficulty    CardDifficulty `json:"difficulty"`
	Source        string         `json:"source"`
	PostID        string         `json:"postId,omitempty"`
}

// Validate checks the quiz question invariants.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return ErrQuizQuestionEmpty
	}
	if len(q.Options) != QuizOptionCount {
		return ErrQuizOptionCount
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ErrQuizAnswerIndex
	}
	return nil
}

// LearningContent is the combined result of one generation request.
type LearningContent struct {
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}
