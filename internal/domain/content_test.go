package domain

import "testing"

func TestQuizQuestionValidate(t *testing.T) {
	t.Parallel()

	valid := QuizQuestion{
		ID:            "1",
		Question:      "Which type of learning uses labeled training data?",
		Options:       []string{"Unsupervised", "Reinforcement", "Supervised", "Deep"},
		CorrectAnswer: 2,
		Explanation:   "Supervised learning trains on labeled examples.",
		Category:      "Machine Learning",
		Difficulty:    CardDifficultyMedium,
		Source:        "AI Learning Community",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid question, got %v", err)
	}

	empty := valid
	empty.Question = ""
	if err := empty.Validate(); err != ErrQuizQuestionEmpty {
		t.Errorf("expected ErrQuizQuestionEmpty, got %v", err)
	}

	threeOptions := valid
	threeOptions.Options = valid.Options[:3]
	if err := threeOptions.Validate(); err != ErrQuizOptionCount {
		t.Errorf("expected ErrQuizOptionCount, got %v", err)
	}

	fiveOptions := valid
	fiveOptions.Options = append([]string{"Extra"}, valid.Options...)
	if err := fiveOptions.Validate(); err != ErrQuizOptionCount {
		t.Errorf("expected ErrQuizOptionCount, got %v", err)
	}

	negative := valid
	negative.CorrectAnswer = -1
	if err := negative.Validate(); err != ErrQuizAnswerIndex {
		t.Errorf("expected ErrQuizAnswerIndex, got %v", err)
	}

	tooHigh := valid
	tooHigh.CorrectAnswer = 4
	if err := tooHigh.Validate(); err != ErrQuizAnswerIndex {
		t.Errorf("expected ErrQuizAnswerIndex, got %v", err)
	}
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel()

	valid := Flashcard{
		ID:         "1",
		Question:   "What is overfitting?",
		Answer:     "A model that memorizes training data and generalizes poorly.",
		Category:   "Machine Learning",
		Difficulty: CardDifficultyHard,
		Source:     "AI Learning Community",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid flashcard, got %v", err)
	}

	noQuestion := valid
	noQuestion.Question = ""
	if err := noQuestion.Validate(); err != ErrFlashcardQuestionEmpty {
		t.Errorf("expected ErrFlashcardQuestionEmpty, got %v", err)
	}

	noAnswer := valid
	noAnswer.Answer = ""
	if err := noAnswer.Validate(); err != ErrFlashcardAnswerEmpty {
		t.Errorf("expected ErrFlashcardAnswerEmpty, got %v", err)
	}
}

func TestQuizDifficultyMatches(t *testing.T) {
	t.Parallel()

	if !DifficultyMixed.Matches(CardDifficultyEasy) ||
		!DifficultyMixed.Matches(CardDifficultyHard) {
		t.Error("mixed should match every card difficulty")
	}
	if !DifficultyHard.Matches(CardDifficultyHard) {
		t.Error("hard should match Hard")
	}
	if DifficultyEasy.Matches(CardDifficultyMedium) {
		t.Error("easy should not match Medium")
	}
}

func TestPostExcerpt(t *testing.T) {
	t.Parallel()

	p := Post{Content: "short"}
	if got := p.Excerpt(100); got != "short" {
		t.Errorf("expected untouched content, got %q", got)
	}

	p.Content = "0123456789"
	if got := p.Excerpt(4); got != "0123..." {
		t.Errorf("expected truncated excerpt, got %q", got)
	}
}
