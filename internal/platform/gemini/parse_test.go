package gemini

import (
	"errors"
	"testing"

	"github.com/Justin0504/Easylearningsniper/internal/generation"
)

func TestParseFlashcardsBareArray(t *testing.T) {
	t.Parallel()

	text := `[
		{"id":"fc1","question":"What is a goroutine?","answer":"A lightweight thread managed by the Go runtime","category":"Web Development","difficulty":"Easy","source":"post"},
		{"question":"What does TLS provide?","answer":"Encrypted transport","category":"Security","difficulty":"Medium","source":"post"}
	]`

	cards, err := ParseFlashcards(text)
	if err != nil {
		t.Fatalf("ParseFlashcards returned error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].ID != "fc1" {
		t.Errorf("expected provided ID to be kept, got %q", cards[0].ID)
	}
	if cards[1].ID == "" {
		t.Error("expected missing ID to be filled in")
	}
}

func TestParseFlashcardsStripsCodeFence(t *testing.T) {
	t.Parallel()

	text := "```json\n" +
		`[{"question":"Q","answer":"A","category":"General","difficulty":"Easy","source":"post"}]` +
		"\n```"

	cards, err := ParseFlashcards(text)
	if err != nil {
		t.Fatalf("ParseFlashcards returned error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
}

func TestParseFlashcardsRejectsMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
	}{
		{"not JSON", "I could not generate flashcards for this content."},
		{"JSON object not array", `{"question":"Q","answer":"A"}`},
		{"empty array", `[]`},
		{"missing answer", `[{"question":"Q","answer":""}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFlashcards(tc.text)
			if !errors.Is(err, generation.ErrInvalidResponse) {
				t.Errorf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestParseQuizValidQuestions(t *testing.T) {
	t.Parallel()

	text := "```\n" + `[
		{"question":"Which layer does HTTP live at?","options":["Link","Network","Transport","Application"],"correctAnswer":3,"explanation":"HTTP is an application protocol.","category":"Web Development","difficulty":"Medium","source":"post"}
	]` + "\n```"

	quiz, err := ParseQuiz(text)
	if err != nil {
		t.Fatalf("ParseQuiz returned error: %v", err)
	}
	if len(quiz) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz))
	}
	if quiz[0].ID == "" {
		t.Error("expected missing ID to be filled in")
	}
	if quiz[0].CorrectAnswer != 3 {
		t.Errorf("expected correctAnswer 3, got %d", quiz[0].CorrectAnswer)
	}
}

func TestParseQuizRejectsBrokenInvariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
	}{
		{"three options", `[{"question":"Q","options":["a","b","c"],"correctAnswer":0}]`},
		{"answer out of range", `[{"question":"Q","options":["a","b","c","d"],"correctAnswer":4}]`},
		{"negative answer", `[{"question":"Q","options":["a","b","c","d"],"correctAnswer":-1}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseQuiz(tc.text)
			if !errors.Is(err, generation.ErrInvalidResponse) {
				t.Errorf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[1]`, `[1]`},
		{"json fence", "```json\n[1]\n```", `[1]`},
		{"bare fence", "```\n[1]\n```", `[1]`},
		{"surrounding whitespace", "  \n```json\n[1]\n```\n  ", `[1]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := stripCodeFence(tc.in); got != tc.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
