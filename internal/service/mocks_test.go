package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

// MockGenerator mocks the generation.Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateFlashcards(ctx context.Context, prompt string) ([]domain.Flashcard, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockGenerator) GenerateQuiz(ctx context.Context, prompt string) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

// MockTextGenerator mocks the generation.TextGenerator interface
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
