// Package gemini implements the generation interfaces on top of Google's
// Gemini API. Sampling parameters are held constant across calls so output
// style stays reproducible even though content varies.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/Justin0504/Easylearningsniper/internal/config"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/generation"
)

// Generator calls the Gemini API and parses its responses into domain
// types. It implements generation.Generator and generation.TextGenerator.
type Generator struct {
	logger  *slog.Logger
	config  config.LLMConfig
	client  *genai.Client
	limiter *rate.Limiter
}

// New creates a Generator from the LLM configuration.
//
// The caller decides what an absent API key means; this constructor
// requires one. Callers that find cfg.GeminiAPIKey empty should skip
// construction entirely and use the mock generator instead.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
			cfg.RequestsPerMinute,
		)
	}

	return &Generator{
		logger:  logger,
		config:  cfg,
		client:  client,
		limiter: limiter,
	}, nil
}

// GenerateFlashcards implements generation.Generator.
func (g *Generator) GenerateFlashcards(ctx context.Context, prompt string) ([]domain.Flashcard, error) {
	text, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}
	cards, err := ParseFlashcards(text)
	if err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "parsed flashcards from model response",
		"card_count", len(cards))
	return cards, nil
}

// GenerateQuiz implements generation.Generator.
func (g *Generator) GenerateQuiz(ctx context.Context, prompt string) ([]domain.QuizQuestion, error) {
	text, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}
	quiz, err := ParseQuiz(text)
	if err != nil {
		return nil, err
	}
	g.logger.DebugContext(ctx, "parsed quiz questions from model response",
		"question_count", len(quiz))
	return quiz, nil
}

// GenerateText implements generation.TextGenerator.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.call(ctx, prompt)
}

// call sends one prompt to the model and returns the raw response text.
// The rate limiter blocks (honoring ctx) when the per-minute quota is
// exhausted.
func (g *Generator) call(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}

	g.logger.DebugContext(ctx, "calling Gemini API",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	result, err := g.client.Models.GenerateContent(
		ctx,
		g.config.ModelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(g.config.Temperature),
			TopP:            genai.Ptr(g.config.TopP),
			TopK:            genai.Ptr(g.config.TopK),
			MaxOutputTokens: g.config.MaxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
	if result == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}
	return text, nil
}
