// Package main implements the entry point for the learning-content
// generation pipeline. It reads one JSON request from stdin, runs the
// requested operation, and writes the JSON result to stdout.
//
// Operations: generate (default), categorize, daily_summary, list_topics.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Justin0504/Easylearningsniper/internal/cache"
	"github.com/Justin0504/Easylearningsniper/internal/config"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/generation"
	"github.com/Justin0504/Easylearningsniper/internal/platform/gemini"
	"github.com/Justin0504/Easylearningsniper/internal/platform/logger"
	"github.com/Justin0504/Easylearningsniper/internal/service"
	"github.com/Justin0504/Easylearningsniper/internal/taxonomy"
)

// request is the stdin payload. Posts feed the post-based operations;
// Topic names a catalog entry for the predefined strategy.
type request struct {
	Operation      string        `json:"operation"`
	Strategy       string        `json:"strategy"`
	Topic          string        `json:"topic"`
	Posts          []domain.Post `json:"posts"`
	FlashcardCount int           `json:"flashcard_count"`
	QuizCount      int           `json:"quiz_count"`
	Difficulty     string        `json:"difficulty"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("sniper failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appLogger := logger.Setup(cfg.Server)

	var (
		gen     generation.Generator
		textGen generation.TextGenerator
	)
	if cfg.LLM.GeminiAPIKey != "" {
		g, err := gemini.New(ctx, appLogger, cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		gen, textGen = g, g
	} else {
		appLogger.Info("no Gemini API key configured, serving mock content")
	}

	resultCache := cache.New(
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		cfg.Cache.MaxEntries,
	)

	learning, err := service.NewLearningService(gen, resultCache, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize learning service: %w", err)
	}
	summary, err := service.NewSummaryService(textGen, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize summary service: %w", err)
	}

	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode request: %w", err)
	}

	var result any
	switch req.Operation {
	case "", "generate":
		result, err = learning.Generate(ctx, service.Request{
			Strategy:       service.Strategy(req.Strategy),
			Posts:          req.Posts,
			TopicName:      req.Topic,
			FlashcardCount: req.FlashcardCount,
			QuizCount:      req.QuizCount,
			QuizDifficulty: domain.QuizDifficulty(req.Difficulty),
		})
		if err != nil {
			return err
		}
	case "categorize":
		categories := make(map[string]string, len(req.Posts))
		for _, post := range req.Posts {
			categories[post.ID] = summary.CategorizePost(ctx, post)
		}
		result = categories
	case "daily_summary":
		result = map[string]string{"summary": summary.DailySummary(ctx, req.Posts)}
	case "list_topics":
		result = taxonomy.AvailableTopics()
	default:
		return fmt.Errorf("unknown operation %q", req.Operation)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
