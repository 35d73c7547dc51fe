package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Justin0504/Easylearningsniper/internal/analysis"
	"github.com/Justin0504/Easylearningsniper/internal/cache"
	"github.com/Justin0504/Easylearningsniper/internal/domain"
	"github.com/Justin0504/Easylearningsniper/internal/generation"
	"github.com/Justin0504/Easylearningsniper/internal/mockgen"
	"github.com/Justin0504/Easylearningsniper/internal/prompt"
	"github.com/Justin0504/Easylearningsniper/internal/taxonomy"
)

// Strategy selects how a generation request is turned into prompts.
type Strategy string

const (
	// StrategyBasic prompts with raw post excerpts.
	StrategyBasic Strategy = "basic"

	// StrategyEnhanced prompts with full per-post topic analysis.
	StrategyEnhanced Strategy = "enhanced"

	// StrategySimplified prompts with compact topic summaries and skews
	// toward harder questions.
	StrategySimplified Strategy = "simplified"

	// StrategyPredefined ignores posts and prompts from a curated catalog
	// entry named by Request.TopicName.
	StrategyPredefined Strategy = "predefined"
)

// Default request sizes, applied when the caller leaves them zero.
const (
	DefaultFlashcardCount = 5
	DefaultQuizCount      = 5
)

// Request describes one learning-content generation call.
type Request struct {
	Strategy Strategy

	// Posts feed the post-based strategies. Ignored by predefined.
	Posts []domain.Post

	// TopicName names a catalog entry for the predefined strategy.
	TopicName string

	FlashcardCount int
	QuizCount      int
	QuizDifficulty domain.QuizDifficulty
}

func (r Request) withDefaults() Request {
	if r.Strategy == "" {
		r.Strategy = StrategyBasic
	}
	if r.FlashcardCount <= 0 {
		r.FlashcardCount = DefaultFlashcardCount
	}
	if r.QuizCount <= 0 {
		r.QuizCount = DefaultQuizCount
	}
	if r.QuizDifficulty == "" {
		r.QuizDifficulty = domain.DifficultyMixed
	}
	return r
}

// LearningService orchestrates the generation pipeline: cache lookup,
// prompt construction per strategy, concurrent flashcard and quiz
// generation, and mock fallback.
//
// A nil generator is a valid configuration and routes every request
// straight to the mock path. Generator failures never escape Generate;
// they degrade to mock content with a warning.
type LearningService struct {
	generator   generation.Generator
	resultCache *cache.Cache
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a LearningService.
type Option func(*LearningService)

// WithClock replaces the wall clock used for generation IDs.
func WithClock(now func() time.Time) Option {
	return func(s *LearningService) {
		s.now = now
	}
}

// NewLearningService creates a LearningService. The generator may be nil
// when no model credential is configured; the cache is required.
func NewLearningService(
	generator generation.Generator,
	resultCache *cache.Cache,
	logger *slog.Logger,
	opts ...Option,
) (*LearningService, error) {
	if resultCache == nil {
		return nil, NewGenerationServiceError("init", "result cache cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &LearningService{
		generator:   generator,
		resultCache: resultCache,
		logger:      logger.With(slog.String("component", "learning_service")),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate produces flashcards and a quiz for the request. The only
// errors it returns are request-shape errors; generation failures fall
// back to mock content.
func (s *LearningService) Generate(ctx context.Context, req Request) (*domain.LearningContent, error) {
	req = req.withDefaults()

	switch req.Strategy {
	case StrategyBasic, StrategyEnhanced, StrategySimplified:
		return s.generateFromPosts(ctx, req)
	case StrategyPredefined:
		return s.generateForTopic(ctx, req)
	default:
		return nil, NewGenerationServiceError("generate", "unknown strategy "+string(req.Strategy), nil)
	}
}

func (s *LearningService) generateFromPosts(ctx context.Context, req Request) (*domain.LearningContent, error) {
	flashKey := s.resultCache.Key("flashcards", len(req.Posts), req.FlashcardCount, string(req.Strategy))
	quizKey := s.resultCache.Key("quiz", len(req.Posts), req.QuizCount,
		string(req.Strategy), string(req.QuizDifficulty))

	content := &domain.LearningContent{}
	if v, ok := s.resultCache.Get(flashKey); ok {
		content.Flashcards = v.([]domain.Flashcard)
	}
	if v, ok := s.resultCache.Get(quizKey); ok {
		content.Quiz = v.([]domain.QuizQuestion)
	}
	if content.Flashcards != nil && content.Quiz != nil {
		s.logger.DebugContext(ctx, "serving learning content from cache",
			"strategy", req.Strategy,
			"post_count", len(req.Posts))
		return content, nil
	}

	// Enhanced and simplified prompts need per-post analysis; basic does not.
	var analyses []domain.TopicAnalysis
	if req.Strategy == StrategyEnhanced || req.Strategy == StrategySimplified {
		analyses = analysis.AnalyzePosts(req.Posts)
	}

	g, gctx := errgroup.WithContext(ctx)
	if content.Flashcards == nil {
		g.Go(func() error {
			cards := s.postFlashcards(gctx, req, analyses)
			s.resultCache.Set(flashKey, cards)
			content.Flashcards = cards
			return nil
		})
	}
	if content.Quiz == nil {
		g.Go(func() error {
			quiz := s.postQuiz(gctx, req, analyses)
			s.resultCache.Set(quizKey, quiz)
			content.Quiz = quiz
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *LearningService) postFlashcards(ctx context.Context, req Request, analyses []domain.TopicAnalysis) []domain.Flashcard {
	if s.generator == nil {
		s.logger.InfoContext(ctx, "no generator configured, using mock flashcards",
			"strategy", req.Strategy)
		return mockgen.FlashcardsFromPosts(req.Posts, req.FlashcardCount)
	}

	cards, err := s.generator.GenerateFlashcards(ctx, s.flashcardPrompt(req, analyses))
	if err != nil {
		s.logger.WarnContext(ctx, "flashcard generation failed, falling back to mock content",
			"strategy", req.Strategy,
			"error", err)
		return mockgen.FlashcardsFromPosts(req.Posts, req.FlashcardCount)
	}
	if len(cards) > req.FlashcardCount {
		cards = cards[:req.FlashcardCount]
	}
	return cards
}

func (s *LearningService) postQuiz(ctx context.Context, req Request, analyses []domain.TopicAnalysis) []domain.QuizQuestion {
	if s.generator == nil {
		s.logger.InfoContext(ctx, "no generator configured, using mock quiz",
			"strategy", req.Strategy)
		return mockgen.QuizFromPosts(req.Posts, req.QuizCount, req.QuizDifficulty)
	}

	quiz, err := s.generator.GenerateQuiz(ctx, s.quizPrompt(req, analyses))
	if err != nil {
		s.logger.WarnContext(ctx, "quiz generation failed, falling back to mock content",
			"strategy", req.Strategy,
			"error", err)
		return mockgen.QuizFromPosts(req.Posts, req.QuizCount, req.QuizDifficulty)
	}
	if len(quiz) > req.QuizCount {
		quiz = quiz[:req.QuizCount]
	}
	return quiz
}

func (s *LearningService) flashcardPrompt(req Request, analyses []domain.TopicAnalysis) string {
	count := strconv.Itoa(req.FlashcardCount)
	switch req.Strategy {
	case StrategyEnhanced:
		return prompt.Render(prompt.EnhancedFlashcardTemplate, map[string]string{
			"count": count,
			"posts": prompt.PostAnalysisBlock(req.Posts, analyses),
		})
	case StrategySimplified:
		return prompt.Render(prompt.SimplifiedFlashcardTemplate, map[string]string{
			"count":  count,
			"topics": prompt.TopicSummaryBlock(req.Posts, analyses),
		})
	default:
		return prompt.Render(prompt.BasicFlashcardTemplate, map[string]string{
			"count": count,
			"posts": prompt.PostExcerpts(req.Posts),
		})
	}
}

func (s *LearningService) quizPrompt(req Request, analyses []domain.TopicAnalysis) string {
	count := strconv.Itoa(req.QuizCount)
	difficulty := string(req.QuizDifficulty)
	switch req.Strategy {
	case StrategyEnhanced:
		return prompt.Render(prompt.EnhancedQuizTemplate, map[string]string{
			"count":      count,
			"difficulty": difficulty,
			"posts":      prompt.PostAnalysisBlock(req.Posts, analyses),
		})
	case StrategySimplified:
		return prompt.Render(prompt.SimplifiedQuizTemplate, map[string]string{
			"count":      count,
			"difficulty": difficulty,
			"topics":     prompt.TopicSummaryBlock(req.Posts, analyses),
		})
	default:
		return prompt.Render(prompt.BasicQuizTemplate, map[string]string{
			"count":      count,
			"difficulty": difficulty,
			"posts":      prompt.PostExcerpts(req.Posts),
		})
	}
}

// generateForTopic handles the predefined strategy. Catalog results are
// not cached: the prompt embeds a per-call generation ID precisely so
// repeated requests vary.
func (s *LearningService) generateForTopic(ctx context.Context, req Request) (*domain.LearningContent, error) {
	if req.TopicName == "" {
		return nil, NewGenerationServiceError("generate", "topic name cannot be empty", nil)
	}

	def, err := taxonomy.FindTopic(req.TopicName)
	if err != nil {
		s.logger.WarnContext(ctx, "topic not in catalog, using generic mock content",
			"topic", req.TopicName)
		return &domain.LearningContent{
			Flashcards: mockgen.FlashcardsForTopic(req.TopicName, "", req.FlashcardCount),
			Quiz:       mockgen.QuizForTopic(req.TopicName, "", req.QuizCount, req.QuizDifficulty),
		}, nil
	}

	if s.generator == nil {
		s.logger.InfoContext(ctx, "no generator configured, using mock topic content",
			"topic", def.Name)
		return &domain.LearningContent{
			Flashcards: mockgen.FlashcardsForTopic(def.Name, def.Category, req.FlashcardCount),
			Quiz:       mockgen.QuizForTopic(def.Name, def.Category, req.QuizCount, req.QuizDifficulty),
		}, nil
	}

	a := analysis.AnalyzeDefinition(def)
	generationID := strconv.FormatInt(s.now().UnixMilli(), 10)
	base := map[string]string{
		"topic":            def.Name,
		"description":      def.Description,
		"keywords":         strings.Join(a.MainTopics, ", "),
		"knowledge_points": strings.Join(a.KnowledgePoints, ", "),
		"generation_id":    generationID,
		"category":         def.Category,
	}

	content := &domain.LearningContent{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subs := map[string]string{
			"count":      strconv.Itoa(req.FlashcardCount),
			"difficulty": string(def.Difficulty),
		}
		for k, v := range base {
			subs[k] = v
		}
		cards, err := s.generator.GenerateFlashcards(gctx,
			prompt.Render(prompt.PredefinedFlashcardTemplate, subs))
		if err != nil {
			s.logger.WarnContext(gctx, "topic flashcard generation failed, falling back to mock content",
				"topic", def.Name,
				"error", err)
			cards = mockgen.FlashcardsForTopic(def.Name, def.Category, req.FlashcardCount)
		} else if len(cards) > req.FlashcardCount {
			cards = cards[:req.FlashcardCount]
		}
		content.Flashcards = cards
		return nil
	})
	g.Go(func() error {
		subs := map[string]string{
			"count":      strconv.Itoa(req.QuizCount),
			"difficulty": string(req.QuizDifficulty),
		}
		for k, v := range base {
			subs[k] = v
		}
		quiz, err := s.generator.GenerateQuiz(gctx,
			prompt.Render(prompt.PredefinedQuizTemplate, subs))
		if err != nil {
			s.logger.WarnContext(gctx, "topic quiz generation failed, falling back to mock content",
				"topic", def.Name,
				"error", err)
			quiz = mockgen.QuizForTopic(def.Name, def.Category, req.QuizCount, req.QuizDifficulty)
		} else if len(quiz) > req.QuizCount {
			quiz = quiz[:req.QuizCount]
		}
		content.Quiz = quiz
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return content, nil
}
