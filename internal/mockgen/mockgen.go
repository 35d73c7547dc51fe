// Package mockgen produces deterministic, offline learning content. It is
// the fallback for every external-model failure and the primary path when
// no API credential is configured, so it must always return schema-valid
// items without touching the network.
//
// Every generator honors the same sizing rule: at most
// min(count, available items) results, never padded by duplication.
package mockgen

import (
	"fmt"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

// fallbackCategory labels items synthesized from posts, which carry no
// reliable category of their own.
const fallbackCategory = "General"

// topicCategory labels topic-keyed items when the caller has no matched
// catalog entry to take a category from.
const topicCategory = "AI/ML"

// FlashcardsFromPosts synthesizes one flashcard per post, templated from
// the post title, returning at most count cards.
func FlashcardsFromPosts(posts []domain.Post, count int) []domain.Flashcard {
	n := min(count, len(posts))
	cards := make([]domain.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		post := posts[i]
		cards = append(cards, domain.Flashcard{
			ID:         fmt.Sprintf("mock_flashcard_%d", i+1),
			Question:   fmt.Sprintf("What is the main topic discussed in %q?", post.Title),
			Answer:     fmt.Sprintf("This post discusses %s and covers various aspects of the topic.", post.Title),
			Category:   fallbackCategory,
			Difficulty: domain.CardDifficultyEasy,
			Source:     post.Title,
			PostID:     post.ID,
		})
	}
	return cards
}

// QuizFromPosts synthesizes one quiz question per post, returning at most
// count questions. The difficulty label follows the request; mixed maps
// to Easy, as these synthesized questions have no inherent level.
func QuizFromPosts(posts []domain.Post, count int, difficulty domain.QuizDifficulty) []domain.QuizQuestion {
	n := min(count, len(posts))
	quiz := make([]domain.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		post := posts[i]
		quiz = append(quiz, domain.QuizQuestion{
			ID:       fmt.Sprintf("mock_quiz_%d", i+1),
			Question: fmt.Sprintf("What is the primary focus of %q?", post.Title),
			Options: []string{
				"Technical implementation",
				"Theoretical concepts",
				"Practical applications",
				"All of the above",
			},
			CorrectAnswer: 3,
			Explanation: fmt.Sprintf(
				"The post %q covers multiple aspects including technical implementation, theoretical concepts, and practical applications.",
				post.Title,
			),
			Category:   fallbackCategory,
			Difficulty: requestedLabel(difficulty),
			Source:     post.Title,
			PostID:     post.ID,
		})
	}
	return quiz
}

// FlashcardsForTopic draws from the fixed topic pool, templated with the
// topic name. An empty category falls back to the generic AI/ML label.
func FlashcardsForTopic(topic, category string, count int) []domain.Flashcard {
	if category == "" {
		category = topicCategory
	}
	pool := topicFlashcardPool(topic)
	n := min(count, len(pool))

	cards := make([]domain.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		card := pool[i]
		card.ID = fmt.Sprintf("mock_flashcard_%d", i+1)
		card.Category = category
		card.Source = topic
		cards = append(cards, card)
	}
	return cards
}

// QuizForTopic draws from the fixed topic pool, filtered by difficulty
// when one other than mixed is requested. A filtered pool smaller than
// count yields fewer questions; the pool is never cycled to fill.
func QuizForTopic(topic, category string, count int, difficulty domain.QuizDifficulty) []domain.QuizQuestion {
	if category == "" {
		category = topicCategory
	}

	var pool []domain.QuizQuestion
	for _, q := range topicQuizPool(topic) {
		if difficulty.Matches(q.Difficulty) {
			pool = append(pool, q)
		}
	}

	n := min(count, len(pool))
	quiz := make([]domain.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		q := pool[i]
		q.ID = fmt.Sprintf("mock_quiz_%d", i+1)
		q.Category = category
		q.Source = topic
		quiz = append(quiz, q)
	}
	return quiz
}

func requestedLabel(difficulty domain.QuizDifficulty) domain.CardDifficulty {
	switch difficulty {
	case domain.DifficultyEasy:
		return domain.CardDifficultyEasy
	case domain.DifficultyMedium:
		return domain.CardDifficultyMedium
	case domain.DifficultyHard:
		return domain.CardDifficultyHard
	default:
		return domain.CardDifficultyEasy
	}
}

func topicFlashcardPool(topic string) []domain.Flashcard {
	return []domain.Flashcard{
		{
			Question:   fmt.Sprintf("What is %s?", topic),
			Answer:     fmt.Sprintf("%s is a field of study covering its core concepts, tooling, and practical applications.", topic),
			Difficulty: domain.CardDifficultyEasy,
		},
		{
			Question:   fmt.Sprintf("How does fine-tuning work in %s?", topic),
			Answer:     "Fine-tuning adapts pre-trained models to specific tasks by updating model parameters on task-specific data.",
			Difficulty: domain.CardDifficultyMedium,
		},
		{
			Question:   fmt.Sprintf("What is the core architecture of %s?", topic),
			Answer:     "The core architecture involves transformer-based models with attention mechanisms for processing sequential data.",
			Difficulty: domain.CardDifficultyHard,
		},
		{
			Question:   fmt.Sprintf("Which best practices improve reliability when applying %s?", topic),
			Answer:     "Reliable systems combine careful evaluation, monitoring, and incremental rollout of model changes.",
			Difficulty: domain.CardDifficultyMedium,
		},
		{
			Question:   fmt.Sprintf("What are the main challenges in %s deployment?", topic),
			Answer:     "Key challenges include computational requirements, memory usage, latency optimization, and maintaining model quality.",
			Difficulty: domain.CardDifficultyHard,
		},
	}
}

func topicQuizPool(topic string) []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question:      fmt.Sprintf("What is the primary architecture used in %s?", topic),
			Options:       []string{"Transformer", "CNN", "RNN", "LSTM"},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("The transformer architecture is fundamental to %s.", topic),
			Difficulty:    domain.CardDifficultyEasy,
		},
		{
			Question:      fmt.Sprintf("Which technique is most effective for improving %s performance?", topic),
			Options:       []string{"Data augmentation", "Model pruning", "Fine-tuning", "Feature selection"},
			CorrectAnswer: 2,
			Explanation:   fmt.Sprintf("Fine-tuning allows models to adapt to specific tasks in %s.", topic),
			Difficulty:    domain.CardDifficultyMedium,
		},
		{
			Question:      "What is the purpose of backpropagation?",
			Options:       []string{"To initialize neural network weights", "To update weights based on prediction errors", "To select the best features", "To normalize input data"},
			CorrectAnswer: 1,
			Explanation:   "Backpropagation updates network weights by propagating errors backward through the network.",
			Difficulty:    domain.CardDifficultyMedium,
		},
		{
			Question:      fmt.Sprintf("What is a common challenge in %s deployment?", topic),
			Options:       []string{"Memory usage", "Training time", "Model size", "All of these"},
			CorrectAnswer: 3,
			Explanation:   fmt.Sprintf("All these factors are important considerations for %s deployment.", topic),
			Difficulty:    domain.CardDifficultyHard,
		},
		{
			Question:      "What is the vanishing gradient problem?",
			Options:       []string{"Gradients become too large during training", "Gradients become too small in deep networks", "Gradients change direction frequently", "Gradients are not calculated correctly"},
			CorrectAnswer: 1,
			Explanation:   "The vanishing gradient problem occurs when gradients become too small in deep networks, slowing learning.",
			Difficulty:    domain.CardDifficultyHard,
		},
	}
}
