package taxonomy

import (
	"errors"
	"strings"

	"github.com/Justin0504/Easylearningsniper/internal/domain"
)

// ErrTopicNotFound is returned when no catalog entry matches a requested
// topic name.
var ErrTopicNotFound = errors.New("predefined topic not found")

// PredefinedTopics is the fixed catalog of curated topics available to the
// predefined generation strategy.
var PredefinedTopics = []domain.TopicDefinition{
	{
		Name:        "Generative AI (genAI)",
		Description: "Advanced concepts in Generative Artificial Intelligence",
		Keywords: []string{
			"generative ai", "large language models", "llm", "gpt", "claude", "gemini",
			"transformer", "attention mechanism", "self-attention", "multi-head attention",
			"prompt engineering", "few-shot learning", "zero-shot learning", "in-context learning",
			"retrieval augmented generation", "rag", "fine-tuning", "instruction tuning",
			"reinforcement learning from human feedback", "rlhf", "constitutional ai",
			"alignment", "safety", "bias", "hallucination", "evaluation", "benchmarking",
		},
		KnowledgePoints: []string{
			"transformer architecture", "attention mechanisms", "positional encoding",
			"layer normalization", "residual connections", "feed-forward networks",
			"tokenization", "vocabulary", "embedding layers", "output projection",
			"beam search", "nucleus sampling", "temperature scaling", "top-k sampling",
			"prompt design", "chain-of-thought", "few-shot prompting", "zero-shot prompting",
			"instruction following", "conversation modeling", "code generation",
			"text summarization", "question answering", "text classification",
			"fine-tuning strategies", "parameter-efficient tuning", "lora", "qlora",
			"distillation", "pruning", "quantization", "model compression",
			"safety measures", "bias detection", "factual accuracy", "harmful content",
			"evaluation metrics", "perplexity", "bleu score", "rouge score",
			"human evaluation", "automated evaluation", "adversarial testing",
		},
		Difficulty: domain.AnalysisAdvanced,
		Category:   "AI/ML",
	},
	{
		Name:        "Machine Learning Fundamentals",
		Description: "Core concepts and advanced techniques in machine learning",
		Keywords: []string{
			"supervised learning", "unsupervised learning", "reinforcement learning",
			"classification", "regression", "clustering", "dimensionality reduction",
			"overfitting", "underfitting", "bias-variance tradeoff", "cross-validation",
			"feature engineering", "feature selection", "data preprocessing",
			"gradient descent", "stochastic gradient descent", "adam optimizer",
			"regularization", "l1 regularization", "l2 regularization", "dropout",
			"ensemble methods", "random forest", "gradient boosting", "xgboost",
			"neural networks", "backpropagation", "activation functions",
			"hyperparameter tuning", "grid search", "random search", "bayesian optimization",
		},
		KnowledgePoints: []string{
			"learning algorithms", "optimization techniques", "loss functions",
			"gradient computation", "automatic differentiation", "computational graphs",
			"model selection", "cross-validation strategies", "holdout validation",
			"feature scaling", "normalization", "standardization", "one-hot encoding",
			"dimensionality reduction", "pca", "t-sne", "umap", "lda",
			"clustering algorithms", "k-means", "hierarchical clustering", "dbscan",
			"classification metrics", "precision", "recall", "f1-score", "roc-auc",
			"regression metrics", "mse", "mae", "r-squared", "adjusted r-squared",
			"ensemble techniques", "bagging", "boosting", "stacking", "voting",
			"neural network architectures", "cnn", "rnn", "lstm", "gru", "attention",
			"deep learning", "batch normalization", "residual connections", "skip connections",
		},
		Difficulty: domain.AnalysisAdvanced,
		Category:   "AI/ML",
	},
	{
		Name:        "Web Development (Full Stack)",
		Description: "Advanced full-stack web development concepts and practices",
		Keywords: []string{
			"react", "next.js", "vue.js", "angular", "typescript", "javascript",
			"node.js", "express", "fastapi", "django", "flask", "spring boot",
			"rest api", "graphql", "websocket", "microservices", "serverless",
			"docker", "kubernetes", "aws", "azure", "gcp", "cloud computing",
			"database design", "sql", "nosql", "mongodb", "postgresql", "redis",
			"authentication", "authorization", "jwt", "oauth", "security",
			"testing", "unit testing", "integration testing", "e2e testing",
			"ci/cd", "devops", "monitoring", "logging", "performance optimization",
		},
		KnowledgePoints: []string{
			"frontend frameworks", "component architecture", "state management",
			"routing", "middleware", "hooks", "lifecycle methods", "virtual dom",
			"backend architecture", "mvc pattern", "repository pattern", "service layer",
			"api design", "restful principles", "http methods", "status codes",
			"database optimization", "indexing", "query optimization", "connection pooling",
			"caching strategies", "redis", "memcached", "cdn", "browser caching",
			"security practices", "cors", "csrf protection", "sql injection prevention",
			"authentication flows", "session management", "token-based auth", "oauth flows",
			"testing strategies", "mocking", "stubbing", "test-driven development",
			"deployment strategies", "blue-green deployment", "canary releases",
			"monitoring and observability", "metrics", "tracing", "logging best practices",
			"performance optimization", "code splitting", "lazy loading", "bundle optimization",
		},
		Difficulty: domain.AnalysisAdvanced,
		Category:   "Web Development",
	},
	{
		Name:        "Data Science & Analytics",
		Description: "Advanced data science techniques and analytical methods",
		Keywords: []string{
			"data analysis", "data visualization", "statistics", "probability",
			"pandas", "numpy", "scipy", "matplotlib", "seaborn", "plotly",
			"machine learning", "scikit-learn", "tensorflow", "pytorch",
			"data preprocessing", "feature engineering", "data cleaning",
			"exploratory data analysis", "eda", "statistical testing",
			"time series analysis", "forecasting", "anomaly detection",
			"big data", "hadoop", "spark", "kafka", "streaming data",
			"a/b testing", "experimental design", "causal inference",
			"business intelligence", "dashboarding", "reporting",
		},
		KnowledgePoints: []string{
			"statistical analysis", "hypothesis testing", "confidence intervals",
			"regression analysis", "correlation analysis", "causation vs correlation",
			"data visualization", "chart selection", "color theory", "accessibility",
			"data preprocessing", "missing data handling", "outlier detection",
			"feature engineering", "feature selection", "dimensionality reduction",
			"time series analysis", "seasonality", "trend analysis", "forecasting models",
			"machine learning pipelines", "data validation", "model validation",
			"experimental design", "randomization", "control groups", "statistical power",
			"big data processing", "distributed computing", "mapreduce", "spark sql",
			"streaming analytics", "real-time processing", "event-driven architecture",
			"data quality", "data governance", "data lineage", "metadata management",
		},
		Difficulty: domain.AnalysisAdvanced,
		Category:   "Data Science",
	},
}

// FindTopic resolves a topic name to its catalog entry. The match is
// case-insensitive and succeeds when the catalog name contains the query,
// so "genai" finds "Generative AI (genAI)".
func FindTopic(name string) (*domain.TopicDefinition, error) {
	query := strings.ToLower(name)
	for i := range PredefinedTopics {
		if strings.Contains(strings.ToLower(PredefinedTopics[i].Name), query) {
			return &PredefinedTopics[i], nil
		}
	}
	return nil, ErrTopicNotFound
}

// AvailableTopics returns the catalog for display. Callers must not
// mutate the returned slice.
func AvailableTopics() []domain.TopicDefinition {
	return PredefinedTopics
}
