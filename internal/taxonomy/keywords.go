package taxonomy

import "regexp"

// TopicKeywords is the flat list of surface-form keywords the analyzer
// matches against lower-cased post text. Iteration order is match order:
// extracted topics come back in this order, not ranked by relevance.
var TopicKeywords = []string{
	// AI / ML
	"machine learning", "deep learning", "neural network", "artificial intelligence",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "opencv",
	"computer vision", "natural language processing", "nlp", "reinforcement learning",
	"supervised learning", "unsupervised learning", "clustering", "classification",
	"regression", "feature engineering", "model training", "hyperparameter tuning",

	// Languages & frameworks
	"python", "javascript", "typescript", "react", "next.js", "node.js", "vue.js",
	"angular", "django", "flask", "express", "fastapi", "spring boot",
	"java", "c++", "c#", "go", "rust", "swift", "kotlin",

	// Web development
	"frontend", "backend", "full stack", "responsive design", "api", "rest api",
	"graphql", "websocket", "microservices", "serverless", "jwt", "oauth",
	"html", "css", "bootstrap", "tailwind", "sass", "less",

	// Database & storage
	"database", "sql", "nosql", "mongodb", "postgresql", "mysql", "redis",
	"elasticsearch", "data modeling", "indexing", "query optimization",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "jenkins",
	"terraform", "ansible", "monitoring", "logging", "scaling",

	// Data science
	"data analysis", "data visualization", "statistics", "probability",
	"data mining", "big data", "hadoop", "spark", "kafka",

	// Software engineering
	"design patterns", "clean code", "refactoring", "testing", "tdd",
	"agile", "scrum", "git", "version control", "code review",

	// Mobile
	"mobile development", "ios", "android", "flutter", "react native",
	"xamarin", "cordova",

	// Security
	"cybersecurity", "encryption", "authentication", "authorization",
	"vulnerability", "penetration testing", "ssl", "tls",
}

// ConceptPatterns detect knowledge points: a technical noun immediately
// following a trigger word. The analyzer keeps the last whitespace-delimited
// token of each match.
var ConceptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:function|class|method|variable|constant|interface|type|enum)\s+(\w+)`),
	regexp.MustCompile(`(?i)\b(?:algorithm|pattern|framework|library|tool|technology)\s+(\w+)`),
	regexp.MustCompile(`(?i)\b(?:concept|principle|theory|approach|technique|strategy)\s+(\w+)`),
}

// AdvancedTopics and AdvancedConcepts both contribute to the advanced
// score; a term present in both lists counts twice, as in the original
// scoring. BeginnerTopics is the only beginner vocabulary.
var (
	AdvancedTopics = []string{
		"deep learning", "neural network", "reinforcement learning", "microservices",
		"kubernetes", "distributed", "concurrent", "asynchronous", "optimization",
		"scalability", "architecture", "enterprise", "production", "advanced",
		"machine learning", "tensorflow", "pytorch", "computer vision", "nlp",
		"docker", "aws", "azure", "gcp", "devops", "ci/cd", "monitoring",
	}

	AdvancedConcepts = []string{
		"optimization", "performance", "scalability", "architecture", "enterprise",
		"microservices", "distributed", "concurrent", "asynchronous", "advanced",
		"complex", "sophisticated", "production-ready", "enterprise-grade",
		"algorithm", "pattern", "framework", "library", "tool", "technology",
		"method", "technique", "approach", "strategy", "principle", "concept",
	}

	BeginnerTopics = []string{
		"introduction", "getting started", "tutorial", "basics", "fundamentals",
		"beginner", "simple", "easy", "basic", "overview", "guide", "hello world",
	}
)

// CategoryBucket maps a category label to the exact topic keywords that
// select it.
type CategoryBucket struct {
	Name   string
	Topics []string
}

// CategoryBuckets are tested in order against extracted main topics; the
// first bucket containing any of them wins.
var CategoryBuckets = []CategoryBucket{
	{Name: "AI/ML", Topics: []string{
		"machine learning", "deep learning", "neural network",
		"artificial intelligence", "tensorflow", "pytorch", "scikit-learn",
	}},
	{Name: "Web Development", Topics: []string{
		"react", "next.js", "node.js", "vue.js", "angular",
		"frontend", "backend", "api", "web development",
	}},
	{Name: "Data Science", Topics: []string{
		"data analysis", "data visualization", "pandas", "numpy",
		"statistics", "data science",
	}},
	{Name: "Cloud/DevOps", Topics: []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "cloud", "devops",
	}},
	{Name: "Mobile Development", Topics: []string{
		"mobile development", "ios", "android", "flutter", "react native",
	}},
	{Name: "Security", Topics: []string{
		"cybersecurity", "encryption", "authentication", "security",
	}},
}

// DefaultCategory is used when no bucket matches.
const DefaultCategory = "General Programming"
