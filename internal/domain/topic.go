package domain

// AnalysisDifficulty is the difficulty level the topic analyzer infers for
// a post or catalog entry. It is coarser than CardDifficulty and feeds the
// prompt builder rather than the output schema.
type AnalysisDifficulty string

const (
	AnalysisBeginner     AnalysisDifficulty = "beginner"
	AnalysisIntermediate AnalysisDifficulty = "intermediate"
	AnalysisAdvanced     AnalysisDifficulty = "advanced"
)

// TopicDefinition is a curated catalog entry used in place of live post
// content for the predefined generation strategy. The catalog is fixed at
// process start and never mutated.
type TopicDefinition struct {
	Name            string
	Description     string
	Keywords        []string
	KnowledgePoints []string
	Difficulty      AnalysisDifficulty
	Category        string
}

// TopicAnalysis is the structure the analyzer derives from free text or a
// catalog entry. It is ephemeral: computed per call, never persisted.
type TopicAnalysis struct {
	// MainTopics holds at most five matched taxonomy keywords, in taxonomy
	// order rather than relevance order.
	MainTopics []string

	// KnowledgePoints holds at most eight matched concept tokens.
	KnowledgePoints []string

	Difficulty AnalysisDifficulty
	Category   string
}
