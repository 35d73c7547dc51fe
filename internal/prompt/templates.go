package prompt

// Template pairs per generation strategy. The wording differs on purpose:
// basic keeps prompts short for speed, enhanced leans on per-post analysis,
// simplified skews toward harder questions, and predefined embeds the
// catalog entry plus a per-call generation ID to discourage repetition.

// Basic strategy: raw post excerpts, terse instructions.
const (
	BasicFlashcardTemplate = `Generate {count} flashcards from these posts:

POSTS:
{posts}

Return JSON array: [{"id":"1","question":"Q?","answer":"A","category":"AI","difficulty":"Easy","source":"Post"}]`

	BasicQuizTemplate = `Generate {count} {difficulty} quiz questions from these posts:

POSTS:
{posts}

Return JSON array: [{"id":"1","question":"Q?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"E","category":"AI","difficulty":"Easy","source":"Post"}]`
)

// Enhanced strategy: full per-post analysis context.
const (
	EnhancedFlashcardTemplate = `Based on these detailed community posts, generate {count} educational flashcards:

POSTS ANALYSIS:
{posts}

INSTRUCTIONS:
- Focus on the key topics and main concepts identified in each post
- Create questions that test understanding of the specific content shared
- Use the difficulty level and category information to guide question complexity
- Ensure questions are directly related to the actual post content
- Include source attribution to specific posts

Return JSON array: [{"id":"1","question":"Q?","answer":"A","category":"AI","difficulty":"Easy","source":"Post title","postId":"post_id"}]`

	EnhancedQuizTemplate = `Based on these detailed community posts, generate {count} {difficulty} quiz questions:

POSTS ANALYSIS:
{posts}

INSTRUCTIONS:
- Create questions that test understanding of the specific concepts discussed in the posts
- Use the key topics and main concepts to guide question creation
- Ensure questions are directly related to the actual post content
- Include detailed explanations that reference the source material
- Use the difficulty level to determine question complexity
- Include source attribution to specific posts

Return JSON array: [{"id":"1","question":"Q?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"E","category":"AI","difficulty":"Easy","source":"Post title","postId":"post_id"}]`
)

// Simplified strategy: topic and knowledge-point context, harder questions.
const (
	SimplifiedFlashcardTemplate = `Based on these community discussion topics, generate {count} challenging educational flashcards:

DISCUSSION TOPICS:
{topics}

INSTRUCTIONS:
- Focus on the main topics and knowledge points identified
- Create DIFFICULT questions that test deep understanding and application of these topics
- Questions should challenge learners with complex scenarios, edge cases, and advanced concepts
- Test knowledge points like: implementation details, performance implications, best practices, common pitfalls, advanced techniques
- Use the difficulty level to guide question complexity, but lean towards harder questions
- Ensure questions are educational and test deep conceptual understanding
- Include source attribution to discussion topics

Return JSON array: [{"id":"1","question":"Q?","answer":"A","category":"AI","difficulty":"Hard","source":"Topic"}]`

	SimplifiedQuizTemplate = `Based on these community discussion topics, generate {count} CHALLENGING {difficulty} quiz questions:

DISCUSSION TOPICS:
{topics}

INSTRUCTIONS:
- Create DIFFICULT questions that test deep understanding and application of the identified topics and knowledge points
- Questions should challenge learners with complex scenarios, edge cases, and advanced concepts
- Test advanced knowledge points like: implementation details, performance implications, best practices, common pitfalls, advanced techniques, optimization strategies
- Use the difficulty level to guide question complexity, but lean towards harder questions
- Focus on conceptual understanding AND practical application
- Include detailed explanations that help learners understand the advanced concepts
- Include source attribution to discussion topics
- Make questions that require critical thinking and problem-solving skills

Return JSON array: [{"id":"1","question":"Q?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"E","category":"AI","difficulty":"Hard","source":"Topic"}]`
)

// Predefined strategy: catalog-entry context with a generation ID so
// repeated calls for the same topic still vary.
const (
	PredefinedFlashcardTemplate = `Generate {count} UNIQUE and CHALLENGING flashcards about {topic}:

TOPIC: {topic}
DESCRIPTION: {description}
KEYWORDS: {keywords}
KNOWLEDGE POINTS: {knowledge_points}
DIFFICULTY: {difficulty}
GENERATION_ID: {generation_id}

INSTRUCTIONS:
- Create UNIQUE and DIVERSE flashcards that test different aspects of {topic}
- Each flashcard should focus on a DIFFERENT concept, technique, or application area
- Questions should challenge learners with complex scenarios, edge cases, and advanced concepts
- Test advanced knowledge points like: implementation details, performance implications, best practices, common pitfalls, advanced techniques
- Focus on practical application and real-world scenarios
- Include detailed answers that help learners understand the advanced concepts
- Use the specific keywords and knowledge points provided for this topic
- Make each flashcard DISTINCT and cover different subtopics
- Vary the question types: some about concepts, some about implementation, some about best practices, some about troubleshooting
- Generate DIFFERENT flashcards each time - avoid repetition
- Use creative scenarios and edge cases

Return JSON array: [{"id":"1","question":"Q?","answer":"A","category":"{category}","difficulty":"{difficulty}","source":"{topic}"}]`

	PredefinedQuizTemplate = `Generate {count} UNIQUE and CHALLENGING quiz questions about {topic}:

TOPIC: {topic}
DESCRIPTION: {description}
KEYWORDS: {keywords}
KNOWLEDGE POINTS: {knowledge_points}
DIFFICULTY: {difficulty}
GENERATION_ID: {generation_id}

INSTRUCTIONS:
- Create UNIQUE and DIVERSE questions that test different aspects of {topic}
- Each question should focus on a DIFFERENT concept, technique, or application area
- Questions should challenge learners with complex scenarios, edge cases, and advanced concepts
- Test advanced knowledge points like: implementation details, performance implications, best practices, common pitfalls, advanced techniques, optimization strategies
- Focus on practical application and real-world scenarios
- Include detailed explanations that help learners understand the advanced concepts
- Make questions that require critical thinking and problem-solving skills
- Use the specific keywords and knowledge points provided for this topic
- AVOID using "All of the above" as an answer option
- Make each question DISTINCT and cover different subtopics
- Vary the question types: some about concepts, some about implementation, some about best practices, some about troubleshooting
- Generate DIFFERENT questions each time - avoid repetition
- Use creative scenarios and edge cases

Return JSON array: [{"id":"1","question":"Q?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"E","category":"{category}","difficulty":"{difficulty}","source":"{topic}"}]`
)

// Supplement templates: post categorization and the daily community summary.
const (
	CategorizeTemplate = `Classify this educational content: "{title}" - "{content}".
Categories: AI Course, Essay, Technical Document, Discussion, Resource, News.
Return only the category name.`

	DailySummaryTemplate = `Create a daily summary for an AI learning community based on these posts:

{posts}

Make it engaging and educational, highlighting key topics and insights.`
)
