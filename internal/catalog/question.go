package catalog

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeCodeCompletion QuestionType = "code-completion"
	TypeMatching       QuestionType = "matching"
)

// AllQuestionTypes returns the question types in display order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeCodeCompletion, TypeMatching}
}

// Topic is the broad category a question belongs to.
type Topic string

const (
	TopicDataStructure Topic = "data-structure"
	TopicAlgorithm     Topic = "algorithm"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyPoints returns the base point value for a difficulty.
// Used as the fallback when a catalog entry carries no explicit points.
func DifficultyPoints(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return 10
	}
}

// MatchingPair is one left/right pairing of a matching question.
type MatchingPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is a single immutable quiz item from the embedded catalog.
type Question struct {
	// ID is the stable unique identifier, e.g. "arr-1".
	ID string `json:"id"`

	Type       QuestionType `json:"type"`
	Topic      Topic        `json:"topic"`
	Subtopic   string       `json:"subtopic"`
	Difficulty Difficulty   `json:"difficulty"`

	// Prompt is the question text shown to the user.
	Prompt string `json:"prompt"`

	// Code is an optional snippet displayed verbatim below the prompt.
	Code string `json:"code,omitempty"`

	// Options holds the candidate answers for multiple-choice questions.
	Options []string `json:"options,omitempty"`

	// MatchingPairs holds the pairings for matching questions.
	MatchingPairs []MatchingPair `json:"matchingPairs,omitempty"`

	// CorrectAnswer is the canonical answer for multiple-choice,
	// true-false and code-completion questions.
	CorrectAnswer string `json:"correctAnswer,omitempty"`

	// CorrectPairs holds the canonical "left:right" entries for matching
	// questions, in catalog order.
	CorrectPairs []string `json:"correctPairs,omitempty"`

	// Explanation is shown after answering, correct or not.
	Explanation string `json:"explanation"`

	// Points is the base reward for a correct answer. Zero means
	// derive from difficulty via DifficultyPoints.
	Points int `json:"points"`
}

// PointValue returns the points awarded for answering this question
// correctly, falling back to the difficulty table when the catalog
// entry has no explicit value.
func (q *Question) PointValue() int {
	if q.Points > 0 {
		return q.Points
	}
	return DifficultyPoints(q.Difficulty)
}
