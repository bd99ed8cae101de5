package catalog

import (
	"strings"
	"testing"
)

func validMC() Question {
	return Question{
		ID:            "q-1",
		Type:          TypeMultipleChoice,
		Topic:         TopicAlgorithm,
		Subtopic:      "Sorting",
		Difficulty:    DifficultyEasy,
		Prompt:        "Pick one",
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: "b",
		Explanation:   "because",
		Points:        10,
	}
}

func TestValidateAcceptsEmbeddedCatalog(t *testing.T) {
	if err := Validate(MustLoad()); err != nil {
		t.Fatalf("embedded catalog failed validation: %v", err)
	}
}

func TestValidateRejectsAnswerOutsideOptions(t *testing.T) {
	q := validMC()
	q.CorrectAnswer = "z"
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for correctAnswer outside options")
	}
	if !strings.Contains(err.Error(), "not one of the options") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	a, b := validMC(), validMC()
	if err := Validate([]Question{a, b}); err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestValidateRejectsBadTrueFalse(t *testing.T) {
	q := validMC()
	q.Type = TypeTrueFalse
	q.Options = nil
	q.CorrectAnswer = "yes"
	if err := Validate([]Question{q}); err == nil {
		t.Fatal("expected error for non-boolean true-false answer")
	}
}

func TestValidateRejectsMatchingPairMismatch(t *testing.T) {
	q := Question{
		ID:         "m-1",
		Type:       TypeMatching,
		Topic:      TopicDataStructure,
		Subtopic:   "Advanced",
		Difficulty: DifficultyMedium,
		Prompt:     "Match",
		MatchingPairs: []MatchingPair{
			{Left: "Heap", Right: "Priority Queue"},
			{Left: "Trie", Right: "Autocomplete"},
		},
		CorrectPairs: []string{"Heap:Priority Queue"},
		Explanation:  "because",
		Points:       15,
	}
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for pair count mismatch")
	}
	if !strings.Contains(err.Error(), "count") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUndeclaredCorrectPair(t *testing.T) {
	q := Question{
		ID:         "m-2",
		Type:       TypeMatching,
		Topic:      TopicDataStructure,
		Subtopic:   "Advanced",
		Difficulty: DifficultyMedium,
		Prompt:     "Match",
		MatchingPairs: []MatchingPair{
			{Left: "Heap", Right: "Priority Queue"},
		},
		CorrectPairs: []string{"Heap:Autocomplete"},
		Explanation:  "because",
		Points:       15,
	}
	if err := Validate([]Question{q}); err == nil {
		t.Fatal("expected error for undeclared pair")
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	q := validMC()
	q.Type = QuestionType("essay")
	if err := Validate([]Question{q}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestSchemaRejectsMissingFields(t *testing.T) {
	raw := []byte(`[{"id": "x", "type": "true-false"}]`)
	if _, err := decode(raw); err == nil {
		t.Fatal("expected schema error for missing required fields")
	}
}

func TestSchemaRejectsUnknownDifficulty(t *testing.T) {
	raw := []byte(`[{
		"id": "x",
		"type": "true-false",
		"topic": "algorithm",
		"subtopic": "Sorting",
		"difficulty": "impossible",
		"prompt": "p",
		"correctAnswer": "true",
		"explanation": "e",
		"points": 10
	}]`)
	if _, err := decode(raw); err == nil {
		t.Fatal("expected schema error for unknown difficulty")
	}
}
