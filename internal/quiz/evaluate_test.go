package quiz

import (
	"testing"

	"github.com/arjunm/dsamaster/internal/catalog"
)

func mcQuestion() *catalog.Question {
	return &catalog.Question{
		ID:            "mc-1",
		Type:          catalog.TypeMultipleChoice,
		Difficulty:    catalog.DifficultyEasy,
		Options:       []string{"O(1)", "O(n)", "O(log n)"},
		CorrectAnswer: "O(1)",
		Points:        10,
	}
}

func matchingQuestion() *catalog.Question {
	return &catalog.Question{
		ID:         "m-1",
		Type:       catalog.TypeMatching,
		Difficulty: catalog.DifficultyMedium,
		MatchingPairs: []catalog.MatchingPair{
			{Left: "Heap", Right: "Priority Queue"},
			{Left: "Trie", Right: "Autocomplete"},
			{Left: "Hash Table", Right: "Fast Lookups"},
		},
		CorrectPairs: []string{
			"Heap:Priority Queue",
			"Trie:Autocomplete",
			"Hash Table:Fast Lookups",
		},
		Points: 20,
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := mcQuestion()

	correct, points := Evaluate(q, ChoiceAnswer("O(1)"))
	if !correct || points != 10 {
		t.Errorf("correct answer: got (%v, %d), want (true, 10)", correct, points)
	}

	correct, points = Evaluate(q, ChoiceAnswer("O(n)"))
	if correct || points != 0 {
		t.Errorf("wrong answer: got (%v, %d), want (false, 0)", correct, points)
	}
}

func TestEvaluateTrueFalse(t *testing.T) {
	q := &catalog.Question{
		Type:          catalog.TypeTrueFalse,
		Difficulty:    catalog.DifficultyEasy,
		CorrectAnswer: "true",
		Points:        10,
	}

	if correct, _ := Evaluate(q, ChoiceAnswer("true")); !correct {
		t.Error("\"true\" should be correct")
	}
	if correct, _ := Evaluate(q, ChoiceAnswer("false")); correct {
		t.Error("\"false\" should be incorrect")
	}
}

func TestEvaluateCodeCompletionIsExact(t *testing.T) {
	q := &catalog.Question{
		Type:          catalog.TypeCodeCompletion,
		Difficulty:    catalog.DifficultyMedium,
		CorrectAnswer: "arr[i-1]",
		Points:        20,
	}

	if correct, _ := Evaluate(q, ChoiceAnswer("arr[i-1]")); !correct {
		t.Error("exact answer should be correct")
	}
	// No trimming and no case folding: formatting differences fail.
	for _, submitted := range []string{" arr[i-1]", "arr[i-1] ", "ARR[i-1]", "arr[i - 1]"} {
		if correct, _ := Evaluate(q, ChoiceAnswer(submitted)); correct {
			t.Errorf("%q should be graded incorrect", submitted)
		}
	}
}

func TestEvaluateMatchingOrderIndependent(t *testing.T) {
	q := matchingQuestion()

	orderings := []map[string]string{
		{"Heap": "Priority Queue", "Trie": "Autocomplete", "Hash Table": "Fast Lookups"},
		{"Hash Table": "Fast Lookups", "Heap": "Priority Queue", "Trie": "Autocomplete"},
		{"Trie": "Autocomplete", "Hash Table": "Fast Lookups", "Heap": "Priority Queue"},
	}
	for i, m := range orderings {
		correct, points := Evaluate(q, MatchingAnswer(m))
		if !correct || points != 20 {
			t.Errorf("ordering %d: got (%v, %d), want (true, 20)", i, correct, points)
		}
	}
}

func TestEvaluateMatchingWrongAssignment(t *testing.T) {
	q := matchingQuestion()
	m := map[string]string{
		"Heap":       "Autocomplete",
		"Trie":       "Priority Queue",
		"Hash Table": "Fast Lookups",
	}
	if correct, points := Evaluate(q, MatchingAnswer(m)); correct || points != 0 {
		t.Errorf("swapped pairs: got (%v, %d), want (false, 0)", correct, points)
	}
}

func TestEvaluateMatchingIncompleteNeverCorrect(t *testing.T) {
	q := matchingQuestion()
	m := map[string]string{
		"Heap": "Priority Queue",
		"Trie": "Autocomplete",
		// Hash Table missing.
	}
	a := MatchingAnswer(m)
	if a.Complete(q) {
		t.Error("answer missing a left key should not be complete")
	}
	if correct, _ := Evaluate(q, a); correct {
		t.Error("incomplete mapping must not evaluate as correct")
	}
}

func TestEvaluateMatchingExtraEntryIsWrong(t *testing.T) {
	q := matchingQuestion()
	m := map[string]string{
		"Heap":       "Priority Queue",
		"Trie":       "Autocomplete",
		"Hash Table": "Fast Lookups",
		"Stack":      "LIFO",
	}
	if correct, _ := Evaluate(q, MatchingAnswer(m)); correct {
		t.Error("mapping with an extra entry must not evaluate as correct")
	}
}

func TestEvaluatePointsFallBackToDifficulty(t *testing.T) {
	q := mcQuestion()
	q.Points = 0 // derive from difficulty
	if _, points := Evaluate(q, ChoiceAnswer("O(1)")); points != 10 {
		t.Errorf("points = %d, want 10 from easy difficulty", points)
	}
}
