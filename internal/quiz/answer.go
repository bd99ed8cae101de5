package quiz

import (
	"sort"
	"strings"

	"github.com/arjunm/dsamaster/internal/catalog"
)

// Answer is the user's submitted response, tagged by the question type
// it answers. Exactly one field is meaningful per type: Choice for
// multiple-choice, true-false and code-completion; Matching for
// matching questions.
type Answer struct {
	// Choice is the selected option, "true"/"false", or the typed
	// completion text.
	Choice string

	// Matching maps each left value to the user's chosen right value.
	Matching map[string]string
}

// ChoiceAnswer builds an Answer for the single-string question types.
func ChoiceAnswer(s string) Answer {
	return Answer{Choice: s}
}

// MatchingAnswer builds an Answer from a left→right assignment.
func MatchingAnswer(m map[string]string) Answer {
	return Answer{Matching: m}
}

// MatchingKey flattens a left→right assignment into a stable string,
// sorted "left:right" entries joined by commas. Used for the event
// log and for order-insensitive comparison.
func MatchingKey(m map[string]string) string {
	entries := make([]string, 0, len(m))
	for left, right := range m {
		entries = append(entries, left+":"+right)
	}
	sort.Strings(entries)
	return strings.Join(entries, ", ")
}

// Complete reports whether the answer has an entry for every left
// value of a matching question. Always true for the other types.
func (a Answer) Complete(q *catalog.Question) bool {
	if q.Type != catalog.TypeMatching {
		return true
	}
	for _, p := range q.MatchingPairs {
		if _, ok := a.Matching[p.Left]; !ok {
			return false
		}
	}
	return true
}
