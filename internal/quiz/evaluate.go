package quiz

import (
	"sort"

	"github.com/arjunm/dsamaster/internal/catalog"
)

// Evaluate judges a submitted answer against the question and returns
// whether it was correct and the points earned (the question's point
// value when correct, zero otherwise).
//
// Grading is exact string equality with no trimming or case folding.
// For code-completion that makes trivial formatting differences wrong
// answers; the catalog keeps canonical answers short to limit the
// damage, and the grading stays as-is so scores are comparable over
// time. Matching is graded as an unordered set of "left:right" entries
// and an incomplete mapping is never correct.
//
// Pure function of its inputs. Malformed catalog entries are an
// authoring defect caught by catalog.Validate, not handled here.
func Evaluate(q *catalog.Question, a Answer) (correct bool, points int) {
	switch q.Type {
	case catalog.TypeMatching:
		correct = evaluateMatching(q, a)
	default:
		correct = a.Choice == q.CorrectAnswer
	}

	if correct {
		points = q.PointValue()
	}
	return correct, points
}

// evaluateMatching compares the submitted mapping against the
// canonical pairs, ignoring submission order.
func evaluateMatching(q *catalog.Question, a Answer) bool {
	if len(a.Matching) != len(q.CorrectPairs) {
		return false
	}

	got := make([]string, 0, len(a.Matching))
	for left, right := range a.Matching {
		got = append(got, left+":"+right)
	}
	sort.Strings(got)

	want := make([]string, len(q.CorrectPairs))
	copy(want, q.CorrectPairs)
	sort.Strings(want)

	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
