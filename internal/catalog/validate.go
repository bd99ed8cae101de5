package catalog

import (
	"fmt"
	"strings"
)

// Validate runs the semantic consistency checks the schema can't
// express. Catalog inconsistency is an authoring defect, so this is
// meant to fail at build/test time, never during a quiz.
func Validate(qs []Question) error {
	seen := make(map[string]bool, len(qs))
	for i := range qs {
		q := &qs[i]
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %q: %w", q.ID, err)
		}
	}
	return nil
}

func validateQuestion(q *Question) error {
	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice needs at least 2 options, got %d", len(q.Options))
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return fmt.Errorf("correctAnswer %q is not one of the options", q.CorrectAnswer)
		}

	case TypeTrueFalse:
		if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			return fmt.Errorf("true-false correctAnswer must be \"true\" or \"false\", got %q", q.CorrectAnswer)
		}

	case TypeCodeCompletion:
		if q.CorrectAnswer == "" {
			return fmt.Errorf("code-completion has empty correctAnswer")
		}

	case TypeMatching:
		if len(q.MatchingPairs) == 0 {
			return fmt.Errorf("matching has no matchingPairs")
		}
		if len(q.CorrectPairs) != len(q.MatchingPairs) {
			return fmt.Errorf("correctPairs count %d does not match matchingPairs count %d",
				len(q.CorrectPairs), len(q.MatchingPairs))
		}
		// Every correctPairs entry must encode one of the declared pairs.
		want := make(map[string]bool, len(q.MatchingPairs))
		for _, p := range q.MatchingPairs {
			want[p.Left+":"+p.Right] = true
		}
		for _, cp := range q.CorrectPairs {
			if !strings.Contains(cp, ":") {
				return fmt.Errorf("correctPairs entry %q is not in left:right form", cp)
			}
			if !want[cp] {
				return fmt.Errorf("correctPairs entry %q does not encode a declared pair", cp)
			}
		}

	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}

	// Explicit points must agree with the difficulty table unless the
	// author deliberately set a custom value above the hard tier.
	if q.Points > 0 && q.Points < DifficultyPoints(q.Difficulty) {
		return fmt.Errorf("points %d below the %s difficulty value %d",
			q.Points, q.Difficulty, DifficultyPoints(q.Difficulty))
	}

	return nil
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
