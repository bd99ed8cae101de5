package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
)

//go:embed questions.json
var rawCatalog []byte

var (
	loadOnce  sync.Once
	questions []Question
	loadErr   error
)

// Load decodes and validates the embedded catalog. Safe to call
// repeatedly; the work happens once.
func Load() ([]Question, error) {
	loadOnce.Do(func() {
		qs, err := decode(rawCatalog)
		if err != nil {
			loadErr = err
			return
		}
		if err := Validate(qs); err != nil {
			loadErr = err
			return
		}
		questions = qs
	})
	return questions, loadErr
}

// MustLoad is Load for callers that treat a broken catalog as a
// programming error (it ships inside the binary).
func MustLoad() []Question {
	qs, err := Load()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return qs
}

// decode parses raw catalog JSON after checking it against the schema.
func decode(raw []byte) ([]Question, error) {
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return qs, nil
}

// BySubtopic returns all questions in the given subtopic.
func BySubtopic(qs []Question, subtopic string) []Question {
	var out []Question
	for _, q := range qs {
		if q.Subtopic == subtopic {
			out = append(out, q)
		}
	}
	return out
}

// ByDifficulty returns all questions of the given difficulty.
func ByDifficulty(qs []Question, d Difficulty) []Question {
	var out []Question
	for _, q := range qs {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// Random draws up to n questions from qs in random order, without
// mutating the input. When n exceeds len(qs) the whole catalog is
// returned, shuffled.
func Random(qs []Question, n int) []Question {
	shuffled := make([]Question, len(qs))
	copy(shuffled, qs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
