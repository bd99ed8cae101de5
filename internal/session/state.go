package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/arjunm/dsamaster/internal/catalog"
	"github.com/arjunm/dsamaster/internal/quiz"
)

// DefaultLength is the number of questions drawn per session.
const DefaultLength = 10

// Record holds the outcome of one question within the session.
// Needed for backward navigation: revisiting an answered question
// shows its recorded outcome and is never re-scored.
type Record struct {
	Answered bool
	Correct  bool
	Points   int
	Answer   quiz.Answer
}

// State is the transient state of one quiz attempt. It is created at
// session start and discarded at the end; nothing here is persisted
// directly (the tracker and event log own durable state).
type State struct {
	// ID identifies this session in the event log.
	ID string

	// Questions is the fixed draw for this session.
	Questions []catalog.Question

	// Index is the cursor into Questions, in [0, len).
	Index int

	// SessionPoints and SessionCorrect accumulate until Finish hands
	// them to the tracker.
	SessionPoints  int
	SessionCorrect int

	// Records tracks per-question outcomes, parallel to Questions.
	Records []Record

	StartTime time.Time
}

// New creates a session over the given questions.
func New(questions []catalog.Question) *State {
	return &State{
		ID:        uuid.New().String(),
		Questions: questions,
		Records:   make([]Record, len(questions)),
		StartTime: time.Now(),
	}
}

// NewFromCatalog draws DefaultLength random questions from the
// catalog and starts a session over them.
func NewFromCatalog(all []catalog.Question) *State {
	return New(catalog.Random(all, DefaultLength))
}

// Current returns the question under the cursor, nil when the session
// is empty.
func (s *State) Current() *catalog.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// CurrentRecord returns the record for the question under the cursor.
func (s *State) CurrentRecord() *Record {
	if s.Index < 0 || s.Index >= len(s.Records) {
		return nil
	}
	return &s.Records[s.Index]
}

// IsFirst reports whether the cursor is on the first question.
func (s *State) IsFirst() bool { return s.Index == 0 }

// IsLast reports whether the cursor is on the last question.
func (s *State) IsLast() bool { return s.Index == len(s.Questions)-1 }

// Prev moves the cursor back one question. Returns false at the
// start.
func (s *State) Prev() bool {
	if s.IsFirst() {
		return false
	}
	s.Index--
	return true
}

// Advance moves the cursor forward one question. Returns false on the
// last question; the caller finishes the session instead.
func (s *State) Advance() bool {
	if s.IsLast() {
		return false
	}
	s.Index++
	return true
}
