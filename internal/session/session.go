package session

import (
	"errors"

	"github.com/arjunm/dsamaster/internal/progress"
	"github.com/arjunm/dsamaster/internal/quiz"
)

// ErrAlreadyAnswered is returned when a question under the cursor has
// already been scored in this session.
var ErrAlreadyAnswered = errors.New("question already answered")

// Tracker is the slice of the progression tracker the session layer
// needs. *progress.Tracker satisfies it; tests use a fake.
type Tracker interface {
	RecordAnswer(correct bool) error
	FinishSession(sessionPoints, sessionCorrect int) (progress.SessionResult, error)
	Stats() progress.Stats
}

// Submit evaluates the answer for the current question, updates the
// session accumulators, and records the streak change through the
// tracker. The returned record is what the UI renders as feedback.
func (s *State) Submit(a quiz.Answer, tr Tracker) (Record, error) {
	q := s.Current()
	if q == nil {
		return Record{}, errors.New("no current question")
	}
	rec := s.CurrentRecord()
	if rec.Answered {
		return Record{}, ErrAlreadyAnswered
	}

	correct, points := quiz.Evaluate(q, a)
	*rec = Record{
		Answered: true,
		Correct:  correct,
		Points:   points,
		Answer:   a,
	}

	if correct {
		s.SessionCorrect++
		s.SessionPoints += points
	}

	if err := tr.RecordAnswer(correct); err != nil {
		return *rec, err
	}
	return *rec, nil
}

// Finish closes the session: the accumulators are folded into the
// persistent stats and a summary is built for the results screen.
// Abandoning a session simply never calls Finish; per-answer streak
// updates already committed stand, session totals are discarded.
func (s *State) Finish(tr Tracker) (*Summary, error) {
	res, err := tr.FinishSession(s.SessionPoints, s.SessionCorrect)
	if err != nil {
		return nil, err
	}
	return buildSummary(s, res, tr.Stats()), nil
}
