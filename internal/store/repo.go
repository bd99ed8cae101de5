package store

import (
	"context"
	"time"
)

// SessionAction marks what a session event records.
type SessionAction string

const (
	SessionStarted   SessionAction = "start"
	SessionEnded     SessionAction = "end"
	SessionAbandoned SessionAction = "abandon"
)

// AnswerEventData is one graded answer appended to the event log.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	QuestionType  string
	Difficulty    string
	Submitted     string
	CorrectAnswer string
	Correct       bool
	Points        int
}

// SessionEventData marks a session boundary in the event log.
type SessionEventData struct {
	SessionID    string
	Action       SessionAction
	Questions    int
	Correct      int
	Points       int
	StreakBonus  int
	DurationSecs int
}

// SessionRecord is a stored session event read back for history views.
type SessionRecord struct {
	SessionID    string
	Action       SessionAction
	Questions    int
	Correct      int
	Points       int
	StreakBonus  int
	DurationSecs int
	Timestamp    time.Time
}

// AnswerRecord is a stored answer event read back for history views.
type AnswerRecord struct {
	QuestionID    string
	QuestionType  string
	Difficulty    string
	Submitted     string
	CorrectAnswer string
	Correct       bool
	Points        int
	Timestamp     time.Time
}

// EventRepo is the append-only event log. Events are ordered by a
// shared monotonic sequence across both tables.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, e AnswerEventData) error
	AppendSessionEvent(ctx context.Context, e SessionEventData) error
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)
	Reset(ctx context.Context) error
}
