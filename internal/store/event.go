package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter hands out a single monotonic sequence shared by
// answer and session events, so the combined log has a total order.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 0)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence table: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// next claims the next sequence value.
func (c *sequenceCounter) next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var val int64
	err := c.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&val)
	if err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return val, nil
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, e AnswerEventData) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, session_id, question_id, question_type, difficulty,
			 submitted, correct_answer, correct, points, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, e.SessionID, e.QuestionID, e.QuestionType, e.Difficulty,
		e.Submitted, e.CorrectAnswer, boolToInt(e.Correct), e.Points,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, e SessionEventData) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, session_id, action, questions, correct, points,
			 streak_bonus, duration_secs, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, e.SessionID, string(e.Action), e.Questions, e.Correct,
		e.Points, e.StreakBonus, e.DurationSecs, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, action, questions, correct, points,
			streak_bonus, duration_secs, timestamp
		 FROM session_events
		 WHERE action = ?
		 ORDER BY sequence DESC
		 LIMIT ?`,
		string(SessionEnded), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var action string
		var ts int64
		if err := rows.Scan(&rec.SessionID, &action, &rec.Questions,
			&rec.Correct, &rec.Points, &rec.StreakBonus,
			&rec.DurationSecs, &ts); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		rec.Action = SessionAction(action)
		rec.Timestamp = time.Unix(ts, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id, question_type, difficulty, submitted,
			correct_answer, correct, points, timestamp
		 FROM answer_events
		 WHERE session_id = ?
		 ORDER BY sequence ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		var correct int
		var ts int64
		if err := rows.Scan(&rec.QuestionID, &rec.QuestionType,
			&rec.Difficulty, &rec.Submitted, &rec.CorrectAnswer,
			&correct, &rec.Points, &ts); err != nil {
			return nil, fmt.Errorf("scan answer record: %w", err)
		}
		rec.Correct = correct != 0
		rec.Timestamp = time.Unix(ts, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) Reset(ctx context.Context) error {
	stmts := []string{
		`DELETE FROM answer_events`,
		`DELETE FROM session_events`,
		`UPDATE global_sequence SET next_val = 0 WHERE id = 1`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset events: %w", err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
