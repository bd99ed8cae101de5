package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjunm/dsamaster/internal/catalog"
	"github.com/arjunm/dsamaster/internal/quiz"
	"github.com/arjunm/dsamaster/internal/router"
	"github.com/arjunm/dsamaster/internal/screen"
	"github.com/arjunm/dsamaster/internal/screens/results"
	"github.com/arjunm/dsamaster/internal/session"
	"github.com/arjunm/dsamaster/internal/store"
	"github.com/arjunm/dsamaster/internal/ui/components"
	"github.com/arjunm/dsamaster/internal/ui/layout"
)

// QuizScreen runs one quiz session.
type QuizScreen struct {
	state   *session.State
	tracker session.Tracker
	events  store.EventRepo

	// Per-question input state, reset on navigation.
	input       components.TextInput
	optSelected int

	// Matching state: cursor over left terms, one chosen right value
	// per left term.
	matchCursor int
	matchChoice map[string]int

	showingFeedback bool
	lastRecord      session.Record
	quitConfirm     bool
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New draws a fresh session from the catalog.
func New(questions []catalog.Question, tracker session.Tracker, events store.EventRepo) *QuizScreen {
	return &QuizScreen{
		state:   session.NewFromCatalog(questions),
		tracker: tracker,
		events:  events,
		input:   components.NewTextInput("Type the missing code...", 60),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.state.ID,
			Action:    store.SessionStarted,
			Questions: len(s.state.Questions),
		})
	}
	s.resetQuestionInput()
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// HandlesEsc keeps Esc inside the screen for the quit confirmation.
func (s *QuizScreen) HandlesEsc() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		if s.state.IsLast() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "See results"},
				{Key: "←", Description: "Previous"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Previous"},
		}
	}
	q := s.state.Current()
	if q != nil && q.Type == catalog.TypeMatching {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Term"},
			{Key: "←→", Description: "Definition"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finishQuizMsg:
		return s.handleFinish()

	case summaryReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: results.New(msg.Summary),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s.handleAbandon()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		switch key {
		case "left":
			if s.state.Prev() {
				s.syncToCursor()
			}
			return s, nil
		case "enter", "right":
			if s.state.IsLast() {
				return s, func() tea.Msg { return finishQuizMsg{} }
			}
			s.state.Advance()
			s.syncToCursor()
			return s, nil
		}
		return s, nil
	}

	q := s.state.Current()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "left":
		if !s.textInputActive() && s.state.Prev() {
			s.syncToCursor()
			return s, nil
		}
	case "enter":
		return s.submit()
	}

	switch q.Type {
	case catalog.TypeMultipleChoice, catalog.TypeTrueFalse:
		return s.handleOptionKey(key, q)
	case catalog.TypeMatching:
		return s.handleMatchingKey(key, q)
	case catalog.TypeCodeCompletion:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleOptionKey(key string, q *catalog.Question) (screen.Screen, tea.Cmd) {
	opts := optionsFor(q)
	switch key {
	case "up", "k":
		if s.optSelected > 0 {
			s.optSelected--
		}
	case "down", "j":
		if s.optSelected < len(opts)-1 {
			s.optSelected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(opts) {
			s.optSelected = idx
			return s.submit()
		}
	}
	return s, nil
}

func (s *QuizScreen) handleMatchingKey(key string, q *catalog.Question) (screen.Screen, tea.Cmd) {
	n := len(q.MatchingPairs)
	if n == 0 {
		return s, nil
	}
	switch key {
	case "up", "k":
		if s.matchCursor > 0 {
			s.matchCursor--
		}
	case "down", "j":
		if s.matchCursor < n-1 {
			s.matchCursor++
		}
	case "right", "l":
		left := q.MatchingPairs[s.matchCursor].Left
		s.matchChoice[left] = (s.matchChoice[left] + 1) % n
	case "h":
		left := q.MatchingPairs[s.matchCursor].Left
		s.matchChoice[left] = (s.matchChoice[left] + n - 1) % n
	}
	return s, nil
}

// submit grades the current question and flips into feedback.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.state.Current()
	if q == nil {
		return s, nil
	}

	answer, ok := s.buildAnswer(q)
	if !ok {
		return s, nil
	}

	rec, err := s.state.Submit(answer, s.tracker)
	if err != nil {
		if errors.Is(err, session.ErrAlreadyAnswered) {
			s.lastRecord = rec
			s.showingFeedback = true
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	if s.events != nil {
		_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:     s.state.ID,
			QuestionID:    q.ID,
			QuestionType:  string(q.Type),
			Difficulty:    string(q.Difficulty),
			Submitted:     submittedText(answer),
			CorrectAnswer: q.CorrectAnswer,
			Correct:       rec.Correct,
			Points:        rec.Points,
		})
	}

	s.lastRecord = rec
	s.showingFeedback = true
	return s, nil
}

// buildAnswer assembles the answer from the active input widget.
// Returns false when the input is not submittable yet.
func (s *QuizScreen) buildAnswer(q *catalog.Question) (quiz.Answer, bool) {
	switch q.Type {
	case catalog.TypeMultipleChoice, catalog.TypeTrueFalse:
		opts := optionsFor(q)
		if s.optSelected < 0 || s.optSelected >= len(opts) {
			return quiz.Answer{}, false
		}
		choice := opts[s.optSelected]
		if q.Type == catalog.TypeTrueFalse {
			choice = trueFalseValue(s.optSelected)
		}
		return quiz.ChoiceAnswer(choice), true

	case catalog.TypeCodeCompletion:
		if s.input.Value() == "" {
			return quiz.Answer{}, false
		}
		return quiz.ChoiceAnswer(s.input.Value()), true

	case catalog.TypeMatching:
		m := make(map[string]string, len(q.MatchingPairs))
		for _, p := range q.MatchingPairs {
			idx, ok := s.matchChoice[p.Left]
			if !ok {
				return quiz.Answer{}, false
			}
			m[p.Left] = q.MatchingPairs[idx].Right
		}
		a := quiz.MatchingAnswer(m)
		if !a.Complete(q) {
			return quiz.Answer{}, false
		}
		return a, true
	}
	return quiz.Answer{}, false
}

func (s *QuizScreen) handleFinish() (screen.Screen, tea.Cmd) {
	state := s.state
	tracker := s.tracker
	events := s.events
	return s, func() tea.Msg {
		sum, err := state.Finish(tracker)
		if err != nil {
			return summaryReadyMsg{Err: err}
		}
		if events != nil {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:    state.ID,
				Action:       store.SessionEnded,
				Questions:    sum.TotalQuestions,
				Correct:      sum.TotalCorrect,
				Points:       sum.SessionPoints,
				StreakBonus:  sum.StreakBonus,
				DurationSecs: int(sum.Duration.Seconds()),
			})
		}
		return summaryReadyMsg{Summary: sum}
	}
}

// handleAbandon records the abort and leaves without folding session
// totals into the persistent stats.
func (s *QuizScreen) handleAbandon() (screen.Screen, tea.Cmd) {
	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:    s.state.ID,
			Action:       store.SessionAbandoned,
			Questions:    len(s.state.Questions),
			Correct:      s.state.SessionCorrect,
			Points:       s.state.SessionPoints,
			DurationSecs: int(time.Since(s.state.StartTime).Seconds()),
		})
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// syncToCursor resets input state after the cursor moved. Landing on
// an already answered question shows its recorded outcome.
func (s *QuizScreen) syncToCursor() {
	rec := s.state.CurrentRecord()
	if rec != nil && rec.Answered {
		s.lastRecord = *rec
		s.showingFeedback = true
		return
	}
	s.showingFeedback = false
	s.resetQuestionInput()
}

func (s *QuizScreen) resetQuestionInput() {
	s.optSelected = 0
	s.matchCursor = 0
	s.matchChoice = make(map[string]int)
	s.input = components.NewTextInput("Type the missing code...", 60)
}

func (s *QuizScreen) textInputActive() bool {
	if s.showingFeedback || s.quitConfirm {
		return false
	}
	q := s.state.Current()
	return q != nil && q.Type == catalog.TypeCodeCompletion
}

// optionsFor returns the selectable labels for a question.
func optionsFor(q *catalog.Question) []string {
	if q.Type == catalog.TypeTrueFalse {
		return []string{"True", "False"}
	}
	return q.Options
}

// trueFalseValue maps the option index to the graded answer value.
func trueFalseValue(idx int) string {
	if idx == 0 {
		return "true"
	}
	return "false"
}

// submittedText flattens an answer for the event log.
func submittedText(a quiz.Answer) string {
	if a.Matching == nil {
		return a.Choice
	}
	return quiz.MatchingKey(a.Matching)
}
