package quiz

import "github.com/arjunm/dsamaster/internal/session"

// finishQuizMsg asks the screen to close the session and hand over to
// the results screen.
type finishQuizMsg struct{}

// summaryReadyMsg carries the built summary.
type summaryReadyMsg struct {
	Summary *session.Summary
	Err     error
}
