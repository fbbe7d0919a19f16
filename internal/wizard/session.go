package wizard

import (
	"errors"

	"akcayapi/internal/catalog"
	"akcayapi/internal/recommend"
)

var (
	ErrCompleted     = errors.New("session already completed")
	ErrAtFirstStep   = errors.New("already at first step")
	ErrInvalidOption = errors.New("invalid option for current step")
)

// Session walks a customer through the ordered criteria list. States
// are Asking(step) for 0 <= step < len(criteria) and Completed. Each
// session is owned exclusively by one client; there is no cross-session
// sharing.
type Session struct {
	ID        string
	Step      int
	Completed bool
	Selection recommend.Selection

	criteria []catalog.Criterion
}

func NewSession(id string, criteria []catalog.Criterion) *Session {
	return &Session{
		ID:        id,
		Selection: make(recommend.Selection, len(criteria)),
		criteria:  criteria,
	}
}

// Current returns the question being asked. ok is false once the
// session has completed.
func (s *Session) Current() (catalog.Criterion, bool) {
	if s.Completed {
		return catalog.Criterion{}, false
	}
	return s.criteria[s.Step], true
}

// TotalSteps returns the number of questions in the wizard.
func (s *Session) TotalSteps() int {
	return len(s.criteria)
}

// Advance records an answer for the current step and moves forward,
// completing the session on the last step. An option value the current
// criterion does not define is rejected without any state change.
func (s *Session) Advance(value string) error {
	crit, ok := s.Current()
	if !ok {
		return ErrCompleted
	}
	if _, ok := crit.Option(value); !ok {
		return ErrInvalidOption
	}

	s.Selection[crit.Key] = value
	if s.Step == len(s.criteria)-1 {
		s.Completed = true
		return nil
	}
	s.Step++
	return nil
}

// Retreat moves one step back. Previously entered answers are kept,
// including the one for the step being left.
func (s *Session) Retreat() error {
	if s.Completed {
		return ErrCompleted
	}
	if s.Step == 0 {
		return ErrAtFirstStep
	}
	s.Step--
	return nil
}

// Reset returns the session to the first step with a cleared
// Selection. Valid from any state; a prior recommendation is simply
// never derivable again since it is computed fresh from Completed.
func (s *Session) Reset() {
	s.Step = 0
	s.Completed = false
	s.Selection = make(recommend.Selection, len(s.criteria))
}
