package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned when a commit carries only whitespace.
	// Callers ignore it; nothing about the session changes.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidSelection is returned when a team answer names no valid team.
	ErrInvalidSelection = errors.New("Please select at least one valid team (1-7)")

	// ErrBadTransition is returned when an event does not apply to the
	// current phase.
	ErrBadTransition = errors.New("event not valid in current phase")
)

// Phase is the session's position in the intake lifecycle.
type Phase int

const (
	PhaseAsking     Phase = iota // Waiting for an answer to Current()
	PhaseAdvancing               // Answer stored, advance timer pending
	PhaseSubmitting              // Answers handed to the submission adapter
	PhaseComplete                // Webhook accepted the application
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseAdvancing:
		return "advancing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Busy reports whether input should be refused in this phase.
func (p Phase) Busy() bool {
	return p == PhaseAdvancing || p == PhaseSubmitting
}

// Event is an input to Session.Apply.
type Event interface {
	isEvent()
}

// Commit finalizes the input buffer as the answer to the current question.
type Commit struct {
	Input string
}

// AdvanceElapsed fires once the post-commit delay has passed.
type AdvanceElapsed struct{}

// SubmitSucceeded reports that the webhook accepted the answers.
type SubmitSucceeded struct{}

// SubmitFailed reports a rejected or failed submission.
type SubmitFailed struct {
	Err error
}

// Reset starts a new application from the completion screen.
type Reset struct{}

func (Commit) isEvent()          {}
func (AdvanceElapsed) isEvent()  {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (Reset) isEvent()           {}

// Effect tells the caller what side effect a transition requires.
type Effect int

const (
	EffectNone            Effect = iota
	EffectScheduleAdvance        // start the advance timer
	EffectSubmit                 // hand Answers() to the submission adapter
)

// Answers maps question IDs to stored values.
type Answers map[string]string

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Entry pairs an answered question with its stored value.
type Entry struct {
	Question Question
	Answer   string
}

// Session walks one applicant through the questionnaire.
// It is not safe for concurrent use; the UI event loop owns it.
type Session struct {
	questions []Question
	phase     Phase
	position  int
	answers   Answers
	lastErr   error
}

// NewSession returns a session positioned at the first question.
func NewSession() *Session {
	return &Session{
		questions: Questions(),
		phase:     PhaseAsking,
		answers:   make(Answers),
	}
}

// Apply runs a single transition. On error the session is unchanged.
func (s *Session) Apply(ev Event) (Effect, error) {
	switch ev := ev.(type) {
	case Commit:
		if s.phase != PhaseAsking {
			return EffectNone, s.badTransition(ev)
		}
		value, err := s.transform(ev.Input)
		if err != nil {
			return EffectNone, err
		}
		s.answers[s.questions[s.position].ID] = value
		s.phase = PhaseAdvancing
		return EffectScheduleAdvance, nil

	case AdvanceElapsed:
		if s.phase != PhaseAdvancing {
			return EffectNone, s.badTransition(ev)
		}
		if !s.IsLast() {
			s.position++
			s.phase = PhaseAsking
			return EffectNone, nil
		}
		s.lastErr = nil
		s.phase = PhaseSubmitting
		return EffectSubmit, nil

	case SubmitSucceeded:
		if s.phase != PhaseSubmitting {
			return EffectNone, s.badTransition(ev)
		}
		s.phase = PhaseComplete
		return EffectNone, nil

	case SubmitFailed:
		if s.phase != PhaseSubmitting {
			return EffectNone, s.badTransition(ev)
		}
		// Held at the last question; re-committing it resubmits everything.
		s.lastErr = ev.Err
		s.phase = PhaseAsking
		return EffectNone, nil

	case Reset:
		if s.phase != PhaseComplete {
			return EffectNone, s.badTransition(ev)
		}
		s.position = 0
		s.answers = make(Answers)
		s.lastErr = nil
		s.phase = PhaseAsking
		return EffectNone, nil
	}

	return EffectNone, fmt.Errorf("unknown event %T: %w", ev, ErrBadTransition)
}

func (s *Session) transform(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyInput
	}

	q := s.questions[s.position]
	if q.Kind == KindTeams {
		return ParseTeams(trimmed, q.Options)
	}
	return trimmed, nil
}

func (s *Session) badTransition(ev Event) error {
	return fmt.Errorf("%T while %s: %w", ev, s.phase, ErrBadTransition)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Position returns the index of the question being asked.
func (s *Session) Position() int { return s.position }

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.questions) }

// Answered returns how many questions have a stored answer.
func (s *Session) Answered() int { return len(s.answers) }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.position == len(s.questions)-1 }

// Current returns the question being asked.
func (s *Session) Current() Question { return s.questions[s.position] }

// Answers returns a copy of the stored answers.
func (s *Session) Answers() Answers { return s.answers.Clone() }

// LastError returns the most recent submission failure, cleared when a new
// submission starts or the session resets.
func (s *Session) LastError() error { return s.lastErr }

// History returns the questions before the current position with their
// stored answers, in asking order.
func (s *Session) History() []Entry {
	entries := make([]Entry, 0, s.position)
	for _, q := range s.questions[:s.position] {
		entries = append(entries, Entry{Question: q, Answer: s.answers[q.ID]})
	}
	return entries
}
