package tui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/submit"
)

// SelectionAlert builds the alert for a team answer with no valid pick.
func SelectionAlert(err error) *Alert {
	return &Alert{Title: "Invalid selection", Message: err.Error()}
}

// SubmissionAlert builds the alert for a failed submission, carrying the
// server's detail or the transport error text.
func (m *Model) SubmissionAlert(err error) *Alert {
	alert := &Alert{Title: "Submission failed", Message: err.Error()}

	var transport *submit.TransportError
	if errors.As(err, &transport) {
		alert.Title = "Network error"
		if m.Cfg != nil && m.Cfg.Log.File != "" {
			alert.Message += fmt.Sprintf("\n\nCheck %s for details.", m.Cfg.Log.File)
		}
	}
	if n := submit.Attempt(err); n > 1 {
		alert.Message += fmt.Sprintf("\n\n(failed attempt %d)", n)
	}
	alert.Message += "\n\nPress Enter on the last answer to resubmit."
	return alert
}

// RecordEvent appends a session event, logging rather than surfacing
// write failures.
func (m *Model) RecordEvent(name string) {
	if err := m.Events.Append(log.LogEvent{Event: name}); err != nil {
		m.Logger.Warn("appending event log", zap.Error(err))
	}
}

// LogTransition records a state machine step at debug level.
func (m *Model) LogTransition(ev form.Event, eff form.Effect, err error) {
	m.Logger.Debug("transition",
		zap.String("event", fmt.Sprintf("%T", ev)),
		zap.Stringer("phase", m.Session.Phase()),
		zap.Int("position", m.Session.Position()),
		zap.Int("effect", int(eff)),
		zap.Error(err),
	)
}
