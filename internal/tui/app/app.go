// Package app provides the main TUI application that wires all views together.
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/tui"
	"github.com/tezosjh/recruit/internal/tui/commands"
	"github.com/tezosjh/recruit/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	intakeView   views.IntakeModel
	completeView views.CompleteModel
}

// New creates a new App around model.
func New(model *tui.Model) *App {
	return &App{
		model:        model,
		intakeView:   views.NewIntakeModel(model.Session, model.Cfg.Branding, model.Width, model.Height),
		completeView: views.NewCompleteModel(model.Cfg.Branding, model.Width, model.Height),
	}
}

// Model exposes the shared state, mainly for tests.
func (a *App) Model() *tui.Model {
	return a.model
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	a.model.RecordEvent(log.EventSessionStarted)
	return tea.Batch(tea.SetWindowTitle(a.model.Cfg.Branding.WindowTitle), a.intakeView.Init())
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		var cmd tea.Cmd
		a.intakeView, cmd = a.intakeView.Update(msg)
		a.completeView, _ = a.completeView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				// Second press within timeout - exit
				return a, tea.Quit
			}
			// First press - set pending and start timeout
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

		// An open alert swallows keys until dismissed.
		if a.model.Alert != nil {
			if key.Matches(msg, tui.DefaultKeyMap.Dismiss) {
				return a, func() tea.Msg { return tui.DismissAlertMsg{} }
			}
			return a, nil
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.DismissAlertMsg:
		a.model.Alert = nil
		return a, nil

	case tui.CommitMsg:
		return a, a.apply(form.Commit{Input: msg.Input})

	case tui.AdvanceMsg:
		return a, a.apply(form.AdvanceElapsed{})

	case tui.SubmitResultMsg:
		if msg.Err != nil {
			cmd := a.apply(form.SubmitFailed{Err: msg.Err})
			a.model.Alert = a.model.SubmissionAlert(msg.Err)
			return a, cmd
		}
		return a, a.apply(form.SubmitSucceeded{})

	case tui.ResetMsg:
		cmd := a.apply(form.Reset{})
		if a.model.Session.Phase() == form.PhaseAsking {
			a.model.RecordEvent(log.EventSessionReset)
		}
		return a, cmd

	case spinner.TickMsg:
		// Let the spinner stop once nothing is pending.
		if !a.model.Session.Phase().Busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.model.Spinner, cmd = a.model.Spinner.Update(msg)
		return a, cmd
	}

	// Route remaining messages to the active view
	var cmd tea.Cmd
	if a.model.Session.Phase() == form.PhaseComplete {
		a.completeView, cmd = a.completeView.Update(msg)
	} else {
		a.intakeView, cmd = a.intakeView.Update(msg)
	}
	return a, cmd
}

// apply runs one state machine transition and turns its effect into a
// command.
func (a *App) apply(ev form.Event) tea.Cmd {
	eff, err := a.model.Session.Apply(ev)
	a.model.LogTransition(ev, eff, err)

	switch {
	case errors.Is(err, form.ErrEmptyInput):
		return nil
	case errors.Is(err, form.ErrInvalidSelection):
		a.model.Alert = tui.SelectionAlert(err)
		return nil
	case err != nil:
		// Stale timer or result after a phase change; nothing to do.
		a.model.Logger.Debug("ignored event", zap.Error(err))
		return nil
	}

	var cmd tea.Cmd
	switch eff {
	case form.EffectScheduleAdvance:
		a.intakeView.ClearInput()
		cmd = tea.Batch(commands.AdvanceCmd(a.model.Cfg.Form.AdvanceDelay), a.model.Spinner.Tick)
	case form.EffectSubmit:
		cmd = commands.SubmitCmd(a.model.Submitter, a.model.Session.Answers())
	}

	if _, ok := ev.(form.Reset); ok {
		a.intakeView.ClearInput()
	}
	a.intakeView.Sync()
	return cmd
}

// View renders the current application state.
func (a *App) View() string {
	a.intakeView.SetCtrlCPending(a.model.CtrlCPending)
	a.completeView.SetCtrlCPending(a.model.CtrlCPending)

	var content string
	if a.model.Session.Phase() == form.PhaseComplete {
		content = a.completeView.View()
	} else {
		a.intakeView.SetStatus(a.busyLine(), a.model.Alert)
		content = a.intakeView.View()
	}

	return lipgloss.PlaceHorizontal(a.model.Width, lipgloss.Center, content)
}

// busyLine renders the spinner while the form advances or submits.
func (a *App) busyLine() string {
	switch a.model.Session.Phase() {
	case form.PhaseAdvancing:
		return a.model.Spinner.View() + " " + tui.WarningStyle.Render("Processing...")
	case form.PhaseSubmitting:
		return a.model.Spinner.View() + " " + tui.WarningStyle.Render("Submitting to database...")
	default:
		return ""
	}
}
