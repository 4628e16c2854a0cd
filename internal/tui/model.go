// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/config"
	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/submit"
)

// Alert is a blocking notice shown over the form until dismissed.
type Alert struct {
	Title   string
	Message string
}

// Model is the shared state of the intake application.
type Model struct {
	// Configuration
	Cfg *config.Config

	// Session state machine and its collaborators
	Session   *form.Session
	Submitter submit.Submitter
	Logger    *zap.Logger
	Events    *log.Logger

	// Blocking alert, nil when none is shown
	Alert *Alert

	// Bubbles components
	Spinner spinner.Model

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a Model for a fresh session. A nil logger discards output;
// a nil event log records nothing.
func NewModel(cfg *config.Config, submitter submit.Submitter, logger *zap.Logger, events *log.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = WarningStyle

	return &Model{
		Cfg:       cfg,
		Session:   form.NewSession(),
		Submitter: submitter,
		Logger:    logger,
		Events:    events,
		Spinner:   sp,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}
