// Package commands provides Bubble Tea commands for TUI operations.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/submit"
	"github.com/tezosjh/recruit/internal/tui"
)

// AdvanceCmd fires AdvanceMsg after delay. A zero delay fires immediately.
func AdvanceCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return tui.AdvanceMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return tui.AdvanceMsg{}
	})
}

// SubmitCmd sends answers through s and reports the outcome as
// SubmitResultMsg. The request is not cancelled if the program exits.
func SubmitCmd(s submit.Submitter, answers form.Answers) tea.Cmd {
	return func() tea.Msg {
		err := s.Submit(context.Background(), answers)
		return tui.SubmitResultMsg{Err: err}
	}
}
