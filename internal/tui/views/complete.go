package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tezosjh/recruit/internal/config"
	"github.com/tezosjh/recruit/internal/tui"
)

// CompleteModel is the view model shown after a successful submission.
type CompleteModel struct {
	branding     config.BrandingConfig
	keys         tui.KeyMap
	ctrlCPending bool
	width        int
	height       int
}

// NewCompleteModel creates a CompleteModel.
func NewCompleteModel(branding config.BrandingConfig, width, height int) CompleteModel {
	return CompleteModel{
		branding: branding,
		keys:     tui.DefaultKeyMap,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the completion view.
func (m CompleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the completion view.
func (m CompleteModel) Update(msg tea.Msg) (CompleteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return tui.ResetMsg{} }
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// SetCtrlCPending updates the Ctrl+C confirmation hint.
func (m *CompleteModel) SetCtrlCPending(pending bool) {
	m.ctrlCPending = pending
}

// View renders the completion view.
func (m CompleteModel) View() string {
	width := maxIntakeWidth
	if m.width-4 < width {
		width = max(m.width-4, 40)
	}
	inner := width - 6

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(renderTitleBar(m.branding.WindowTitle, inner))
	b.WriteString("\n\n")
	b.WriteString(center.Render("🎉"))
	b.WriteString("\n\n")
	b.WriteString(center.Render(tui.TextStyle.Bold(true).Render("Application Submitted Successfully!")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(tui.DimStyle.Render(m.branding.Completion)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(tui.AccentStyle.Render("💡 " + m.branding.Motto)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(tui.ButtonStyle.Render("Submit Another Application")))
	b.WriteString("\n\n")

	hint := "enter: submit another application · q: quit"
	if m.ctrlCPending {
		b.WriteString(center.Render(tui.WarningStyle.Render("Press Ctrl+C again to exit")))
	} else {
		b.WriteString(center.Render(tui.DimStyle.Render(hint)))
	}

	return tui.FrameStyle.Width(width).Render(b.String())
}
