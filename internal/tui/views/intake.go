// Package views provides TUI view components for the intake form.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tezosjh/recruit/internal/config"
	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/tui"
)

// ============================================================================
// IntakeModel
// ============================================================================

// maxIntakeWidth is the maximum width for the terminal frame.
const maxIntakeWidth = 100

// IntakeModel is the view model for the question screen.
type IntakeModel struct {
	session  *form.Session
	branding config.BrandingConfig
	input    textinput.Model
	help     help.Model
	keys     tui.KeyMap

	// Synced from the app before each render
	busyLine     string
	alert        *tui.Alert
	ctrlCPending bool

	width  int
	height int
}

// NewIntakeModel creates an IntakeModel rendering session.
func NewIntakeModel(session *form.Session, branding config.BrandingConfig, width, height int) IntakeModel {
	ti := textinput.New()
	ti.Prompt = "~ "
	ti.PromptStyle = tui.TextStyle
	ti.TextStyle = tui.AnswerStyle.UnsetPaddingLeft()
	ti.PlaceholderStyle = tui.DimStyle
	ti.CharLimit = 500
	ti.Focus()

	m := IntakeModel{
		session:  session,
		branding: branding,
		input:    ti,
		help:     help.New(),
		keys:     tui.DefaultKeyMap,
		width:    width,
		height:   height,
	}
	m.Sync()
	return m
}

// Init returns the initial command for the intake view.
func (m IntakeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the intake view.
func (m IntakeModel) Update(msg tea.Msg) (IntakeModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Input is disabled while the form advances or submits.
		if m.session.Phase().Busy() {
			return m, nil
		}
		if key.Matches(msg, m.keys.Submit) {
			value := m.input.Value()
			return m, func() tea.Msg {
				return tui.CommitMsg{Input: value}
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Sync()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current input buffer.
func (m IntakeModel) Value() string {
	return m.input.Value()
}

// ClearInput empties the input buffer.
func (m *IntakeModel) ClearInput() {
	m.input.Reset()
}

// Sync refreshes the input for the current question and phase.
func (m *IntakeModel) Sync() {
	q := m.session.Current()
	m.input.Placeholder = q.Placeholder
	m.input.Width = m.frameWidth() - 12

	if m.session.Phase().Busy() {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
}

// SetStatus passes the busy indicator and active alert in from the app.
func (m *IntakeModel) SetStatus(busyLine string, alert *tui.Alert) {
	m.busyLine = busyLine
	m.alert = alert
}

// SetCtrlCPending updates the Ctrl+C confirmation hint.
func (m *IntakeModel) SetCtrlCPending(pending bool) {
	m.ctrlCPending = pending
}

func (m IntakeModel) frameWidth() int {
	w := maxIntakeWidth
	if m.width-4 < w {
		w = m.width - 4
	}
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the intake view.
func (m IntakeModel) View() string {
	var b strings.Builder
	width := m.frameWidth()

	b.WriteString(renderTitleBar(m.branding.WindowTitle, width-6))
	b.WriteString("\n\n")

	b.WriteString(tui.TextStyle.Render(m.branding.Banner))
	b.WriteString("\n")
	b.WriteString(tui.TextStyle.Render(m.branding.Welcome))
	b.WriteString("\n\n")

	b.WriteString(tui.DimStyle.Render("Progress: "))
	b.WriteString(progressDots(m.session))
	b.WriteString(tui.AccentStyle.Render(fmt.Sprintf("  %d/%d", m.session.Answered(), m.session.Total())))
	b.WriteString("\n\n")

	for _, e := range m.session.History() {
		b.WriteString(tui.HistoryQuestionStyle.Render("$ " + e.Question.Text))
		b.WriteString("\n")
		b.WriteString(renderAnswer(e))
		b.WriteString("\n\n")
	}

	q := m.session.Current()
	b.WriteString(tui.PromptStyle.Render("$ " + q.Text))
	b.WriteString("\n")
	if q.Hint != "" {
		b.WriteString(tui.HintStyle.Render(q.Hint))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.busyLine != "" {
		b.WriteString("\n")
		b.WriteString(m.busyLine)
		b.WriteString("\n")
	}

	if m.alert != nil {
		b.WriteString("\n")
		b.WriteString(RenderAlert(m.alert, width-8))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := tui.AccentStyle.Render("Press Enter to submit your answer • Type your responses in the terminal above") +
		"\n" +
		tui.AccentStyle.Render(fmt.Sprintf("Question %d of %d", m.session.Position()+1, m.session.Total()))
	b.WriteString(tui.FooterStyle.Width(width - 8).Render(footer))
	b.WriteString("\n")

	if m.ctrlCPending {
		b.WriteString(tui.WarningStyle.Render("Press Ctrl+C again to exit"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return tui.FrameStyle.Width(width).Render(b.String())
}

// progressDots marks answered, current, and pending questions.
func progressDots(s *form.Session) string {
	dots := make([]string, s.Total())
	answered := s.Answered()
	for i := range dots {
		switch {
		case i < answered:
			dots[i] = tui.ProgressDone
		case i == s.Position():
			dots[i] = tui.ProgressCurrent
		default:
			dots[i] = tui.ProgressPending
		}
	}
	return strings.Join(dots, " ")
}

func renderAnswer(e form.Entry) string {
	if e.Question.Kind == form.KindTeams {
		return tui.SelectionStyle.Render("Selected: " + e.Answer)
	}
	return tui.AnswerStyle.Render("> " + e.Answer)
}

// renderTitleBar draws the window buttons and title above a rule.
func renderTitleBar(title string, width int) string {
	buttons := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Render("●")
	rule := tui.DimStyle.Render(strings.Repeat("─", max(width, 1)))
	return buttons + "   " + tui.TitleBarStyle.Render(title) + "\n" + rule
}
