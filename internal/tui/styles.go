package tui

import "github.com/charmbracelet/lipgloss"

// Color constants matching the green-on-black terminal look.
const (
	primaryColor   = "#22C55E" // Green
	accentColor    = "#60A5FA" // Blue
	answerColor    = "#F9FAFB" // White
	warningColor   = "#FACC15" // Yellow
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
	frameColor     = "#14532D" // Dark green
	historyQColor  = "#93C5FD" // Light blue
	selectionColor = "#D1D5DB" // Light gray
)

// Style variables for consistent TUI rendering.
var (
	// FrameStyle wraps the whole terminal window.
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(frameColor)).
			Padding(0, 2)

	// TitleBarStyle renders the fake window title.
	TitleBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Faint(true)

	// TextStyle renders regular terminal output.
	TextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor))

	// PromptStyle renders the active question.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	// HistoryQuestionStyle renders answered questions.
	HistoryQuestionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(historyQColor))

	// AnswerStyle renders stored answers.
	AnswerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(answerColor)).
			PaddingLeft(2)

	// SelectionStyle renders stored team selections.
	SelectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(selectionColor)).
			PaddingLeft(2)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// HintStyle renders the optional line under a question.
	HintStyle = DimStyle.PaddingLeft(2)

	// AccentStyle renders progress and footer text.
	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor))

	// WarningStyle renders busy indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor)).
			Bold(true)

	// AlertStyle frames blocking alerts.
	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(errorColor)).
			Padding(1, 2)

	// FooterStyle frames the instructions under the form.
	FooterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")).
			Padding(0, 2).
			Align(lipgloss.Center)

	// ButtonStyle renders the focused completion action.
	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#16A34A")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 3)
)

// Progress markers (pre-rendered strings).
var (
	// ProgressDone marks an answered question.
	ProgressDone = AccentStyle.Render("●")

	// ProgressCurrent marks the question being asked.
	ProgressCurrent = AccentStyle.Render("◉")

	// ProgressPending marks a question not yet reached.
	ProgressPending = DimStyle.Render("○")
)
