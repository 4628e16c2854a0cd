package tui

// ============================================================================
// Form Messages
// ============================================================================

// CommitMsg carries the input buffer when the applicant presses Enter.
type CommitMsg struct {
	Input string
}

// AdvanceMsg fires when the post-commit delay has elapsed.
type AdvanceMsg struct{}

// SubmitResultMsg reports the outcome of the webhook submission.
// Err is nil on success.
type SubmitResultMsg struct {
	Err error
}

// ResetMsg asks for a fresh application from the completion screen.
type ResetMsg struct{}

// ============================================================================
// Utility Messages
// ============================================================================

// DismissAlertMsg closes the active alert.
type DismissAlertMsg struct{}

// CtrlCResetMsg clears the pending Ctrl+C confirmation after a timeout.
type CtrlCResetMsg struct{}
