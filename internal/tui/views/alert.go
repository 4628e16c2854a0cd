package views

import (
	"strings"

	"github.com/tezosjh/recruit/internal/tui"
)

// RenderAlert draws a blocking alert box of the given width.
func RenderAlert(a *tui.Alert, width int) string {
	var b strings.Builder
	b.WriteString(tui.ErrorStyle.Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(a.Message)
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter / Esc to dismiss"))
	return tui.AlertStyle.Width(width).Render(b.String())
}
