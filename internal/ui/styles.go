package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Pane frames (matching the 109=cyan, 241=dim palette)
	focusedPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("109"))
	blurredPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241"))

	// Left pane tint once the first line has content
	matchTint = lipgloss.Color("#E6FFE6")
	diffTint  = lipgloss.Color("#FFF2F2")

	differentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	cursorStyle      = lipgloss.NewStyle().Reverse(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusMatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#009900"))
	statusDiffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC0000"))
	statusIdleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

const (
	placeholderText = "Enter text here..."
	paneGap         = 2
	frameSize       = 2 // border on each side
)

// ansiPrefix returns the escape sequence style opens with, or "" when the
// active color profile renders no colors.
func ansiPrefix(style lipgloss.Style) string {
	rendered := style.Render(" ")
	if i := strings.Index(rendered, " "); i > 0 {
		return rendered[:i]
	}
	return ""
}
