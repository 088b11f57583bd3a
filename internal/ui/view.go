package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/kateleext/textfusion/internal/compare"
)

const (
	statusHeight = 1
	helpHeight   = 1
)

// leftRow is one rendered line of the left pane
type leftRow struct {
	Index  int
	Text   string
	Marks  []compare.Highlight
	Cursor int // rune column of the cursor, -1 when not on this line
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	width, height := m.paneSize()

	left := m.paneStyle(LeftPane).Render(m.renderLeft(width, height))
	right := m.paneStyle(RightPane).Render(m.right.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", paneGap), right)

	status := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, panes, status, m.help.View(m.keys))
}

func (m Model) paneStyle(p Pane) lipgloss.Style {
	if m.focus == p {
		return focusedPaneStyle
	}
	return blurredPaneStyle
}

// hasContent reports whether the first left line is non-blank
func (m Model) hasContent() bool {
	lines := compare.SplitLines(m.left.Value())
	return len(lines) > 0 && strings.TrimSpace(lines[0]) != ""
}

// statusLine summarizes the comparison
func (m Model) statusLine() string {
	switch {
	case m.differences == 0 && m.hasContent():
		return statusMatchStyle.Render("✓ Texts match perfectly")
	case m.differences > 0:
		return statusDiffStyle.Render(fmt.Sprintf("⚠ %d line(s) differ", m.differences))
	default:
		return statusIdleStyle.Render("Type in both input fields to compare")
	}
}

// tint returns the left pane background, or nil for the terminal default
func (m Model) tint() lipgloss.TerminalColor {
	if !m.hasContent() {
		return nil
	}
	if m.differences > 0 {
		return diffTint
	}
	return matchTint
}

// leftRows runs one highlighting pass over the visible left lines. The pass
// starts at the viewport's first line, so the highlighter cursor is moved
// there before the first line is classified.
func (m Model) leftRows(height int) []leftRow {
	lines := strings.Split(m.left.Value(), "\n")
	cursorRow, cursorCol := -1, -1
	if m.focus == LeftPane {
		info := m.left.LineInfo()
		cursorRow, cursorCol = m.left.Line(), info.StartColumn+info.ColumnOffset
	}

	m.highlighter.SetCursorLine(m.leftTop)
	rows := make([]leftRow, 0, height)
	for i := m.leftTop; i < len(lines) && len(rows) < height; i++ {
		row := leftRow{
			Index:  i,
			Text:   lines[i],
			Marks:  m.highlighter.ClassifyAndAdvance(lines[i]),
			Cursor: -1,
		}
		if i == cursorRow {
			row.Cursor = cursorCol
		}
		rows = append(rows, row)
	}
	return rows
}

func (m Model) renderLeft(width, height int) string {
	var bgCode string
	if tint := m.tint(); tint != nil {
		bgCode = ansiPrefix(lipgloss.NewStyle().Background(tint))
	}

	out := make([]string, 0, height)
	if m.left.Value() == "" {
		line := placeholderStyle.Render(placeholderText)
		if m.focus == LeftPane {
			line = cursorStyle.Render(placeholderText[:1]) + placeholderStyle.Render(placeholderText[1:])
		}
		out = append(out, fitWidth(line, width))
	} else {
		for _, row := range m.leftRows(height) {
			out = append(out, InjectBackground(fitWidth(m.renderLeftRow(row), width), bgCode))
		}
	}
	for len(out) < height {
		out = append(out, InjectBackground(strings.Repeat(" ", width), bgCode))
	}
	return strings.Join(out, "\n")
}

// renderLeftRow styles marked byte ranges and the cursor. Lines with neither
// get syntax coloring when a language is configured.
func (m Model) renderLeftRow(row leftRow) string {
	if len(row.Marks) == 0 && row.Cursor < 0 {
		return expandTabs(m.syntax.Line(row.Text))
	}

	var b strings.Builder
	var seg strings.Builder
	segStyle := lipgloss.NewStyle()
	flush := func() {
		if seg.Len() > 0 {
			b.WriteString(segStyle.Render(expandTabs(seg.String())))
			seg.Reset()
		}
	}

	col := 0
	for i, r := range row.Text {
		style := lipgloss.NewStyle()
		if markedAt(row.Marks, i) {
			style = differentStyle
		}
		if col == row.Cursor {
			style = style.Inherit(cursorStyle)
		}
		if !sameStyle(style, segStyle) {
			flush()
			segStyle = style
		}
		seg.WriteRune(r)
		col++
	}
	flush()

	if row.Cursor >= utf8.RuneCountInString(row.Text) {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func markedAt(marks []compare.Highlight, offset int) bool {
	for _, hl := range marks {
		if hl.Marker == compare.MarkerDifferent && offset >= hl.Range.Start && offset < hl.Range.End {
			return true
		}
	}
	return false
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetReverse() == b.GetReverse() && a.GetForeground() == b.GetForeground()
}
