package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	m := New(Config{})
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		if r == '\n' {
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestStatusLine(t *testing.T) {
	m := newTestModel(t, 100, 20)
	assert.Contains(t, m.View(), "Type in both input fields to compare")

	m.setText(LeftPane, "abc")
	assert.Equal(t, 1, m.Differences())
	assert.Contains(t, m.View(), "⚠ 1 line(s) differ")

	m.setText(RightPane, "abc")
	assert.Equal(t, 0, m.Differences())
	assert.Contains(t, m.View(), "✓ Texts match perfectly")
}

func TestStatusLineBlankFirstLine(t *testing.T) {
	m := newTestModel(t, 100, 20)
	m.setText(RightPane, "abc")
	assert.Equal(t, 0, m.Differences())
	assert.Contains(t, m.statusLine(), "Type in both input fields to compare")
	assert.Nil(t, m.tint())

	m.setText(LeftPane, "  \nabc")
	assert.Equal(t, 1, m.Differences())
	assert.Contains(t, m.statusLine(), "⚠ 1 line(s) differ")
	assert.Nil(t, m.tint(), "tint follows the first line only")
}

func TestTint(t *testing.T) {
	m := newTestModel(t, 100, 20)
	m.setText(LeftPane, "abc")
	assert.Equal(t, diffTint, m.tint())
	m.setText(RightPane, "abc")
	assert.Equal(t, matchTint, m.tint())
}

func TestTypingRecomputes(t *testing.T) {
	m := newTestModel(t, 100, 20)

	m = typeText(t, m, "a\nb")
	assert.Equal(t, "a\nb", m.left.Value())
	assert.Equal(t, 2, m.Differences())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, RightPane, m.Focus())

	m = typeText(t, m, "a\nX")
	assert.Equal(t, "a\nX", m.right.Value())
	assert.Equal(t, 1, m.Differences())
	assert.Equal(t, "a\nX", m.highlighter.Reference())
}

func TestSwitchPane(t *testing.T) {
	m := newTestModel(t, 100, 20)
	assert.Equal(t, LeftPane, m.Focus())
	assert.True(t, m.left.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, RightPane, m.Focus())
	assert.False(t, m.left.Focused())
	assert.True(t, m.right.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, LeftPane, m.Focus())
}

func TestClearPane(t *testing.T) {
	m := newTestModel(t, 100, 20)
	m.setText(LeftPane, "abc")
	m.setText(RightPane, "xyz")
	require.Equal(t, 1, m.Differences())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "", m.left.Value())
	assert.Equal(t, "xyz", m.right.Value())
	assert.Equal(t, 0, m.Differences())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 100, 20)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLeftRowsMarks(t *testing.T) {
	m := newTestModel(t, 100, 20)
	m.setText(RightPane, "a\nX\nc")
	m.setText(LeftPane, "a\nb\nc")

	rows := m.leftRows(10)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, i == 1, len(row.Marks) > 0, "row %d", i)
	}
	assert.Equal(t, -1, rows[0].Cursor)
	assert.Equal(t, 1, rows[2].Cursor, "cursor ends after the last character")
}

func TestLeftRowsFollowViewport(t *testing.T) {
	// 8 rows: 2 of frame, 1 status, 1 help, 4 of text
	m := newTestModel(t, 100, 8)
	_, height := m.paneSize()
	require.Equal(t, 4, height)

	var left, right []string
	for i := 0; i < 10; i++ {
		left = append(left, fmt.Sprintf("l%d", i))
		right = append(right, fmt.Sprintf("l%d", i))
	}
	right[7] = "zz"
	right[2] = "zz"
	m.setText(RightPane, strings.Join(right, "\n"))
	m.setText(LeftPane, strings.Join(left, "\n"))
	require.Equal(t, 2, m.Differences())
	require.Equal(t, 6, m.leftTop)

	rows := m.leftRows(height)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, row.Index == 7, len(row.Marks) > 0, "row %d", row.Index)
	}
	assert.Equal(t, 10, m.highlighter.CursorLine())

	// Every pass starts over at the top of the viewport.
	again := m.leftRows(height)
	assert.Equal(t, rows, again)
}

func TestScrollBackUp(t *testing.T) {
	m := newTestModel(t, 100, 8)
	m.setText(LeftPane, "1\n2\n3\n4\n5\n6\n7\n8")
	require.Equal(t, 4, m.leftTop)

	for i := 0; i < 7; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.left.Line())
	assert.Equal(t, 0, m.leftTop)
}

func TestViewRendersLeftLines(t *testing.T) {
	m := newTestModel(t, 80, 10)
	m.setText(RightPane, "hello")
	m.setText(LeftPane, "hello\nworld")

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "world")
	assert.Contains(t, view, "⚠ 1 line(s) differ")
}

func TestViewPlaceholder(t *testing.T) {
	m := newTestModel(t, 80, 10)
	assert.Contains(t, m.View(), "nter text here...")
	assert.Empty(t, New(Config{}).View(), "nothing to draw before the first size message")
}

func TestRenderLeftRowCursorPastEnd(t *testing.T) {
	m := New(Config{})
	out := m.renderLeftRow(leftRow{Text: "ab", Cursor: 2})
	assert.Equal(t, 3, VisibleWidth(out))
	assert.Contains(t, out, "ab")
}
