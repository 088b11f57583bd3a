package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kateleext/textfusion/internal/compare"
	"github.com/kateleext/textfusion/internal/highlight"
)

// Pane identifies one of the two editors
type Pane int

const (
	LeftPane Pane = iota
	RightPane
)

func (p Pane) String() string {
	if p == RightPane {
		return "right"
	}
	return "left"
}

// Model is the bubbletea model
type Model struct {
	keys KeyMap
	help help.Model

	left  textarea.Model
	right textarea.Model
	focus Pane

	// highlighter walks the visible left lines on every render; it holds the
	// right text as its reference.
	highlighter *compare.Highlighter
	syntax      *highlight.Syntax
	differences int

	leftTop int // first left line in view
	width   int
	height  int
}

// New creates a new UI model with the left pane focused
func New(cfg Config) Model {
	m := Model{
		keys:        defaultKeyMap(),
		help:        help.New(),
		left:        newEditor(),
		right:       newEditor(),
		focus:       LeftPane,
		highlighter: compare.NewHighlighter(""),
		syntax:      highlight.New(cfg.Language, cfg.Style),
	}
	m.left.Focus()
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return ta
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchPane):
			return m, m.switchFocus()
		case key.Matches(msg, m.keys.Clear):
			m.editor(m.focus).Reset()
			m.textChanged(m.focus)
			return m, nil
		}
	}

	ed := m.editor(m.focus)
	before := ed.Value()
	var cmd tea.Cmd
	*ed, cmd = ed.Update(msg)
	if ed.Value() != before {
		m.textChanged(m.focus)
	}
	m.scrollLeft()
	return m, cmd
}

func (m *Model) editor(p Pane) *textarea.Model {
	if p == RightPane {
		return &m.right
	}
	return &m.left
}

func (m *Model) switchFocus() tea.Cmd {
	m.editor(m.focus).Blur()
	if m.focus == LeftPane {
		m.focus = RightPane
	} else {
		m.focus = LeftPane
	}
	return m.editor(m.focus).Focus()
}

// textChanged recomputes everything derived from the two texts after an edit
// to pane p.
func (m *Model) textChanged(p Pane) {
	if p == RightPane {
		m.highlighter.SetReference(m.right.Value())
	}
	m.differences = compare.CountDifferentLines(m.left.Value(), m.right.Value())
	log.Printf("%s pane edited: %d line(s) differ", p, m.differences)
}

// setText replaces the text of pane p as if the user had typed it
func (m *Model) setText(p Pane, text string) {
	m.editor(p).SetValue(text)
	m.textChanged(p)
	m.scrollLeft()
}

func (m *Model) resize() {
	paneWidth, paneHeight := m.paneSize()
	m.left.SetWidth(paneWidth)
	m.left.SetHeight(paneHeight)
	m.right.SetWidth(paneWidth)
	m.right.SetHeight(paneHeight)
	m.help.Width = m.width
	m.scrollLeft()
}

// paneSize returns the inner size of each pane
func (m Model) paneSize() (int, int) {
	w := (m.width-paneGap)/2 - frameSize
	h := m.height - frameSize - statusHeight - helpHeight
	return max(w, 1), max(h, 1)
}

// scrollLeft keeps the left cursor line inside the left viewport
func (m *Model) scrollLeft() {
	_, height := m.paneSize()
	row := m.left.Line()
	if row < m.leftTop {
		m.leftTop = row
	}
	if row >= m.leftTop+height {
		m.leftTop = row - height + 1
	}
	if m.leftTop < 0 {
		m.leftTop = 0
	}
}

// Differences returns the current number of differing lines
func (m Model) Differences() int {
	return m.differences
}

// Focus returns the pane receiving keystrokes
func (m Model) Focus() Pane {
	return m.focus
}
