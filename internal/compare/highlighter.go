package compare

// Highlighter classifies the lines of the left text one at a time, in the
// order a renderer draws them. It keeps a cursor naming the line index the
// next call refers to and a copy of the right-hand reference text.
//
// Calls to ClassifyAndAdvance must be sequential and follow document order.
// A renderer that starts drawing somewhere other than where the last pass
// stopped positions the cursor first with SetCursorLine. A Highlighter is not
// safe for concurrent use.
type Highlighter struct {
	reference      string
	referenceLines []string
	currentLine    int
}

// NewHighlighter returns a Highlighter comparing against reference with the
// cursor at line 0.
func NewHighlighter(reference string) *Highlighter {
	h := &Highlighter{}
	h.SetReference(reference)
	return h
}

// SetReference replaces the reference text. The cursor is left where it is.
func (h *Highlighter) SetReference(reference string) {
	h.reference = reference
	h.referenceLines = SplitLines(reference)
}

// Reference returns the current reference text.
func (h *Highlighter) Reference() string {
	return h.reference
}

// SetCursorLine moves the cursor to line.
func (h *Highlighter) SetCursorLine(line int) {
	h.currentLine = line
}

// Reset moves the cursor back to the first line.
func (h *Highlighter) Reset() {
	h.SetCursorLine(0)
}

// CursorLine returns the index of the line the next call will classify.
func (h *Highlighter) CursorLine() int {
	return h.currentLine
}

// ClassifyAndAdvance classifies line as the line at the cursor, then advances
// the cursor by one. The result holds at most one Highlight spanning all of
// line; it is nil when line is not marked.
func (h *Highlighter) ClassifyAndAdvance(line string) []Highlight {
	var highlights []Highlight
	if hl, ok := Classify(h.currentLine, line, h.referenceLines); ok {
		highlights = append(highlights, hl)
	}
	h.currentLine++
	return highlights
}
