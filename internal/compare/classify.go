package compare

// Marker tags a highlighted range. There is only one kind of mark.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerDifferent
)

func (m Marker) String() string {
	switch m {
	case MarkerDifferent:
		return "different"
	default:
		return "none"
	}
}

// Range is a half-open byte range [Start, End) within a single line.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Highlight instructs a renderer to style a byte range of one line.
type Highlight struct {
	Range  Range
	Marker Marker
}

// Classify decides whether line, rendered at index, differs from reference.
// reference holds the lines of the right-hand text (see SplitLines). When no
// reference line exists at index, any non-blank line counts as different.
// A blank line is never marked.
//
// Classify has no state and may be called for lines in any order.
func Classify(index int, line string, reference []string) (Highlight, bool) {
	if !differs(index, line, reference) {
		return Highlight{}, false
	}
	return Highlight{
		Range:  Range{Start: 0, End: len(line)},
		Marker: MarkerDifferent,
	}, true
}

func differs(index int, line string, reference []string) bool {
	if isBlank(line) {
		return false
	}
	if index < 0 || index >= len(reference) {
		return true
	}
	return line != reference[index]
}
