// Package compare aligns two texts line by line and decides which lines of the
// left text differ from the right one.
//
// Alignment is purely positional: line i of the left text is compared with
// line i of the right text. A blank left line is never reported, even when
// the right side has content at that index, and a non-blank left line with no
// right counterpart always is.
package compare

// CountDifferentLines returns the number of line indices at which left differs
// from right. Missing lines compare as empty strings and blank left lines are
// not counted.
func CountDifferentLines(left, right string) int {
	leftLines := SplitLines(left)
	rightLines := SplitLines(right)

	maxLines := max(len(leftLines), len(rightLines))
	count := 0
	for i := 0; i < maxLines; i++ {
		// Past the end of left the line is empty and never counts.
		if differs(i, lineAt(leftLines, i), rightLines) {
			count++
		}
	}
	return count
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
