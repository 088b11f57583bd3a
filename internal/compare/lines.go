package compare

import "strings"

// SplitLines splits text into lines on "\n", dropping a "\r" that directly
// precedes a "\n". A trailing terminator does not start a new line, so "a\n"
// and "a" both yield ["a"], and "" yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	terminated := strings.HasSuffix(text, "\n")
	if terminated {
		text = text[:len(text)-1]
	}

	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	for i := 0; i < last; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	// A lone "\r" at the very end is content, not part of a terminator.
	if terminated {
		lines[last] = strings.TrimSuffix(lines[last], "\r")
	}
	return lines
}

// isBlank reports whether line holds nothing but whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
