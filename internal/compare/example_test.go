package compare_test

import (
	"fmt"

	"github.com/kateleext/textfusion/internal/compare"
)

func ExampleCountDifferentLines() {
	fmt.Println(compare.CountDifferentLines("a\nb\nc", "a\nX\nc"))
	fmt.Println(compare.CountDifferentLines("", "abc"))
	fmt.Println(compare.CountDifferentLines("abc", ""))
	// Output:
	// 1
	// 0
	// 1
}

func ExampleHighlighter() {
	h := compare.NewHighlighter("a\nX\nc")
	for _, line := range []string{"a", "b", "c"} {
		marks := h.ClassifyAndAdvance(line)
		fmt.Println(line, len(marks) > 0)
	}
	// Output:
	// a false
	// b true
	// c false
}
