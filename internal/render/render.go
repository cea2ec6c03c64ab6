// Package render formats container state as text for the demo command.
// The containers themselves never print.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-container/container/table"
)

// Sized is the read-only view of a growable buffer.
type Sized[T any] interface {
	Elements() []T
	Len() int
	Cap() int
}

// BufferState returns "[a, b, c]  (count=n, capacity=m)".
func BufferState[T any](b Sized[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b.Elements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	fmt.Fprintf(&sb, "]  (count=%d, capacity=%d)", b.Len(), b.Cap())
	return sb.String()
}

// Buffer writes label followed by the buffer state on one line.
func Buffer[T any](w io.Writer, label string, b Sized[T]) {
	fmt.Fprintf(w, "%s  %s\n", label, BufferState(b))
}

// Table writes a heading and one "  Row r: v v v" line per row.
func Table[T any](w io.Writer, heading string, t table.Table[T]) {
	fmt.Fprintf(w, "%s:\n", heading)
	for r := 0; r < t.Rows(); r++ {
		cells := make([]string, 0, t.Cols())
		for _, v := range t.Row(r) {
			cells = append(cells, fmt.Sprint(v))
		}
		fmt.Fprintf(w, "  Row %d: %s\n", r, strings.Join(cells, " "))
	}
}

// Section writes a "--- title ---" separator preceded by a blank line.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
}
