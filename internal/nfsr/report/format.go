// Package report renders cycle decomposition results for the terminal and
// persists them to plain-text files.
package report

import (
	"strings"

	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
)

// FormatState renders a state as an n-character binary string, front bit
// (x[0]) leftmost. This matches the register's own bit order rather than
// the usual most-significant-first integer notation.
func FormatState(state uint64, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if (state>>uint(i))&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// FormatCycle renders a cycle as its states joined by arrows, e.g.
// "(100 -> 010 -> 001)".
func FormatCycle(c cycles.Cycle, n int) string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = FormatState(s, n)
	}
	return "(" + strings.Join(parts, " -> ") + ")"
}
