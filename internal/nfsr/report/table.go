package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tailStyle   = lipgloss.NewStyle().Faint(true)
)

// printer groups large state counts with locale-aware separators.
var printer = message.NewPrinter(language.English)

// RenderSummary renders the headline numbers of a decomposition.
func RenderSummary(res *cycles.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Register length %d", res.Length)))
	b.WriteByte('\n')
	printer.Fprintf(&b, "States: %d  Cycles: %d  Cyclic states: %d  Tail states: %d\n",
		res.TotalStates, res.CycleCount(), res.CyclicStates, res.TailStates())
	printer.Fprintf(&b, "Elapsed: %v\n", res.Elapsed)
	return b.String()
}

// RenderCycles renders every cycle grouped by length, discovery order
// preserved within each group.
func RenderCycles(res *cycles.Result) string {
	var b strings.Builder
	for _, l := range res.Lengths() {
		group := res.ByLength[l]
		b.WriteString(headerStyle.Render(printer.Sprintf("Cycles of length %d (%d found)", l, len(group))))
		b.WriteByte('\n')
		for i, c := range group {
			fmt.Fprintf(&b, "  %d: %s\n", i+1, FormatCycle(c, res.Length))
		}
	}
	return b.String()
}

// RenderDistribution renders the cycle length distribution table with a
// totals row. Styled output is for terminals; see PlainDistribution for the
// file form.
func RenderDistribution(res *cycles.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s %8s %12s %8s", "length", "cycles", "states", "share")))
	b.WriteByte('\n')
	for _, bk := range res.Distribution() {
		b.WriteString(printer.Sprintf("%8d %8d %12d %7.2f%%\n", bk.Length, bk.Count, bk.States, 100*bk.Share))
	}
	b.WriteString(totalStyle.Render(printer.Sprintf("%8s %8d %12d %7.2f%%",
		"total", res.CycleCount(), res.CyclicStates,
		100*float64(res.CyclicStates)/float64(res.TotalStates))))
	b.WriteByte('\n')
	if tails := res.TailStates(); tails > 0 {
		b.WriteString(tailStyle.Render(printer.Sprintf("%d transient states feed into these cycles", tails)))
		b.WriteByte('\n')
	}
	return b.String()
}

// PlainDistribution renders the distribution table without terminal
// styling, for persistence.
func PlainDistribution(res *cycles.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s %8s %12s %8s\n", "length", "cycles", "states", "share")
	for _, bk := range res.Distribution() {
		printer.Fprintf(&b, "%8d %8d %12d %7.2f%%\n", bk.Length, bk.Count, bk.States, 100*bk.Share)
	}
	printer.Fprintf(&b, "%8s %8d %12d %7.2f%%\n",
		"total", res.CycleCount(), res.CyclicStates,
		100*float64(res.CyclicStates)/float64(res.TotalStates))
	return b.String()
}
