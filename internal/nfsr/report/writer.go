package report

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
)

// WriteOptions controls file persistence.
type WriteOptions struct {
	// FeedbackDesc names the feedback rule in the report header.
	FeedbackDesc string

	// Logger narrates write progress at Info level. Nil disables narration.
	Logger *slog.Logger

	// Now overrides the header timestamp, for reproducible tests.
	Now func() time.Time
}

// WriteFile persists a decomposition result as a plain-text report: header,
// cycle listing, length distribution, and the structure fingerprint.
func WriteFile(path string, res *cycles.Result, opts WriteOptions) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	log.Info("writing report header", "path", path)
	fmt.Fprintf(w, "NFSR cycle decomposition\n")
	fmt.Fprintf(w, "generated: %s\n", now().UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "register length: %d\n", res.Length)
	fmt.Fprintf(w, "feedback: %s\n", opts.FeedbackDesc)
	fmt.Fprintf(w, "states: %d\n\n", res.TotalStates)

	log.Info("writing cycle listing", "cycles", res.CycleCount())
	for _, l := range res.Lengths() {
		group := res.ByLength[l]
		fmt.Fprintf(w, "cycles of length %d (%d found)\n", l, len(group))
		for i, c := range group {
			fmt.Fprintf(w, "  %d: %s\n", i+1, FormatCycle(c, res.Length))
		}
	}
	fmt.Fprintln(w)

	log.Info("writing distribution table")
	w.WriteString(PlainDistribution(res))
	fmt.Fprintln(w)

	fp := Fingerprint(res)
	log.Info("writing fingerprint", "sha3", fp)
	fmt.Fprintf(w, "fingerprint: sha3-256:%s\n", fp)
	fmt.Fprintf(w, "elapsed: %v\n", res.Elapsed)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	log.Info("report written", "path", path)
	return nil
}
