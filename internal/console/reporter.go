package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Reporter is the user-facing output channel for the reconcilers. Injecting
// it keeps the reconciliation logic testable without capturing process-wide
// stdout.
//
//go:generate mockery --name=Reporter --output=./mocks
type Reporter interface {
	// Sectionf emits a bold-style heading for a new phase of the run.
	Sectionf(format string, args ...any)
	// Infof emits a plain status line.
	Infof(format string, args ...any)
	// Successf emits a line for a completed operation.
	Successf(format string, args ...any)
	// Warnf emits a line for a non-fatal condition.
	Warnf(format string, args ...any)
	// Failf emits a line for a failed operation.
	Failf(format string, args ...any)
	// Planf emits a line describing an operation a dry run would perform.
	Planf(format string, args ...any)
	// Table renders a titled table with the given headers and rows.
	Table(title string, headers []string, rows [][]string) error
}

// DefaultReporter writes annotated status lines and tabwriter tables to a
// single writer.
type DefaultReporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *DefaultReporter {
	return &DefaultReporter{out: w}
}

// NewStdoutReporter creates a reporter writing to standard output.
func NewStdoutReporter() *DefaultReporter {
	return NewReporter(os.Stdout)
}

func (r *DefaultReporter) Sectionf(format string, args ...any) {
	fmt.Fprintf(r.out, "\n"+format+"\n", args...)
}

func (r *DefaultReporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *DefaultReporter) Successf(format string, args ...any) {
	fmt.Fprintf(r.out, "✓ "+format+"\n", args...)
}

func (r *DefaultReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.out, "⚠ "+format+"\n", args...)
}

func (r *DefaultReporter) Failf(format string, args ...any) {
	fmt.Fprintf(r.out, "✗ "+format+"\n", args...)
}

func (r *DefaultReporter) Planf(format string, args ...any) {
	fmt.Fprintf(r.out, "→ "+format+"\n", args...)
}

// Table renders rows aligned with tabwriter under a title and a header rule.
func (r *DefaultReporter) Table(title string, headers []string, rows [][]string) error {
	fmt.Fprintf(r.out, "\n%s\n", title)

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(rule, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
