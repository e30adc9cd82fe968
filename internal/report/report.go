// Package report renders the results of a run as human-readable text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fairyhunter13/compute-sales/internal/model"
)

// OpenResultsFile creates or truncates the results file at path. Callers open
// it only after the catalogue has loaded, so a previous run's results survive
// a fatal startup error.
func OpenResultsFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	return f, nil
}

// Writer emits the report one block at a time, so results for earlier files
// are already written if a later file aborts the run. Every destination
// behind w receives the same bytes.
type Writer struct {
	w      io.Writer
	symbol string
	blocks int
}

// New returns a Writer rendering to w with the given currency symbol.
func New(w io.Writer, symbol string) *Writer {
	return &Writer{w: w, symbol: symbol}
}

// FileBlock renders the outcome of one sales record file.
func (w *Writer) FileBlock(r model.FileResult) error {
	var b strings.Builder
	if w.blocks > 0 {
		b.WriteByte('\n')
	}
	w.blocks++
	fmt.Fprintf(&b, "File: %s\n", r.Path)
	if r.Failed() {
		fmt.Fprintf(&b, "Error: %s\n", r.Err)
	} else {
		fmt.Fprintf(&b, "Total cost of sales: %s%s\n", w.symbol, r.Total.StringFixed(2))
		if len(r.Unpriced) > 0 {
			fmt.Fprintf(&b, "Unpriced products: %s\n", strings.Join(r.Unpriced, ", "))
		}
	}
	_, err := io.WriteString(w.w, b.String())
	return err
}

// Summary closes the report with run totals and the elapsed wall-clock time.
func (w *Writer) Summary(s model.Summary) error {
	var b strings.Builder
	if w.blocks > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Files processed: %d of %d\n", s.Processed, s.Requested)
	fmt.Fprintf(&b, "Combined total: %s%s\n", w.symbol, s.CombinedTotal.StringFixed(2))
	fmt.Fprintf(&b, "Execution time: %.6f seconds\n", s.Elapsed.Seconds())
	_, err := io.WriteString(w.w, b.String())
	return err
}
