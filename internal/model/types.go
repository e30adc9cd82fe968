// Package model defines domain types used by the tool.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEntry is one sold-product line from a sales record file. Quantity keeps
// the captured sign until the sanitizer runs; it may be fractional.
type SaleEntry struct {
	Product  string          `json:"Product"`
	Quantity decimal.Decimal `json:"Quantity"`
}

// FileResult captures the outcome of processing one sales record file.
type FileResult struct {
	Path      string
	Total     decimal.Decimal
	Unpriced  []string // products without a usable catalogue price, first-occurrence order
	Entries   int      // entries valued
	Corrected int      // negative quantities corrected to their magnitude
	Nameless  int      // entries skipped for a missing product name
	Err       string   // non-empty when the file could not be loaded
}

// Failed reports whether the file was skipped instead of valued.
func (r FileResult) Failed() bool { return r.Err != "" }

// Summary aggregates one whole run. Requested can exceed len(Files) when a
// fail-fast abort stops the run early.
type Summary struct {
	RunID         string
	CatalogueSize int
	Requested     int          // sales files named on the command line
	Files         []FileResult // attempted files, command-line order
	Processed     int
	Failed        int
	CombinedTotal decimal.Decimal // sum of successful file totals
	Elapsed       time.Duration
}
