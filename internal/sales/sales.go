// Package sales loads sales record files and sanitizes captured quantities.
package sales

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/compute-sales/internal/model"
)

// Stats counts what Load observed in one sales record file.
type Stats struct {
	Entries  int // entries kept
	Nameless int // entries dropped for a missing product name
}

// Load reads one JSON sales record file into an ordered entry slice. Errors
// are scoped to this file; the caller decides whether the run continues.
func Load(path string) ([]model.SaleEntry, Stats, error) {
	var st Stats
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, st, fmt.Errorf("read sales record: %w", err)
	}
	var raw []model.SaleEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, st, fmt.Errorf("parse sales record %s: %w", path, err)
	}
	entries := make([]model.SaleEntry, 0, len(raw))
	for _, e := range raw {
		if e.Product == "" {
			st.Nameless++
			continue
		}
		entries = append(entries, e)
	}
	st.Entries = len(entries)
	return entries, st, nil
}

// SanitizeQuantity corrects a captured quantity to its magnitude. A sale can
// never remove product; a negative capture is a data-entry error.
func SanitizeQuantity(q decimal.Decimal) decimal.Decimal {
	return q.Abs()
}

// Sanitize applies SanitizeQuantity to every entry in place and reports how
// many needed correction. Running it again changes nothing.
func Sanitize(entries []model.SaleEntry) int {
	corrected := 0
	for i := range entries {
		if entries[i].Quantity.IsNegative() {
			entries[i].Quantity = SanitizeQuantity(entries[i].Quantity)
			corrected++
		}
	}
	return corrected
}
