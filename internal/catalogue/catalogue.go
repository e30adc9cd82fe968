// Package catalogue loads the price catalogue and answers price lookups.
package catalogue

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// item mirrors one object of the catalogue file. Price is a pointer so a
// missing or null price is distinguishable from an explicit zero.
type item struct {
	Title string           `json:"title"`
	Price *decimal.Decimal `json:"price"`
}

type entry struct {
	price  decimal.Decimal
	priced bool
}

// Catalogue maps product titles to unit prices. It is built once by Load and
// never mutated afterwards, so sharing it by reference is safe.
type Catalogue struct {
	entries map[string]entry
}

// Stats counts what Load observed in the catalogue file.
type Stats struct {
	Items      int // objects decoded
	Unpriced   int // titles kept without a usable price
	Duplicates int // repeated titles dropped, first occurrence wins
	Nameless   int // objects dropped for a missing title
}

// Load reads a JSON price catalogue from path. A file that cannot be read or
// parsed fails the whole run; nothing can be valued without a catalogue.
func Load(path string) (*Catalogue, Stats, error) {
	var st Stats
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, st, fmt.Errorf("read catalogue: %w", err)
	}
	var items []item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, st, fmt.Errorf("parse catalogue %s: %w", path, err)
	}
	c := &Catalogue{entries: make(map[string]entry, len(items))}
	for _, it := range items {
		st.Items++
		if it.Title == "" {
			st.Nameless++
			continue
		}
		if _, ok := c.entries[it.Title]; ok {
			st.Duplicates++
			continue
		}
		e := entry{}
		if it.Price != nil && !it.Price.IsNegative() {
			e.price = *it.Price
			e.priced = true
		} else {
			st.Unpriced++
		}
		c.entries[it.Title] = e
	}
	return c, st, nil
}

// Price returns the unit price for title. The second result is false when the
// title is absent or carries no usable price.
func (c *Catalogue) Price(title string) (decimal.Decimal, bool) {
	e, ok := c.entries[title]
	if !ok || !e.priced {
		return decimal.Decimal{}, false
	}
	return e.price, true
}

// Len returns the number of distinct titles in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.entries)
}
