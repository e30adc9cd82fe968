// Package valuation prices sanitized sale entries against the catalogue.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/compute-sales/internal/catalogue"
	"github.com/fairyhunter13/compute-sales/internal/model"
)

// Result is the outcome of valuing one sales record.
type Result struct {
	Total    decimal.Decimal
	Unpriced []string // first-occurrence order, one entry per product
	Matched  int      // entries that contributed to the total
}

// Value sums quantity times unit price over entries. A product absent from
// the catalogue, or present without a usable price, contributes zero and is
// recorded once in Unpriced; it never fails the file.
func Value(cat *catalogue.Catalogue, entries []model.SaleEntry) Result {
	res := Result{Total: decimal.Zero}
	seen := make(map[string]struct{})
	for _, e := range entries {
		price, ok := cat.Price(e.Product)
		if !ok {
			if _, dup := seen[e.Product]; !dup {
				seen[e.Product] = struct{}{}
				res.Unpriced = append(res.Unpriced, e.Product)
			}
			continue
		}
		res.Total = res.Total.Add(e.Quantity.Mul(price))
		res.Matched++
	}
	return res
}
