// Package runner drives one batch computation from catalogue to report.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fairyhunter13/compute-sales/internal/catalogue"
	"github.com/fairyhunter13/compute-sales/internal/config"
	"github.com/fairyhunter13/compute-sales/internal/model"
	"github.com/fairyhunter13/compute-sales/internal/obs"
	"github.com/fairyhunter13/compute-sales/internal/report"
	"github.com/fairyhunter13/compute-sales/internal/sales"
	"github.com/fairyhunter13/compute-sales/internal/valuation"
)

// FatalInputError marks a failure that makes the whole run impossible.
type FatalInputError struct {
	Err error
}

func (e *FatalInputError) Error() string { return e.Err.Error() }

func (e *FatalInputError) Unwrap() error { return e.Err }

// Run executes one batch: load the catalogue, value every sales record in
// command-line order, and emit the report to stdout and the results file.
// Files are processed sequentially; the catalogue is the only shared state
// and is read-only after load. The returned Summary is valid even on error.
func Run(cfg config.Config, cataloguePath string, salesPaths []string, stdout io.Writer) (model.Summary, error) {
	start := time.Now()
	sum := model.Summary{RunID: uuid.NewString(), Requested: len(salesPaths)}
	log := obs.Logger.With("run_id", sum.RunID)

	log.Info("run_started", "catalogue", cataloguePath, "sales_files", len(salesPaths))
	log.Debug("config_resolved",
		"results_file", cfg.ResultsFile,
		"currency_symbol", cfg.CurrencySymbol,
		"fail_fast", cfg.FailFast,
	)

	cat, cstats, err := catalogue.Load(cataloguePath)
	if err != nil {
		log.Error("catalogue_load_failed", "error", err.Error())
		sum.Elapsed = time.Since(start)
		return sum, &FatalInputError{Err: err}
	}
	sum.CatalogueSize = cat.Len()
	log.Info("catalogue_loaded",
		"path", cataloguePath,
		"products", cat.Len(),
		"unpriced", cstats.Unpriced,
		"duplicates", cstats.Duplicates,
		"nameless", cstats.Nameless,
	)

	f, err := report.OpenResultsFile(cfg.ResultsFile)
	if err != nil {
		log.Error("results_file_open_failed", "path", cfg.ResultsFile, "error", err.Error())
		sum.Elapsed = time.Since(start)
		return sum, &FatalInputError{Err: err}
	}
	defer f.Close()
	w := report.New(io.MultiWriter(stdout, f), cfg.CurrencySymbol)

	for _, path := range salesPaths {
		res := processFile(cat, path, log)
		sum.Files = append(sum.Files, res)
		if res.Failed() {
			sum.Failed++
		} else {
			sum.Processed++
			sum.CombinedTotal = sum.CombinedTotal.Add(res.Total)
		}
		if err := w.FileBlock(res); err != nil {
			log.Error("report_write_failed", "error", err.Error())
			sum.Elapsed = time.Since(start)
			return sum, fmt.Errorf("write report: %w", err)
		}
		if res.Failed() && cfg.FailFast {
			log.Warn("fail_fast_abort", "path", path)
			sum.Elapsed = time.Since(start)
			if err := w.Summary(sum); err != nil {
				return sum, fmt.Errorf("write report: %w", err)
			}
			return sum, &FatalInputError{Err: fmt.Errorf("fail-fast: %s", res.Err)}
		}
	}

	sum.Elapsed = time.Since(start)
	if err := w.Summary(sum); err != nil {
		log.Error("report_write_failed", "error", err.Error())
		return sum, fmt.Errorf("write report: %w", err)
	}
	log.Info("run_completed",
		"processed", sum.Processed,
		"failed", sum.Failed,
		"combined_total", sum.CombinedTotal.StringFixed(2),
		"elapsed", sum.Elapsed.String(),
	)
	return sum, nil
}

func processFile(cat *catalogue.Catalogue, path string, log *slog.Logger) model.FileResult {
	res := model.FileResult{Path: path}
	entries, stats, err := sales.Load(path)
	if err != nil {
		log.Warn("sales_file_failed", "path", path, "error", err.Error())
		res.Err = err.Error()
		return res
	}
	res.Entries = stats.Entries
	res.Nameless = stats.Nameless
	res.Corrected = sales.Sanitize(entries)
	v := valuation.Value(cat, entries)
	res.Total = v.Total
	res.Unpriced = v.Unpriced
	log.Info("sales_file_valued",
		"path", path,
		"entries", stats.Entries,
		"corrected", res.Corrected,
		"nameless", stats.Nameless,
		"matched", v.Matched,
		"unpriced", len(v.Unpriced),
		"total", v.Total.StringFixed(2),
	)
	return res
}
