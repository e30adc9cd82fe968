package integration

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fairyhunter13/compute-sales/internal/config"
	"github.com/fairyhunter13/compute-sales/internal/obs"
	"github.com/fairyhunter13/compute-sales/internal/runner"
)

// Benchmark for one whole batch run; to run: go test -bench=. ./test/integration -run ^$
func BenchmarkBatchRun(b *testing.B) {
	obs.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	dir := b.TempDir()

	var cb strings.Builder
	cb.WriteString("[")
	for i := 0; i < 500; i++ {
		if i > 0 {
			cb.WriteString(",")
		}
		fmt.Fprintf(&cb, `{"title":"P%d","price":%d.25}`, i, i%90+1)
	}
	cb.WriteString("]")
	catPath := filepath.Join(dir, "catalogue.json")
	if err := os.WriteFile(catPath, []byte(cb.String()), 0o644); err != nil {
		b.Fatal(err)
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 5000; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		q := 2
		if i%3 == 0 {
			q = -3
		}
		fmt.Fprintf(&sb, `{"Product":"P%d","Quantity":%d}`, i%500, q)
	}
	sb.WriteString("]")
	recPath := filepath.Join(dir, "sales.json")
	if err := os.WriteFile(recPath, []byte(sb.String()), 0o644); err != nil {
		b.Fatal(err)
	}

	cfg := config.Config{ResultsFile: filepath.Join(dir, "results.txt"), CurrencySymbol: "$"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runner.Run(cfg, catPath, []string{recPath}, io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
