package integration

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fairyhunter13/compute-sales/internal/cli"
)

func genRecord(n int, quantity string) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"Product":"P","Quantity":` + quantity + `}`)
	}
	b.WriteString("]")
	return b.String()
}

// Runs a large batch twice; the reports must match apart from the execution
// time line, and the totals must be exact.
func TestIntegration_LargeRunDeterministic(t *testing.T) {
	dir := t.TempDir()
	cat := writeFile(t, dir, "catalogue.json", `[{"title":"P","price":3}]`)
	rec1 := writeFile(t, dir, "big.json", genRecord(10000, "-2"))
	rec2 := writeFile(t, dir, "bigger.json", genRecord(5000, "3"))
	results := filepath.Join(dir, "results.txt")

	code, first, _ := runCLI(t, "--results-file", results, cat, rec1, rec2)
	if code != cli.ExitOK {
		t.Fatalf("exit %d", code)
	}
	code, second, _ := runCLI(t, "--results-file", results, cat, rec1, rec2)
	if code != cli.ExitOK {
		t.Fatalf("exit %d", code)
	}
	if stripExecutionTime(first) != stripExecutionTime(second) {
		t.Fatalf("reports differ between runs:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "Total cost of sales: $60000.00\n") {
		t.Fatalf("first file total:\n%s", first)
	}
	if !strings.Contains(first, "Total cost of sales: $45000.00\n") {
		t.Fatalf("second file total:\n%s", first)
	}
	if !strings.Contains(first, "Combined total: $105000.00\n") {
		t.Fatalf("combined total:\n%s", first)
	}
}
