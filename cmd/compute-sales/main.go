// Command compute-sales values JSON sales records against a price catalogue
// and writes the results to stdout and a results file.
package main

import (
	"context"
	"os"

	"github.com/fairyhunter13/compute-sales/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
