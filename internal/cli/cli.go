// Package cli wires the command-line surface of compute-sales.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/compute-sales/internal/config"
	"github.com/fairyhunter13/compute-sales/internal/obs"
	"github.com/fairyhunter13/compute-sales/internal/runner"
)

// Exit codes of the compute-sales binary.
const (
	ExitOK         = 0
	ExitFatalInput = 1
	ExitUsage      = 2
)

// newRootCmd builds the root command. The report goes to stdout; usage,
// errors, and logs go to stderr so stdout stays a faithful copy of the
// results file.
func newRootCmd(stdout, stderr io.Writer, ran *bool) *cobra.Command {
	var (
		resultsFile string
		failFast    bool
		verbose     bool
	)
	cmd := &cobra.Command{
		Use:   "compute-sales <price-catalogue.json> <sales-record.json> [<sales-record.json>...]",
		Short: "Compute the total cost of recorded sales against a price catalogue",
		Long: `compute-sales prices every sold product against a JSON price catalogue,
corrects negative captured quantities to their magnitude, and reports each
sales record's total cost together with the products the catalogue cannot
price. The report is printed to stdout and written to a results file.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			cmd.SilenceUsage = true
			obs.InitLogger(verbose)
			cfg := config.Load()
			if cmd.Flags().Changed("results-file") {
				cfg.ResultsFile = resultsFile
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.FailFast = failFast
			}
			_, err := runner.Run(cfg, args[0], args[1:], stdout)
			return err
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&resultsFile, "results-file", "", "results destination (default RESULTS_FILE or SalesResults.txt)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort on the first sales record that cannot be processed")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// Run parses args, executes the batch, and returns the process exit code.
// It is also the in-process entry point for end-to-end tests.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// SetArgs(nil) would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	ran := false
	cmd := newRootCmd(stdout, stderr, &ran)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var fatal *runner.FatalInputError
		if errors.As(err, &fatal) {
			return ExitFatalInput
		}
		if !ran {
			return ExitUsage
		}
		return ExitFatalInput
	}
	return ExitOK
}
