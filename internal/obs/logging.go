// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the tool.
//
// Logger is exported to allow other packages to use it for logging.
var Logger *slog.Logger

// InitLogger initializes the global Logger with a JSON handler writing to
// stderr. Stdout is left to the report, which must mirror the results file.
//
// InitLogger is exported to allow other packages to initialize the Logger.
func InitLogger(verbose bool) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	Logger = slog.New(h)
}
