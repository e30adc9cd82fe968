// Package config provides runtime configuration values for the tool.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds configuration knobs for a batch run.
type Config struct {
	ResultsFile    string
	CurrencySymbol string
	FailFast       bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// Load collects configuration from environment with defaults. A .env file in
// the working directory is applied first when present; real environment
// variables win over it.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		ResultsFile:    getenv("RESULTS_FILE", "SalesResults.txt"),
		CurrencySymbol: getenv("CURRENCY_SYMBOL", "$"),
		FailFast:       boolenv("FAIL_FAST", false),
	}
}
