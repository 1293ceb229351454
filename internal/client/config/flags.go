package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     base URL of the REST service
//	-t duration   request timeout
//	-s string     state database path
//	-l string     log level
//	-b string     log backend
//
// Note: os.Args is filtered with flagx.FilterArgs so that -c/-e and any
// flags of other components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the REST service")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "state database path (empty disables persistence)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog or zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
