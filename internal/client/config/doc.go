// Package config loads runtime configuration for the staffdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables prefixed STAFFDESK_, optionally completed by a
//     dotenv file (-e/-env, else ./.env when present). Real environment
//     variables win over the dotenv file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     base URL of the REST service
//	-t duration   request timeout, e.g. 5s
//	-s string     path of the local state database ("" disables persistence)
//	-l string     log level
//	-b string     log backend (slog or zap)
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "server_url": "http://localhost:5000/api",
//	  "request_timeout": "5s",
//	  "state_path": ".staffdesk/state.db",
//	  "log_level": "debug",
//	  "log_backend": "zap"
//	}
//
// Malformed sources panic; the console recovers nothing and exits.
package config
