package config

import (
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/logging"
)

// Config holds runtime settings for the staffdesk console.
//
// Fields:
//   - ServerURL: base URL of the REST service, e.g. http://localhost:5000/api.
//   - RequestTimeout: end-to-end bound of a single request.
//   - StatePath: sqlite file keeping the credential; "" disables persistence.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: slog or zap.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	StatePath      string
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.StatePath = ".staffdesk/state.db"
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
}

// PersistenceEnabled reports whether the credential outlives the process.
func (c *Config) PersistenceEnabled() bool {
	return c.StatePath != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the config file, the environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
