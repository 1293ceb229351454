package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "STAFFDESK_SERVER_URL"
	EnvRequestTimeout = "STAFFDESK_REQUEST_TIMEOUT"
	EnvStatePath      = "STAFFDESK_STATE_PATH"
	EnvLogLevel       = "STAFFDESK_LOG_LEVEL"
	EnvLogBackend     = "STAFFDESK_LOG_BACKEND"
)

// defaultEnvFile is read when present and no -e/-env flag is given.
const defaultEnvFile = ".env"

// parseEnv overlays cfg with STAFFDESK_* variables. The dotenv file only
// fills in variables missing from the real environment; the process
// environment itself is left untouched. Panics on unreadable or malformed
// input.
func parseEnv(cfg *Config) {
	dotenv := readDotenv()

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvServerURL); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	// set-but-empty disables persistence
	if v, ok := lookup(EnvStatePath); ok {
		cfg.StatePath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogBackend); ok && v != "" {
		cfg.LogBackend = v
	}
}

func readDotenv() map[string]string {
	path := flagx.EnvFileFlag()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		panic(err)
	}
	return values
}
