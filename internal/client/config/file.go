package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/flagx"
	"github.com/dmitrijs2005/staffdesk/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file decoding. Pointer
// fields tell an absent key apart from an empty value, so "state_path": ""
// disables persistence while a missing key keeps the default.
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StatePath      *string         `json:"state_path" yaml:"state_path"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogBackend     *string         `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.StatePath != nil {
		cfg.StatePath = *fc.StatePath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogBackend != nil {
		cfg.LogBackend = *fc.LogBackend
	}
}
