// Package config loads server settings from an optional YAML file and
// fills in defaults for anything unset.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"calctools/calcerr"
)

// Transport selects how the tool server accepts requests.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Config is the full server configuration.
type Config struct {
	Transport Transport `yaml:"transport"`
	HTTPAddr  string    `yaml:"http_addr"`
	LogLevel  string    `yaml:"log_level"`
	LogJSON   bool      `yaml:"log_json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Transport: TransportStdio,
		HTTPAddr:  ":8475",
		LogLevel:  "info",
	}
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return calcerr.InvalidParam("transport",
			"must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	if c.Transport == TransportHTTP && c.HTTPAddr == "" {
		return calcerr.InvalidParam("http_addr", "required for the http transport")
	}
	return nil
}
