// Package commands holds the calctools CLI.
package commands

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"calctools/internal/config"
)

const version = "0.4.0"

var (
	cfgPath  string
	logLevel string
	jsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:           "calctools",
	Short:         "Stateless numerical and symbolic math tools",
	Long:          "calctools serves a calculation engine (expressions, calculus, transforms, finance, linear algebra) as a set of MCP tools, and evaluates expressions locally.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "log level override (trace..error)")
	pf.BoolVar(&jsonLogs, "json-logs", false, "emit JSON log lines")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// loadConfig reads the config file (if any) and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if jsonLogs {
		cfg.LogJSON = true
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	// Stdout belongs to the stdio transport; logs must stay off it.
	log.SetOutput(os.Stderr)
	if cfg.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
