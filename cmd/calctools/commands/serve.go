package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"calctools/internal/config"
	"calctools/internal/toolserver"
)

var (
	serveTransport string
	serveAddr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool set over stdio or streamable HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveTransport != "" {
			cfg.Transport = config.Transport(serveTransport)
		}
		if serveAddr != "" {
			cfg.HTTPAddr = serveAddr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log := newLogger(cfg)
		log.WithFields(logrus.Fields{
			"version":   version,
			"transport": cfg.Transport,
		}).Info("starting")
		return toolserver.New(cfg, log, version).Serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "stdio or http (overrides config)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address for the http transport")
	rootCmd.AddCommand(serveCmd)
}
