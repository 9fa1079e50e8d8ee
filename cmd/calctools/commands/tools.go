package commands

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"calctools/internal/config"
	"calctools/internal/toolserver"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s := toolserver.New(config.Default(), quiet, version)
		for _, name := range s.ToolNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
