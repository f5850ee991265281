package cmd

import (
	"fmt"
	"os"

	"siteserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "siteserve",
	Short: "Static site launcher",
	Long: `Siteserve serves the static contents of a public/ directory over HTTP
and opens the default browser to view them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application's standard logger. Console
		// format with "debug" level gives ISO8601 timestamps, which is
		// what a CLI user expects to see.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
